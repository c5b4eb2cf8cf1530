package usecase

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"

	"github.com/stokk/inventory-service/internal/label"
	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/internal/product"
	"github.com/stokk/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

// A4 sheet, three labels per row: 3*61 + 2*3.5 = 190mm of usable width.
const (
	pageMargin  = 10.0
	labelWidth  = 61.0
	labelHeight = 40.0
	labelGap    = 3.5
)

type labelUC struct {
	products product.Repository
	log      logger.ZapLogger
}

func NewLabelUseCase(products product.Repository, log logger.ZapLogger) label.UseCase {
	return &labelUC{products: products, log: log}
}

func (uc *labelUC) BarcodePNG(ctx context.Context, code string) ([]byte, error) {
	_, variant, err := uc.products.FindByBarcode(ctx, code)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, label.ErrUnknownBarcode
	}
	return renderBarcodePNG(code, 300, 120)
}

func (uc *labelUC) LabelSheetPDF(ctx context.Context, productIDs []string) ([]byte, error) {
	var prods []*model.Product
	for _, id := range productIDs {
		p, err := uc.products.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			uc.log.Debug("label sheet skipping unknown product", zap.String("product_id", id))
			continue
		}
		prods = append(prods, p)
	}
	if len(prods) == 0 {
		return nil, label.ErrNoProducts
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddPage()
	// Core fonts are cp1252; translate accented names before drawing.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	x, y := pageMargin, pageMargin

	for _, p := range prods {
		for i := range p.Variants {
			v := &p.Variants[i]
			if x+labelWidth > pageW-pageMargin {
				x = pageMargin
				y += labelHeight + labelGap
			}
			if y+labelHeight > pageH-pageMargin {
				pdf.AddPage()
				x, y = pageMargin, pageMargin
			}
			if err := drawLabel(pdf, tr, x, y, p, v); err != nil {
				return nil, err
			}
			x += labelWidth + labelGap
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("labelUC.LabelSheetPDF.output: %w", err)
	}
	return buf.Bytes(), nil
}

func drawLabel(pdf *gofpdf.Fpdf, tr func(string) string, x, y float64, p *model.Product, v *model.ProductVariant) error {
	pdf.SetDrawColor(180, 180, 180)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(x+2, y+2)
	pdf.CellFormat(labelWidth-4, 4, tr(truncate(p.Name, 34)), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(x+2, y+6.5)
	pdf.CellFormat(labelWidth-4, 3.5, tr(fmt.Sprintf("%s  %s", p.Reference, v.Label())), "", 0, "L", false, 0, "")
	pdf.SetXY(x+2, y+10)
	pdf.CellFormat(labelWidth-4, 3.5, v.SKU, "", 0, "L", false, 0, "")

	img, err := renderBarcodePNG(v.Barcode, 400, 120)
	if err != nil {
		return err
	}
	name := "bc-" + v.Barcode
	pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(img))
	pdf.ImageOptions(name, x+4, y+14.5, labelWidth-8, 14, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(x+2, y+29)
	pdf.CellFormat(labelWidth-4, 3.5, v.Barcode, "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(x+2, y+33)
	pdf.CellFormat(labelWidth-4, 5, "R$ "+p.SalePrice.StringFixed(2), "", 0, "C", false, 0, "")
	return nil
}

func renderBarcodePNG(code string, width, height int) ([]byte, error) {
	bc, err := code128.Encode(code)
	if err != nil {
		return nil, fmt.Errorf("label: encode %q: %w", code, err)
	}
	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return nil, fmt.Errorf("label: scale %q: %w", code, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("label: png encode: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
