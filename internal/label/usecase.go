package label

import (
	"context"
	"errors"
)

var (
	ErrUnknownBarcode = errors.New("label: barcode not found")
	ErrNoProducts     = errors.New("label: no products resolved for sheet")
)

type UseCase interface {
	// BarcodePNG renders a Code 128 image for the given barcode. The code must
	// belong to a known variant.
	BarcodePNG(ctx context.Context, code string) ([]byte, error)

	// LabelSheetPDF lays out one printable label per variant of the given
	// products. Unknown product ids are skipped.
	LabelSheetPDF(ctx context.Context, productIDs []string) ([]byte, error)
}
