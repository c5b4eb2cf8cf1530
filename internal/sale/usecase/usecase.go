package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stokk/inventory-service/internal/inventory"
	invdto "github.com/stokk/inventory-service/internal/inventory/dto"
	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/internal/product"
	"github.com/stokk/inventory-service/internal/sale"
	"github.com/stokk/inventory-service/internal/sale/dto"
	"github.com/stokk/inventory-service/pkg/i18n"
	"github.com/stokk/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

var oneHundred = decimal.NewFromInt(100)

type saleUseCase struct {
	repo        sale.Repository
	productRepo product.Repository
	inventoryUC inventory.UseCase
	locale      string
	logger      logger.ZapLogger
}

func NewSaleUseCase(
	repo sale.Repository,
	productRepo product.Repository,
	inventoryUC inventory.UseCase,
	locale string,
	log logger.ZapLogger,
) sale.UseCase {
	return &saleUseCase{
		repo:        repo,
		productRepo: productRepo,
		inventoryUC: inventoryUC,
		locale:      locale,
		logger:      log,
	}
}

func (uc *saleUseCase) RegisterSale(ctx context.Context, input *dto.RegisterSaleInput) (*model.Sale, error) {
	if len(input.Items) == 0 {
		return nil, sale.ErrEmptySale
	}
	if input.DiscountPercent.IsNegative() || input.DiscountPercent.GreaterThan(oneHundred) {
		return nil, sale.ErrInvalidDiscount
	}
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, sale.ErrInvalidQuantity
		}
	}

	now := time.Now()
	s := &model.Sale{
		ID:            uuid.New().String(),
		PaymentMethod: input.PaymentMethod,
		CreatedAt:     now,
	}
	if s.PaymentMethod == "" {
		s.PaymentMethod = "cash"
	}
	if name := strings.TrimSpace(input.CustomerName); name != "" {
		s.CustomerName = &name
	}

	subtotal := decimal.Zero
	var opItems []invdto.StockOperationItem
	for _, line := range input.Items {
		p, err := uc.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			uc.logger.Debug("skipping sale line for unknown product", zap.String("product_id", line.ProductID))
			continue
		}
		v := findVariant(p, line.VariantID)
		if v == nil {
			uc.logger.Debug("skipping sale line for unknown variant", zap.String("variant_id", line.VariantID))
			continue
		}

		item := model.SaleItem{
			ID:           uuid.New().String(),
			SaleID:       s.ID,
			ProductID:    p.ID,
			ProductName:  p.Name,
			VariantID:    v.ID,
			VariantLabel: v.Label(),
			SKU:          v.SKU,
			Quantity:     line.Quantity,
			UnitPrice:    p.SalePrice,
		}
		s.Items = append(s.Items, item)
		subtotal = subtotal.Add(p.SalePrice.Mul(decimal.NewFromInt(int64(line.Quantity))))

		opItems = append(opItems, invdto.StockOperationItem{
			ProductID: p.ID,
			VariantID: v.ID,
			Quantity:  line.Quantity,
		})
	}
	if len(s.Items) == 0 {
		return nil, sale.ErrEmptySale
	}

	s.Subtotal = subtotal
	s.Discount = subtotal.Mul(input.DiscountPercent).Div(oneHundred).Round(2)
	s.Total = subtotal.Sub(s.Discount)

	if input.CashReceived != nil {
		received := *input.CashReceived
		change := received.Sub(s.Total)
		s.CashReceived = &received
		s.Change = &change
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	reason := i18n.T(uc.locale, i18n.MsgSaleReason, nil)
	if s.CustomerName != nil {
		reason += " - " + *s.CustomerName
	}
	if err := uc.inventoryUC.ProcessOperation(ctx, opItems, model.MovementOut, reason); err != nil {
		// Back out the committed sale so a failed deduction never leaves a
		// phantom sale in listings or revenue.
		if delErr := uc.repo.Delete(ctx, s.ID); delErr != nil {
			uc.logger.Error("failed to back out sale after stock error",
				zap.String("sale_id", s.ID), zap.Error(delErr))
		}
		return nil, err
	}

	return s, nil
}

func (uc *saleUseCase) GetSale(ctx context.Context, id string) (*model.Sale, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *saleUseCase) ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func findVariant(p *model.Product, variantID string) *model.ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}
