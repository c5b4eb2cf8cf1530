package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stokk/inventory-service/internal/inventory"
	"github.com/stokk/inventory-service/internal/inventory/dto"
	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/pkg/i18n"
	"github.com/stokk/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	locale string
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, locale string, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		locale: locale,
		logger: log,
	}
}

func (uc *inventoryUseCase) SetVariantStock(ctx context.Context, input *dto.SetStockInput) (*model.ProductVariant, error) {
	if input.Quantity < 0 {
		return nil, inventory.ErrNegativeQuantity
	}

	v, err := uc.repo.GetVariant(ctx, input.ProductID, input.VariantID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	p, err := uc.repo.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	v.CurrentStock = input.Quantity
	a := uc.deriveAlert(p, v)

	if err := uc.repo.ApplyStockChange(ctx, v, nil, a); err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *inventoryUseCase) ProcessOperation(ctx context.Context, items []dto.StockOperationItem, kind, reason string) error {
	switch kind {
	case model.MovementIn, model.MovementOut, model.MovementAdjust:
	default:
		return inventory.ErrUnknownKind
	}

	now := time.Now()
	for _, item := range items {
		v, err := uc.repo.GetVariant(ctx, item.ProductID, item.VariantID)
		if err != nil {
			return fmt.Errorf("load variant %s: %w", item.VariantID, err)
		}
		if v == nil {
			uc.logger.Debug("skipping unknown variant in stock operation",
				zap.String("product_id", item.ProductID),
				zap.String("variant_id", item.VariantID))
			continue
		}
		p, err := uc.repo.GetProduct(ctx, item.ProductID)
		if err != nil {
			return fmt.Errorf("load product %s: %w", item.ProductID, err)
		}
		if p == nil {
			continue
		}

		var delta int
		switch kind {
		case model.MovementIn:
			delta = item.Quantity
		case model.MovementOut:
			delta = -item.Quantity
		case model.MovementAdjust:
			delta = item.Quantity
		}

		newStock := v.CurrentStock + delta
		if newStock < 0 {
			newStock = 0
		}
		v.CurrentStock = newStock

		logEntry := &model.InventoryLog{
			ID:           uuid.New().String(),
			ProductID:    p.ID,
			VariantID:    v.ID,
			ProductName:  p.Name,
			VariantLabel: v.Label(),
			Type:         kind,
			Quantity:     delta,
			Reason:       reason,
			CreatedAt:    now,
		}

		a := uc.deriveAlert(p, v)

		if err := uc.repo.ApplyStockChange(ctx, v, logEntry, a); err != nil {
			return fmt.Errorf("apply %s for variant %s: %w", kind, v.ID, err)
		}
	}

	return nil
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryLog, int, error) {
	return uc.repo.ListMovements(ctx, filters)
}

// deriveAlert implements the alert invariant: a mutation landing on zero
// yields one out_of_stock alert, a positive result at or below the product
// threshold yields one low_stock alert, anything else yields none.
func (uc *inventoryUseCase) deriveAlert(p *model.Product, v *model.ProductVariant) *model.Alert {
	var kind, message string
	switch {
	case v.CurrentStock == 0:
		kind = model.AlertOutOfStock
		message = i18n.T(uc.locale, i18n.MsgAlertOutOfStock, map[string]interface{}{
			"Product": p.Name,
			"Variant": v.Label(),
		})
	case v.CurrentStock <= p.MinStockThreshold:
		kind = model.AlertLowStock
		message = i18n.T(uc.locale, i18n.MsgAlertLowStock, map[string]interface{}{
			"Product": p.Name,
			"Variant": v.Label(),
			"Count":   v.CurrentStock,
		})
	default:
		return nil
	}

	return &model.Alert{
		ID:          uuid.New().String(),
		Type:        kind,
		Message:     message,
		ProductID:   p.ID,
		ProductName: p.Name,
		Reference:   p.Reference,
		CreatedAt:   time.Now(),
	}
}
