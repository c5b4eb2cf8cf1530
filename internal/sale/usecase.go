package sale

import (
	"context"
	"errors"

	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/internal/sale/dto"
)

var (
	ErrEmptySale       = errors.New("sale has no line items")
	ErrInvalidQuantity = errors.New("line item quantity must be positive")
	ErrInvalidDiscount = errors.New("discount percent must be between 0 and 100")
)

type UseCase interface {
	// RegisterSale records the sale and deducts stock through an OUT
	// operation. Over-selling is permitted; stock clamps at zero.
	RegisterSale(ctx context.Context, input *dto.RegisterSaleInput) (*model.Sale, error)
	GetSale(ctx context.Context, id string) (*model.Sale, error)
	ListSales(ctx context.Context, filters *dto.SaleFilters) ([]model.Sale, int, error)
}
