package dashboard

import (
	"context"

	"github.com/stokk/inventory-service/internal/dashboard/dto"
)

type UseCase interface {
	GetSummary(ctx context.Context) (*dto.Summary, error)
}
