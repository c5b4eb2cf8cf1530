package dashboard

import (
	"context"
	"time"

	"github.com/stokk/inventory-service/internal/dashboard/dto"
)

type Repository interface {
	Summary(ctx context.Context, now time.Time) (*dto.Summary, error)
}
