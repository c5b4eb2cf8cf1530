package alert

import (
	"context"

	"github.com/stokk/inventory-service/internal/model"
)

type UseCase interface {
	ListAlerts(ctx context.Context, unreadOnly bool, page, pageSize int) ([]model.Alert, int, error)
	// MarkRead is a no-op on unknown ids.
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	UnreadCount(ctx context.Context) (int, error)
}
