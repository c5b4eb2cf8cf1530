package alert

import (
	"context"

	"github.com/stokk/inventory-service/internal/model"
)

type Repository interface {
	Insert(ctx context.Context, a *model.Alert) error
	FindAll(ctx context.Context, unreadOnly bool, page, pageSize int) ([]model.Alert, int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	CountUnread(ctx context.Context) (int, error)
}
