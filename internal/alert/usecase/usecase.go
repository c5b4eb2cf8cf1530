package usecase

import (
	"context"

	"github.com/stokk/inventory-service/internal/alert"
	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/pkg/logger"
)

type alertUseCase struct {
	repo   alert.Repository
	logger logger.ZapLogger
}

func NewAlertUseCase(repo alert.Repository, log logger.ZapLogger) alert.UseCase {
	return &alertUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *alertUseCase) ListAlerts(ctx context.Context, unreadOnly bool, page, pageSize int) ([]model.Alert, int, error) {
	return uc.repo.FindAll(ctx, unreadOnly, page, pageSize)
}

func (uc *alertUseCase) MarkRead(ctx context.Context, id string) error {
	return uc.repo.MarkRead(ctx, id)
}

func (uc *alertUseCase) MarkAllRead(ctx context.Context) error {
	return uc.repo.MarkAllRead(ctx)
}

func (uc *alertUseCase) UnreadCount(ctx context.Context) (int, error) {
	return uc.repo.CountUnread(ctx)
}
