package usecase

import (
	"context"
	"time"

	"github.com/stokk/inventory-service/internal/dashboard"
	"github.com/stokk/inventory-service/internal/dashboard/dto"
	"github.com/stokk/inventory-service/pkg/logger"
)

type dashboardUC struct {
	repo dashboard.Repository
	log  logger.ZapLogger
	now  func() time.Time
}

func NewDashboardUseCase(repo dashboard.Repository, log logger.ZapLogger) dashboard.UseCase {
	return &dashboardUC{repo: repo, log: log, now: time.Now}
}

func (uc *dashboardUC) GetSummary(ctx context.Context) (*dto.Summary, error) {
	return uc.repo.Summary(ctx, uc.now())
}
