package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/stokk/inventory-service/internal/dashboard"
	"github.com/stokk/inventory-service/internal/dashboard/dto"
	"github.com/stokk/inventory-service/pkg/logger"
)

type dashboardRepo struct {
	db  *sqlx.DB
	log logger.ZapLogger
}

func NewDashboardRepository(db *sqlx.DB, log logger.ZapLogger) dashboard.Repository {
	return &dashboardRepo{db: db, log: log}
}

func (r *dashboardRepo) Summary(ctx context.Context, now time.Time) (*dto.Summary, error) {
	s := &dto.Summary{TodayRevenue: decimal.Zero}

	query := `
		SELECT
			(SELECT COUNT(*) FROM products)                                         AS total_products,
			(SELECT COALESCE(SUM(current_stock), 0) FROM product_variants)          AS total_stock_units,
			(SELECT COUNT(*) FROM product_variants v
				JOIN products p ON p.id = v.product_id
				WHERE v.current_stock > 0
				  AND v.current_stock <= p.min_stock_threshold)                     AS low_stock_count,
			(SELECT COUNT(*) FROM product_variants WHERE current_stock = 0)         AS out_of_stock_count,
			(SELECT COUNT(*) FROM alerts WHERE read = FALSE)                        AS unread_alerts`

	row := struct {
		TotalProducts   int `db:"total_products"`
		TotalStockUnits int `db:"total_stock_units"`
		LowStockCount   int `db:"low_stock_count"`
		OutOfStockCount int `db:"out_of_stock_count"`
		UnreadAlerts    int `db:"unread_alerts"`
	}{}
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return nil, fmt.Errorf("dashboardRepo.Summary.counts: %w", err)
	}
	s.TotalProducts = row.TotalProducts
	s.TotalStockUnits = row.TotalStockUnits
	s.LowStockCount = row.LowStockCount
	s.OutOfStockCount = row.OutOfStockCount
	s.UnreadAlerts = row.UnreadAlerts

	// Today spans the calendar day in the server's timezone.
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	salesQuery := `
		SELECT COUNT(*) AS today_sales, COALESCE(SUM(total), 0) AS today_revenue
		FROM sales
		WHERE created_at >= $1 AND created_at < $2`

	salesRow := struct {
		TodaySales   int             `db:"today_sales"`
		TodayRevenue decimal.Decimal `db:"today_revenue"`
	}{}
	if err := r.db.GetContext(ctx, &salesRow, salesQuery, dayStart, dayEnd); err != nil {
		return nil, fmt.Errorf("dashboardRepo.Summary.sales: %w", err)
	}
	s.TodaySales = salesRow.TodaySales
	s.TodayRevenue = salesRow.TodayRevenue

	return s, nil
}
