package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/internal/sale/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.Sale) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	saleQuery := `
        INSERT INTO sales (
            id, subtotal, discount, total, payment_method,
            cash_received, change, customer_name, created_at
        )
        VALUES (
            :id, :subtotal, :discount, :total, :payment_method,
            :cash_received, :change, :customer_name, :created_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, saleQuery, s); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	itemQuery := `
        INSERT INTO sale_items (
            id, sale_id, product_id, product_name, variant_id,
            variant_label, sku, quantity, unit_price
        )
        VALUES (
            :id, :sale_id, :product_id, :product_name, :variant_id,
            :variant_label, :sku, :quantity, :unit_price
        )
    `
	for i := range s.Items {
		if _, err := tx.NamedExecContext(ctx, itemQuery, &s.Items[i]); err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, id); err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return tx.Commit()
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Sale, error) {
	var s model.Sale
	query := `SELECT * FROM sales WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &s, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	itemsQuery := `SELECT * FROM sale_items WHERE sale_id = $1`
	if err := r.DB.SelectContext(ctx, &s.Items, itemsQuery, id); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.SaleFilters) ([]model.Sale, int, error) {
	var sales []model.Sale
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.StartDate != nil {
		conditions = append(conditions, "created_at >= :start_date")
		args["start_date"] = *f.StartDate
	}
	if f.EndDate != nil {
		conditions = append(conditions, "created_at <= :end_date")
		args["end_date"] = *f.EndDate
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM sales" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	query := "SELECT * FROM sales" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &sales, args); err != nil {
		return nil, 0, err
	}

	if err := r.loadItems(ctx, sales); err != nil {
		return nil, 0, err
	}
	return sales, count, nil
}

func (r *PGRepository) loadItems(ctx context.Context, sales []model.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	ids := make([]string, len(sales))
	byID := make(map[string]*model.Sale, len(sales))
	for i := range sales {
		ids[i] = sales[i].ID
		byID[sales[i].ID] = &sales[i]
	}

	query, args, err := sqlx.In(`SELECT * FROM sale_items WHERE sale_id IN (?)`, ids)
	if err != nil {
		return err
	}
	query = r.DB.Rebind(query)

	var items []model.SaleItem
	if err := r.DB.SelectContext(ctx, &items, query, args...); err != nil {
		return err
	}

	for _, item := range items {
		if s, ok := byID[item.SaleID]; ok {
			s.Items = append(s.Items, item)
		}
	}
	return nil
}
