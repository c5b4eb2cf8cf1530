package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/stokk/inventory-service/internal/inventory/dto"
	"github.com/stokk/inventory-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) GetVariant(ctx context.Context, productID, variantID string) (*model.ProductVariant, error) {
	var v model.ProductVariant
	query := `SELECT * FROM product_variants WHERE id = $1 AND product_id = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &v, query, variantID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *PGRepository) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) ApplyStockChange(ctx context.Context, v *model.ProductVariant, logEntry *model.InventoryLog, a *model.Alert) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	updateQuery := `UPDATE product_variants SET current_stock = :current_stock WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, updateQuery, v); err != nil {
		return fmt.Errorf("update stock: %w", err)
	}

	if logEntry != nil {
		insertLogQuery := `
            INSERT INTO inventory_logs (
                id, product_id, variant_id, product_name, variant_label,
                type, quantity, reason, created_at
            )
            VALUES (
                :id, :product_id, :variant_id, :product_name, :variant_label,
                :type, :quantity, :reason, :created_at
            )
        `
		if _, err := tx.NamedExecContext(ctx, insertLogQuery, logEntry); err != nil {
			return fmt.Errorf("insert movement log: %w", err)
		}
	}

	if a != nil {
		insertAlertQuery := `
            INSERT INTO alerts (id, type, message, product_id, product_name, reference, read, created_at)
            VALUES (:id, :type, :message, :product_id, :product_name, :reference, :read, :created_at)
        `
		if _, err := tx.NamedExecContext(ctx, insertAlertQuery, a); err != nil {
			return fmt.Errorf("insert alert: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PGRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.InventoryLog, int, error) {
	var items []model.InventoryLog
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.ProductID != "" {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.VariantID != "" {
		conditions = append(conditions, "variant_id = :variant_id")
		args["variant_id"] = f.VariantID
	}
	if f.Type != "" {
		conditions = append(conditions, "type = :type")
		args["type"] = f.Type
	}
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

	countQuery := "SELECT count(*) FROM inventory_logs" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	query := "SELECT * FROM inventory_logs" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &items, args)
	return items, count, err
}
