package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/stokk/inventory-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Insert(ctx context.Context, a *model.Alert) error {
	query := `
        INSERT INTO alerts (id, type, message, product_id, product_name, reference, read, created_at)
        VALUES (:id, :type, :message, :product_id, :product_name, :reference, :read, :created_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, a)
	return err
}

func (r *PGRepository) FindAll(ctx context.Context, unreadOnly bool, page, pageSize int) ([]model.Alert, int, error) {
	var alerts []model.Alert
	var count int

	whereClause := ""
	if unreadOnly {
		whereClause = ` WHERE read = false`
	}

	if err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM alerts`+whereClause); err != nil {
		return nil, 0, err
	}

	query := `SELECT * FROM alerts` + whereClause + ` ORDER BY created_at DESC`
	if pageSize > 0 {
		offset := (page - 1) * pageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize, offset)
	}

	err := r.DB.SelectContext(ctx, &alerts, query)
	return alerts, count, err
}

func (r *PGRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE alerts SET read = true WHERE id = $1`, id)
	return err
}

func (r *PGRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE alerts SET read = true WHERE read = false`)
	return err
}

func (r *PGRepository) CountUnread(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM alerts WHERE read = false`)
	return count, err
}
