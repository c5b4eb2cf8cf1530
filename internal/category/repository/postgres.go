package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/stokk/inventory-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (id, name, created_at)
        VALUES (:id, :name, :created_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var cat model.Category
	query := `SELECT * FROM categories WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &cat, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (r *PGRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var cat model.Category
	query := `SELECT * FROM categories WHERE lower(name) = lower($1) LIMIT 1`
	err := r.DB.GetContext(ctx, &cat, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	query := `SELECT * FROM categories ORDER BY name ASC`
	err := r.DB.SelectContext(ctx, &categories, query)
	return categories, err
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) error {
	query := `UPDATE categories SET name = :name WHERE id = :id`
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}

func (r *PGRepository) CountProducts(ctx context.Context, categoryID string) (int, error) {
	var count int
	query := `SELECT count(*) FROM products WHERE category_id = $1`
	err := r.DB.GetContext(ctx, &count, query, categoryID)
	return count, err
}
