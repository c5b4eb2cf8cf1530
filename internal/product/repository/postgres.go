package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/internal/product/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const insertVariantQuery = `
        INSERT INTO product_variants (id, product_id, size, color, barcode, sku, current_stock)
        VALUES (:id, :product_id, :size, :color, :barcode, :sku, :current_stock)
    `

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO products (
            id, category_id, reference, name, brand,
            cost_price, sale_price, min_stock_threshold, created_at, updated_at
        )
        VALUES (
            :id, :category_id, :reference, :name, :brand,
            :cost_price, :sale_price, :min_stock_threshold, :created_at, :updated_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	for i := range p.Variants {
		if _, err := tx.NamedExecContext(ctx, insertVariantQuery, &p.Variants[i]); err != nil {
			return fmt.Errorf("insert variant: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadVariants(ctx, []*model.Product{&product}); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var products []model.Product
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.CategoryID != "" {
		conditions = append(conditions, "category_id = :category_id")
		args["category_id"] = f.CategoryID
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(name ILIKE :search OR reference ILIKE :search OR brand ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM products" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	orderBy := "created_at DESC"
	if f.SortBy != "" {
		// Whitelist sortable fields.
		switch f.SortBy {
		case "name":
			orderBy = "name"
		case "price":
			orderBy = "sale_price"
		case "created_at":
			orderBy = "created_at"
		}
		if strings.ToLower(f.SortOrder) == "asc" {
			orderBy += " ASC"
		} else {
			orderBy += " DESC"
		}
	}

	query := fmt.Sprintf("SELECT * FROM products%s ORDER BY %s", whereClause, orderBy)
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &products, args); err != nil {
		return nil, 0, err
	}

	refs := make([]*model.Product, len(products))
	for i := range products {
		refs[i] = &products[i]
	}
	if err := r.loadVariants(ctx, refs); err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *PGRepository) loadVariants(ctx context.Context, products []*model.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]string, len(products))
	byID := make(map[string]*model.Product, len(products))
	for i, p := range products {
		ids[i] = p.ID
		byID[p.ID] = p
	}

	query, args, err := sqlx.In(`
        SELECT * FROM product_variants WHERE product_id IN (?)
        ORDER BY color ASC, size ASC
    `, ids)
	if err != nil {
		return err
	}
	query = r.DB.Rebind(query)

	var variants []model.ProductVariant
	if err := r.DB.SelectContext(ctx, &variants, query, args...); err != nil {
		return err
	}

	for _, v := range variants {
		if p, ok := byID[v.ProductID]; ok {
			p.Variants = append(p.Variants, v)
		}
	}
	return nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET category_id = :category_id,
            name = :name,
            brand = :brand,
            cost_price = :cost_price,
            sale_price = :sale_price,
            min_stock_threshold = :min_stock_threshold,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_variants WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("delete variants: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	return tx.Commit()
}

func (r *PGRepository) FindByBarcode(ctx context.Context, code string) (*model.Product, *model.ProductVariant, error) {
	var variant model.ProductVariant
	query := `SELECT * FROM product_variants WHERE barcode = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &variant, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	product, err := r.FindByID(ctx, variant.ProductID)
	if err != nil {
		return nil, nil, err
	}
	return product, &variant, nil
}
