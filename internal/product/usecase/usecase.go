package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/stokk/inventory-service/internal/alert"
	"github.com/stokk/inventory-service/internal/category"
	"github.com/stokk/inventory-service/internal/model"
	"github.com/stokk/inventory-service/internal/product"
	"github.com/stokk/inventory-service/internal/product/dto"
	"github.com/stokk/inventory-service/pkg/cache"
	"github.com/stokk/inventory-service/pkg/i18n"
	"github.com/stokk/inventory-service/pkg/logger"
	"github.com/stokk/inventory-service/pkg/search"
	"go.uber.org/zap"
)

const defaultMinStock = 3

const productsIndex = "products"

type productUseCase struct {
	repo      product.Repository
	catRepo   category.Repository
	alertRepo alert.Repository
	cache     *cache.RedisClient
	es        *search.Client
	locale    string
	logger    logger.ZapLogger
}

func NewProductUseCase(
	repo product.Repository,
	catRepo category.Repository,
	alertRepo alert.Repository,
	cache *cache.RedisClient,
	es *search.Client,
	locale string,
	log logger.ZapLogger,
) product.UseCase {
	return &productUseCase{
		repo:      repo,
		catRepo:   catRepo,
		alertRepo: alertRepo,
		cache:     cache,
		es:        es,
		locale:    locale,
		logger:    log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	name := strings.TrimSpace(input.Name)
	brand := strings.TrimSpace(input.Brand)
	if name == "" || brand == "" || input.CategoryID == "" || !input.SalePrice.IsPositive() {
		return nil, product.ErrInvalidInput
	}
	if len(input.Variants) == 0 {
		return nil, product.ErrNoVariants
	}
	for _, d := range input.Variants {
		if strings.TrimSpace(d.Size) == "" || strings.TrimSpace(d.Color) == "" || d.InitialStock < 0 {
			return nil, product.ErrInvalidInput
		}
	}

	cat, err := uc.catRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, product.ErrUnknownCategory
	}

	now := time.Now()
	threshold := input.MinStockThreshold
	if threshold <= 0 {
		threshold = defaultMinStock
	}

	prefix := categoryPrefix(cat.Name)
	p := &model.Product{
		BaseModel:         model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		CategoryID:        cat.ID,
		Reference:         generateReference(prefix, now),
		Name:              name,
		Brand:             brand,
		CostPrice:         input.CostPrice,
		SalePrice:         input.SalePrice,
		MinStockThreshold: threshold,
		Category:          cat,
	}

	for _, d := range input.Variants {
		p.Variants = append(p.Variants, model.ProductVariant{
			ID:           uuid.New().String(),
			ProductID:    p.ID,
			Size:         d.Size,
			Color:        d.Color,
			Barcode:      generateBarcode(),
			SKU:          generateSKU(prefix, d.Color, d.Size),
			CurrentStock: d.InitialStock,
		})
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.emitAlert(ctx, p, model.AlertNewArrival, i18n.T(uc.locale, i18n.MsgAlertNewArrival, map[string]interface{}{
		"Product": p.Name,
		"Count":   len(p.Variants),
	}))

	go uc.invalidateListCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	cacheKey, keyErr := uc.listCacheKey(filters)
	if keyErr == nil && uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached struct {
				Products []model.Product
				Count    int
			}
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached.Products, cached.Count, nil
			}
		}
	}

	if filters.SearchQuery != "" && uc.es != nil {
		products, count, err := uc.searchElastic(ctx, filters)
		if err == nil {
			return products, count, nil
		}
		uc.logger.Error("elastic search failed, falling back to database", zap.Error(err))
	}

	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	if keyErr == nil && uc.cache != nil {
		cached := struct {
			Products []model.Product
			Count    int
		}{products, count}
		if data, err := json.Marshal(cached); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, 5*time.Minute)
		}
	}

	return products, count, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		// Unknown id: nothing to update.
		return nil, nil
	}

	name := strings.TrimSpace(input.Name)
	brand := strings.TrimSpace(input.Brand)
	if name == "" || brand == "" || !input.SalePrice.IsPositive() {
		return nil, product.ErrInvalidInput
	}

	if input.CategoryID != "" && input.CategoryID != p.CategoryID {
		cat, err := uc.catRepo.FindByID(ctx, input.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, product.ErrUnknownCategory
		}
		p.CategoryID = cat.ID
	}

	priceChanged := !p.SalePrice.Equal(input.SalePrice)
	oldPrice := p.SalePrice

	p.Name = name
	p.Brand = brand
	p.CostPrice = input.CostPrice
	p.SalePrice = input.SalePrice
	if input.MinStockThreshold > 0 {
		p.MinStockThreshold = input.MinStockThreshold
	}
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if priceChanged {
		uc.emitAlert(ctx, p, model.AlertPriceChange, i18n.T(uc.locale, i18n.MsgAlertPriceChange, map[string]interface{}{
			"Product": p.Name,
			"Old":     oldPrice.StringFixed(2),
			"New":     p.SalePrice.StringFixed(2),
		}))
	}

	go uc.invalidateListCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return nil // already gone
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	go uc.invalidateListCache(context.Background())
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), productsIndex, id); err != nil {
				uc.logger.Error("failed to remove product from index", zap.Error(err))
			}
		}()
	}

	return nil
}

func (uc *productUseCase) FindByBarcode(ctx context.Context, code string) (*model.Product, *model.ProductVariant, error) {
	return uc.repo.FindByBarcode(ctx, code)
}

func (uc *productUseCase) emitAlert(ctx context.Context, p *model.Product, kind, message string) {
	a := &model.Alert{
		ID:          uuid.New().String(),
		Type:        kind,
		Message:     message,
		ProductID:   p.ID,
		ProductName: p.Name,
		Reference:   p.Reference,
		CreatedAt:   time.Now(),
	}
	if err := uc.alertRepo.Insert(ctx, a); err != nil {
		// The product mutation already committed; a lost advisory alert is
		// logged, not surfaced.
		uc.logger.Error("failed to insert alert", zap.String("type", kind), zap.Error(err))
	}
}

func (uc *productUseCase) searchElastic(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	must := []map[string]interface{}{
		{
			"query_string": map[string]interface{}{
				"query":  fmt.Sprintf("*%s*", f.SearchQuery),
				"fields": []string{"name^3", "reference", "brand"},
			},
		},
	}
	if f.CategoryID != "" {
		must = append(must, map[string]interface{}{
			"term": map[string]interface{}{"category_id": f.CategoryID},
		})
	}

	q := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{"must": must},
		},
	}
	if f.PageSize > 0 {
		q["from"] = (f.Page - 1) * f.PageSize
		q["size"] = f.PageSize
	}

	res, err := uc.es.Search(ctx, productsIndex, q)
	if err != nil {
		return nil, 0, err
	}

	// The index stores the product row only; reload hits from the database so
	// variants and stock counts are authoritative.
	var products []model.Product
	for _, hit := range res.Hits.Hits {
		p, err := uc.repo.FindByID(ctx, hit.ID)
		if err != nil {
			return nil, 0, err
		}
		if p != nil {
			products = append(products, *p)
		}
	}
	return products, res.Hits.Total.Value, nil
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}

	mapping := `{
		"mappings": {
			"properties": {
				"category_id": { "type": "keyword" },
				"reference": { "type": "keyword" },
				"name": { "type": "text" },
				"brand": { "type": "text" },
				"sale_price": { "type": "double" },
				"created_at": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, productsIndex, mapping)

	doc := map[string]interface{}{
		"category_id": p.CategoryID,
		"reference":   p.Reference,
		"name":        p.Name,
		"brand":       p.Brand,
		"sale_price":  p.SalePrice,
		"created_at":  p.CreatedAt,
	}
	if err := uc.es.Index(ctx, productsIndex, p.ID, doc); err != nil {
		uc.logger.Error("failed to index product", zap.Error(err))
	}
}

func (uc *productUseCase) listCacheKey(f *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("products:list:%x", md5.Sum(data)), nil
}

func (uc *productUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Client.Keys(ctx, "products:list:*").Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}

// categoryPrefix derives the reference prefix from the category name: the
// first three letters, uppercased.
func categoryPrefix(name string) string {
	var letters []rune
	for _, r := range name {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
		}
		if len(letters) == 3 {
			break
		}
	}
	if len(letters) == 0 {
		return "PRD"
	}
	return string(letters)
}

func generateReference(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%04d", prefix, now.UnixMilli()%10000)
}

// generateBarcode produces a 13-digit EAN-like code with the 789 country
// prefix. Uniqueness is probabilistic; the column's unique constraint is the
// backstop.
func generateBarcode() string {
	var b strings.Builder
	b.WriteString("789")
	for i := 0; i < 10; i++ {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}

func generateSKU(prefix, color, size string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, categoryPrefix(color), strings.ToUpper(size))
}
