package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stokk/inventory-service/internal/product"
	"github.com/stokk/inventory-service/internal/product/dto"
	"github.com/stokk/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: log}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.List)
	rg.POST("/products", h.Create)
	rg.GET("/products/:id", h.Get)
	rg.PUT("/products/:id", h.Update)
	rg.DELETE("/products/:id", h.Delete)
	rg.GET("/barcode/:code", h.FindByBarcode)
}

func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	if page < 1 {
		page = 1
	}

	filters := &dto.ProductFilters{
		CategoryID:  c.Query("category_id"),
		SearchQuery: c.Query("q"),
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
		Page:        page,
		PageSize:    pageSize,
	}

	products, total, err := h.uc.ListProducts(c.Request.Context(), filters)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "total": total})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input dto.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.uc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var input dto.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	p, err := h.uc.UpdateProduct(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, err)
		return
	}
	if p == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) FindByBarcode(c *gin.Context) {
	p, v, err := h.uc.FindByBarcode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if v == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barcode not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p, "variant": v})
}

func (h *ProductHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, product.ErrInvalidInput),
		errors.Is(err, product.ErrNoVariants),
		errors.Is(err, product.ErrUnknownCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("product request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
