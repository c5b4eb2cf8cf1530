package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stokk/inventory-service/internal/sale"
	"github.com/stokk/inventory-service/internal/sale/dto"
	"github.com/stokk/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type SaleHandler struct {
	uc     sale.UseCase
	logger logger.ZapLogger
}

func NewSaleHandler(uc sale.UseCase, log logger.ZapLogger) *SaleHandler {
	return &SaleHandler{uc: uc, logger: log}
}

func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sales", h.Register)
	rg.GET("/sales", h.List)
	rg.GET("/sales/:id", h.Get)
}

func (h *SaleHandler) Register(c *gin.Context) {
	var input dto.RegisterSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.uc.RegisterSale(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SaleHandler) Get(c *gin.Context) {
	s, err := h.uc.GetSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SaleHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	if page < 1 {
		page = 1
	}

	sales, total, err := h.uc.ListSales(c.Request.Context(), &dto.SaleFilters{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sales": sales, "total": total})
}

func (h *SaleHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sale.ErrEmptySale),
		errors.Is(err, sale.ErrInvalidQuantity),
		errors.Is(err, sale.ErrInvalidDiscount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("sale request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
