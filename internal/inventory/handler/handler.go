package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stokk/inventory-service/internal/inventory"
	"github.com/stokk/inventory-service/internal/inventory/dto"
	"github.com/stokk/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: log}
}

func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/inventory/stock", h.SetStock)
	rg.POST("/inventory/operations", h.ProcessOperation)
	rg.GET("/inventory/movements", h.ListMovements)
}

func (h *InventoryHandler) SetStock(c *gin.Context) {
	var input dto.SetStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.uc.SetVariantStock(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, err)
		return
	}
	if v == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, v)
}

type operationRequest struct {
	Items  []dto.StockOperationItem `json:"items"`
	Kind   string                   `json:"kind"`
	Reason string                   `json:"reason"`
}

func (h *InventoryHandler) ProcessOperation(c *gin.Context) {
	var req operationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.uc.ProcessOperation(c.Request.Context(), req.Items, req.Kind, req.Reason); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) ListMovements(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	if page < 1 {
		page = 1
	}

	filters := &dto.MovementFilters{
		ProductID: c.Query("product_id"),
		VariantID: c.Query("variant_id"),
		Type:      c.Query("type"),
		Page:      page,
		PageSize:  pageSize,
	}

	movements, total, err := h.uc.ListMovements(c.Request.Context(), filters)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movements": movements, "total": total})
}

func (h *InventoryHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, inventory.ErrNegativeQuantity), errors.Is(err, inventory.ErrUnknownKind):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("inventory request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
