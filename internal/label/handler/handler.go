package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stokk/inventory-service/internal/label"
	"github.com/stokk/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type LabelHandler struct {
	uc     label.UseCase
	logger logger.ZapLogger
}

func NewLabelHandler(uc label.UseCase, log logger.ZapLogger) *LabelHandler {
	return &LabelHandler{uc: uc, logger: log}
}

func (h *LabelHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/labels/barcode/:code", h.BarcodeImage)
	rg.POST("/labels/sheet", h.LabelSheet)
}

func (h *LabelHandler) BarcodeImage(c *gin.Context) {
	img, err := h.uc.BarcodePNG(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, label.ErrUnknownBarcode) {
			c.JSON(http.StatusNotFound, gin.H{"error": "barcode not found"})
			return
		}
		h.logger.Error("failed to render barcode", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

type labelSheetRequest struct {
	ProductIDs []string `json:"product_ids" binding:"required"`
}

func (h *LabelHandler) LabelSheet(c *gin.Context) {
	var req labelSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pdf, err := h.uc.LabelSheetPDF(c.Request.Context(), req.ProductIDs)
	if err != nil {
		if errors.Is(err, label.ErrNoProducts) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no products found"})
			return
		}
		h.logger.Error("failed to render label sheet", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="labels.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
