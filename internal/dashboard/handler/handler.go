package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stokk/inventory-service/internal/dashboard"
	"github.com/stokk/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	uc     dashboard.UseCase
	logger logger.ZapLogger
}

func NewDashboardHandler(uc dashboard.UseCase, log logger.ZapLogger) *DashboardHandler {
	return &DashboardHandler{uc: uc, logger: log}
}

func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Summary)
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.uc.GetSummary(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to build dashboard summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
