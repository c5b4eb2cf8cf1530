package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stokk/inventory-service/internal/alert"
	"github.com/stokk/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type AlertHandler struct {
	uc     alert.UseCase
	logger logger.ZapLogger
}

func NewAlertHandler(uc alert.UseCase, log logger.ZapLogger) *AlertHandler {
	return &AlertHandler{uc: uc, logger: log}
}

func (h *AlertHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/alerts", h.List)
	rg.GET("/alerts/unread-count", h.UnreadCount)
	rg.POST("/alerts/:id/read", h.MarkRead)
	rg.POST("/alerts/read-all", h.MarkAllRead)
}

func (h *AlertHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	if page < 1 {
		page = 1
	}

	alerts, total, err := h.uc.ListAlerts(c.Request.Context(), unreadOnly, page, pageSize)
	if err != nil {
		h.logger.Error("failed to list alerts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "total": total})
}

func (h *AlertHandler) UnreadCount(c *gin.Context) {
	count, err := h.uc.UnreadCount(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to count unread alerts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

func (h *AlertHandler) MarkRead(c *gin.Context) {
	if err := h.uc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to mark alert read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AlertHandler) MarkAllRead(c *gin.Context) {
	if err := h.uc.MarkAllRead(c.Request.Context()); err != nil {
		h.logger.Error("failed to mark all alerts read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
