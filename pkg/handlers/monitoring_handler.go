package handlers

import (
	"net/http"
	"strconv"

	"shopmate-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// MonitoringHandler serves the in-memory request log.
type MonitoringHandler struct {
	monitoring *services.MonitoringService
}

// NewMonitoringHandler creates a monitoring handler.
func NewMonitoringHandler(monitoring *services.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{monitoring: monitoring}
}

// GetLogs handles GET /monitoring/logs?limit=.
func (h *MonitoringHandler) GetLogs(c *gin.Context) {
	limit := 100
	if limitParam := c.Query("limit"); limitParam != "" {
		if parsed, err := strconv.Atoi(limitParam); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	logs := h.monitoring.RecentLogs(limit)
	c.JSON(http.StatusOK, gin.H{
		"logs":  logs,
		"total": len(logs),
	})
}
