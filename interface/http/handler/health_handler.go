package handler

import (
	"context"
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gin-gonic/gin"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	deliveries HealthChecker
}

func NewHealthHandler(deliveries HealthChecker) *HealthHandler {
	return &HealthHandler{deliveries: deliveries}
}

func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether the delivery store answers; sends do not depend on
// it, but lookups do.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.deliveries.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (h *HealthHandler) Metrics(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/plain; version=0.0.4")
	metrics.WritePrometheus(c.Writer, true)
}
