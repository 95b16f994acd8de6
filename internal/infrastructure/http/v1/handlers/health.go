package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"salestrack/internal/infrastructure/storage/postgres"
)

// Version is reported by /health/info. Overridden at link time.
var Version = "dev"

// DatabaseProbe is satisfied by *postgres.Pool.
type DatabaseProbe interface {
	Ping(ctx context.Context) error
	Stats() postgres.PoolStats
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	db DatabaseProbe
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db DatabaseProbe) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe (is the service ready to accept traffic?).
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"checks": map[string]string{
				"database": "unhealthy: " + err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": map[string]string{
			"database": "healthy",
		},
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":      "salestrack",
		"version":  Version,
		"database": h.db.Stats(),
	})
}
