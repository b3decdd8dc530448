package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/points-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/database"
)

const healthPingTimeout = 2 * time.Second

// StoreProbe reports the state of the store handle
type StoreProbe interface {
	Ping(ctx context.Context) error
	Stats() database.PoolStats
}

// HealthHandler serves the liveness probe
type HealthHandler struct {
	store  StoreProbe
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(store StoreProbe, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: logger,
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "degraded",
			Database: "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Database: "up",
		Pool:     h.store.Stats(),
	})
}
