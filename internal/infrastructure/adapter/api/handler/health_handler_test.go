package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/logger"
)

type stubProbe struct {
	err   error
	stats database.PoolStats
}

func (p stubProbe) Ping(ctx context.Context) error { return p.err }
func (p stubProbe) Stats() database.PoolStats      { return p.stats }

func TestHealthHandler(t *testing.T) {
	t.Run("reports ok with pool stats", func(t *testing.T) {
		h := NewHealthHandler(stubProbe{stats: database.PoolStats{OpenConnections: 1, MaxOpenConnections: 1}}, logger.NewNoopLogger())

		w := serve(t, func(r *gin.Engine) { r.GET("/health", h.Health) }, "/health")

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
		pool, ok := body["pool"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 1, pool["max_open_connections"])
	})

	t.Run("reports unavailable when the store is down", func(t *testing.T) {
		h := NewHealthHandler(stubProbe{err: errors.New("sql: database is closed")}, logger.NewNoopLogger())

		w := serve(t, func(r *gin.Engine) { r.GET("/health", h.Health) }, "/health")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var body dto.HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "unreachable", body.Database)
	})

	t.Run("works against a real store", func(t *testing.T) {
		testDB := database.NewTestDBManager(t, logger.NewNoopLogger())
		h := NewHealthHandler(testDB.Manager, logger.NewNoopLogger())

		w := serve(t, func(r *gin.Engine) { r.GET("/health", h.Health) }, "/health")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
