package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/airport/internal/app/models/dto"
	"github.com/yigit/airport/internal/middleware"
	"github.com/yigit/airport/internal/pkg/apperrors"
	"github.com/yigit/airport/internal/pkg/metrics"
)

// pingTimeout bounds the storage probe of the health check
const pingTimeout = 2 * time.Second

// Pinger is implemented by every storage backend
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports whether the storage backend is reachable
type HealthController struct {
	store   Pinger
	driver  string
	metrics *metrics.Registry
}

// NewHealthController creates a new HealthController. reg may be nil.
func NewHealthController(store Pinger, driver string, reg *metrics.Registry) *HealthController {
	return &HealthController{
		store:   store,
		driver:  driver,
		metrics: reg,
	}
}

// Health pings the storage backend
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), pingTimeout)
	defer cancel()

	err := c.store.Ping(pingCtx)
	c.record(err == nil)
	if err != nil {
		middleware.HandleAPIError(ctx, fmt.Errorf("%w: %s: %v", apperrors.ErrStorageUnavailable, c.driver, err))
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Storage: c.driver,
	})
}

func (c *HealthController) record(up bool) {
	if c.metrics == nil {
		return
	}
	value := 0.0
	if up {
		value = 1
	}
	c.metrics.StorageUp.WithLabelValues(c.driver).Set(value)
}
