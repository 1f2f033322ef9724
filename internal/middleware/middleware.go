package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/airport/internal/pkg/logger"
	"github.com/yigit/airport/internal/pkg/metrics"
)

// RequestLogger logs every request once it has been served
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("Request served")
	}
}

// Metrics records request counts, latency and in-flight requests. Routes
// are labelled by their pattern so ids do not explode the label space.
func Metrics(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		reg.HTTPRequestsInFlight.Inc()
		start := time.Now()

		c.Next()

		reg.HTTPRequestsInFlight.Dec()
		reg.HTTPRequestDuration.WithLabelValues(endpoint, c.Request.Method).Observe(time.Since(start).Seconds())
		reg.HTTPRequestsTotal.WithLabelValues(endpoint, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
