package middleware

import (
	"time"

	"boxtrack/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latencies per route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
	skip    string
}

// NewMetricsMiddleware creates the middleware; requests to skipPath are not recorded.
func NewMetricsMiddleware(m *metrics.Metrics, skipPath string) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m, skip: skipPath}
}

// Handle wraps next with timing.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Path()
		if path == m.skip {
			return next(c)
		}
		if path == "" {
			path = "unmatched"
		}

		m.metrics.HTTPRequestsInFlight.Inc()
		defer m.metrics.HTTPRequestsInFlight.Dec()

		start := time.Now()
		err := next(c)
		if err != nil {
			// Let echo render the error now so the recorded status is final.
			c.Error(err)
		}

		m.metrics.RecordHTTPRequest(c.Request().Method, path, c.Response().Status, time.Since(start))

		return nil
	}
}
