package middleware

import (
	"net/http"
	"time"

	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// unmatchedRoute labels requests that hit no route, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latencies per route template.
type MetricsMiddleware struct {
	metrics *metrics.HTTPMetrics
	skip    string
}

// NewMetricsMiddleware returns nil when metrics are disabled.
func NewMetricsMiddleware(m *metrics.HTTPMetrics, metricsPath string) *MetricsMiddleware {
	if m == nil {
		return nil
	}

	return &MetricsMiddleware{metrics: m, skip: metricsPath}
}

// Handle observes the request after the handler and the error handler have run.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Path() == m.skip {
			return next(c)
		}

		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The central error handler has not written yet; infer the code it will use.
			status = http.StatusInternalServerError
			var httpErr *echo.HTTPError
			var coder interface{ HTTPCode() int }
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			} else if errors.As(err, &coder) {
				status = coder.HTTPCode()
			}
		}

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		m.metrics.Observe(c.Request().Method, route, status, time.Since(start))

		return err
	}
}
