package middleware

import (
	"cmp"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shortlinks/internal/metrics"
)

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics reports every request to recorder, labelled by route template.
// Requests whose route is in skipRoutes (e.g. the scrape endpoint) are not
// recorded.
func Metrics(recorder HTTPRecorder, skipRoutes ...string) echo.MiddlewareFunc {
	skip := make(map[string]bool, len(skipRoutes))
	for _, r := range skipRoutes {
		skip[r] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skip[c.Path()] {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			recorder.RecordHTTP(metrics.HTTPMetric{
				Method:     c.Request().Method,
				Path:       cmp.Or(c.Path(), "/"),
				StatusCode: responseStatus(c, err),
				Duration:   time.Since(start),
			})

			return err
		}
	}
}

// responseStatus is the status the client will see. A returned error has not
// been written yet, so it is resolved the way echo's error handler does.
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
