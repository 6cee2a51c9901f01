package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shortlinks/internal/metrics"
	"shortlinks/internal/middleware"
	"shortlinks/internal/middleware/mocks"
)

func TestMetrics_SuccessfulRequest(t *testing.T) {
	rec := mocks.NewMockHTTPRecorder(t)

	var capturedMetric metrics.HTTPMetric
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m metrics.HTTPMetric) {
			capturedMetric = m
		}).Return().Once()

	mw := middleware.Metrics(rec)

	e := echo.New()
	e.Use(mw)
	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, http.MethodGet, capturedMetric.Method)
	assert.Equal(t, "/test", capturedMetric.Path)
	assert.Equal(t, http.StatusOK, capturedMetric.StatusCode)
	assert.GreaterOrEqual(t, capturedMetric.Duration, time.Duration(0))
}

func TestMetrics_RequestWithError(t *testing.T) {
	rec := mocks.NewMockHTTPRecorder(t)

	var capturedMetric metrics.HTTPMetric
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m metrics.HTTPMetric) {
			capturedMetric = m
		}).Return().Once()

	mw := middleware.Metrics(rec)

	e := echo.New()
	e.Use(mw)
	e.GET("/error", func(c echo.Context) error {
		return errors.New("something went wrong")
	})

	req := httptest.NewRequest(http.MethodGet, "/error", nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, capturedMetric.StatusCode)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestMetrics_HTTPError(t *testing.T) {
	rec := mocks.NewMockHTTPRecorder(t)

	var capturedMetric metrics.HTTPMetric
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m metrics.HTTPMetric) {
			capturedMetric = m
		}).Return().Once()

	mw := middleware.Metrics(rec)

	e := echo.New()
	e.Use(mw)
	e.GET("/http-error", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	})

	req := httptest.NewRequest(http.MethodGet, "/http-error", nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, capturedMetric.StatusCode)
}

func TestMetrics_Duration(t *testing.T) {
	rec := mocks.NewMockHTTPRecorder(t)

	var capturedMetric metrics.HTTPMetric
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m metrics.HTTPMetric) {
			capturedMetric = m
		}).Return().Once()

	mw := middleware.Metrics(rec)

	e := echo.New()
	e.Use(mw)
	e.GET("/slow", func(c echo.Context) error {
		time.Sleep(5 * time.Millisecond)
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/slow", nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.GreaterOrEqual(t, capturedMetric.Duration, 5*time.Millisecond)
	assert.Less(t, capturedMetric.Duration, time.Second)
}

func TestMetrics_DifferentMethods(t *testing.T) {
	methods := []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

	for _, method := range methods {
		t.Run(method, func(t *testing.T) {
			rec := mocks.NewMockHTTPRecorder(t)

			var capturedMetric metrics.HTTPMetric
			rec.EXPECT().RecordHTTP(mock.Anything).
				Run(func(m metrics.HTTPMetric) {
					capturedMetric = m
				}).Return().Once()

			mw := middleware.Metrics(rec)

			e := echo.New()
			e.Use(mw)
			e.Add(method, "/test", func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			})

			req := httptest.NewRequest(method, "/test", nil)
			resp := httptest.NewRecorder()
			e.ServeHTTP(resp, req)

			require.NotZero(t, capturedMetric.Method)
			assert.Equal(t, method, capturedMetric.Method)
		})
	}
}

func TestMetrics_PathParameter(t *testing.T) {
	rec := mocks.NewMockHTTPRecorder(t)

	var capturedMetric metrics.HTTPMetric
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m metrics.HTTPMetric) {
			capturedMetric = m
		}).Return().Once()

	mw := middleware.Metrics(rec)

	e := echo.New()
	e.Use(mw)
	e.GET("/:code", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	// Path should be the template, not the actual value
	assert.Equal(t, "/:code", capturedMetric.Path)
}

func TestMetrics_SkipsConfiguredRoutes(t *testing.T) {
	rec := mocks.NewMockHTTPRecorder(t)

	mw := middleware.Metrics(rec, "/metrics")

	e := echo.New()
	e.Use(mw)
	e.GET("/metrics", func(c echo.Context) error {
		return c.String(http.StatusOK, "# scrape")
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	rec.AssertNotCalled(t, "RecordHTTP", mock.Anything)
}
