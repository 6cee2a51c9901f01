package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"shortlinks/internal/config"
)

const (
	bypassHeader = "X-Rate-Limit-Bypass"
	retryAfter   = 1
)

type rateLimitResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}

var (
	respRateLimited   = rateLimitResponse{Error: "rate limit exceeded", RetryAfter: retryAfter}
	respLimiterFailed = map[string]string{"error": "internal server error"}
)

// RateLimit applies a token bucket per client IP, as resolved by the echo
// IPExtractor. Requests carrying the configured bypass secret are not
// counted. A disabled config yields a pass-through middleware.
func RateLimit(cfg *config.RateLimitConfig, logger zerolog.Logger) echo.MiddlewareFunc {
	if !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	logger = logger.With().Str("component", "ratelimit").Logger()

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
		}),
		Skipper: hasBypassSecret(cfg.BypassSecret),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, clientIP string, _ error) error {
			logger.Warn().Str("ip", clientIP).Str("route", c.Path()).Msg("rate limit exceeded")
			c.Response().Header().Set("Retry-After", "1")
			return c.JSON(http.StatusTooManyRequests, respRateLimited)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error().Err(err).Msg("rate limiter failed")
			return c.JSON(http.StatusInternalServerError, respLimiterFailed)
		},
	})
}

// hasBypassSecret matches the bypass header in constant time. An empty
// secret disables the bypass.
func hasBypassSecret(secret string) middleware.Skipper {
	if secret == "" {
		return middleware.DefaultSkipper
	}
	want := []byte(secret)
	return func(c echo.Context) bool {
		got := []byte(c.Request().Header.Get(bypassHeader))
		return subtle.ConstantTimeCompare(got, want) == 1
	}
}
