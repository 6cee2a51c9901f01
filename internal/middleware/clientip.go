package middleware

import "github.com/labstack/echo/v4"

// IPExtractor decides how c.RealIP resolves the client address, which keys
// the rate limiter and is stored on clicks. Forwarding headers are honoured
// only when trustProxy is set, and then only from private-range peers.
func IPExtractor(trustProxy bool) echo.IPExtractor {
	if trustProxy {
		return echo.ExtractIPFromXFFHeader()
	}
	return echo.ExtractIPDirect()
}
