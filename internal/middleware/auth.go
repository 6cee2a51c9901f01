package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const userIDKey = "userID"

type TokenVerifier interface {
	Verify(token string) (int64, error)
}

var (
	errTokenMissing = map[string]string{"error": "Authorization token required"}
	errTokenInvalid = map[string]string{"error": "Invalid or expired token"}
)

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's user id for UserID.
func RequireAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return c.JSON(http.StatusUnauthorized, errTokenMissing)
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				return c.JSON(http.StatusForbidden, errTokenInvalid)
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserID returns the id stored by RequireAuth.
func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(userIDKey).(int64)
	return id, ok
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
