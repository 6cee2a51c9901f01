package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shortlinks/internal/auth"
	"shortlinks/internal/service"
	"shortlinks/internal/validation"
)

type clientError struct {
	err     error
	status  int
	message string
}

// clientErrors maps domain sentinels to the status and message clients see.
// Anything not listed is a 500 with a generic body.
var clientErrors = []clientError{
	{validation.ErrEmptyURL, http.StatusBadRequest, "URL is required"},
	{validation.ErrInvalidURLFormat, http.StatusBadRequest, "Invalid URL format"},
	{validation.ErrUnsafeProtocol, http.StatusBadRequest, "URL protocol not allowed"},
	{validation.ErrURLTooLong, http.StatusBadRequest, "URL exceeds maximum length"},
	{validation.ErrPrivateIPNotAllowed, http.StatusBadRequest, "Private IP addresses not allowed"},
	{validation.ErrInvalidAlias, http.StatusBadRequest, "Invalid custom alias"},
	{validation.ErrReservedAlias, http.StatusBadRequest, "Custom alias is reserved"},
	{validation.ErrInvalidExpiry, http.StatusBadRequest, "Invalid expiration date"},
	{validation.ErrMissingField, http.StatusBadRequest, "Email and password are required"},
	{service.ErrAliasTaken, http.StatusBadRequest, "Custom alias already in use"},
	{auth.ErrUserNotFound, http.StatusBadRequest, "User not found"},
	{auth.ErrInvalidPassword, http.StatusBadRequest, "Invalid password"},
	{service.ErrLinkNotFound, http.StatusNotFound, msgLinkNotFound},
	{service.ErrForbidden, http.StatusForbidden, "Not authorized"},
	{service.ErrLinkExpired, http.StatusGone, msgLinkExpired},
	{service.ErrCodeSpaceExhausted, http.StatusInternalServerError, "Could not allocate short code"},
}

func lookupClientError(err error) (clientError, bool) {
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			return ce, true
		}
	}
	return clientError{}, false
}

// respondError writes {error} with the mapped status. Server-side failures
// are logged; unknown ones are hidden behind a generic message.
func (h *Handler) respondError(c echo.Context, err error) error {
	ce, ok := lookupClientError(err)
	if !ok {
		ce = clientError{err: err, status: http.StatusInternalServerError, message: errInternal.Error}
	}

	if ce.status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).
			Str("method", c.Request().Method).
			Str("route", c.Path()).
			Msg("request failed")
	}
	return c.JSON(ce.status, errorResponse{Error: ce.message})
}
