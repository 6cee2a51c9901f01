package validation

import "errors"

var (
	ErrEmptyURL            = errors.New("url is required")
	ErrInvalidURLFormat    = errors.New("invalid url format")
	ErrUnsafeProtocol      = errors.New("url protocol not allowed")
	ErrURLTooLong          = errors.New("url exceeds maximum length")
	ErrPrivateIPNotAllowed = errors.New("private ip addresses not allowed")
	ErrInvalidAlias        = errors.New("invalid custom alias")
	ErrReservedAlias       = errors.New("custom alias is reserved")
	ErrInvalidExpiry       = errors.New("invalid expiration date")
	ErrMissingField        = errors.New("email and password are required")
)
