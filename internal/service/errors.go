package service

import "errors"

var (
	ErrLinkNotFound       = errors.New("link not found")
	ErrForbidden          = errors.New("not authorized")
	ErrLinkExpired        = errors.New("link has expired")
	ErrAliasTaken         = errors.New("custom alias already in use")
	ErrCodeSpaceExhausted = errors.New("could not allocate short code")
)
