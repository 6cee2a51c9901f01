package shortener

import (
	"context"
	"errors"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet is the URL-safe character set used for random codes.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_-"

type Random struct {
	length int
}

func NewRandom(length int) (*Random, error) {
	if length <= 0 {
		return nil, errors.New("short code length must be positive")
	}
	return &Random{length: length}, nil
}

func (r *Random) Generate(_ context.Context) (string, error) {
	return gonanoid.Generate(Alphabet, r.length)
}
