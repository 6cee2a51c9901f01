// Package shortener produces candidate short codes. Uniqueness is enforced
// by the store; callers retry on collision.
package shortener

import (
	"context"
	"fmt"

	"shortlinks/internal/config"
)

type Generator interface {
	Generate(ctx context.Context) (string, error)
}

// SequenceSource hands out monotonically increasing ids for sequential codes.
type SequenceSource interface {
	NextID(ctx context.Context) (uint64, error)
}

func New(cfg *config.ShortenerConfig, seq SequenceSource) (Generator, error) {
	switch cfg.Strategy {
	case config.StrategyRandom:
		return NewRandom(cfg.Length)
	case config.StrategySequential:
		return NewSequential(seq, cfg.Length)
	default:
		return nil, fmt.Errorf("unknown short code strategy %q", cfg.Strategy)
	}
}
