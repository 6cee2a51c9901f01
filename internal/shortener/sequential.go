package shortener

import (
	"context"
	"errors"
	"fmt"

	"github.com/sqids/sqids-go"
)

type Sequential struct {
	sqids *sqids.Sqids
	seq   SequenceSource
}

// NewSequential encodes ids drawn from seq with sqids, padding codes to at
// least minLength characters.
func NewSequential(seq SequenceSource, minLength int) (*Sequential, error) {
	if seq == nil {
		return nil, errors.New("sequential short codes need a sequence source")
	}
	s, err := sqids.New(sqids.Options{
		MinLength: uint8(minLength),
	})
	if err != nil {
		return nil, err
	}
	return &Sequential{sqids: s, seq: seq}, nil
}

func (s *Sequential) Generate(ctx context.Context) (string, error) {
	id, err := s.seq.NextID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to draw sequence id: %w", err)
	}
	return s.Encode(id)
}

func (s *Sequential) Encode(id uint64) (string, error) {
	return s.sqids.Encode([]uint64{id})
}
