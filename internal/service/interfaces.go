package service

//go:generate go tool mockery

import (
	"context"

	"github.com/google/uuid"

	"shortlinks/internal/domain"
)

type Repository interface {
	CreateLink(ctx context.Context, link *domain.Link) error
	FindLinkByShortCode(ctx context.Context, shortCode string) (*domain.Link, error)
	FindLinkByID(ctx context.Context, id uuid.UUID) (*domain.Link, error)
	ListLinksByOwner(ctx context.Context, ownerID int64) ([]domain.Link, error)
	DeleteLink(ctx context.Context, id uuid.UUID) error
	IncrementClicks(ctx context.Context, id uuid.UUID) error
	ListClicks(ctx context.Context, linkID uuid.UUID) ([]domain.Click, error)
}

type Cache interface {
	Get(shortCode string) (domain.Link, bool)
	Set(link domain.Link)
	Delete(shortCode string)
}

type CodeGenerator interface {
	Generate(ctx context.Context) (string, error)
}

type ClickRecorder interface {
	Record(click domain.Click)
}
