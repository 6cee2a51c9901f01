package handler

//go:generate go tool mockery

import (
	"context"

	"github.com/google/uuid"

	"shortlinks/internal/auth"
	"shortlinks/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*auth.LoginResult, error)
	VerifyToken(token string) auth.VerifyResult
}

type LinkService interface {
	CreateLink(ctx context.Context, in domain.NewLink) (*domain.Link, error)
	ListLinks(ctx context.Context, ownerID int64) ([]domain.Link, error)
	DeleteLink(ctx context.Context, id uuid.UUID, ownerID int64) error
}

type RedirectService interface {
	Resolve(ctx context.Context, shortCode string, meta domain.RequestMeta) (string, error)
}

type AnalyticsService interface {
	GetAnalytics(ctx context.Context, id uuid.UUID, ownerID int64) (*domain.Analytics, error)
}

type URLValidator interface {
	ValidateURL(url string) error
}

type RedirectRecorder interface {
	RecordRedirect(outcome string)
}
