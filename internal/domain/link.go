package domain

import (
	"time"

	"github.com/google/uuid"
)

type Link struct {
	ID          uuid.UUID  `json:"id"`
	OriginalURL string     `json:"originalUrl"`
	ShortCode   string     `json:"shortCode"`
	UserID      int64      `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	Clicks      int64      `json:"clicks"`
}

// Expired reports whether the link had an expiry strictly before now.
func (l *Link) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && now.After(*l.ExpiresAt)
}

type NewLink struct {
	OriginalURL string
	CustomAlias string
	ExpiresAt   *time.Time
	OwnerID     int64
}

type CreateLinkRequest struct {
	OriginalURL string `json:"originalUrl"`
	CustomAlias string `json:"customAlias" validate:"omitempty,max=64,shortcode,notreserved"`
	ExpiresAt   string `json:"expiresAt"`
}

type DeleteLinkResponse struct {
	Message string `json:"message"`
}
