package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"time"

	"shortlinks/internal/clientinfo"
	"shortlinks/internal/domain"
	"shortlinks/internal/repository"
)

type RedirectService struct {
	repo     Repository
	cache    Cache
	recorder ClickRecorder
}

func NewRedirectService(repo Repository, cache Cache, recorder ClickRecorder) *RedirectService {
	return &RedirectService{
		repo:     repo,
		cache:    cache,
		recorder: recorder,
	}
}

// Resolve returns the destination for shortCode, counting the visit and
// queueing a click event. Expired links are reported without counting.
func (s *RedirectService) Resolve(ctx context.Context, shortCode string, meta domain.RequestMeta) (string, error) {
	link, err := s.lookup(ctx, shortCode)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	if link.Expired(now) {
		return "", ErrLinkExpired
	}

	if err := s.repo.IncrementClicks(ctx, link.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.cache.Delete(shortCode)
			return "", ErrLinkNotFound
		}
		return "", fmt.Errorf("failed to count click: %w", err)
	}

	info := clientinfo.Parse(meta.UserAgent)
	s.recorder.Record(domain.Click{
		LinkID:    link.ID,
		Timestamp: now,
		IP:        meta.IP,
		Browser:   info.Browser,
		OS:        info.OS,
		Device:    info.Device,
		Referrer:  cmp.Or(meta.Referrer, domain.DirectReferrer),
	})

	return link.OriginalURL, nil
}

func (s *RedirectService) lookup(ctx context.Context, shortCode string) (domain.Link, error) {
	if link, ok := s.cache.Get(shortCode); ok {
		return link, nil
	}

	link, err := s.repo.FindLinkByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Link{}, ErrLinkNotFound
		}
		return domain.Link{}, fmt.Errorf("failed to find link: %w", err)
	}

	s.cache.Set(*link)
	return *link, nil
}
