package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shortlinks/internal/domain"
	"shortlinks/internal/repository"
)

type LinkService struct {
	repo        Repository
	cache       Cache
	codes       CodeGenerator
	maxAttempts int
}

func NewLinkService(repo Repository, cache Cache, codes CodeGenerator, maxAttempts int) *LinkService {
	return &LinkService{
		repo:        repo,
		cache:       cache,
		codes:       codes,
		maxAttempts: max(1, maxAttempts),
	}
}

// CreateLink stores a new link. A custom alias is inserted once and fails
// with ErrAliasTaken when already used; generated codes are retried on
// collision up to maxAttempts times.
func (s *LinkService) CreateLink(ctx context.Context, in domain.NewLink) (*domain.Link, error) {
	link := &domain.Link{
		ID:          uuid.New(),
		OriginalURL: in.OriginalURL,
		UserID:      in.OwnerID,
		CreatedAt:   time.Now().UTC(),
		ExpiresAt:   in.ExpiresAt,
	}

	if in.CustomAlias != "" {
		link.ShortCode = in.CustomAlias
		if err := s.repo.CreateLink(ctx, link); err != nil {
			if errors.Is(err, repository.ErrDuplicateShortCode) {
				return nil, ErrAliasTaken
			}
			return nil, fmt.Errorf("failed to create link: %w", err)
		}
		s.cache.Set(*link)
		return link, nil
	}

	for range s.maxAttempts {
		code, err := s.codes.Generate(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to generate short code: %w", err)
		}

		link.ShortCode = code
		err = s.repo.CreateLink(ctx, link)
		if err == nil {
			s.cache.Set(*link)
			return link, nil
		}
		if !errors.Is(err, repository.ErrDuplicateShortCode) {
			return nil, fmt.Errorf("failed to create link: %w", err)
		}
	}

	return nil, ErrCodeSpaceExhausted
}

// ListLinks returns the owner's links, newest first. It never returns nil.
func (s *LinkService) ListLinks(ctx context.Context, ownerID int64) ([]domain.Link, error) {
	links, err := s.repo.ListLinksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	if links == nil {
		links = []domain.Link{}
	}
	return links, nil
}

func (s *LinkService) DeleteLink(ctx context.Context, id uuid.UUID, ownerID int64) error {
	link, err := ownedLink(ctx, s.repo, id, ownerID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteLink(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("failed to delete link: %w", err)
	}

	s.cache.Delete(link.ShortCode)
	return nil
}

func ownedLink(ctx context.Context, repo Repository, id uuid.UUID, ownerID int64) (*domain.Link, error) {
	link, err := repo.FindLinkByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	if link.UserID != ownerID {
		return nil, ErrForbidden
	}
	return link, nil
}
