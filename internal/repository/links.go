package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"shortlinks/internal/domain"
)

const linkColumns = "id, short_code, original_url, user_id, created_at, expires_at, clicks"

func scanLink(row pgx.Row) (*domain.Link, error) {
	var l domain.Link
	if err := row.Scan(&l.ID, &l.ShortCode, &l.OriginalURL, &l.UserID, &l.CreatedAt, &l.ExpiresAt, &l.Clicks); err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateLink inserts link as-is. A short code collision yields
// ErrDuplicateShortCode.
func (r *Repository) CreateLink(ctx context.Context, link *domain.Link) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO links (`+linkColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		link.ID, link.ShortCode, link.OriginalURL, link.UserID, link.CreatedAt, link.ExpiresAt, link.Clicks,
	)
	if err != nil {
		return fmt.Errorf("failed to insert link: %w", translate(err))
	}
	return nil
}

func (r *Repository) FindLinkByShortCode(ctx context.Context, shortCode string) (*domain.Link, error) {
	link, err := scanLink(r.pool.QueryRow(ctx,
		`SELECT `+linkColumns+` FROM links WHERE short_code = $1`, shortCode))
	if err != nil {
		return nil, fmt.Errorf("failed to find link by short code: %w", translate(err))
	}
	return link, nil
}

func (r *Repository) FindLinkByID(ctx context.Context, id uuid.UUID) (*domain.Link, error) {
	link, err := scanLink(r.pool.QueryRow(ctx,
		`SELECT `+linkColumns+` FROM links WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find link by id: %w", translate(err))
	}
	return link, nil
}

// ListLinksByOwner returns the owner's links, newest first.
func (r *Repository) ListLinksByOwner(ctx context.Context, ownerID int64) ([]domain.Link, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+linkColumns+` FROM links WHERE user_id = $1 ORDER BY created_at DESC, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Link, error) {
		l, err := scanLink(row)
		if err != nil {
			return domain.Link{}, err
		}
		return *l, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan links: %w", err)
	}
	return links, nil
}

// DeleteLink removes the link and its clicks in one transaction.
func (r *Repository) DeleteLink(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM clicks WHERE link_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete clicks: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

// IncrementClicks bumps the counter in a single statement so concurrent
// redirects never lose an update.
func (r *Repository) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE links SET clicks = clicks + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// NextID draws the next value of the short-code sequence.
func (r *Repository) NextID(ctx context.Context) (uint64, error) {
	var next int64
	if err := r.pool.QueryRow(ctx, `SELECT nextval('link_code_seq')`).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to get next id: %w", err)
	}
	return uint64(next), nil
}
