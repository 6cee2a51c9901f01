package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"shortlinks/internal/domain"
)

var clickColumns = []string{"link_id", "clicked_at", "ip", "browser", "os", "device", "referrer"}

// InsertClicks writes a batch with COPY. When a link was deleted between the
// redirect and the flush the COPY fails on the foreign key; the batch is then
// retried row by row, skipping clicks whose link is gone.
func (r *Repository) InsertClicks(ctx context.Context, clicks []domain.Click) error {
	if len(clicks) == 0 {
		return nil
	}

	rows := make([][]any, len(clicks))
	for i, c := range clicks {
		rows[i] = []any{c.LinkID, c.Timestamp, c.IP, c.Browser, c.OS, string(c.Device), c.Referrer}
	}

	_, err := r.pool.CopyFrom(ctx, pgx.Identifier{"clicks"}, clickColumns, pgx.CopyFromRows(rows))
	if err == nil {
		return nil
	}
	if !isPgError(err, pgForeignKeyViolation) {
		return fmt.Errorf("failed to copy clicks: %w", err)
	}

	r.logger.Debug().Int("batch_size", len(clicks)).Msg("click batch references deleted link, inserting row by row")
	return r.insertClicksGuarded(ctx, clicks)
}

func (r *Repository) insertClicksGuarded(ctx context.Context, clicks []domain.Click) error {
	batch := &pgx.Batch{}
	for _, c := range clicks {
		batch.Queue(
			`INSERT INTO clicks (link_id, clicked_at, ip, browser, os, device, referrer)
			 SELECT $1, $2, $3, $4, $5, $6, $7
			 WHERE EXISTS (SELECT 1 FROM links WHERE id = $1)`,
			c.LinkID, c.Timestamp, c.IP, c.Browser, c.OS, string(c.Device), c.Referrer,
		)
	}

	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert clicks: %w", err)
	}
	return nil
}

func (r *Repository) ListClicks(ctx context.Context, linkID uuid.UUID) ([]domain.Click, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT link_id, clicked_at, ip, browser, os, device, referrer
		 FROM clicks WHERE link_id = $1 ORDER BY clicked_at`, linkID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clicks: %w", err)
	}

	clicks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Click, error) {
		var c domain.Click
		var device string
		err := row.Scan(&c.LinkID, &c.Timestamp, &c.IP, &c.Browser, &c.OS, &device, &c.Referrer)
		c.Device = domain.DeviceClass(device)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clicks: %w", err)
	}
	return clicks, nil
}
