// Package clicklog persists click events off the request path.
package clicklog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"shortlinks/internal/config"
	"shortlinks/internal/domain"
	"shortlinks/internal/metrics"
)

const (
	writeTimeout   = 5 * time.Second
	errorQueueSize = 16
)

type ClickWriter interface {
	InsertClicks(ctx context.Context, clicks []domain.Click) error
}

// Recorder buffers clicks in memory and writes them in batches from a
// single goroutine. Write failures are reported on a separate channel and
// never reach the caller of Record.
type Recorder struct {
	writer       ClickWriter
	metrics      *metrics.Metrics
	logger       zerolog.Logger
	cfg          *config.ClicksConfig
	clickCh      chan domain.Click
	errCh        chan error
	flushWG      sync.WaitGroup
	reportWG     sync.WaitGroup
	startOnce    sync.Once
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(writer ClickWriter, cfg *config.ClicksConfig, m *metrics.Metrics, logger zerolog.Logger) *Recorder {
	return &Recorder{
		writer:     writer,
		metrics:    m,
		logger:     logger.With().Str("component", "clicklog").Logger(),
		cfg:        cfg,
		clickCh:    make(chan domain.Click, cfg.BufferSize),
		errCh:      make(chan error, errorQueueSize),
		shutdownCh: make(chan struct{}),
	}
}

// Record enqueues a click without blocking. When the buffer is full, or the
// recorder is closed, the click is dropped.
func (r *Recorder) Record(c domain.Click) {
	select {
	case <-r.shutdownCh:
		r.metrics.ClicksDropped.Inc()
		r.logger.Warn().Str("link_id", c.LinkID.String()).Msg("click recorder closed, dropping click")
		return
	default:
	}

	select {
	case r.clickCh <- c:
		r.metrics.ClicksEnqueued.Inc()
	default:
		r.metrics.ClicksDropped.Inc()
		r.logger.Warn().Str("link_id", c.LinkID.String()).Msg("click buffer full, dropping click")
	}
}

// Start launches the flush loop. It runs until Close, independent of any
// request or signal context, so clicks from requests still draining during
// server shutdown are written. Start after Close does nothing.
func (r *Recorder) Start() {
	r.startOnce.Do(func() {
		r.reportWG.Add(1)
		go r.reportErrors()

		r.flushWG.Add(1)
		go r.flushClicks()

		r.logger.Info().
			Int("buffer_size", r.cfg.BufferSize).
			Int("flush_threshold", r.cfg.FlushThreshold).
			Dur("flush_interval", r.cfg.FlushInterval).
			Msg("click recorder started")
	})
}

// Close stops the flush loop after writing everything still buffered. It is
// safe to call more than once.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		started := true
		r.startOnce.Do(func() { started = false })

		close(r.shutdownCh)
		if started {
			r.flushWG.Wait()
		} else {
			r.drainAndFlush(make([]domain.Click, 0, r.cfg.FlushThreshold))
		}
		close(r.errCh)
		r.reportWG.Wait()
		if !started {
			for err := range r.errCh {
				r.logger.Error().Err(err).Msg("click batch write failed")
			}
		}
	})
}

func (r *Recorder) flushClicks() {
	defer r.flushWG.Done()
	ticker := time.NewTicker(r.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]domain.Click, 0, r.cfg.FlushThreshold)

	for {
		select {
		case <-r.shutdownCh:
			r.drainAndFlush(batch)
			return
		case c := <-r.clickCh:
			batch = append(batch, c)
			if len(batch) >= r.cfg.FlushThreshold {
				r.writeBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				r.writeBatch(batch)
				batch = batch[:0]
			}
		}
	}
}

func (r *Recorder) drainAndFlush(batch []domain.Click) {
	for {
		select {
		case c := <-r.clickCh:
			batch = append(batch, c)
			if len(batch) >= r.cfg.FlushThreshold {
				r.writeBatch(batch)
				batch = batch[:0]
			}
		default:
			r.writeBatch(batch)
			return
		}
	}
}

func (r *Recorder) writeBatch(batch []domain.Click) {
	if len(batch) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := r.writer.InsertClicks(ctx, batch); err != nil {
		r.reportError(fmt.Errorf("failed to write %d clicks: %w", len(batch), err))
		return
	}
	r.metrics.ClicksWritten.Add(float64(len(batch)))
}

func (r *Recorder) reportError(err error) {
	r.metrics.ClickWriteErrors.Inc()
	select {
	case r.errCh <- err:
	default:
		r.logger.Error().Err(err).Msg("click error queue full")
	}
}

func (r *Recorder) reportErrors() {
	defer r.reportWG.Done()
	for err := range r.errCh {
		r.logger.Error().Err(err).Msg("click batch write failed")
	}
}
