// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shortlinks"

type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	Redirects    *prometheus.CounterVec

	ClicksEnqueued   prometheus.Counter
	ClicksDropped    prometheus.Counter
	ClicksWritten    prometheus.Counter
	ClickWriteErrors prometheus.Counter

	PoolAcquired  prometheus.Gauge
	PoolIdle      prometheus.Gauge
	PoolTotal     prometheus.Gauge
	PoolMax       prometheus.Gauge
	CacheHits     prometheus.Gauge
	CacheMisses   prometheus.Gauge
	CacheHitRatio prometheus.Gauge
	Goroutines    prometheus.Gauge
	HeapAllocMB   prometheus.Gauge
}

// New registers all collectors on reg. Pass a fresh prometheus.Registry in
// tests to avoid duplicate registration panics.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	gauge := func(name, help string) prometheus.Gauge {
		return f.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
	}
	counter := func(name, help string) prometheus.Counter {
		return f.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help})
	}

	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"method", "path"}),
		Redirects: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redirects_total",
			Help:      "Short link resolutions by outcome.",
		}, []string{"outcome"}),

		ClicksEnqueued:   counter("clicks_enqueued_total", "Click events accepted by the recorder."),
		ClicksDropped:    counter("clicks_dropped_total", "Click events dropped because the buffer was full."),
		ClicksWritten:    counter("clicks_written_total", "Click events persisted."),
		ClickWriteErrors: counter("click_write_errors_total", "Failed click batch writes."),

		PoolAcquired:  gauge("db_pool_acquired_conns", "Connections currently in use."),
		PoolIdle:      gauge("db_pool_idle_conns", "Idle connections."),
		PoolTotal:     gauge("db_pool_total_conns", "Total open connections."),
		PoolMax:       gauge("db_pool_max_conns", "Configured connection limit."),
		CacheHits:     gauge("cache_hits", "Link cache hits since start."),
		CacheMisses:   gauge("cache_misses", "Link cache misses since start."),
		CacheHitRatio: gauge("cache_hit_ratio", "Link cache hit ratio."),
		Goroutines:    gauge("goroutines", "Live goroutines."),
		HeapAllocMB:   gauge("heap_alloc_mb", "Heap in use, MiB."),
	}
}

func (m *Metrics) RecordHTTP(h HTTPMetric) {
	m.HTTPRequests.WithLabelValues(h.Method, h.Path, strconv.Itoa(h.StatusCode)).Inc()
	m.HTTPDuration.WithLabelValues(h.Method, h.Path).Observe(h.Duration.Seconds())
}

func (m *Metrics) RecordInfra(i InfraMetric) {
	m.PoolAcquired.Set(float64(i.PoolAcquired))
	m.PoolIdle.Set(float64(i.PoolIdle))
	m.PoolTotal.Set(float64(i.PoolTotal))
	m.PoolMax.Set(float64(i.PoolMax))
	m.CacheHits.Set(float64(i.CacheHits))
	m.CacheMisses.Set(float64(i.CacheMisses))
	m.CacheHitRatio.Set(i.CacheHitRatio)
	m.Goroutines.Set(float64(i.Goroutines))
	m.HeapAllocMB.Set(i.HeapAllocMB)
}

func (m *Metrics) RecordRedirect(outcome string) {
	m.Redirects.WithLabelValues(outcome).Inc()
}

// CollectInfra calls sample every interval and records the result until ctx
// is done.
func (m *Metrics) CollectInfra(ctx context.Context, interval time.Duration, sample func() InfraMetric) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.RecordInfra(sample())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.RecordInfra(sample())
		}
	}
}
