package metrics

import "time"

// HTTPMetric is one served request. Path is the route template so label
// cardinality stays bounded.
type HTTPMetric struct {
	Method     string
	Path       string
	StatusCode int
	Duration   time.Duration
}

// InfraMetric is a point-in-time sample of pool, cache and runtime state.
type InfraMetric struct {
	PoolAcquired  int
	PoolIdle      int
	PoolTotal     int
	PoolMax       int
	CacheHits     int64
	CacheMisses   int64
	CacheHitRatio float64
	Goroutines    int
	HeapAllocMB   float64
}

// Redirect outcomes.
const (
	RedirectOK       = "ok"
	RedirectNotFound = "not_found"
	RedirectExpired  = "expired"
	RedirectError    = "error"
)
