package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"

	"shortlinks/internal/domain"
)

// Approximate fixed overhead of a cached link beyond its strings.
const linkOverhead = 96

// LinkCache holds link snapshots keyed by short code. The click counter in
// a cached snapshot is not kept current.
type LinkCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(maxSizePow2 int, ttl time.Duration) (*LinkCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &LinkCache{cache: cache, ttl: ttl}, nil
}

func (c *LinkCache) Get(shortCode string) (domain.Link, bool) {
	val, found := c.cache.Get(shortCode)
	if !found {
		return domain.Link{}, false
	}
	link, ok := val.(domain.Link)
	return link, ok
}

func (c *LinkCache) Set(link domain.Link) {
	cost := int64(len(link.ShortCode)+len(link.OriginalURL)) + linkOverhead
	c.cache.SetWithTTL(link.ShortCode, link, cost, c.ttl)
}

func (c *LinkCache) Delete(shortCode string) {
	c.cache.Del(shortCode)
}

// Wait blocks until buffered writes are applied.
func (c *LinkCache) Wait() {
	c.cache.Wait()
}

func (c *LinkCache) Close() {
	c.cache.Close()
}

func (c *LinkCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
