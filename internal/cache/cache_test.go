package cache_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlinks/internal/cache"
	"shortlinks/internal/domain"
)

func link(code, url string) domain.Link {
	return domain.Link{
		ID:          uuid.New(),
		ShortCode:   code,
		OriginalURL: url,
		UserID:      1,
		CreatedAt:   time.Now(),
	}
}

func TestNew_ValidSize(t *testing.T) {
	c, err := cache.New(10, time.Minute)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestNew_ZeroSize(t *testing.T) {
	c, err := cache.New(0, 0)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestGet_MissingKey(t *testing.T) {
	c, err := cache.New(10, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	val, found := c.Get("nonexistent")
	assert.False(t, found)
	assert.Empty(t, val.OriginalURL)
}

func TestSetThenGet(t *testing.T) {
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	expires := time.Now().Add(time.Hour)
	want := link("abc123", "https://example.com/very/long/path")
	want.ExpiresAt = &expires

	c.Set(want)
	c.Wait()

	got, found := c.Get("abc123")
	require.True(t, found)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.OriginalURL, got.OriginalURL)
	require.NotNil(t, got.ExpiresAt)
	assert.True(t, expires.Equal(*got.ExpiresAt))
}

func TestSet_UpdateExisting(t *testing.T) {
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	c.Set(link("abc123", "https://example.com/first"))
	c.Wait()

	c.Set(link("abc123", "https://example.com/second"))
	c.Wait()

	got, found := c.Get("abc123")
	assert.True(t, found)
	assert.Equal(t, "https://example.com/second", got.OriginalURL)
}

func TestSet_MultipleKeys(t *testing.T) {
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	entries := map[string]string{
		"code1": "https://example.com/1",
		"code2": "https://example.com/2",
		"code3": "https://example.com/3",
	}

	for k, v := range entries {
		c.Set(link(k, v))
	}
	c.Wait()

	for k, want := range entries {
		got, found := c.Get(k)
		assert.True(t, found, "key %q should be found", k)
		assert.Equal(t, want, got.OriginalURL, "key %q value mismatch", k)
	}
}

func TestDelete(t *testing.T) {
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	c.Set(link("gone01", "https://example.com/gone"))
	c.Wait()

	c.Delete("gone01")
	c.Wait()

	_, found := c.Get("gone01")
	assert.False(t, found)
}

func TestSet_TTLExpires(t *testing.T) {
	c, err := cache.New(20, 50*time.Millisecond)
	require.NoError(t, err)
	defer c.Close()

	c.Set(link("ttl001", "https://example.com/ttl"))
	c.Wait()

	_, found := c.Get("ttl001")
	require.True(t, found)

	time.Sleep(100 * time.Millisecond)

	_, found = c.Get("ttl001")
	assert.False(t, found)
}

func TestStats_AfterOperations(t *testing.T) {
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	// Initial stats
	hits, misses, _ := c.Stats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(0), misses)

	// Cause a miss
	c.Get("nonexistent")

	_, misses, _ = c.Stats()
	assert.Equal(t, uint64(1), misses)

	// Add and hit
	c.Set(link("key1", "https://example.com/key1"))
	c.Wait()
	c.Get("key1")

	hits, _, ratio := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, 0.5, ratio)
}
