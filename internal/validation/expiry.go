package validation

import (
	"strings"
	"time"
)

var expiryLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseExpiry parses an optional expiration timestamp. An empty value means
// the link never expires. Values without a zone are taken as UTC.
func ParseExpiry(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, ErrInvalidExpiry
}
