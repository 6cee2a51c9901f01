package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Rate-Limit-Bypass"

var (
	urlCounter atomic.Uint64
	bodyPool   = sync.Pool{
		New: func() any {
			return make([]byte, 0, 80)
		},
	}
)

// CreateTargeter posts a fresh destination URL on every hit so no two
// requests collide on the same link.
func CreateTargeter(baseURL, token, bypassSecret string) vegeta.Targeter {
	header := http.Header{"Content-Type": []string{"application/json"}}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}
	if bypassSecret != "" {
		header.Set(bypassHeader, bypassSecret)
	}
	url := baseURL + "/api/links"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = url
		t.Header = header

		buf := bodyPool.Get().([]byte)[:0]
		buf = fmt.Appendf(buf, `{"originalUrl":"https://example.com/load/%d"}`, urlCounter.Add(1))
		t.Body = buf
		return nil
	}
}

func RedirectTargeter(baseURL string, codes []string, bypassSecret string) vegeta.Targeter {
	var header http.Header
	if bypassSecret != "" {
		header = http.Header{bypassHeader: []string{bypassSecret}}
	}

	return func(t *vegeta.Target) error {
		code := codes[rand.IntN(len(codes))]
		t.Method = http.MethodGet
		t.URL = baseURL + "/" + code
		t.Header = header
		return nil
	}
}

func MixedTargeter(baseURL, token string, codes []string, createRatio float64, bypassSecret string) vegeta.Targeter {
	createTarget := CreateTargeter(baseURL, token, bypassSecret)
	redirectTarget := RedirectTargeter(baseURL, codes, bypassSecret)

	return func(t *vegeta.Target) error {
		if rand.Float64() < createRatio {
			return createTarget(t)
		}
		return redirectTarget(t)
	}
}
