// Package seed logs in and creates the links that redirect attacks target.
package seed

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

const bypassHeader = "X-Rate-Limit-Bypass"

type Options struct {
	BaseURL            string
	Email              string
	Password           string
	Count              int
	Workers            int
	BypassSecret       string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type createRequest struct {
	OriginalURL string `json:"originalUrl"`
}

type createResponse struct {
	ShortCode string `json:"shortCode"`
}

type client struct {
	http    *http.Client
	baseURL string
	bypass  string
}

// Login returns an access token for the configured operator account.
func Login(ctx context.Context, opts Options) (string, error) {
	c := newClient(opts, 1)
	var resp loginResponse
	if err := c.post(ctx, "/api/login", "", loginRequest{Email: opts.Email, Password: opts.Password}, http.StatusOK, &resp); err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}
	return resp.AccessToken, nil
}

// Run creates opts.Count links owned by the token's user and returns their
// short codes in creation order.
func Run(ctx context.Context, opts Options, token string) ([]string, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	fmt.Printf("Seeding %d links (workers: %d)...\n", opts.Count, workers)

	c := newClient(opts, workers)
	codes := make([]string, opts.Count)
	var progress atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range opts.Count {
		g.Go(func() error {
			var resp createResponse
			req := createRequest{OriginalURL: fmt.Sprintf("https://example.com/seed/%d", i)}
			if err := c.post(gctx, "/api/links", token, req, http.StatusCreated, &resp); err != nil {
				return fmt.Errorf("failed to create link %d: %w", i, err)
			}
			codes[i] = resp.ShortCode
			if done := progress.Add(1); done%1000 == 0 || int(done) == opts.Count {
				fmt.Printf("\rProgress: %d/%d", done, opts.Count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("\nSeeding complete: %d codes\n", len(codes))
	return codes, nil
}

func newClient(opts Options, workers int) *client {
	return &client{
		http: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				TLSClientConfig:     &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify},
				MaxIdleConns:        workers * 2,
				MaxIdleConnsPerHost: workers * 2,
				IdleConnTimeout:     90 * time.Second,
				ForceAttemptHTTP2:   true,
			},
		},
		baseURL: opts.BaseURL,
		bypass:  opts.BypassSecret,
	}
}

func (c *client) post(ctx context.Context, path, token string, in any, wantStatus int, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.bypass != "" {
		req.Header.Set(bypassHeader, c.bypass)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
