package seed_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlinks/internal/bench/seed"
)

func fakeServer(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var created atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["password"] != "hunter2" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Invalid password"}`))
			return
		}
		_, _ = w.Write([]byte(`{"accessToken":"tok","userId":1}`))
	})
	mux.HandleFunc("POST /api/links", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		n := created.Add(1)
		w.WriteHeader(http.StatusCreated)
		_, _ = fmt.Fprintf(w, `{"shortCode":"c%d"}`, n)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &created
}

func TestLoginAndRun(t *testing.T) {
	srv, created := fakeServer(t)
	opts := seed.Options{
		BaseURL:  srv.URL,
		Email:    "admin@example.com",
		Password: "hunter2",
		Count:    25,
		Workers:  4,
		Timeout:  5 * time.Second,
	}

	token, err := seed.Login(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	codes, err := seed.Run(context.Background(), opts, token)
	require.NoError(t, err)
	assert.Len(t, codes, 25)
	assert.Equal(t, int64(25), created.Load())
	for _, c := range codes {
		assert.NotEmpty(t, c)
	}
}

func TestLogin_BadPassword(t *testing.T) {
	srv, _ := fakeServer(t)

	_, err := seed.Login(context.Background(), seed.Options{BaseURL: srv.URL, Password: "nope", Timeout: time.Second})
	assert.ErrorContains(t, err, "login failed")
}

func TestRun_Unauthorized(t *testing.T) {
	srv, _ := fakeServer(t)

	_, err := seed.Run(context.Background(), seed.Options{BaseURL: srv.URL, Count: 3, Workers: 1, Timeout: time.Second}, "wrong")
	assert.ErrorContains(t, err, "unexpected status: 401")
}
