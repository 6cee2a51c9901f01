package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/net/netutil"

	"shortlinks/internal/auth"
	"shortlinks/internal/cache"
	"shortlinks/internal/clicklog"
	"shortlinks/internal/config"
	"shortlinks/internal/handler"
	"shortlinks/internal/logging"
	"shortlinks/internal/metrics"
	custommiddleware "shortlinks/internal/middleware"
	"shortlinks/internal/repository"
	"shortlinks/internal/service"
	"shortlinks/internal/shortener"
	"shortlinks/internal/validation"
)

const metricsPath = "/metrics"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(&cfg.Log)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("application failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	repo, err := repository.New(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	codes, err := shortener.New(&cfg.Shortener, repo)
	if err != nil {
		return fmt.Errorf("failed to create shortener: %w", err)
	}

	linkCache, err := cache.New(cfg.Cache.MaxSizePow2, cfg.Cache.TTL)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer linkCache.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Deferred after the repository so pending clicks are written before the
	// pool closes.
	clicks := clicklog.NewRecorder(repo, &cfg.Clicks, m, logger)
	clicks.Start()
	defer clicks.Close()

	go m.CollectInfra(ctx, 10*time.Second, func() metrics.InfraMetric {
		return sampleInfra(repo, linkCache)
	})

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := auth.NewService(auth.NewStaticStore(auth.Account{
		ID:           cfg.Auth.UserID,
		Email:        cfg.Auth.Email,
		PasswordHash: cfg.Auth.PasswordHash,
	}), tokens)

	h := handler.New(
		authService,
		service.NewLinkService(repo, linkCache, codes, cfg.Shortener.MaxAttempts),
		service.NewRedirectService(repo, linkCache, clicks),
		service.NewAnalyticsService(repo),
		validation.NewURLValidator(cfg.Validation.MaxURLLength, cfg.Validation.BlockPrivateIPs),
		m,
		cfg.App.BaseURL,
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.IPExtractor = custommiddleware.IPExtractor(cfg.Server.TrustProxy)
	e.JSONSerializer = handler.JSONSerializer{}
	e.Validator = validation.NewStructValidator()
	e.Use(middleware.Recover())
	e.Use(custommiddleware.RequestLogger(logger))
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(custommiddleware.Metrics(m, metricsPath))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger))

	e.GET(metricsPath, echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	requireAuth := custommiddleware.RequireAuth(tokens)
	if cfg.Pprof.Enabled {
		custommiddleware.RegisterPprof(e, requireAuth)
		logger.Info().Str("path", "/debug/pprof/*").Msg("pprof endpoints enabled")
	}
	h.Register(e, requireAuth)

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpListener, err := listen(httpAddr, cfg.Server.MaxConnections)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	logger.Info().
		Str("addr", httpAddr).
		Int("max_connections", cfg.Server.MaxConnections).
		Str("shortcode_strategy", cfg.Shortener.Strategy).
		Msg("starting HTTP server")

	servers := []*http.Server{newServer(e)}
	serve(servers[0], httpListener, logger)

	if cfg.TLS.Enabled {
		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		httpsListener, err := listen(httpsAddr, cfg.Server.MaxConnections)
		if err != nil {
			return fmt.Errorf("failed to create HTTPS listener: %w", err)
		}

		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			_ = httpsListener.Close()
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}

		tlsListener := tls.NewListener(httpsListener, &tls.Config{
			MinVersion:       tls.VersionTLS13,
			Certificates:     []tls.Certificate{cert},
			CurvePreferences: []tls.CurveID{tls.X25519},
		})

		logger.Info().Str("addr", httpsAddr).Msg("starting HTTPS server")
		srv := newServer(e)
		servers = append(servers, srv)
		serve(srv, tlsListener, logger)
	}

	<-ctx.Done()
	logger.Info().Msg("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("server shutdown failed: %w", err))
		}
	}
	return errors.Join(errs...)
}

func listen(addr string, maxConns int) (net.Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		l = netutil.LimitListener(l, maxConns)
	}
	return l, nil
}

func newServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

func serve(srv *http.Server, l net.Listener, logger zerolog.Logger) {
	go func() {
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Str("addr", l.Addr().String()).Msg("server error")
		}
	}()
}

func sampleInfra(repo *repository.Repository, linkCache *cache.LinkCache) metrics.InfraMetric {
	poolStat := repo.Pool().Stat()
	hits, misses, ratio := linkCache.Stats()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return metrics.InfraMetric{
		PoolAcquired:  int(poolStat.AcquiredConns()),
		PoolIdle:      int(poolStat.IdleConns()),
		PoolTotal:     int(poolStat.TotalConns()),
		PoolMax:       int(poolStat.MaxConns()),
		CacheHits:     int64(hits),
		CacheMisses:   int64(misses),
		CacheHitRatio: ratio,
		Goroutines:    runtime.NumGoroutine(),
		HeapAllocMB:   float64(memStats.HeapAlloc) / 1024 / 1024,
	}
}
