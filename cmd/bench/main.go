package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shortlinks/internal/bench/attack"
	"shortlinks/internal/bench/config"
	"shortlinks/internal/bench/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := seed.Options{
		BaseURL:            cfg.BaseURL,
		Email:              cfg.Email,
		Password:           cfg.Password,
		Count:              cfg.SeedCount,
		Workers:            cfg.SeedWorkers,
		BypassSecret:       cfg.RateLimitBypass,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Timeout:            cfg.SeedTimeout,
	}

	token, err := seed.Login(ctx, opts)
	if err != nil {
		return err
	}

	var codes []string
	if cfg.BenchType != "create" {
		codes, err = seed.Run(ctx, opts, token)
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	return attack.Run(&attack.Config{
		BaseURL:            cfg.BaseURL,
		Token:              token,
		Codes:              codes,
		Rate:               cfg.Rate,
		Duration:           cfg.Duration,
		CreateRatio:        cfg.CreateRatio,
		Type:               cfg.BenchType,
		RateLimitBypass:    cfg.RateLimitBypass,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Connections:        cfg.Connections,
		MaxWorkers:         cfg.MaxWorkers,
	})
}
