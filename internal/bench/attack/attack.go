package attack

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type Config struct {
	BaseURL            string
	Token              string
	Codes              []string
	Rate               int
	Duration           time.Duration
	CreateRatio        float64
	Type               string
	RateLimitBypass    string
	InsecureSkipVerify bool
	Connections        int
	MaxWorkers         uint64
}

// Targeter picks the request mix for cfg.Type.
func Targeter(cfg *Config) (vegeta.Targeter, error) {
	switch cfg.Type {
	case "create":
		return CreateTargeter(cfg.BaseURL, cfg.Token, cfg.RateLimitBypass), nil
	case "redirect":
		if len(cfg.Codes) == 0 {
			return nil, errors.New("redirect attack requires seeded codes")
		}
		return RedirectTargeter(cfg.BaseURL, cfg.Codes, cfg.RateLimitBypass), nil
	case "mixed":
		if len(cfg.Codes) == 0 {
			return nil, errors.New("mixed attack requires seeded codes")
		}
		return MixedTargeter(cfg.BaseURL, cfg.Token, cfg.Codes, cfg.CreateRatio, cfg.RateLimitBypass), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

func Run(cfg *Config) error {
	return run(cfg, os.Stdout)
}

func run(cfg *Config, out io.Writer) error {
	targeter, err := Targeter(cfg)
	if err != nil {
		return err
	}

	opts := []func(*vegeta.Attacker){
		vegeta.Redirects(vegeta.NoFollow),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(5 * time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}),
	}
	if cfg.MaxWorkers > 0 {
		opts = append(opts, vegeta.MaxWorkers(cfg.MaxWorkers))
	}
	attacker := vegeta.NewAttacker(opts...)

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	fmt.Fprintf(out, "Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	return vegeta.NewTextReporter(&metrics).Report(out)
}
