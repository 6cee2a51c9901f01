package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StrategyRandom     = "random"
	StrategySequential = "sequential"
)

type Config struct {
	Server     ServerConfig
	TLS        TLSConfig
	Database   DatabaseConfig
	App        AppConfig
	Auth       AuthConfig
	Cache      CacheConfig
	Clicks     ClicksConfig
	Shortener  ShortenerConfig
	RateLimit  RateLimitConfig
	Validation ValidationConfig
	CORS       CORSConfig
	Pprof      PprofConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port           int    `env:"PORT" envDefault:"3000"`
	MaxConnections int    `env:"MAX_CONNECTIONS" envDefault:"0"`
	// TrustProxy reads the client address from X-Forwarded-For. Enable only
	// behind a reverse proxy on a private network.
	TrustProxy     bool   `env:"TRUST_PROXY" envDefault:"false"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"3443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"shortlinks"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"20"`
}

// DSN returns DATABASE_URL when set, otherwise a postgres:// URL assembled
// from the individual POSTGRES_* settings.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

type AppConfig struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:3000"`
}

type AuthConfig struct {
	JWTSecret    string        `env:"JWT_SECRET,required,notEmpty"`
	Email        string        `env:"AUTH_EMAIL,required,notEmpty"`
	PasswordHash string        `env:"AUTH_PASSWORD_HASH,required,notEmpty"`
	UserID       int64         `env:"AUTH_USER_ID" envDefault:"1"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"0"`
}

type CacheConfig struct {
	MaxSizePow2 int           `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
	TTL         time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

type ClicksConfig struct {
	BufferSize     int           `env:"CLICKS_BUFFER_SIZE" envDefault:"4096"`
	FlushThreshold int           `env:"CLICKS_FLUSH_THRESHOLD" envDefault:"256"`
	FlushInterval  time.Duration `env:"CLICKS_FLUSH_INTERVAL" envDefault:"500ms"`
}

type ShortenerConfig struct {
	Strategy    string `env:"SHORTCODE_STRATEGY" envDefault:"random"`
	Length      int    `env:"SHORTCODE_LENGTH" envDefault:"6"`
	MaxAttempts int    `env:"SHORTCODE_MAX_ATTEMPTS" envDefault:"5"`
}

type RateLimitConfig struct {
	Enabled       bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type ValidationConfig struct {
	MaxURLLength       int    `env:"MAX_URL_LENGTH" envDefault:"2048"`
	BlockPrivateIPs    bool   `env:"BLOCK_PRIVATE_IPS" envDefault:"false"`
	MaxRequestBodySize string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"64K"`
}

type CORSConfig struct {
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

type PprofConfig struct {
	Enabled bool `env:"PPROF_ENABLED" envDefault:"false"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Shortener.Strategy {
	case StrategyRandom, StrategySequential:
	default:
		errs = append(errs, fmt.Errorf("unknown SHORTCODE_STRATEGY %q", c.Shortener.Strategy))
	}
	if c.Shortener.Length < 4 {
		errs = append(errs, errors.New("SHORTCODE_LENGTH must be at least 4"))
	}
	if c.Shortener.MaxAttempts < 1 {
		errs = append(errs, errors.New("SHORTCODE_MAX_ATTEMPTS must be positive"))
	}
	if c.Clicks.BufferSize < 1 || c.Clicks.FlushThreshold < 1 {
		errs = append(errs, errors.New("CLICKS_BUFFER_SIZE and CLICKS_FLUSH_THRESHOLD must be positive"))
	}
	if c.Clicks.FlushInterval <= 0 {
		errs = append(errs, errors.New("CLICKS_FLUSH_INTERVAL must be positive"))
	}
	if c.Auth.TokenTTL < 0 {
		errs = append(errs, errors.New("TOKEN_TTL must not be negative"))
	}
	if c.TLS.Enabled && (c.TLS.CertFile == "" || c.TLS.KeyFile == "") {
		errs = append(errs, errors.New("TLS_CERT_FILE and TLS_KEY_FILE are required when TLS is enabled"))
	}

	return errors.Join(errs...)
}
