// Package config loads runtime settings from the environment and an
// optional .env file
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/pokerole-api/internal/clients/reference"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all configuration for the CLI
type Config struct {
	Redis     RedisConfig
	Reference ReferenceConfig
	Log       LogConfig

	// UserID owns the roster the commands act on
	UserID string `env:"POKEROLE_USER_ID" envDefault:"local"`
	// RollSessionTTL bounds how long an untouched dice check survives
	RollSessionTTL time.Duration `env:"POKEROLE_ROLL_SESSION_TTL" envDefault:"15m"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	URL          string        `env:"POKEROLE_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	PoolSize     int           `env:"POKEROLE_REDIS_POOL_SIZE" envDefault:"10"`
	PingTimeout  time.Duration `env:"POKEROLE_REDIS_PING_TIMEOUT" envDefault:"5s"`
	ReferenceTTL time.Duration `env:"POKEROLE_REFERENCE_CACHE_TTL" envDefault:"24h"`
}

// ReferenceConfig points at the public reference data repository
type ReferenceConfig struct {
	TreeURL     string        `env:"POKEROLE_REFERENCE_TREE_URL"`
	RawBaseURL  string        `env:"POKEROLE_REFERENCE_RAW_URL"`
	HTTPTimeout time.Duration `env:"POKEROLE_REFERENCE_HTTP_TIMEOUT" envDefault:"30s"`
	BatchSize   int           `env:"POKEROLE_REFERENCE_BATCH_SIZE" envDefault:"20"`
}

// LogConfig selects the slog handler
type LogConfig struct {
	Level  string `env:"POKEROLE_LOG_LEVEL" envDefault:"info"`
	Format string `env:"POKEROLE_LOG_FORMAT" envDefault:"text"`
}

// Load reads envFiles (missing files are skipped) and then the environment.
// Variables already set in the environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to load %s", f)
		}
		slog.Debug("Loaded env file", "path", f)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("POKEROLE_USER_ID", c.UserID, vb)
	errors.ValidateRequired("POKEROLE_REDIS_URL", c.Redis.URL, vb)
	if c.Redis.PoolSize < 0 {
		vb.Field("POKEROLE_REDIS_POOL_SIZE", "must not be negative")
	}
	if c.RollSessionTTL <= 0 {
		vb.Field("POKEROLE_ROLL_SESSION_TTL", "must be positive")
	}
	if c.Redis.ReferenceTTL <= 0 {
		vb.Field("POKEROLE_REFERENCE_CACHE_TTL", "must be positive")
	}
	if c.Reference.BatchSize < 0 {
		vb.Field("POKEROLE_REFERENCE_BATCH_SIZE", "must not be negative")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		vb.InvalidField("POKEROLE_LOG_LEVEL", err.Error())
	}
	errors.ValidateEnum("POKEROLE_LOG_FORMAT", strings.ToLower(c.Log.Format),
		[]string{LogFormatText, LogFormatJSON}, vb)

	return vb.Build()
}

// ReferenceClientConfig converts the settings for reference.New
func (c *Config) ReferenceClientConfig() *reference.Config {
	return &reference.Config{
		TreeURL:     c.Reference.TreeURL,
		RawBaseURL:  c.Reference.RawBaseURL,
		HTTPTimeout: c.Reference.HTTPTimeout,
		BatchSize:   c.Reference.BatchSize,
	}
}

// ParseLevel maps a level name to its slog level
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", level)
	}
	return l, nil
}

// NewLogger builds the slog logger described by the config
func (c *LogConfig) NewLogger() (*slog.Logger, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.Format) {
	case LogFormatJSON:
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	case LogFormatText, "":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	default:
		return nil, errors.InvalidArgumentf("unknown log format %q", c.Format)
	}
}
