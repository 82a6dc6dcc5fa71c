package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pokerole-api/internal/clients/reference"
	"github.com/KirkDiggler/pokerole-api/internal/config"
	"github.com/KirkDiggler/pokerole-api/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/catalog"
	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/roll"
	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/roster"
	"github.com/KirkDiggler/pokerole-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokerole-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/pokerole-api/internal/redis"
	referencecache "github.com/KirkDiggler/pokerole-api/internal/repositories/reference_cache"
	rollsession "github.com/KirkDiggler/pokerole-api/internal/repositories/roll_session"
	rosterrepo "github.com/KirkDiggler/pokerole-api/internal/repositories/roster"
)

// appOptions carries flag overrides on top of the loaded config
type appOptions struct {
	EnvFile   string
	RedisURL  string
	UserID    string
	LogLevel  string
	LogFormat string
}

// app holds the wired services for one command invocation
type app struct {
	cfg     *config.Config
	redis   redisclient.Client
	catalog catalog.Service
	roster  roster.Service
	roll    roll.Service
}

func newApp(ctx context.Context, opts *appOptions) (*app, error) {
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return nil, err
	}
	applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid flags")
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	client, err := redisclient.NewClientFromURL(cfg.Redis.URL, &redisclient.Options{PoolSize: cfg.Redis.PoolSize})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
	}
	if err := redisclient.Ping(ctx, client, cfg.Redis.PingTimeout); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}

	a, err := wire(cfg, client)
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	slog.Debug("Services ready",
		"user_id", cfg.UserID,
		"redis_url", cfg.Redis.URL,
	)
	return a, nil
}

func applyOverrides(cfg *config.Config, opts *appOptions) {
	if opts.RedisURL != "" {
		cfg.Redis.URL = opts.RedisURL
	}
	if opts.UserID != "" {
		cfg.UserID = opts.UserID
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
}

// wire builds the repositories and orchestrators over one Redis client
func wire(cfg *config.Config, client redisclient.Client) (*app, error) {
	refClient, err := reference.New(cfg.ReferenceClientConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create reference client")
	}

	cache, err := referencecache.NewRedisRepository(&referencecache.Config{
		Client: client,
		TTL:    cfg.Redis.ReferenceTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create reference cache")
	}

	rosters, err := rosterrepo.NewRedisRepository(&rosterrepo.Config{Client: client, Clock: clock.New()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create roster repository")
	}

	sessions, err := rollsession.NewRedisRepository(&rollsession.Config{Client: client, Clock: clock.New()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create roll session repository")
	}

	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rules engine")
	}

	catalogSvc, err := catalog.NewOrchestrator(&catalog.Config{Client: refClient, Cache: cache})
	if err != nil {
		return nil, err
	}

	rosterSvc, err := roster.NewOrchestrator(&roster.Config{
		RosterRepo:  rosters,
		Catalog:     catalogSvc,
		Engine:      eng,
		IDGenerator: idgen.NewUUID("mon"),
	})
	if err != nil {
		return nil, err
	}

	rollSvc, err := roll.NewOrchestrator(&roll.Config{
		Engine:          eng,
		Roster:          rosterSvc,
		Catalog:         catalogSvc,
		RollSessionRepo: sessions,
		SessionTTL:      cfg.RollSessionTTL,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		redis:   client,
		catalog: catalogSvc,
		roster:  rosterSvc,
		roll:    rollSvc,
	}, nil
}

// Close releases the Redis connection pool
func (a *app) Close() error {
	if a.redis == nil {
		return nil
	}
	return a.redis.Close()
}

// user returns the configured roster owner
func (a *app) user() string {
	return a.cfg.UserID
}
