// Package deps contains the dependencies for the backend, exporter and admin-cli.
package deps

import (
	"context"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/exaring/otelpgx"
	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/internal/auth"
	"github.com/homework-evaluation/backend/internal/config"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/gate"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/posthog/posthog-go"
	"github.com/redis/rueidis"
	"github.com/redis/rueidis/rueidisotel"
	"go.uber.org/fx"
)

// Config loads the environment variables from the .env file and returns a config.Config.
func Config() (config.Config, error) {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("error creating config", "error", err)
		return config.Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("error validating config", "error", err)
		return config.Config{}, err
	}

	return cfg, nil
}

// EntClient creates an ent.Client on the configured database.
func EntClient(cfg config.Config) (*ent.Client, error) {
	var (
		drv *entsql.Driver
		err error
	)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		drv, err = postgresDriver(cfg.Database.DSN)
	default:
		drv, err = entsql.Open(dialect.SQLite, cfg.Database.DSN)
	}
	if err != nil {
		slog.Error("error creating ent client", "driver", cfg.Database.Driver, "error", err)
		return nil, err
	}

	return ent.NewClient(ent.Driver(drv)), nil
}

// postgresDriver opens Postgres through pgx with query tracing.
func postgresDriver(dsn string) (*entsql.Driver, error) {
	connConfig, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	connConfig.Tracer = otelpgx.NewTracer()

	db := stdlib.OpenDB(*connConfig)
	return entsql.OpenDB(dialect.Postgres, db), nil
}

// RedisClient creates a traced rueidis.Client.
func RedisClient(cfg config.Config) (rueidis.Client, error) {
	client, err := rueidisotel.NewClient(rueidis.ClientOption{
		InitAddress: []string{
			fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		},
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
	})
	if err != nil {
		slog.Error("error creating redis client", "error", err)
		return nil, err
	}

	return client, nil
}

// AuthStorage creates an auth.Storage: Redis when configured, in memory otherwise.
func AuthStorage(lc fx.Lifecycle, cfg config.Config) (auth.Storage, error) {
	if !cfg.Redis.Enabled() {
		slog.Warn("REDIS_HOST is not set, tokens are kept in memory")
		return auth.NewMemoryStorage(), nil
	}

	redisClient, err := RedisClient(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(redisClient.Close))

	return auth.NewRedisStorage(redisClient), nil
}

// EventService creates an events.EventService, forwarding to PostHog when configured.
func EventService(lc fx.Lifecycle, cfg config.Config) (*events.EventService, error) {
	if !cfg.PostHog.Enabled() {
		return events.NewEventService(), nil
	}

	posthogClient, err := posthog.NewWithConfig(cfg.PostHog.APIKey, posthog.Config{
		Endpoint: cfg.PostHog.Endpoint,
	})
	if err != nil {
		slog.Error("error creating posthog client", "error", err)
		return nil, err
	}
	lc.Append(fx.StopHook(posthogClient.Close))

	return events.NewEventService(events.NewPosthogForwarder(posthogClient)), nil
}

// Gate creates the access gate over the core contexts.
func Gate(entClient *ent.Client, eventService *events.EventService) *gate.Gate {
	return gate.NewFromClient(entClient, eventService)
}

// ProvideEntClient is EntClient closed on application stop.
func ProvideEntClient(lc fx.Lifecycle, cfg config.Config) (*ent.Client, error) {
	client, err := EntClient(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(client.Close))

	return client, nil
}

// OTelSDK sets up OpenTelemetry and flushes it on application stop.
func OTelSDK(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := SetupOTelSDK(context.Background(), cfg.OTel)
	if err != nil {
		return err
	}
	lc.Append(fx.StopHook(shutdown))

	return nil
}

var FxCommonModule = fx.Module("common",
	fx.Provide(Config),
	fx.Provide(ProvideEntClient),
	fx.Provide(AuthStorage),
	fx.Provide(EventService),
	fx.Provide(Gate),
	fx.Invoke(OTelSDK),
)
