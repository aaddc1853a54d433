package config

import (
	"errors"
	"fmt"
	"slices"
)

type Config struct {
	Port           int      `env:"PORT" envDefault:"8080"`
	ExporterPort   int      `env:"EXPORTER_PORT" envDefault:"9090"`
	TrustProxies   []string `env:"TRUST_PROXIES"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`

	Database DatabaseConfig `envPrefix:"DATABASE_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Admin    AdminConfig    `envPrefix:"ADMIN_"`
	OTel     OTelConfig     `envPrefix:"OTEL_"`
	PostHog  PostHogConfig  `envPrefix:"POSTHOG_"`
}

func (c Config) Validate() error {
	if c.Port <= 0 {
		return errors.New("PORT must be positive")
	}
	if c.ExporterPort <= 0 {
		return errors.New("EXPORTER_PORT must be positive")
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Redis.Validate(); err != nil {
		return err
	}
	if err := c.Admin.Validate(); err != nil {
		return err
	}
	if err := c.OTel.Validate(); err != nil {
		return err
	}
	if err := c.PostHog.Validate(); err != nil {
		return err
	}

	return nil
}

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type DatabaseConfig struct {
	Driver string `env:"DRIVER" envDefault:"sqlite3"`
	DSN    string `env:"DSN" envDefault:"file:homework.db?_fk=1&_busy_timeout=5000"`
}

func (c DatabaseConfig) Validate() error {
	if !slices.Contains([]string{DriverSQLite, DriverPostgres}, c.Driver) {
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, c.Driver)
	}
	if c.DSN == "" {
		return errors.New("DATABASE_DSN is required")
	}

	return nil
}

// RedisConfig is optional. Without a host, tokens are kept in memory.
type RedisConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"6379"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c RedisConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.Port == 0 {
		return errors.New("REDIS_PORT is required")
	}

	return nil
}

// AdminConfig is the admin account ensured by `setup`.
type AdminConfig struct {
	Username    string `env:"USERNAME" envDefault:"admin"`
	Password    string `env:"PASSWORD"`
	DisplayName string `env:"DISPLAY_NAME" envDefault:"Administrator"`
}

func (c AdminConfig) Validate() error {
	if c.Username == "" {
		return errors.New("ADMIN_USERNAME is required")
	}

	return nil
}

const (
	ExporterNone     = ""
	ExporterStdout   = "stdout"
	ExporterOTLPHTTP = "otlphttp"
	ExporterOTLPGRPC = "otlpgrpc"
)

// OTelConfig selects where traces and logs are exported. The OTLP exporters
// read their endpoint from the standard OTEL_EXPORTER_OTLP_* variables.
type OTelConfig struct {
	Exporter    string `env:"EXPORTER"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"homework-evaluation"`
}

func (c OTelConfig) Validate() error {
	if !slices.Contains([]string{ExporterNone, ExporterStdout, ExporterOTLPHTTP, ExporterOTLPGRPC}, c.Exporter) {
		return fmt.Errorf("OTEL_EXPORTER must be one of stdout, otlphttp, otlpgrpc, got %q", c.Exporter)
	}

	return nil
}

// PostHogConfig is optional. Without an API key, events are not forwarded.
type PostHogConfig struct {
	APIKey   string `env:"API_KEY"`
	Endpoint string `env:"ENDPOINT" envDefault:"https://us.i.posthog.com"`
}

func (c PostHogConfig) Enabled() bool {
	return c.APIKey != ""
}

func (c PostHogConfig) Validate() error {
	if c.Enabled() && c.Endpoint == "" {
		return errors.New("POSTHOG_ENDPOINT is required when POSTHOG_API_KEY is set")
	}

	return nil
}
