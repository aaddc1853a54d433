package config_test

import (
	"testing"

	"github.com/homework-evaluation/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(nil)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.PostHog.Enabled())
	assert.Equal(t, "admin", cfg.Admin.Username)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "postgres://localhost/hwe")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("OTEL_EXPORTER", "otlpgrpc")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		cfg, err := config.LoadFrom(nil)
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		modify func(cfg *config.Config)
	}{
		{"unknown driver", func(cfg *config.Config) { cfg.Database.Driver = "mysql" }},
		{"empty dsn", func(cfg *config.Config) { cfg.Database.DSN = "" }},
		{"redis without port", func(cfg *config.Config) { cfg.Redis = config.RedisConfig{Host: "redis"} }},
		{"empty admin username", func(cfg *config.Config) { cfg.Admin.Username = "" }},
		{"unknown exporter", func(cfg *config.Config) { cfg.OTel.Exporter = "zipkin" }},
		{"posthog without endpoint", func(cfg *config.Config) { cfg.PostHog = config.PostHogConfig{APIKey: "phc"} }},
		{"zero port", func(cfg *config.Config) { cfg.Port = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromMap(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := config.LoadFrom(map[string]string{
		"ADMIN_USERNAME":  "root",
		"POSTHOG_API_KEY": "phc_test",
	})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port, "process environment must be ignored")
	assert.Equal(t, "root", cfg.Admin.Username)
	assert.True(t, cfg.PostHog.Enabled())
}

func TestLoadFromInvalidValue(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{"PORT": "eighty"})
	assert.Error(t, err)
}
