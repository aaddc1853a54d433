package deps

import (
	"context"
	"testing"

	"github.com/homework-evaluation/backend/internal/config"
	"github.com/stretchr/testify/require"
)

func TestSetupOTelSDK_NoExporter(t *testing.T) {
	shutdown, err := SetupOTelSDK(context.Background(), config.OTelConfig{})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetupOTelSDK_Stdout(t *testing.T) {
	shutdown, err := SetupOTelSDK(context.Background(), config.OTelConfig{
		Exporter:    config.ExporterStdout,
		ServiceName: "test",
	})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetupOTelSDK_UnknownExporter(t *testing.T) {
	_, err := SetupOTelSDK(context.Background(), config.OTelConfig{Exporter: "zipkin"})
	require.Error(t, err)
}

func TestEntClient_SQLite(t *testing.T) {
	client, err := EntClient(config.Config{
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			DSN:    "file:deps?mode=memory&cache=shared&_fk=1",
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Schema.Create(context.Background()))
}
