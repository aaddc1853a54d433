package testhelper

import (
	"context"
	"testing"

	"github.com/redis/rueidis"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisStackImage ships the JSON module that auth.RedisStorage relies on.
const RedisStackImage = "redis/redis-stack-server:latest"

// NewRedisClient starts a Redis Stack container and returns a client connected to it.
// The test is skipped when no container runtime is available.
func NewRedisClient(t *testing.T) rueidis.Client {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        RedisStackImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("redis container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate redis container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("redis endpoint: %v", err)
	}

	redisClient, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{endpoint},
		DisableCache: true,
	})
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	t.Cleanup(redisClient.Close)

	return redisClient
}
