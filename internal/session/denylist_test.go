package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
	})
	assert.NoError(t, client.Ping(context.Background()).Err())

	teardown := func() {
		client.Close()
		container.Terminate(context.Background())
	}

	return client, teardown
}

func TestRedisDenylist_RevokeAndCheck(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	denylist := NewRedisDenylist(client)
	ctx := context.Background()

	revoked, err := denylist.IsRevoked(ctx, "unknown-jti")
	assert.NoError(t, err)
	assert.False(t, revoked)

	err = denylist.Revoke(ctx, "some-jti", time.Minute)
	assert.NoError(t, err)

	revoked, err = denylist.IsRevoked(ctx, "some-jti")
	assert.NoError(t, err)
	assert.True(t, revoked)
}

func TestRedisDenylist_EntryExpires(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	denylist := NewRedisDenylist(client)
	ctx := context.Background()

	err := denylist.Revoke(ctx, "short-jti", time.Second)
	assert.NoError(t, err)

	time.Sleep(1500 * time.Millisecond)

	revoked, err := denylist.IsRevoked(ctx, "short-jti")
	assert.NoError(t, err)
	assert.False(t, revoked)
}
