package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "session:revoked:"

// RedisDenylist stores revoked session ids in Redis. Keys carry a TTL
// equal to the remaining token lifetime, so entries clean themselves up.
type RedisDenylist struct {
	client *redis.Client
}

// NewRedisDenylist creates a denylist backed by the given Redis client.
func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

func (d *RedisDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return d.client.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
