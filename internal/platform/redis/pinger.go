package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Pinger adapts a Redis client to a context-only health check.
type Pinger struct {
	rdb *redis.Client
}

// NewPinger wraps rdb, which must be non-nil.
func NewPinger(rdb *redis.Client) *Pinger {
	return &Pinger{rdb: rdb}
}

// Ping checks the Redis connection.
func (p *Pinger) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}
