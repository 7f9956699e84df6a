// Package redis owns the shared Redis client. The directory API surfaces it
// through the readiness probe; anything that later needs a cache reuses the
// same pool.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Config captures the Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Connect builds the client and verifies the server is reachable before
// returning it. The client is closed on a failed ping so callers never hold a
// half-open pool.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return client, nil
}
