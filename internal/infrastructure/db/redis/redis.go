// Package redis wires the go-redis client used by the login attempt limiter.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Config holds the connection settings for the attempt-counter store.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect opens a client against cfg.Addr and pings it before returning, so
// a misconfigured address fails at startup instead of on the first login.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = pingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
