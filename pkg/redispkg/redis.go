// Package redispkg sets up the redis client used for caching.
package redispkg

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Setup configures a redis client and verifies connectivity.
func Setup(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}
