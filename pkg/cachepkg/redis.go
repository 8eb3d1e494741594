// Package cachepkg provides helpers to set up the redis cache.
package cachepkg

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Setup sets up connection with redis and pings it.
func Setup(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cachepkg: ping: %w", err)
	}

	return client, nil
}
