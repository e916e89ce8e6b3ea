package cache

import (
	"context"
	"fmt"

	"internship-checkout/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "checkout:"

func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	cleanup := func() {
		_ = rdb.Close()
	}
	return rdb, cleanup, nil
}
