package redis

import (
	"context"
	"log/slog"
	"time"

	"restaurant-api/internal/pkg/config"

	goredis "github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// NewClient returns nil when Redis is not configured or cannot be reached,
// so callers degrade by disabling the features that depend on it.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, func()) {
	noop := func() {}
	if !cfg.Enabled() {
		slog.Info("redis disabled: REDIS_ADDR is empty")
		return nil, noop
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unreachable, continuing without it", "addr", cfg.Addr, "error", err.Error())
		_ = client.Close()
		return nil, noop
	}

	slog.Info("redis connected", "addr", cfg.Addr)
	return client, func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
}
