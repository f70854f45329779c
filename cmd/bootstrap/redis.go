package bootstrap

import (
	"context"

	"restaurant-api/internal/infra/redis"
	"restaurant-api/internal/pkg/config"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
	),
)

// NewRedisClient may return nil; the rate limiter then lets every request through.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *goredis.Client {
	client, cleanup := redis.NewClient(context.Background(), cfg.Redis)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return client
}
