package bootstrap

import (
	"context"

	"toolshed/internal/infra/cache"
	"toolshed/internal/pkg/config"
	"toolshed/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewAvailabilityCache,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewAvailabilityCache(client *redis.Client, cfg config.Config) shared.AvailabilityCache {
	return cache.NewRedisAvailabilityCache(client, cfg.Redis.CacheTTL)
}
