package bootstrap

import (
	"context"

	"pet-scheduler/internal/infra/cache"
	"pet-scheduler/internal/pkg/config"
	"pet-scheduler/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewAvailabilityCache,
	),
)

// NewRedisClient returns nil when caching is off or Redis is unreachable.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := cache.NewRedisClient(cfg.Redis)
	if client != nil {
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
	}
	return client
}

func NewAvailabilityCache(client *redis.Client, cfg config.Config) shared.AvailabilityCache {
	if client == nil {
		return shared.NopAvailabilityCache{}
	}
	return cache.NewAvailabilityCache(client, cfg.Redis)
}
