package bootstrap

import (
	"context"

	goredis "github.com/go-redis/redis/v8"
	"go.uber.org/fx"

	"driveshare/internal/infra/presence"
	infraredis "driveshare/internal/infra/redis"
	"driveshare/internal/pkg/config"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewPresenceStore,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*goredis.Client, error) {
	client, cleanup, err := infraredis.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}

func NewPresenceStore(client *goredis.Client, cfg config.Config) *presence.Store {
	return presence.NewStore(client, cfg.Presence.TTL)
}
