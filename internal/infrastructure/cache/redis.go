package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Paarth01/lifelink-ui-connect/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Store is the subset of redis.Client the application depends on: token
// revocation entries, one-shot confirmation/reset tokens and the NGO stats
// cache. Narrowing the surface keeps usecases testable with an in-memory
// substitute.
type Store interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logrus.Info("Successfully connected to Redis")

	return client, nil
}
