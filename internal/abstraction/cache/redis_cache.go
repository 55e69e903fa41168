package cache

import (
	"context"
	"time"

	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
	"github.com/Warzoness/foodshare-manager/internal/utils"
	"github.com/redis/go-redis/v9"
)

type RedisCache[T any] struct {
	client redis.Cmdable
	prefix string
}

// NewRedisCache legt alle Keys unter prefix ab, z. B. "session:".
func NewRedisCache[T any](client redis.Cmdable, prefix string) *RedisCache[T] {
	return &RedisCache[T]{client: client, prefix: prefix}
}

func (r *RedisCache[T]) Get(ctx context.Context, key string) (*T, *app_errors.AppError) {
	return utils.GetCacheData[T](ctx, r.client, r.prefix+key)
}

func (r *RedisCache[T]) Set(ctx context.Context, key string, value *T, ttl time.Duration) *app_errors.AppError {
	return utils.SetCacheData(ctx, r.client, r.prefix+key, value, ttl)
}

func (r *RedisCache[T]) Del(ctx context.Context, key string) error {
	return utils.DeleteCacheData(ctx, r.client, r.prefix+key)
}
