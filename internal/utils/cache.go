package utils

import (
	"context"
	"time"

	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// GetCacheData liest einen JSON-Wert aus Redis und entpackt ihn in T.
// Bei Cache-Miss wird (nil, nil) zurückgegeben.
func GetCacheData[T any](ctx context.Context, rdb redis.Cmdable, cacheKey string) (*T, *app_errors.AppError) {
	val, err := rdb.Get(ctx, cacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache-miss
	} else if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	var data T
	if err := json.Unmarshal(val, &data); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return &data, nil
}

// SetCacheData speichert data als JSON mit Ablaufzeit. expire <= 0 bedeutet ohne Ablauf.
func SetCacheData[T any](ctx context.Context, rdb redis.Cmdable, cacheKey string, data *T, expire time.Duration) *app_errors.AppError {
	bytes, err := json.Marshal(data)
	if err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	if expire < 0 {
		expire = 0
	}
	if err := rdb.Set(ctx, cacheKey, bytes, expire).Err(); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return nil
}

// DeleteCacheData löscht cacheKey. Kein Fehler, wenn der Key nicht existiert.
func DeleteCacheData(ctx context.Context, rdb redis.Cmdable, cacheKey string) error {
	return rdb.Del(ctx, cacheKey).Err()
}
