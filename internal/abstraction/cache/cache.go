package cache

import (
	"context"
	"time"

	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
)

// Cache speichert typisierte JSON-Werte unter einem Key.
type Cache[T any] interface {
	Get(ctx context.Context, key string) (*T, *app_errors.AppError)
	Set(ctx context.Context, key string, value *T, ttl time.Duration) *app_errors.AppError
	Del(ctx context.Context, key string) error
}
