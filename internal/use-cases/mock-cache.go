package use_cases

import (
	"context"
	"time"

	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
)

type MockCache[T any] struct {
	GetFn func(ctx context.Context, key string) (*T, *app_errors.AppError)
	SetFn func(ctx context.Context, key string, val *T, ttl time.Duration) *app_errors.AppError
	DelFn func(ctx context.Context, key string) error

	GetCalled int
	SetCalled int
	DelCalled int
}

func (m *MockCache[T]) Get(ctx context.Context, key string) (*T, *app_errors.AppError) {
	m.GetCalled++
	if m.GetFn == nil {
		return nil, nil
	}
	return m.GetFn(ctx, key)
}

func (m *MockCache[T]) Set(ctx context.Context, key string, val *T, ttl time.Duration) *app_errors.AppError {
	m.SetCalled++
	if m.SetFn == nil {
		return nil
	}
	return m.SetFn(ctx, key, val, ttl)
}

func (m *MockCache[T]) Del(ctx context.Context, key string) error {
	m.DelCalled++
	if m.DelFn == nil {
		return nil
	}
	return m.DelFn(ctx, key)
}
