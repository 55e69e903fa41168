package auth_case

import (
	"context"

	"github.com/Warzoness/foodshare-manager/internal/abstraction/cache"
	"github.com/Warzoness/foodshare-manager/internal/entity"
	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
)

// SessionStore persistiert den angemeldeten Benutzer pro Sitzungs-ID.
type SessionStore = cache.Cache[entity.AuthenticatedUser]

// LogoutFunc ist die externe Abmelderoutine (Backend-Logout), die vor dem Leeren aufgerufen wird.
type LogoutFunc func(ctx context.Context, authorization string) error

// ShellContract öffnet Dashboard-Sitzungen.
type ShellContract interface {
	Open(ctx context.Context, sessionID string) (*Session, *app_errors.AppError)
}
