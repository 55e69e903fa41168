package auth_case

import (
	"context"
	"sync"
	"time"

	"github.com/Warzoness/foodshare-manager/internal/entity"
	app_errors "github.com/Warzoness/foodshare-manager/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Shell erzeugt Sitzungscontainer. Einmal beim Start gebaut und in die Router injiziert.
type Shell struct {
	store  SessionStore
	logout LogoutFunc
	ttl    time.Duration
}

func NewShell(store SessionStore, logout LogoutFunc, ttl time.Duration) *Shell {
	return &Shell{store: store, logout: logout, ttl: ttl}
}

// Open baut den Container einer Sitzung und liest den persistierten Benutzer.
func (s *Shell) Open(ctx context.Context, sessionID string) (*Session, *app_errors.AppError) {
	session := &Session{
		id:      sessionID,
		store:   s.store,
		logout:  s.logout,
		ttl:     s.ttl,
		loading: true,
	}
	if err := session.Init(ctx); err != nil {
		return nil, err
	}
	return session, nil
}

// Session hält den Benutzer einer Dashboard-Sitzung. Login und Logout sind die einzigen Mutatoren.
type Session struct {
	mu      sync.RWMutex
	id      string
	user    *entity.AuthenticatedUser
	loading bool

	store  SessionStore
	logout LogoutFunc
	ttl    time.Duration
}

func (s *Session) ID() string {
	return s.id
}

// Init liest den persistierten Benutzer. loading ist danach false, auch bei Cache-Miss.
func (s *Session) Init(ctx context.Context) *app_errors.AppError {
	var user *entity.AuthenticatedUser
	if s.id != "" {
		cached, err := s.store.Get(ctx, s.id)
		if err != nil {
			log.Error().Err(err).Str("session", s.id).Msg("Fehler beim Lesen der Sitzung")
			return err
		}
		user = cached
	}

	s.mu.Lock()
	s.user = user
	s.loading = false
	s.mu.Unlock()
	return nil
}

// Login übernimmt das Ergebnis des Login-Aufrufs. Kein Netzwerkaufruf.
func (s *Session) Login(ctx context.Context, user entity.AuthenticatedUser) *app_errors.AppError {
	if !user.Role.IsValid() {
		return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "auth.invalid_role", nil)
	}

	if err := s.store.Set(ctx, s.id, &user, s.ttl); err != nil {
		log.Error().Err(err).Str("session", s.id).Msg("Fehler beim Speichern der Sitzung")
		return err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Logout ruft die externe Abmelderoutine auf und leert danach den Zustand,
// auch wenn die Routine fehlschlägt.
func (s *Session) Logout(ctx context.Context, authorization string) *app_errors.AppError {
	if s.logout != nil {
		if err := s.logout(ctx, authorization); err != nil {
			log.Warn().Err(err).Str("session", s.id).Msg("Externe Abmeldung fehlgeschlagen, Sitzung wird trotzdem geleert")
		}
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if s.id == "" {
		return nil
	}
	if err := s.store.Del(ctx, s.id); err != nil {
		log.Error().Err(err).Str("session", s.id).Msg("Fehler beim Löschen der Sitzung")
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return nil
}

func (s *Session) User() *entity.AuthenticatedUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := SessionState{Loading: s.loading}
	if s.user != nil {
		u := *s.user
		state.User = &u
	}
	return state
}
