// Package main ist der Einstiegspunkt des Back-Office-Gateways "foodshare-manager".
// Es lädt die Konfiguration, verbindet Redis (Sitzungen, Login-Limiter), baut den
// Backend-Client und die Handler-Varianten, registriert die Router und startet Fiber.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Warzoness/foodshare-manager/internal/abstraction/cache"
	"github.com/Warzoness/foodshare-manager/internal/backend"
	"github.com/Warzoness/foodshare-manager/internal/config"
	"github.com/Warzoness/foodshare-manager/internal/db"
	"github.com/Warzoness/foodshare-manager/internal/entity"
	proxy_handlers "github.com/Warzoness/foodshare-manager/internal/handlers/proxy"
	"github.com/Warzoness/foodshare-manager/internal/i18n"
	"github.com/Warzoness/foodshare-manager/internal/middleware"
	"github.com/Warzoness/foodshare-manager/internal/routers"
	auth_case "github.com/Warzoness/foodshare-manager/internal/use-cases/auth-case"
	user_case "github.com/Warzoness/foodshare-manager/internal/use-cases/user-case"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// 0. I18N Einführung
	i18nSvc := i18n.NewInitI18nService()

	// 1. Konfiguration laden
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Konfiguration konnte nicht geladen werden")
	}
	setupLogger(cfg)

	// 2. Redis für Sitzungen und Limiter
	ctx := context.Background()
	redisPool, err := db.RedisPool(ctx, cfg.REDIS.Addr, cfg.REDIS.Password, cfg.REDIS.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Fehler beim Initialisieren Redis-Pool")
	}
	limiterStore, err := db.LimiterStorage(cfg.REDIS.Addr, cfg.REDIS.Password, cfg.REDIS.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Fehler beim Initialisieren des Limiter-Storage")
	}

	// 3. Backend-Client, Handler-Varianten und Auth-Shell
	client := backend.NewHTTPClient(cfg.BACKEND.BaseURL, cfg.BACKEND.Timeout)
	proxy := proxy_handlers.NewProxy(client, i18nSvc)
	sessions := cache.NewRedisCache[entity.AuthenticatedUser](redisPool, "session:")
	shell := auth_case.NewShell(sessions, backend.NewLogoutRoutine(client), cfg.SESSION.TTL)

	// 4. Fiber-App mit ErrorHandler, Recover-, RequestID-, Sprach- und Logger-Middleware
	app := fiber.New(fiber.Config{
		AppName:      cfg.APP.Name,
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	app.Use(recover.New())
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept, Accept-Language, Authorization, X-Request-ID",
		AllowCredentials: false,
	}))

	// 5. Routen registrieren
	routers.SetupRoutes(app, routers.Deps{
		Config:         cfg,
		Proxy:          proxy,
		Shell:          shell,
		Users:          user_case.NewUserService(),
		I18n:           i18nSvc,
		Redis:          redisPool,
		LimiterStorage: limiterStore,
	})

	go func() {
		log.Info().Msgf("Starte %s auf Port %s (Backend: %s)", cfg.APP.Name, cfg.APP.Port, cfg.BACKEND.BaseURL)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil {
			if err == http.ErrServerClosed {
				log.Info().Msg("Server ordnungsgemäß herunterfahren.")
			} else {
				log.Fatal().Err(err).Msgf("Der Server konnte nicht gestartet werden, %v", err)
			}
		}
	}()

	// 6. Graceful Shutdown bei SIGINT/SIGTERM
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-sigCtx.Done()
	stop()
	log.Warn().Msg("Shutdown-Signal empfangen... Vorbereitung zum Herunterfahren.")

	// Erst Fiber, damit laufende Handler Redis noch erreichen
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msgf("Beim Herunterfahren ist ein Fehler aufgtreten: %v", err)
	}

	if err := limiterStore.Close(); err != nil {
		log.Error().Err(err).Msg("Limiter-Storage konnte nicht geschlossen werden")
	}
	if redisPool != nil {
		redisPool.Close()
		log.Info().Msg("Redis-Pool erfolgreich geschlossen.")
	}
	log.Info().Msg("Server ordnungsgemäß herunterfahren.")
}

// setupLogger: JSON in prod, sonst ConsoleWriter. Level aus APP.LOG_LEVEL.
func setupLogger(cfg *config.AppConfig) {
	level, err := zerolog.ParseLevel(cfg.APP.LogLevel)
	if err != nil || cfg.APP.LogLevel == "" {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.APP.State == "prod" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Str("app", cfg.APP.Name).Logger()
	}
}
