package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// DefaultBackendURL ist die Produktionsadresse des Marktplatz-Backends.
const DefaultBackendURL = "https://api.foodshare.vn/api"

type AppConfig struct {
	APP struct {
		Name     string `mapstructure:"NAME"`
		Port     string `mapstructure:"PORT"`
		State    string `mapstructure:"STATE"`
		LogLevel string `mapstructure:"LOG_LEVEL"`
	}

	BACKEND struct {
		BaseURL string        `mapstructure:"BASE_URL"`
		Timeout time.Duration `mapstructure:"TIMEOUT"` // 0 => kein eigener Timeout
	}

	REDIS struct {
		Addr     string `mapstructure:"ADDR"`
		Password string `mapstructure:"PASSWORD"`
		DB       int    `mapstructure:"DB"`
	}

	SESSION struct {
		CookieName string        `mapstructure:"COOKIE_NAME"`
		TTL        time.Duration `mapstructure:"TTL"`
		Secure     bool          `mapstructure:"SECURE"`
	}

	WEB struct {
		DistDir string `mapstructure:"DIST_DIR"`
	}

	LIMITER struct {
		LoginMax    int           `mapstructure:"LOGIN_MAX"`
		LoginWindow time.Duration `mapstructure:"LOGIN_WINDOW"`
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP.NAME", "foodshare-manager")
	v.SetDefault("APP.PORT", "8080")
	v.SetDefault("APP.STATE", "dev")
	v.SetDefault("APP.LOG_LEVEL", "debug")

	v.SetDefault("BACKEND.BASE_URL", DefaultBackendURL)
	v.SetDefault("BACKEND.TIMEOUT", time.Duration(0))

	v.SetDefault("REDIS.ADDR", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)

	v.SetDefault("SESSION.COOKIE_NAME", "bo_session")
	v.SetDefault("SESSION.TTL", 24*time.Hour)
	v.SetDefault("SESSION.SECURE", false)

	v.SetDefault("WEB.DIST_DIR", "")

	v.SetDefault("LIMITER.LOGIN_MAX", 10)
	v.SetDefault("LIMITER.LOGIN_WINDOW", time.Minute)
}

// LoadConfig liest application.yaml (optional), .env (optional) und Umgebungsvariablen.
// Umgebungsvariablen überschreiben die Datei: APP.PORT <- APP_PORT.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("Keine .env-Datei gefunden")
	}
	return load(viper.New(), ".")
}

func load(v *viper.Viper, configPath string) (*AppConfig, error) {
	v.SetConfigName("application")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	// Die Backend-Adresse darf auch unter dem Namen des Dashboards gesetzt werden.
	if err := v.BindEnv("BACKEND.BASE_URL", "BACKEND_BASE_URL", "API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("Fehler beim Binden der Umgebungsvariablen: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Error().Err(err).Msg("Fehler beim Lesen der Konfigurationsdatei")
			return nil, err
		}
		log.Debug().Msg("Keine application.yaml gefunden, nutze Umgebung und Standardwerte")
	}

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		log.Error().Err(err).Msg("Fehler beim Entpacken der Konfiguration")
		return nil, err
	}

	config.BACKEND.BaseURL = strings.TrimRight(strings.TrimSpace(config.BACKEND.BaseURL), "/")
	if config.BACKEND.BaseURL == "" {
		config.BACKEND.BaseURL = DefaultBackendURL
	}

	if config.APP.Port == "" {
		config.APP.Port = "8080"
	}

	if config.SESSION.TTL <= 0 {
		config.SESSION.TTL = 24 * time.Hour
	}

	log.Info().Str("backend", config.BACKEND.BaseURL).Msg("Konfiguration geladen...")
	return &config, nil
}
