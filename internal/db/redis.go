package db

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	redis_storage "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisPool erstellt den Redis-Client für Sitzungen und Rate-Limiter und prüft die Erreichbarkeit.
// Der Caller schließt den Client mit client.Close().
func RedisPool(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     20,
		MaxIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Error().Err(err).Str("addr", addr).Msg("Fehler beim Erstellen des Redis-Pool")
		_ = rdb.Close()
		return nil, fmt.Errorf("Verbindung zu Redis nicht möglich: %w", err)
	}

	return rdb, nil
}

// LimiterStorage baut den Fiber-Storage für den Login-Limiter auf einer eigenen Redis-DB,
// damit Limiter-Keys nicht zwischen den Sitzungen liegen.
func LimiterStorage(addr, password string, db int) (*redis_storage.Storage, error) {
	host, rawPort, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("Redis-Adresse %q ungültig: %w", addr, err)
	}
	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return nil, fmt.Errorf("Redis-Port %q ungültig: %w", rawPort, err)
	}

	return redis_storage.New(redis_storage.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: db + 1,
	}), nil
}
