package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/srgjo27/hotel_booking/internal/platform/config"
)

const retryDelay = 2 * time.Second

// NewPostgresDB opens a pool and pings it, retrying while the server comes up.
func NewPostgresDB(ctx context.Context, cfg config.PostgresConfig, log zerolog.Logger) (*sql.DB, error) {
	var lastErr error

	for i := 1; i <= cfg.ConnectRetries; i++ {
		log.Info().Int("attempt", i).Int("max_attempts", cfg.ConnectRetries).Msg("connecting to database")

		db, err := open(ctx, cfg)
		if err == nil {
			log.Info().Str("host", cfg.Host).Str("database", cfg.Database).Msg("database connected")
			return db, nil
		}
		lastErr = err

		log.Warn().Err(err).Dur("retry_in", retryDelay).Msg("database not ready")

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connect database: %w", ctx.Err())
		case <-time.After(retryDelay):
		}
	}

	return nil, fmt.Errorf("connect database after %d attempts: %w", cfg.ConnectRetries, lastErr)
}

func open(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
