// Package db opens the bounded PostgreSQL connection pool shared by all
// request handlers.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const pingTimeout = 5 * time.Second

// PoolConfig sizes the pool: Size connections are kept idle, up to
// Size+MaxOverflow may be open at once and none lives longer than Recycle.
type PoolConfig struct {
	DSN         string
	Size        int
	MaxOverflow int
	Recycle     time.Duration
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// Open creates the pool on the pgx driver and verifies it with a ping.
// Idle connections are health checked by the driver before reuse.
func Open(ctx context.Context, cfg PoolConfig) (*sql.DB, error) {
	db, err := sqlOpen("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	Configure(db, cfg)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return db, nil
}

// Configure applies the pool limits to db.
func Configure(db *sql.DB, cfg PoolConfig) {
	db.SetMaxOpenConns(cfg.Size + cfg.MaxOverflow)
	db.SetMaxIdleConns(cfg.Size)
	db.SetConnMaxLifetime(cfg.Recycle)
}
