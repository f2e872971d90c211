// Package database establishes the connection pool of the configured
// store: a pgx pool for PostgreSQL or a database/sql pool for MySQL.
//
// It handles:
//   - building a DSN from config
//   - pool sizing (MaxConns callers, the rest wait)
//   - wiring query tracing/logging (pgx tracelog, slow query warnings)
//   - optional New Relic instrumentation (nrpgx5)
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/deppfellow/pos-backend/internal/config"
	loggerConfig "github.com/deppfellow/pos-backend/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Database wraps the pool of the configured driver. Exactly one of Pool and
// SQL is set.
type Database struct {
	Driver string
	Pool   *pgxpool.Pool
	SQL    *sql.DB
	log    *zerolog.Logger
}

// DatabasePingTimeout is the number of seconds to wait for the start-up
// ping before considering the database unreachable.
const DatabasePingTimeout = 10

// New opens the pool for cfg.Database.Driver and pings it so start-up
// fails fast when the store is down.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	database := &Database{Driver: cfg.Database.Driver, log: logger}

	switch cfg.Database.Driver {
	case config.DriverMySQL:
		db, err := openMySQL(cfg, logger)
		if err != nil {
			return nil, err
		}
		database.SQL = db
	case config.DriverPostgres, "":
		pool, err := openPostgres(cfg, logger, loggerService)
		if err != nil {
			return nil, err
		}
		database.Driver = config.DriverPostgres
		database.Pool = pool
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err := database.Ping(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("driver", database.Driver).
		Int("max_conns", cfg.Database.MaxConns).
		Msg("connected to the database")

	return database, nil
}

// Ping checks that the store answers.
func (db *Database) Ping(ctx context.Context) error {
	if db.Pool != nil {
		return db.Pool.Ping(ctx)
	}
	if db.SQL != nil {
		return db.SQL.PingContext(ctx)
	}
	return fmt.Errorf("database not initialized")
}

// Close releases every pooled connection.
func (db *Database) Close() error {
	if db.log != nil {
		db.log.Info().Str("driver", db.Driver).Msg("closing database connection pool")
	}

	if db.Pool != nil {
		db.Pool.Close()
	}
	if db.SQL != nil {
		return db.SQL.Close()
	}
	return nil
}
