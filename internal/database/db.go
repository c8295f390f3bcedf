// Package database opens the relational store and holds every query the
// menu actions run against it
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/staffdesk/staffdesk/internal/config"
	_ "modernc.org/sqlite"
)

// Open connects to the configured store, applies migrations and, when asked,
// seeds the sample organisation. Every failure wraps ErrConnection.
func Open(ctx context.Context, cfg config.Database) (*Store, error) {
	if cfg.Driver == config.DriverSQLite {
		if err := ensureDBDir(cfg.DSN); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConnection, err)
		}
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", ErrConnection, err)
	}

	// One connection for the whole session; SQLite pragmas are per connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	fail := func(err error) (*Store, error) {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	if cfg.Driver == config.DriverSQLite {
		if err := applyPragmas(ctx, db, cfg.DSN); err != nil {
			return fail(err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		return fail(fmt.Errorf("database ping failed: %w", err))
	}

	if err := runMigrations(ctx, db, cfg.Driver); err != nil {
		return fail(fmt.Errorf("failed to run migrations: %w", err))
	}

	store := NewStore(db, cfg.Driver)

	if cfg.SeedSampleData {
		if err := SeedSampleData(ctx, store); err != nil {
			return fail(fmt.Errorf("failed to seed sample data: %w", err))
		}
	}

	slog.Info("connected to database", "driver", cfg.Driver)
	return store, nil
}

func applyPragmas(ctx context.Context, db *sql.DB, dsn string) error {
	// Enable foreign key constraints so roles and employees keep valid references
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if !isMemoryDSN(dsn) {
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// Wait up to 5 seconds if another process holds the file lock
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return nil
}
