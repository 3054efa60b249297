// Package sqlite implements persistence.Medium on a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"example.com/fitpulse/internal/persistence"
	"example.com/fitpulse/internal/persistence/sqlite/migrations"
)

// Medium stores every key as one row of the kv table.
type Medium struct {
	db     *sql.DB
	closed atomic.Bool
}

// Open opens (creating if needed) the database at dsn and applies migrations.
// Use ":memory:" for a private in-memory database.
func Open(ctx context.Context, dsn string, logger logrus.FieldLogger) (*Medium, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	// One connection keeps ":memory:" databases shared and writes serialised.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", dsn, err)
	}

	if err := runMigrations(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Medium{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB, logger logrus.FieldLogger) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	if logger == nil {
		return nil
	}
	for _, r := range results {
		logger.WithFields(logrus.Fields{
			"version":  r.Source.Version,
			"duration": r.Duration,
		}).Debug("applied migration")
	}
	return nil
}

// Get implements persistence.Medium.
func (m *Medium) Get(ctx context.Context, key string) ([]byte, error) {
	if m.closed.Load() {
		return nil, persistence.ErrUnavailable
	}

	var value []byte
	err := m.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

// Set implements persistence.Medium.
func (m *Medium) Set(ctx context.Context, key string, value []byte) error {
	if m.closed.Load() {
		return persistence.ErrUnavailable
	}

	_, err := m.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

// Delete implements persistence.Medium.
func (m *Medium) Delete(ctx context.Context, key string) error {
	if m.closed.Load() {
		return persistence.ErrUnavailable
	}

	if _, err := m.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

// Close releases the database handle.
func (m *Medium) Close() error {
	if m.closed.Swap(true) {
		return nil
	}
	return m.db.Close()
}
