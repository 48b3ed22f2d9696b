// Package sqlite provides the SQLite-backed telemetry event store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Xavientois/shuttle/internal/platform/storage/sqlitemigrate"
	"github.com/Xavientois/shuttle/internal/storage/sqlite/migrations"
	"github.com/Xavientois/shuttle/internal/telemetry"
	_ "modernc.org/sqlite"
)

// Store appends telemetry events to a SQLite database.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a telemetry store at the provided path, creating the schema
// when needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
//
// Close is nil-safe so callers can defer it in all startup paths.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// AppendEvent persists one telemetry event.
func (s *Store) AppendEvent(ctx context.Context, evt telemetry.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO telemetry_events (timestamp, severity, source, kind, message)
VALUES (?, ?, ?, ?, ?)`,
		evt.Timestamp.UTC().UnixMilli(),
		string(evt.Severity),
		evt.Source,
		evt.Kind,
		evt.Message,
	)
	if err != nil {
		return fmt.Errorf("append telemetry event: %w", err)
	}
	return nil
}

// CountEvents reports the number of stored events of the given kind.
// It backs the maintenance tooling and tests; the hot path only appends.
func (s *Store) CountEvents(ctx context.Context, kind string) (int, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var count int
	err := s.sqlDB.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM telemetry_events WHERE kind = ?", kind,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count telemetry events: %w", err)
	}
	return count, nil
}
