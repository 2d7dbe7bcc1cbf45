// Package sqlite implements the version store and its host collaborators on
// an embedded SQLite database. It shares every statement with the PostgreSQL
// adapter through sqlstmt and differs only in driver plumbing.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/heartmarshall/moduleversion/internal/adapter/sqlite/migrations"
	"github.com/heartmarshall/moduleversion/internal/adapter/sqlstmt"
)

// Store owns the SQLite connection and hands out repositories bound to it.
type Store struct {
	sqlDB *sql.DB
	sql   sqlstmt.Builder
}

// Open opens (creating if needed) the database at path and applies the
// embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	// _txlock=immediate takes the write lock at BEGIN.
	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_txlock=immediate"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := migrate(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return &Store{sqlDB: sqlDB, sql: sqlstmt.SQLite()}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// DB exposes the underlying handle for callers that seed host tables.
func (s *Store) DB() *sql.DB {
	return s.sqlDB
}

// TxManager returns a transaction manager for this store.
func (s *Store) TxManager() *TxManager {
	return &TxManager{db: s.sqlDB}
}

// Versions returns the module version repository.
func (s *Store) Versions() *VersionRepo {
	return &VersionRepo{store: s, now: timeNow}
}

// Modules returns the host module repository.
func (s *Store) Modules() *ModuleRepo {
	return &ModuleRepo{store: s}
}

// Extensions returns the host extension repository.
func (s *Store) Extensions() *ExtensionRepo {
	return &ExtensionRepo{store: s}
}

func (s *Store) querier(ctx context.Context) querier {
	return querierFromCtx(ctx, s.sqlDB)
}
