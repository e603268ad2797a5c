// Package db provides the SQLite database used by the analytics pipeline.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	*sql.DB
	path string
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute pragma %q: %w", pragma, err)
		}
	}

	d := &DB{DB: db, path: path}
	if err := d.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.path
}

// Migrate creates the analytics tables. The goqite table is created by the
// queue package.
func (d *DB) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS analytics_events (
		id TEXT PRIMARY KEY,
		site_id TEXT NOT NULL,
		event_type TEXT NOT NULL,
		payload TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_analytics_events_type ON analytics_events(event_type);
	CREATE INDEX IF NOT EXISTS idx_analytics_events_created ON analytics_events(created_at);
	`

	_, err := d.Exec(schema)
	return err
}

// SqlConn returns a go-zero sqlx.SqlConn wrapping the underlying database.
// Every query gets circuit breaking and tracing.
func (d *DB) SqlConn() sqlx.SqlConn {
	return sqlx.NewSqlConnFromDB(d.DB, sqlx.WithAcceptable(sqliteAcceptable))
}

// sqliteAcceptable keeps "database is locked" (WAL contention) from tripping
// the circuit breaker.
func sqliteAcceptable(err error) bool {
	return err == nil || strings.Contains(err.Error(), "database is locked")
}
