// ABOUTME: SQLite connection and lifecycle management for the clinic store.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required) via sqlx.
package clinicdb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Timestamps are stored as SQLite-native text so DATE() and strftime()
// comparisons work without timezone conversion.
const timeLayout = "2006-01-02 15:04:05"

var (
	// ErrNotFound is returned when a lookup, update, or delete matches no row.
	ErrNotFound = errors.New("not found")
	// ErrUsernameExists is returned by AddUser on a duplicate username.
	ErrUsernameExists = errors.New("username already exists")
	// ErrBadCredentials is returned when password verification fails.
	ErrBadCredentials = errors.New("invalid username or password")
)

// DB wraps the clinic SQLite database connection.
type DB struct {
	db     *sqlx.DB
	dbPath string
}

// Open opens or creates the clinic database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open clinic database: %w", err)
	}

	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	// Single-user tool: one connection keeps the per-operation isolation of
	// the original design while multi-statement mutations share a transaction.
	db.SetMaxOpenConns(1)

	d := &DB{db: db, dbPath: dbPath}

	if err := d.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}

	if err := d.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// configurePragmas sets up SQLite for reliable single-user operation.
func (d *DB) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := d.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// parseStoredTime reads a timestamp written by this store. Falls back to the
// formats SQLite's CURRENT_TIMESTAMP and date-only inputs produce.
func parseStoredTime(s string) time.Time {
	for _, layout := range []string{timeLayout, "2006-01-02", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
