// ABOUTME: SQLite connection and lifecycle management for the pharmacy store.
// ABOUTME: Catalog, per-variant stock, movement ledger, and globule stock.
package pharmacydb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrNoStockRow is returned when a stock mutation targets a variant
	// without a stock row.
	ErrNoStockRow = errors.New("no stock row for variant")
	// ErrInsufficientStock is returned when a deduction exceeds the
	// available quantity. No writes happen in that case.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrNegativeGlobules is returned when a globule adjustment would take
	// the quantity below zero or deduct from a missing size row.
	ErrNegativeGlobules = errors.New("globule stock cannot go negative")
)

// DB wraps the pharmacy SQLite database connection.
type DB struct {
	db     *sqlx.DB
	dbPath string
}

// Open opens or creates the pharmacy database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open pharmacy database: %w", err)
	}

	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

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

func parseStoredTime(s string) time.Time {
	for _, layout := range []string{timeLayout, "2006-01-02", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
