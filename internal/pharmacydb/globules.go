// ABOUTME: Globule pellet stock keyed by size class, outside the
// ABOUTME: master/variant hierarchy. Quantities can never go negative.
package pharmacydb

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hamzakhoso/clinic/internal/models"
)

// UpdateGlobuleStock applies a signed delta to the stock for a size class,
// creating the row on a positive first delta. A delta that would take the
// quantity below zero, or a negative delta against a missing size, fails
// with ErrNegativeGlobules and writes nothing.
func (d *DB) UpdateGlobuleStock(size, delta int) error {
	tx, err := d.db.Beginx()
	if err != nil {
		return fmt.Errorf("update globule stock: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var current int
	err = tx.Get(&current, "SELECT quantity_available FROM globule_stock WHERE size = ?", size)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if delta < 0 {
			return fmt.Errorf("globule size %d: %w", size, ErrNegativeGlobules)
		}
		_, err = tx.Exec(
			"INSERT INTO globule_stock (size, quantity_available) VALUES (?, ?)", size, delta)
	case err == nil:
		if current+delta < 0 {
			return fmt.Errorf("globule size %d has %d: %w", size, current, ErrNegativeGlobules)
		}
		_, err = tx.Exec(
			"UPDATE globule_stock SET quantity_available = ? WHERE size = ?", current+delta, size)
	}
	if err != nil {
		return fmt.Errorf("update globule stock: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("update globule stock: %w", err)
	}
	return nil
}

// GlobuleStock returns every size class, smallest first.
func (d *DB) GlobuleStock() ([]models.GlobuleStock, error) {
	var stock []models.GlobuleStock
	err := d.db.Select(&stock,
		"SELECT id, size, quantity_available, min_level FROM globule_stock ORDER BY size ASC")
	if err != nil {
		return nil, fmt.Errorf("globule stock: %w", err)
	}
	return stock, nil
}
