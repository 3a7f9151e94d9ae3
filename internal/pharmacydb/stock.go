// ABOUTME: Stock mutation with the paired-write contract: every quantity
// ABOUTME: change commits together with its movement ledger row, or not at all.
package pharmacydb

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hamzakhoso/clinic/internal/models"
)

// AddStock increments a variant's quantity and appends an IN movement as a
// single transaction. Fails with ErrNoStockRow when the variant has no
// stock row, so the ledger can never record a change that didn't land.
func (d *DB) AddStock(variantID int64, quantity int, refType models.ReferenceType, refID, notes string) error {
	return d.moveStock(variantID, quantity, models.MovementIn, refType, refID, notes)
}

// DeductStock reads the current quantity first and fails closed, with no
// writes, when the stock row is missing or quantity exceeds what is
// available. Otherwise the decrement and the OUT movement commit together.
func (d *DB) DeductStock(variantID int64, quantity int, refType models.ReferenceType, refID, notes string) error {
	return d.moveStock(variantID, -quantity, models.MovementOut, refType, refID, notes)
}

// ExpireStock removes expired quantity with an EXPIRED movement.
func (d *DB) ExpireStock(variantID int64, quantity int, refID, notes string) error {
	return d.moveStock(variantID, -quantity, models.MovementExpired, models.RefDisposal, refID, notes)
}

// ReturnStock puts returned quantity back with a RETURN movement.
func (d *DB) ReturnStock(variantID int64, quantity int, refID, notes string) error {
	return d.moveStock(variantID, quantity, models.MovementReturn, models.RefAdjustment, refID, notes)
}

// moveStock applies a signed delta to the cached quantity and appends the
// matching ledger row inside one transaction. The ledger stores unsigned
// quantities; direction lives in the movement type.
func (d *DB) moveStock(variantID int64, delta int, mt models.MovementType, refType models.ReferenceType, refID, notes string) error {
	tx, err := d.db.Beginx()
	if err != nil {
		return fmt.Errorf("move stock: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var current int
	err = tx.Get(&current,
		"SELECT quantity_available FROM inventory_stock WHERE variant_id = ?", variantID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("variant %d: %w", variantID, ErrNoStockRow)
	}
	if err != nil {
		return fmt.Errorf("read stock: %w", err)
	}
	if current+delta < 0 {
		return fmt.Errorf("variant %d has %d, need %d: %w",
			variantID, current, -delta, ErrInsufficientStock)
	}

	now := formatTime(time.Now())
	_, err = tx.Exec(`
		UPDATE inventory_stock
		SET quantity_available = quantity_available + ?, last_updated = ?
		WHERE variant_id = ?`, delta, now, variantID)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}

	quantity := delta
	if quantity < 0 {
		quantity = -quantity
	}
	_, err = tx.Exec(`
		INSERT INTO inventory_movements (variant_id, movement_type, quantity, reference_type, reference_id, notes, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		variantID, string(mt), quantity, string(refType), refID, notes, now)
	if err != nil {
		return fmt.Errorf("record movement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("move stock: %w", err)
	}
	return nil
}

// StockLevel returns the current quantity for a variant, zero when the
// variant has no stock row.
func (d *DB) StockLevel(variantID int64) (int, error) {
	var quantity int
	err := d.db.Get(&quantity,
		"SELECT quantity_available FROM inventory_stock WHERE variant_id = ?", variantID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("stock level: %w", err)
	}
	return quantity, nil
}

// LowStock returns every variant at or below its minimum stock level.
func (d *DB) LowStock() ([]models.LowStockItem, error) {
	var items []models.LowStockItem
	err := d.db.Select(&items, `
		SELECT m.name, v.potency, v.form, s.quantity_available, v.min_stock_level
		FROM medicine_variants v
		JOIN inventory_stock s ON v.id = s.variant_id
		JOIN medicine_master m ON v.medicine_id = m.id
		WHERE s.quantity_available <= v.min_stock_level`)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	return items, nil
}

type movementRow struct {
	ID            int64  `db:"id"`
	VariantID     int64  `db:"variant_id"`
	MovementType  string `db:"movement_type"`
	Quantity      int    `db:"quantity"`
	ReferenceType string `db:"reference_type"`
	ReferenceID   string `db:"reference_id"`
	Timestamp     string `db:"timestamp"`
	Notes         string `db:"notes"`
}

// Movements returns a variant's ledger entries, newest first. A limit of 0
// means no limit.
func (d *DB) Movements(variantID int64, limit int) ([]models.Movement, error) {
	query := `
		SELECT id, variant_id, movement_type, quantity, reference_type, reference_id, timestamp, notes
		FROM inventory_movements
		WHERE variant_id = ?
		ORDER BY timestamp DESC, id DESC`
	args := []interface{}{variantID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var rows []movementRow
	if err := d.db.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	movements := make([]models.Movement, 0, len(rows))
	for _, r := range rows {
		movements = append(movements, models.Movement{
			ID:            r.ID,
			VariantID:     r.VariantID,
			MovementType:  models.MovementType(r.MovementType),
			Quantity:      r.Quantity,
			ReferenceType: models.ReferenceType(r.ReferenceType),
			ReferenceID:   r.ReferenceID,
			Timestamp:     parseStoredTime(r.Timestamp),
			Notes:         r.Notes,
		})
	}
	return movements, nil
}

// MovementCount returns the number of ledger rows for a variant.
func (d *DB) MovementCount(variantID int64) (int, error) {
	var count int
	err := d.db.Get(&count,
		"SELECT COUNT(*) FROM inventory_movements WHERE variant_id = ?", variantID)
	if err != nil {
		return 0, fmt.Errorf("movement count: %w", err)
	}
	return count, nil
}
