// ABOUTME: Catalog CRUD: medicine master entries and their variants.
// ABOUTME: Creating a variant always creates its zero stock row with it.
package pharmacydb

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hamzakhoso/clinic/internal/models"
)

const masterColumns = "id, name, category, manufacturer, is_active, is_restricted, notes"

// CreateMedicine inserts a catalog entry and returns its id.
func (d *DB) CreateMedicine(m *models.MedicineMaster) error {
	res, err := d.db.Exec(`
		INSERT INTO medicine_master (name, category, manufacturer, is_active, is_restricted, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.Name, string(m.Category), m.Manufacturer, m.Active, m.Restricted, m.Notes)
	if err != nil {
		return fmt.Errorf("create medicine: %w", err)
	}
	m.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create medicine: %w", err)
	}
	return nil
}

// GetMedicineMaster retrieves a catalog entry by id.
func (d *DB) GetMedicineMaster(id int64) (*models.MedicineMaster, error) {
	var m models.MedicineMaster
	err := d.db.Get(&m, "SELECT "+masterColumns+" FROM medicine_master WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("medicine %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get medicine: %w", err)
	}
	return &m, nil
}

// SearchMedicines matches catalog names by substring, case-insensitively,
// ordered alphabetically.
func (d *DB) SearchMedicines(query string) ([]models.MedicineMaster, error) {
	var medicines []models.MedicineMaster
	err := d.db.Select(&medicines,
		"SELECT "+masterColumns+" FROM medicine_master WHERE name LIKE ? ORDER BY name ASC",
		"%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("search medicines: %w", err)
	}
	return medicines, nil
}

// CreateVariant inserts a variant row and, in the same transaction, an
// insert-if-absent zero stock row. No variant may exist stock-less.
func (d *DB) CreateVariant(v *models.Variant) error {
	tx, err := d.db.Beginx()
	if err != nil {
		return fmt.Errorf("create variant: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := tx.Exec(`
		INSERT INTO medicine_variants (medicine_id, potency, form, bottle_size, unit_type, min_stock_level, expiry_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		v.MedicineID, v.Potency, v.Form, v.BottleSize, v.UnitType, v.MinStockLevel, v.ExpiryDate)
	if err != nil {
		return fmt.Errorf("create variant: %w", err)
	}
	v.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create variant: %w", err)
	}

	_, err = tx.Exec(`
		INSERT OR IGNORE INTO inventory_stock (variant_id, quantity_available)
		VALUES (?, 0)`, v.ID)
	if err != nil {
		return fmt.Errorf("initialize stock row: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create variant: %w", err)
	}
	return nil
}

// VariantsForMedicine returns a medicine's variants joined with their
// current stock quantities.
func (d *DB) VariantsForMedicine(medicineID int64) ([]models.VariantWithStock, error) {
	var variants []models.VariantWithStock
	err := d.db.Select(&variants, `
		SELECT v.id, v.medicine_id, v.potency, v.form, v.bottle_size,
		       v.unit_type, v.min_stock_level, v.expiry_date,
		       COALESCE(s.quantity_available, 0) AS quantity_available
		FROM medicine_variants v
		LEFT JOIN inventory_stock s ON v.id = s.variant_id
		WHERE v.medicine_id = ?`, medicineID)
	if err != nil {
		return nil, fmt.Errorf("variants for medicine: %w", err)
	}
	return variants, nil
}
