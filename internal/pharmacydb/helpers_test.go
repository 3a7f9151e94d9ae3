// ABOUTME: Shared test helpers for pharmacy store tests.
// ABOUTME: Provides setupTestDB and a catalog-plus-variant fixture.
package pharmacydb

import (
	"path/filepath"
	"testing"

	"github.com/hamzakhoso/clinic/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "pharmacy.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// createTestVariant builds a medicine with one variant and returns the
// variant id. The stock row starts at zero.
func createTestVariant(t *testing.T, db *DB, minStock int) int64 {
	t.Helper()
	m := &models.MedicineMaster{
		Name:     "ARNICA MONTANA",
		Category: models.CategoryDilution,
		Active:   true,
	}
	if err := db.CreateMedicine(m); err != nil {
		t.Fatalf("failed to create medicine: %v", err)
	}
	v := &models.Variant{
		MedicineID:    m.ID,
		Potency:       "30C",
		Form:          "liquid",
		BottleSize:    "30ml",
		UnitType:      "bottle",
		MinStockLevel: minStock,
	}
	if err := db.CreateVariant(v); err != nil {
		t.Fatalf("failed to create variant: %v", err)
	}
	return v.ID
}
