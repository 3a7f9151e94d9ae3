// ABOUTME: Tests for the pharmacy catalog.
// ABOUTME: Covers medicine masters, variants, and the paired stock row.
package pharmacydb

import (
	"errors"
	"testing"

	"github.com/hamzakhoso/clinic/internal/models"
)

func TestCreateMedicineAndGet(t *testing.T) {
	db := setupTestDB(t)

	m := &models.MedicineMaster{
		Name:         "OPIUM",
		Category:     models.CategoryDilution,
		Manufacturer: "Schwabe",
		Active:       true,
		Restricted:   true,
	}
	if err := db.CreateMedicine(m); err != nil {
		t.Fatalf("CreateMedicine failed: %v", err)
	}
	if m.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := db.GetMedicineMaster(m.ID)
	if err != nil {
		t.Fatalf("GetMedicineMaster failed: %v", err)
	}
	if got.Name != "OPIUM" || got.Category != models.CategoryDilution {
		t.Errorf("unexpected medicine: %+v", got)
	}
	if !got.Restricted {
		t.Error("expected restricted flag to persist")
	}
}

func TestGetMedicineMasterNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetMedicineMaster(999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchMedicines(t *testing.T) {
	db := setupTestDB(t)
	for _, name := range []string{"ARNICA MONTANA", "BELLADONNA"} {
		m := &models.MedicineMaster{Name: name, Category: models.CategoryDilution, Active: true}
		if err := db.CreateMedicine(m); err != nil {
			t.Fatalf("CreateMedicine failed: %v", err)
		}
	}

	results, err := db.SearchMedicines("arnica")
	if err != nil {
		t.Fatalf("SearchMedicines failed: %v", err)
	}
	if len(results) != 1 || results[0].Name != "ARNICA MONTANA" {
		t.Errorf("unexpected search results: %+v", results)
	}
}

func TestCreateVariantSeedsZeroStock(t *testing.T) {
	db := setupTestDB(t)
	variantID := createTestVariant(t, db, 5)

	quantity, err := db.StockLevel(variantID)
	if err != nil {
		t.Fatalf("StockLevel failed: %v", err)
	}
	if quantity != 0 {
		t.Errorf("new variant stock = %d, want 0", quantity)
	}
}

func TestVariantsForMedicine(t *testing.T) {
	db := setupTestDB(t)

	m := &models.MedicineMaster{Name: "ARNICA MONTANA", Category: models.CategoryDilution, Active: true}
	if err := db.CreateMedicine(m); err != nil {
		t.Fatalf("CreateMedicine failed: %v", err)
	}
	for _, potency := range []string{"30C", "200C"} {
		v := &models.Variant{MedicineID: m.ID, Potency: potency, Form: "liquid"}
		if err := db.CreateVariant(v); err != nil {
			t.Fatalf("CreateVariant failed: %v", err)
		}
	}

	variants, err := db.VariantsForMedicine(m.ID)
	if err != nil {
		t.Fatalf("VariantsForMedicine failed: %v", err)
	}
	if len(variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(variants))
	}
	for _, v := range variants {
		if v.Quantity != 0 {
			t.Errorf("variant %s quantity = %d, want 0", v.Potency, v.Quantity)
		}
	}
}
