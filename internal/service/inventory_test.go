// ABOUTME: Tests for the inventory service wrappers.
// ABOUTME: Invalid calls must be rejected before any storage write.
package service

import (
	"path/filepath"
	"testing"

	"github.com/hamzakhoso/clinic/internal/models"
	"github.com/hamzakhoso/clinic/internal/pharmacydb"
)

func setupInventory(t *testing.T) (*InventoryService, *pharmacydb.DB, int64) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "pharmacy.db")
	db, err := pharmacydb.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	m := &models.MedicineMaster{Name: "ARNICA MONTANA", Category: models.CategoryDilution, Active: true}
	if err := db.CreateMedicine(m); err != nil {
		t.Fatalf("failed to create medicine: %v", err)
	}
	v := &models.Variant{MedicineID: m.ID, Potency: "30C", Form: "liquid", MinStockLevel: 5}
	if err := db.CreateVariant(v); err != nil {
		t.Fatalf("failed to create variant: %v", err)
	}

	return NewInventoryService(db), db, v.ID
}

func TestAddStockRejectsNonPositiveQuantity(t *testing.T) {
	svc, db, variantID := setupInventory(t)

	for _, quantity := range []int{0, -5} {
		res := svc.AddStock(variantID, quantity, models.RefPurchase, "", "")
		if res.Kind != ValidationFailed {
			t.Errorf("AddStock(%d) kind = %s, want validation failed", quantity, res.Kind)
		}
	}

	// Rejected calls never reach the ledger.
	count, err := db.MovementCount(variantID)
	if err != nil {
		t.Fatalf("MovementCount failed: %v", err)
	}
	if count != 0 {
		t.Errorf("MovementCount = %d, want 0", count)
	}
}

func TestDispenseStockRejectsNonPositiveQuantity(t *testing.T) {
	svc, db, variantID := setupInventory(t)

	res := svc.DispenseStock(variantID, 0, models.RefPrescription, "", "")
	if res.Kind != ValidationFailed {
		t.Errorf("kind = %s, want validation failed", res.Kind)
	}
	count, _ := db.MovementCount(variantID)
	if count != 0 {
		t.Errorf("MovementCount = %d, want 0", count)
	}
}

func TestDispenseStockInsufficientKind(t *testing.T) {
	svc, _, variantID := setupInventory(t)

	if res := svc.AddStock(variantID, 3, models.RefPurchase, "", ""); !res.OK() {
		t.Fatalf("AddStock failed: %s", res.Message)
	}
	res := svc.DispenseStock(variantID, 5, models.RefPrescription, "", "")
	if res.Kind != InsufficientStock {
		t.Errorf("kind = %s, want insufficient stock", res.Kind)
	}
}

func TestAddStockUnknownVariantKind(t *testing.T) {
	svc, _, _ := setupInventory(t)

	res := svc.AddStock(999, 10, models.RefPurchase, "", "")
	if res.Kind != NotFound {
		t.Errorf("kind = %s, want not found", res.Kind)
	}
}

func TestAdjustStockRouting(t *testing.T) {
	svc, db, variantID := setupInventory(t)

	if res := svc.AdjustStock(variantID, 10, "count correction"); !res.OK() {
		t.Fatalf("positive adjust failed: %s", res.Message)
	}
	if res := svc.AdjustStock(variantID, -3, "broken bottles"); !res.OK() {
		t.Fatalf("negative adjust failed: %s", res.Message)
	}

	quantity, err := svc.StockLevel(variantID)
	if err != nil {
		t.Fatalf("StockLevel failed: %v", err)
	}
	if quantity != 7 {
		t.Errorf("StockLevel = %d, want 7", quantity)
	}

	// Both directions land in the ledger as adjustments.
	movements, err := db.Movements(variantID, 0)
	if err != nil {
		t.Fatalf("Movements failed: %v", err)
	}
	if len(movements) != 2 {
		t.Fatalf("expected 2 movements, got %d", len(movements))
	}
	for _, m := range movements {
		if m.ReferenceType != models.RefAdjustment {
			t.Errorf("ReferenceType = %s, want ADJUSTMENT", m.ReferenceType)
		}
	}
}

func TestAdjustStockZeroDelta(t *testing.T) {
	svc, db, variantID := setupInventory(t)

	res := svc.AdjustStock(variantID, 0, "")
	if res.Kind != ValidationFailed {
		t.Errorf("kind = %s, want validation failed", res.Kind)
	}
	count, _ := db.MovementCount(variantID)
	if count != 0 {
		t.Errorf("MovementCount = %d, want 0", count)
	}
}

func TestExpireStockDefaultsNotes(t *testing.T) {
	svc, db, variantID := setupInventory(t)

	if res := svc.AddStock(variantID, 10, models.RefPurchase, "", ""); !res.OK() {
		t.Fatalf("AddStock failed: %s", res.Message)
	}
	if res := svc.ExpireStock(variantID, 2, ""); !res.OK() {
		t.Fatalf("ExpireStock failed: %s", res.Message)
	}

	movements, err := db.Movements(variantID, 1)
	if err != nil {
		t.Fatalf("Movements failed: %v", err)
	}
	if movements[0].Notes != "Expired medicine" {
		t.Errorf("Notes = %q, want default", movements[0].Notes)
	}
}

func TestVerifyLedgerClean(t *testing.T) {
	svc, _, variantID := setupInventory(t)

	if res := svc.AddStock(variantID, 10, models.RefPurchase, "", ""); !res.OK() {
		t.Fatalf("AddStock failed: %s", res.Message)
	}

	drifts, res := svc.VerifyLedger()
	if !res.OK() {
		t.Fatalf("VerifyLedger failed: %s", res.Message)
	}
	if len(drifts) != 0 {
		t.Errorf("expected no drift, got %+v", drifts)
	}
}
