// ABOUTME: Inventory service: precondition checks in front of the pharmacy
// ABOUTME: store's stock mutations. Invalid calls never touch storage.
package service

import (
	"fmt"

	"github.com/hamzakhoso/clinic/internal/models"
	"github.com/hamzakhoso/clinic/internal/pharmacydb"
)

// InventoryService guards the pharmacy store's stock entry points.
type InventoryService struct {
	db *pharmacydb.DB
}

// NewInventoryService wraps a pharmacy store.
func NewInventoryService(db *pharmacydb.DB) *InventoryService {
	return &InventoryService{db: db}
}

// AddStock adds quantity to a variant. Quantities must be positive.
func (s *InventoryService) AddStock(variantID int64, quantity int, refType models.ReferenceType, refID, notes string) Result {
	if quantity <= 0 {
		return invalid("quantity must be positive")
	}
	if refType == "" {
		refType = models.RefPurchase
	}
	err := s.db.AddStock(variantID, quantity, refType, refID, notes)
	return classify(err, "stock added", "failed to add stock")
}

// DispenseStock deducts quantity from a variant. Quantities must be
// positive; deduction beyond the available quantity fails closed.
func (s *InventoryService) DispenseStock(variantID int64, quantity int, refType models.ReferenceType, refID, notes string) Result {
	if quantity <= 0 {
		return invalid("quantity must be positive")
	}
	if refType == "" {
		refType = models.RefPrescription
	}
	err := s.db.DeductStock(variantID, quantity, refType, refID, notes)
	return classify(err, "stock dispensed", "failed to dispense stock")
}

// ExpireStock writes off expired quantity as a disposal.
func (s *InventoryService) ExpireStock(variantID int64, quantity int, notes string) Result {
	if quantity <= 0 {
		return invalid("quantity must be positive")
	}
	if notes == "" {
		notes = "Expired medicine"
	}
	err := s.db.ExpireStock(variantID, quantity, "", notes)
	return classify(err, "stock marked as expired", "failed to expire stock")
}

// AdjustStock routes positive deltas to the add path and negative deltas to
// the dispense path, both tagged as adjustments. Zero is rejected as a no-op.
func (s *InventoryService) AdjustStock(variantID int64, delta int, notes string) Result {
	switch {
	case delta > 0:
		return s.AddStock(variantID, delta, models.RefAdjustment, "", notes)
	case delta < 0:
		return s.DispenseStock(variantID, -delta, models.RefAdjustment, "", notes)
	default:
		return invalid("no change in quantity")
	}
}

// CheckLowStock returns variants at or below their minimum stock level.
func (s *InventoryService) CheckLowStock() ([]models.LowStockItem, error) {
	return s.db.LowStock()
}

// StockLevel returns the current quantity for a variant.
func (s *InventoryService) StockLevel(variantID int64) (int, error) {
	return s.db.StockLevel(variantID)
}

// VerifyLedger runs drift detection and returns a result describing the
// outcome along with any findings.
func (s *InventoryService) VerifyLedger() ([]models.Drift, Result) {
	drifts, err := s.db.Reconcile()
	if err != nil {
		return nil, Result{Kind: StorageError, Message: err.Error()}
	}
	if len(drifts) == 0 {
		return nil, ok("stock matches the movement ledger")
	}
	return drifts, Result{
		Kind:    Ok,
		Message: fmt.Sprintf("%d variant(s) drifted from the ledger", len(drifts)),
	}
}
