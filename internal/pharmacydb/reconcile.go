// ABOUTME: Drift detection between the cached stock counter and the
// ABOUTME: movement ledger. Read-only; reports, never repairs.
package pharmacydb

import (
	"fmt"

	"github.com/hamzakhoso/clinic/internal/models"
)

// Reconcile folds the movement ledger per variant and compares the net
// against the cached quantity. IN and RETURN raise stock, OUT and EXPIRED
// lower it, ADJUST rows carry their own sign. An empty result means the
// paired-write convention has held for every variant.
func (d *DB) Reconcile() ([]models.Drift, error) {
	var drifts []models.Drift
	err := d.db.Select(&drifts, `
		SELECT s.variant_id,
		       s.quantity_available AS cached,
		       COALESCE((
		           SELECT SUM(CASE
		               WHEN m.movement_type IN ('IN', 'RETURN') THEN m.quantity
		               WHEN m.movement_type IN ('OUT', 'EXPIRED') THEN -m.quantity
		               ELSE m.quantity
		           END)
		           FROM inventory_movements m
		           WHERE m.variant_id = s.variant_id
		       ), 0) AS ledger_net
		FROM inventory_stock s`)
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}

	var out []models.Drift
	for _, dr := range drifts {
		if dr.Cached != dr.LedgerNet {
			out = append(out, dr)
		}
	}
	return out, nil
}
