// ABOUTME: Tests for globule pellet stock.
// ABOUTME: Size counters are created on first receipt and never go negative.
package pharmacydb

import (
	"errors"
	"testing"
)

func TestGlobuleStockUpsert(t *testing.T) {
	db := setupTestDB(t)

	if err := db.UpdateGlobuleStock(30, 500); err != nil {
		t.Fatalf("UpdateGlobuleStock failed: %v", err)
	}
	if err := db.UpdateGlobuleStock(30, -50); err != nil {
		t.Fatalf("UpdateGlobuleStock failed: %v", err)
	}
	if err := db.UpdateGlobuleStock(10, 200); err != nil {
		t.Fatalf("UpdateGlobuleStock failed: %v", err)
	}

	stock, err := db.GlobuleStock()
	if err != nil {
		t.Fatalf("GlobuleStock failed: %v", err)
	}
	if len(stock) != 2 {
		t.Fatalf("expected 2 size classes, got %d", len(stock))
	}

	// Ordered by size ascending.
	if stock[0].Size != 10 || stock[0].Quantity != 200 {
		t.Errorf("unexpected first row: %+v", stock[0])
	}
	if stock[1].Size != 30 || stock[1].Quantity != 450 {
		t.Errorf("unexpected second row: %+v", stock[1])
	}
}

func TestGlobuleStockNeverNegative(t *testing.T) {
	db := setupTestDB(t)

	if err := db.UpdateGlobuleStock(30, 100); err != nil {
		t.Fatalf("UpdateGlobuleStock failed: %v", err)
	}

	err := db.UpdateGlobuleStock(30, -150)
	if !errors.Is(err, ErrNegativeGlobules) {
		t.Fatalf("expected ErrNegativeGlobules, got %v", err)
	}

	stock, err := db.GlobuleStock()
	if err != nil {
		t.Fatalf("GlobuleStock failed: %v", err)
	}
	if stock[0].Quantity != 100 {
		t.Errorf("failed update must not change quantity, got %d", stock[0].Quantity)
	}
}

func TestGlobuleStockNegativeDeltaOnMissingSize(t *testing.T) {
	db := setupTestDB(t)

	if err := db.UpdateGlobuleStock(40, -10); !errors.Is(err, ErrNegativeGlobules) {
		t.Errorf("expected ErrNegativeGlobules, got %v", err)
	}
}
