// ABOUTME: Tests for the medicine usage tally.
// ABOUTME: Covers the upsert counter, ordering, search, and deletes.
package clinicdb

import (
	"errors"
	"testing"
)

func TestCreateOrIncrementMedicine(t *testing.T) {
	db := setupTestDB(t)

	if err := db.CreateOrIncrementMedicine("Arnica 30"); err != nil {
		t.Fatalf("CreateOrIncrementMedicine failed: %v", err)
	}
	if err := db.CreateOrIncrementMedicine("Arnica 30"); err != nil {
		t.Fatalf("CreateOrIncrementMedicine failed: %v", err)
	}
	if err := db.CreateOrIncrementMedicine("Belladonna 200"); err != nil {
		t.Fatalf("CreateOrIncrementMedicine failed: %v", err)
	}

	entries, err := db.ListMedicineTally()
	if err != nil {
		t.Fatalf("ListMedicineTally failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	// Most used first.
	if entries[0].Name != "Arnica 30" || entries[0].TimesUsed != 2 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Name != "Belladonna 200" || entries[1].TimesUsed != 1 {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
	if entries[0].LastUsed == nil {
		t.Error("expected LastUsed to be set")
	}
}

func TestAddTallyMedicineStartsAtZero(t *testing.T) {
	db := setupTestDB(t)

	if err := db.AddTallyMedicine("Nux Vomica", "for indigestion"); err != nil {
		t.Fatalf("AddTallyMedicine failed: %v", err)
	}

	entries, err := db.ListMedicineTally()
	if err != nil {
		t.Fatalf("ListMedicineTally failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].TimesUsed != 0 {
		t.Errorf("TimesUsed = %d, want 0", entries[0].TimesUsed)
	}
	if entries[0].Description != "for indigestion" {
		t.Errorf("Description = %q", entries[0].Description)
	}
	if entries[0].LastUsed != nil {
		t.Error("expected LastUsed to be nil for an unused entry")
	}
}

func TestSearchMedicineTally(t *testing.T) {
	db := setupTestDB(t)
	if err := db.CreateOrIncrementMedicine("Arnica 30"); err != nil {
		t.Fatalf("CreateOrIncrementMedicine failed: %v", err)
	}
	if err := db.CreateOrIncrementMedicine("Belladonna 200"); err != nil {
		t.Fatalf("CreateOrIncrementMedicine failed: %v", err)
	}

	entries, err := db.SearchMedicineTally("arnica")
	if err != nil {
		t.Fatalf("SearchMedicineTally failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "Arnica 30" {
		t.Errorf("unexpected search result: %+v", entries)
	}
}

func TestDeleteTallyMedicine(t *testing.T) {
	db := setupTestDB(t)
	if err := db.CreateOrIncrementMedicine("Arnica 30"); err != nil {
		t.Fatalf("CreateOrIncrementMedicine failed: %v", err)
	}
	entries, err := db.ListMedicineTally()
	if err != nil {
		t.Fatalf("ListMedicineTally failed: %v", err)
	}

	if err := db.DeleteTallyMedicine(entries[0].ID); err != nil {
		t.Fatalf("DeleteTallyMedicine failed: %v", err)
	}
	remaining, err := db.ListMedicineTally()
	if err != nil {
		t.Fatalf("ListMedicineTally failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected empty tally, got %d entries", len(remaining))
	}

	if err := db.DeleteTallyMedicine(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
