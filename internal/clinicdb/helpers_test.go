// ABOUTME: Shared test helpers for clinic store tests.
// ABOUTME: Provides setupTestDB for isolated per-test databases.
package clinicdb

import (
	"path/filepath"
	"testing"

	"github.com/hamzakhoso/clinic/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "clinic.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestPatient(t *testing.T, db *DB, name string) *models.Patient {
	t.Helper()
	p := &models.Patient{
		Name:   name,
		Phone:  "0300-1234567",
		Age:    34,
		Gender: "M",
	}
	if err := db.CreatePatient(p); err != nil {
		t.Fatalf("failed to create patient: %v", err)
	}
	return p
}
