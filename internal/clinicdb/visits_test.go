// ABOUTME: Tests for visit CRUD, listings, and earnings stats.
// ABOUTME: Covers ordering, backdating, date ranges, and fee totals.
package clinicdb

import (
	"errors"
	"testing"
	"time"

	"github.com/hamzakhoso/clinic/internal/models"
)

func TestCreateVisitDefaultsToNow(t *testing.T) {
	db := setupTestDB(t)
	p := createTestPatient(t, db, "Ali Khan")

	v := &models.Visit{
		PatientID:    p.ID,
		Complaints:   "Fever, body ache",
		MedicineText: "Arnica 30, Belladonna 200",
		Fees:         500,
	}
	if err := db.CreateVisit(v); err != nil {
		t.Fatalf("CreateVisit failed: %v", err)
	}
	if v.ID == 0 {
		t.Fatal("expected assigned id")
	}

	visits, err := db.GetVisits(p.ID, 0)
	if err != nil {
		t.Fatalf("GetVisits failed: %v", err)
	}
	if len(visits) != 1 {
		t.Fatalf("expected 1 visit, got %d", len(visits))
	}
	got := visits[0]
	if got.Complaints != "Fever, body ache" || got.Fees != 500 {
		t.Errorf("unexpected visit: %+v", got)
	}
	if got.MedicineText != "Arnica 30, Belladonna 200" {
		t.Errorf("unexpected medicine text: %q", got.MedicineText)
	}
	if time.Since(got.VisitDate) > time.Minute {
		t.Errorf("expected visit date near now, got %v", got.VisitDate)
	}
}

func TestCreateVisitBackdated(t *testing.T) {
	db := setupTestDB(t)
	p := createTestPatient(t, db, "Ali Khan")

	past := time.Date(2024, 6, 15, 10, 30, 0, 0, time.Local)
	v := &models.Visit{PatientID: p.ID, VisitDate: past, Fees: 300}
	if err := db.CreateVisit(v); err != nil {
		t.Fatalf("CreateVisit failed: %v", err)
	}

	visits, err := db.GetVisits(p.ID, 0)
	if err != nil {
		t.Fatalf("GetVisits failed: %v", err)
	}
	if !visits[0].VisitDate.Equal(past) {
		t.Errorf("expected %v, got %v", past, visits[0].VisitDate)
	}
}

func TestGetVisitsMostRecentFirst(t *testing.T) {
	db := setupTestDB(t)
	p := createTestPatient(t, db, "Ali Khan")

	dates := []time.Time{
		time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local),
		time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local),
		time.Date(2024, 2, 1, 9, 0, 0, 0, time.Local),
	}
	for _, d := range dates {
		if err := db.CreateVisit(&models.Visit{PatientID: p.ID, VisitDate: d, Fees: 100}); err != nil {
			t.Fatalf("CreateVisit failed: %v", err)
		}
	}

	visits, err := db.GetVisits(p.ID, 0)
	if err != nil {
		t.Fatalf("GetVisits failed: %v", err)
	}
	if len(visits) != 3 {
		t.Fatalf("expected 3 visits, got %d", len(visits))
	}
	for i := 1; i < len(visits); i++ {
		if visits[i].VisitDate.After(visits[i-1].VisitDate) {
			t.Errorf("visits out of order at %d", i)
		}
	}

	limited, err := db.GetVisits(p.ID, 2)
	if err != nil {
		t.Fatalf("GetVisits failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected limit of 2, got %d", len(limited))
	}
}

func TestUpdateAndDeleteVisit(t *testing.T) {
	db := setupTestDB(t)
	p := createTestPatient(t, db, "Ali Khan")

	v := &models.Visit{PatientID: p.ID, Fees: 500}
	if err := db.CreateVisit(v); err != nil {
		t.Fatalf("CreateVisit failed: %v", err)
	}

	v.Fees = 700
	v.Remarks = "Follow up in two weeks"
	if err := db.UpdateVisit(v); err != nil {
		t.Fatalf("UpdateVisit failed: %v", err)
	}

	got, err := db.GetVisit(v.ID)
	if err != nil {
		t.Fatalf("GetVisit failed: %v", err)
	}
	if got.Fees != 700 || got.Remarks != "Follow up in two weeks" {
		t.Errorf("update not applied: %+v", got)
	}

	if err := db.DeleteVisit(v.ID); err != nil {
		t.Fatalf("DeleteVisit failed: %v", err)
	}
	if _, err := db.GetVisit(v.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestTodayVisits(t *testing.T) {
	db := setupTestDB(t)
	p := createTestPatient(t, db, "Ali Khan")

	today := &models.Visit{PatientID: p.ID, Fees: 500}
	if err := db.CreateVisit(today); err != nil {
		t.Fatalf("CreateVisit failed: %v", err)
	}
	yesterday := &models.Visit{
		PatientID: p.ID,
		VisitDate: time.Now().AddDate(0, 0, -1),
		Fees:      300,
	}
	if err := db.CreateVisit(yesterday); err != nil {
		t.Fatalf("CreateVisit failed: %v", err)
	}

	visits, err := db.TodayVisits()
	if err != nil {
		t.Fatalf("TodayVisits failed: %v", err)
	}
	if len(visits) != 1 {
		t.Fatalf("expected 1 visit today, got %d", len(visits))
	}
	if visits[0].PatientName != "Ali Khan" {
		t.Errorf("expected joined patient name, got %q", visits[0].PatientName)
	}
}

func TestVisitsByDateRange(t *testing.T) {
	db := setupTestDB(t)
	p := createTestPatient(t, db, "Ali Khan")

	for _, d := range []string{"2024-12-01", "2024-12-15", "2024-12-31", "2025-01-01"} {
		day, _ := time.ParseInLocation("2006-01-02", d, time.Local)
		v := &models.Visit{PatientID: p.ID, VisitDate: day.Add(10 * time.Hour), Fees: 100}
		if err := db.CreateVisit(v); err != nil {
			t.Fatalf("CreateVisit failed: %v", err)
		}
	}

	// Range ends are inclusive.
	visits, err := db.VisitsByDateRange("2024-12-01", "2024-12-31")
	if err != nil {
		t.Fatalf("VisitsByDateRange failed: %v", err)
	}
	if len(visits) != 3 {
		t.Errorf("expected 3 visits in range, got %d", len(visits))
	}
}

func TestEarnings(t *testing.T) {
	db := setupTestDB(t)
	p := createTestPatient(t, db, "Ali Khan")

	if err := db.CreateVisit(&models.Visit{PatientID: p.ID, Fees: 500}); err != nil {
		t.Fatalf("CreateVisit failed: %v", err)
	}
	if err := db.CreateVisit(&models.Visit{PatientID: p.ID, Fees: 300}); err != nil {
		t.Fatalf("CreateVisit failed: %v", err)
	}
	lastYear := &models.Visit{
		PatientID: p.ID,
		VisitDate: time.Now().AddDate(-1, 0, 0),
		Fees:      1000,
	}
	if err := db.CreateVisit(lastYear); err != nil {
		t.Fatalf("CreateVisit failed: %v", err)
	}

	today, err := db.TodayEarnings()
	if err != nil {
		t.Fatalf("TodayEarnings failed: %v", err)
	}
	if today != 800 {
		t.Errorf("TodayEarnings = %d, want 800", today)
	}

	now := time.Now()
	month, err := db.MonthEarnings(now.Year(), now.Month())
	if err != nil {
		t.Fatalf("MonthEarnings failed: %v", err)
	}
	if month != 800 {
		t.Errorf("MonthEarnings = %d, want 800", month)
	}

	total, err := db.TotalEarnings()
	if err != nil {
		t.Fatalf("TotalEarnings failed: %v", err)
	}
	if total != 1800 {
		t.Errorf("TotalEarnings = %d, want 1800", total)
	}
}

func TestEarningsEmptyStore(t *testing.T) {
	db := setupTestDB(t)

	total, err := db.TotalEarnings()
	if err != nil {
		t.Fatalf("TotalEarnings failed: %v", err)
	}
	if total != 0 {
		t.Errorf("TotalEarnings = %d, want 0", total)
	}
}

func TestRecentActivityAndCounters(t *testing.T) {
	db := setupTestDB(t)
	p := createTestPatient(t, db, "Ali Khan")

	for i := 0; i < 3; i++ {
		v := &models.Visit{PatientID: p.ID, Complaints: "Fever", Fees: 100}
		if err := db.CreateVisit(v); err != nil {
			t.Fatalf("CreateVisit failed: %v", err)
		}
	}

	activity, err := db.RecentActivity(2)
	if err != nil {
		t.Fatalf("RecentActivity failed: %v", err)
	}
	if len(activity) != 2 {
		t.Fatalf("expected 2 activity rows, got %d", len(activity))
	}
	if activity[0].PatientName != "Ali Khan" || activity[0].Complaints != "Fever" {
		t.Errorf("unexpected activity row: %+v", activity[0])
	}

	counts, err := db.VisitCounts()
	if err != nil {
		t.Fatalf("VisitCounts failed: %v", err)
	}
	if counts[p.ID] != 3 {
		t.Errorf("VisitCounts[%d] = %d, want 3", p.ID, counts[p.ID])
	}

	total, err := db.TotalPatients()
	if err != nil {
		t.Fatalf("TotalPatients failed: %v", err)
	}
	if total != 1 {
		t.Errorf("TotalPatients = %d, want 1", total)
	}

	newToday, err := db.NewPatientsToday()
	if err != nil {
		t.Fatalf("NewPatientsToday failed: %v", err)
	}
	if newToday != 1 {
		t.Errorf("NewPatientsToday = %d, want 1", newToday)
	}
}
