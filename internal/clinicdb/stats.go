// ABOUTME: Aggregate queries for the dashboard and earnings reports.
// ABOUTME: Empty result sets come back as zero, never as an error.
package clinicdb

import (
	"fmt"
	"time"
)

// TotalPatients returns the number of registered patients.
func (d *DB) TotalPatients() (int, error) {
	var count int
	if err := d.db.Get(&count, "SELECT COUNT(*) FROM patients"); err != nil {
		return 0, fmt.Errorf("total patients: %w", err)
	}
	return count, nil
}

// NewPatientsToday counts patients registered today.
func (d *DB) NewPatientsToday() (int, error) {
	today := time.Now().Format("2006-01-02")
	var count int
	err := d.db.Get(&count, "SELECT COUNT(*) FROM patients WHERE DATE(created_at) = ?", today)
	if err != nil {
		return 0, fmt.Errorf("new patients today: %w", err)
	}
	return count, nil
}

// TodayEarnings sums the fees of today's visits.
func (d *DB) TodayEarnings() (int, error) {
	today := time.Now().Format("2006-01-02")
	var total int
	err := d.db.Get(&total,
		"SELECT COALESCE(SUM(fees), 0) FROM visits WHERE DATE(visit_date) = ?", today)
	if err != nil {
		return 0, fmt.Errorf("today earnings: %w", err)
	}
	return total, nil
}

// MonthEarnings sums the fees of every visit in the given month.
func (d *DB) MonthEarnings(year int, month time.Month) (int, error) {
	var total int
	err := d.db.Get(&total, `
		SELECT COALESCE(SUM(fees), 0) FROM visits
		WHERE strftime('%Y', visit_date) = ? AND strftime('%m', visit_date) = ?`,
		fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", int(month)))
	if err != nil {
		return 0, fmt.Errorf("month earnings: %w", err)
	}
	return total, nil
}

// EarningsByDateRange sums fees for visits between two YYYY-MM-DD dates
// inclusive.
func (d *DB) EarningsByDateRange(start, end string) (int, error) {
	var total int
	err := d.db.Get(&total,
		"SELECT COALESCE(SUM(fees), 0) FROM visits WHERE DATE(visit_date) BETWEEN ? AND ?",
		start, end)
	if err != nil {
		return 0, fmt.Errorf("earnings by date range: %w", err)
	}
	return total, nil
}

// TotalEarnings sums the fees of all visits ever recorded.
func (d *DB) TotalEarnings() (int, error) {
	var total int
	if err := d.db.Get(&total, "SELECT COALESCE(SUM(fees), 0) FROM visits"); err != nil {
		return 0, fmt.Errorf("total earnings: %w", err)
	}
	return total, nil
}
