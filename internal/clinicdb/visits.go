// ABOUTME: Visit CRUD and listing queries for the clinic store.
// ABOUTME: Listings are denormalized with the patient name, newest first.
package clinicdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hamzakhoso/clinic/internal/models"
)

type visitRow struct {
	ID           int64  `db:"visit_id"`
	PatientID    int64  `db:"patient_id"`
	VisitDate    string `db:"visit_date"`
	Complaints   string `db:"complaints"`
	MedicineText string `db:"medicine"`
	Fees         int    `db:"fees"`
	Remarks      string `db:"remarks"`
}

type visitWithPatientRow struct {
	visitRow
	PatientName string `db:"patient_name"`
}

func (r visitRow) toModel() models.Visit {
	return models.Visit{
		ID:           r.ID,
		PatientID:    r.PatientID,
		VisitDate:    parseStoredTime(r.VisitDate),
		Complaints:   r.Complaints,
		MedicineText: r.MedicineText,
		Fees:         r.Fees,
		Remarks:      r.Remarks,
	}
}

const visitColumns = "visit_id, patient_id, visit_date, complaints, medicine, fees, remarks"

const visitJoinQuery = `
	SELECT v.visit_id, v.patient_id, v.visit_date, v.complaints,
	       v.medicine, v.fees, v.remarks, p.name AS patient_name
	FROM visits v
	JOIN patients p ON v.patient_id = p.patient_id`

// CreateVisit stores a new visit. VisitDate defaults to now but is
// caller-settable, which allows backdating.
func (d *DB) CreateVisit(v *models.Visit) error {
	if v.VisitDate.IsZero() {
		v.VisitDate = time.Now()
	}
	res, err := d.db.Exec(`
		INSERT INTO visits (patient_id, complaints, medicine, fees, remarks, visit_date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		v.PatientID, v.Complaints, v.MedicineText, v.Fees, v.Remarks, formatTime(v.VisitDate),
	)
	if err != nil {
		return fmt.Errorf("create visit: %w", err)
	}
	v.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create visit: %w", err)
	}
	return nil
}

// UpdateVisit rewrites an existing visit's fields.
func (d *DB) UpdateVisit(v *models.Visit) error {
	res, err := d.db.Exec(`
		UPDATE visits
		SET complaints = ?, medicine = ?, fees = ?, remarks = ?, visit_date = ?
		WHERE visit_id = ?`,
		v.Complaints, v.MedicineText, v.Fees, v.Remarks, formatTime(v.VisitDate), v.ID,
	)
	if err != nil {
		return fmt.Errorf("update visit: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update visit: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update visit %d: %w", v.ID, ErrNotFound)
	}
	return nil
}

// DeleteVisit removes a single visit.
func (d *DB) DeleteVisit(id int64) error {
	res, err := d.db.Exec("DELETE FROM visits WHERE visit_id = ?", id)
	if err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete visit %d: %w", id, ErrNotFound)
	}
	return nil
}

// GetVisit returns a single visit by id.
func (d *DB) GetVisit(id int64) (*models.Visit, error) {
	var row visitRow
	err := d.db.Get(&row, "SELECT "+visitColumns+" FROM visits WHERE visit_id = ?", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("get visit %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get visit: %w", err)
	}
	v := row.toModel()
	return &v, nil
}

// GetVisits returns a patient's visits, most recent first. A limit of 0
// means no limit.
func (d *DB) GetVisits(patientID int64, limit int) ([]models.Visit, error) {
	query := "SELECT " + visitColumns + " FROM visits WHERE patient_id = ? ORDER BY visit_date DESC"
	args := []interface{}{patientID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var rows []visitRow
	if err := d.db.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("get visits: %w", err)
	}
	visits := make([]models.Visit, 0, len(rows))
	for _, r := range rows {
		visits = append(visits, r.toModel())
	}
	return visits, nil
}

// AllVisitsWithPatient returns every visit joined with the patient name,
// latest visit first.
func (d *DB) AllVisitsWithPatient() ([]models.VisitWithPatient, error) {
	var rows []visitWithPatientRow
	err := d.db.Select(&rows, visitJoinQuery+" ORDER BY v.visit_date DESC")
	if err != nil {
		return nil, fmt.Errorf("all visits: %w", err)
	}
	return visitsWithPatientFromRows(rows), nil
}

// TodayVisits returns the visits dated today.
func (d *DB) TodayVisits() ([]models.VisitWithPatient, error) {
	today := time.Now().Format("2006-01-02")
	var rows []visitWithPatientRow
	err := d.db.Select(&rows,
		visitJoinQuery+" WHERE DATE(v.visit_date) = ? ORDER BY v.visit_date DESC", today)
	if err != nil {
		return nil, fmt.Errorf("today visits: %w", err)
	}
	return visitsWithPatientFromRows(rows), nil
}

// VisitsByDateRange returns visits between two dates inclusive. Dates are
// given as YYYY-MM-DD.
func (d *DB) VisitsByDateRange(start, end string) ([]models.VisitWithPatient, error) {
	var rows []visitWithPatientRow
	err := d.db.Select(&rows,
		visitJoinQuery+" WHERE DATE(v.visit_date) BETWEEN ? AND ? ORDER BY v.visit_date DESC",
		start, end)
	if err != nil {
		return nil, fmt.Errorf("visits by date range: %w", err)
	}
	return visitsWithPatientFromRows(rows), nil
}

type activityRow struct {
	VisitDate   string `db:"visit_date"`
	PatientName string `db:"patient_name"`
	Gender      string `db:"gender"`
	Age         int    `db:"age"`
	Complaints  string `db:"complaints"`
	PatientID   int64  `db:"patient_id"`
}

// RecentActivity returns the latest visits as dashboard feed rows.
func (d *DB) RecentActivity(limit int) ([]models.Activity, error) {
	var rows []activityRow
	err := d.db.Select(&rows, `
		SELECT v.visit_date, p.name AS patient_name, p.gender, p.age,
		       v.complaints, p.patient_id
		FROM visits v
		JOIN patients p ON v.patient_id = p.patient_id
		ORDER BY v.visit_date DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	activity := make([]models.Activity, 0, len(rows))
	for _, r := range rows {
		activity = append(activity, models.Activity{
			VisitDate:   parseStoredTime(r.VisitDate),
			PatientName: r.PatientName,
			Gender:      r.Gender,
			Age:         r.Age,
			Complaints:  r.Complaints,
			PatientID:   r.PatientID,
		})
	}
	return activity, nil
}

// VisitCounts returns a patient-id → visit-count map for list screens.
func (d *DB) VisitCounts() (map[int64]int, error) {
	rows, err := d.db.Query("SELECT patient_id, COUNT(*) FROM visits GROUP BY patient_id")
	if err != nil {
		return nil, fmt.Errorf("visit counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var id int64
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan visit count: %w", err)
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

func visitsWithPatientFromRows(rows []visitWithPatientRow) []models.VisitWithPatient {
	visits := make([]models.VisitWithPatient, 0, len(rows))
	for _, r := range rows {
		visits = append(visits, models.VisitWithPatient{
			Visit:       r.visitRow.toModel(),
			PatientName: r.PatientName,
		})
	}
	return visits
}
