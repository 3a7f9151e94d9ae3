// ABOUTME: Patient CRUD operations for the clinic store.
// ABOUTME: Deleting a patient cascades to its visits at the database level.
package clinicdb

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hamzakhoso/clinic/internal/models"
)

type patientRow struct {
	ID        int64  `db:"patient_id"`
	Name      string `db:"name"`
	Phone     string `db:"phone"`
	Age       int    `db:"age"`
	Gender    string `db:"gender"`
	Address   string `db:"address"`
	Notes     string `db:"notes"`
	CreatedAt string `db:"created_at"`
}

func (r patientRow) toModel() *models.Patient {
	return &models.Patient{
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		Age:       r.Age,
		Gender:    r.Gender,
		Address:   r.Address,
		Notes:     r.Notes,
		CreatedAt: parseStoredTime(r.CreatedAt),
	}
}

const patientColumns = "patient_id, name, phone, age, gender, address, notes, created_at"

// CreatePatient stores a new patient and fills in its ID and creation time.
// Name emptiness is the caller's concern; the store accepts what it is given.
func (d *DB) CreatePatient(p *models.Patient) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	res, err := d.db.Exec(`
		INSERT INTO patients (name, phone, age, gender, address, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Phone, p.Age, p.Gender, p.Address, p.Notes, formatTime(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	return nil
}

// UpdatePatient rewrites the identity fields of an existing patient.
func (d *DB) UpdatePatient(p *models.Patient) error {
	res, err := d.db.Exec(`
		UPDATE patients
		SET name = ?, phone = ?, age = ?, gender = ?, address = ?, notes = ?
		WHERE patient_id = ?`,
		p.Name, p.Phone, p.Age, p.Gender, p.Address, p.Notes, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update patient %d: %w", p.ID, ErrNotFound)
	}
	return nil
}

// DeletePatient removes a patient. The foreign-key cascade removes every
// visit referencing it and nothing else.
func (d *DB) DeletePatient(id int64) error {
	res, err := d.db.Exec("DELETE FROM patients WHERE patient_id = ?", id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete patient %d: %w", id, ErrNotFound)
	}
	return nil
}

// GetPatient retrieves a patient by ID.
func (d *DB) GetPatient(id int64) (*models.Patient, error) {
	var row patientRow
	err := d.db.Get(&row, "SELECT "+patientColumns+" FROM patients WHERE patient_id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("patient %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return row.toModel(), nil
}

// ListPatients returns all patients, newest first.
func (d *DB) ListPatients() ([]*models.Patient, error) {
	var rows []patientRow
	err := d.db.Select(&rows, "SELECT "+patientColumns+" FROM patients ORDER BY patient_id DESC")
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patientsFromRows(rows), nil
}

// RecentPatients returns the most recently registered patients.
func (d *DB) RecentPatients(limit int) ([]*models.Patient, error) {
	var rows []patientRow
	err := d.db.Select(&rows,
		"SELECT "+patientColumns+" FROM patients ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("recent patients: %w", err)
	}
	return patientsFromRows(rows), nil
}

// SearchPatients matches name or phone by substring, ordered by name.
func (d *DB) SearchPatients(query string) ([]*models.Patient, error) {
	like := "%" + query + "%"
	var rows []patientRow
	err := d.db.Select(&rows, `
		SELECT `+patientColumns+` FROM patients
		WHERE name LIKE ? OR phone LIKE ?
		ORDER BY name ASC`, like, like)
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	return patientsFromRows(rows), nil
}

func patientsFromRows(rows []patientRow) []*models.Patient {
	patients := make([]*models.Patient, 0, len(rows))
	for _, r := range rows {
		patients = append(patients, r.toModel())
	}
	return patients
}
