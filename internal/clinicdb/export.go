// ABOUTME: Export functionality for clinic data.
// ABOUTME: Patient CSV for spreadsheets, JSON/YAML for full backups.
package clinicdb

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hamzakhoso/clinic/internal/models"
)

// csvHeader is the fixed patient export header. Consumers rely on the
// column order staying stable.
var csvHeader = []string{"ID", "Name", "Phone", "Age", "Gender", "Address", "Notes", "Created At"}

// ExportPatientsCSV streams every patient row to a CSV file at the given
// path, header first.
func (d *DB) ExportPatientsCSV(path string) error {
	patients, err := d.ListPatients()
	if err != nil {
		return fmt.Errorf("export patients: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range patients {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Phone,
			strconv.Itoa(p.Age),
			p.Gender,
			p.Address,
			p.Notes,
			formatTime(p.CreatedAt),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ExportData is the full backup format for clinic data.
type ExportData struct {
	Version    string                    `json:"version" yaml:"version"`
	ExportID   string                    `json:"export_id" yaml:"export_id"`
	ExportedAt time.Time                 `json:"exported_at" yaml:"exported_at"`
	Tool       string                    `json:"tool" yaml:"tool"`
	Patients   []*models.Patient         `json:"patients" yaml:"patients"`
	Visits     []models.VisitWithPatient `json:"visits" yaml:"visits"`
	Tally      []*models.MedicineTally   `json:"medicine_tally" yaml:"medicine_tally"`
}

// GetAllData retrieves all clinic data for backup.
func (d *DB) GetAllData() (*ExportData, error) {
	patients, err := d.ListPatients()
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	visits, err := d.AllVisitsWithPatient()
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	tally, err := d.ListMedicineTally()
	if err != nil {
		return nil, fmt.Errorf("list tally: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportID:   uuid.NewString(),
		ExportedAt: time.Now(),
		Tool:       "clinic",
		Patients:   patients,
		Visits:     visits,
		Tally:      tally,
	}, nil
}

// ExportJSON exports all clinic data as indented JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all clinic data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}
