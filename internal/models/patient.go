// ABOUTME: Patient and Visit models for the clinic store.
// ABOUTME: Includes the medicine text splitter used by visit entry.
package models

import (
	"strings"
	"time"
)

// Patient is a single clinic patient record.
type Patient struct {
	ID        int64     `db:"patient_id" json:"id" yaml:"id"`
	Name      string    `db:"name" json:"name" yaml:"name"`
	Phone     string    `db:"phone" json:"phone,omitempty" yaml:"phone,omitempty"`
	Age       int       `db:"age" json:"age,omitempty" yaml:"age,omitempty"`
	Gender    string    `db:"gender" json:"gender,omitempty" yaml:"gender,omitempty"`
	Address   string    `db:"address" json:"address,omitempty" yaml:"address,omitempty"`
	Notes     string    `db:"notes" json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at" yaml:"created_at"`
}

// Visit is one consultation belonging to a patient. MedicineText is the
// informal comma-separated list the doctor types, not a normalized reference
// into the pharmacy catalog.
type Visit struct {
	ID           int64     `db:"visit_id" json:"id" yaml:"id"`
	PatientID    int64     `db:"patient_id" json:"patient_id" yaml:"patient_id"`
	VisitDate    time.Time `db:"visit_date" json:"visit_date" yaml:"visit_date"`
	Complaints   string    `db:"complaints" json:"complaints,omitempty" yaml:"complaints,omitempty"`
	MedicineText string    `db:"medicine" json:"medicine,omitempty" yaml:"medicine,omitempty"`
	Fees         int       `db:"fees" json:"fees" yaml:"fees"`
	Remarks      string    `db:"remarks" json:"remarks,omitempty" yaml:"remarks,omitempty"`
}

// VisitWithPatient is a visit row joined with the patient's name for
// listings and reports.
type VisitWithPatient struct {
	Visit
	PatientName string `db:"patient_name" json:"patient_name" yaml:"patient_name"`
}

// Activity is one row of the dashboard's recent-activity feed.
type Activity struct {
	VisitDate   time.Time `db:"visit_date" json:"visit_date"`
	PatientName string    `db:"patient_name" json:"patient_name"`
	Gender      string    `db:"gender" json:"gender"`
	Age         int       `db:"age" json:"age"`
	Complaints  string    `db:"complaints" json:"complaints"`
	PatientID   int64     `db:"patient_id" json:"patient_id"`
}

// SplitMedicineNames splits a visit's free-text medicine field into
// individual names. Empty segments are dropped; surrounding whitespace is
// trimmed. The tally upsert is called once per returned name.
func SplitMedicineNames(text string) []string {
	var names []string
	for _, part := range strings.Split(text, ",") {
		name := strings.TrimSpace(part)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
