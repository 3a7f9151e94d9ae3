// ABOUTME: Printable HTML patient profile report.
// ABOUTME: Renders the patient header plus one card per visit.
package report

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/hamzakhoso/clinic/internal/models"
)

// PatientProfile is the data handed to the report template.
type PatientProfile struct {
	ClinicName string
	DoctorName string
	Patient    *models.Patient
	Visits     []visitView
	PrintedAt  string
}

type visitView struct {
	ID         int64
	Date       string
	Complaints string
	Medicines  []string
	Fees       int
	Remarks    string
}

// WritePatientProfile renders the patient profile report as HTML.
func WritePatientProfile(w io.Writer, clinicName, doctorName string, patient *models.Patient, visits []models.Visit) error {
	data := PatientProfile{
		ClinicName: clinicName,
		DoctorName: doctorName,
		Patient:    patient,
		PrintedAt:  time.Now().Format("02-Jan-2006 03:04 PM"),
	}
	for _, v := range visits {
		view := visitView{
			ID:         v.ID,
			Date:       v.VisitDate.Format("2006-01-02 15:04"),
			Complaints: v.Complaints,
			Medicines:  models.SplitMedicineNames(v.MedicineText),
			Fees:       v.Fees,
			Remarks:    v.Remarks,
		}
		data.Visits = append(data.Visits, view)
	}

	if err := profileTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render patient profile: %w", err)
	}
	return nil
}

var profileTemplate = template.Must(template.New("profile").Parse(strings.TrimSpace(`
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.ClinicName}} - Patient Report</title>
<style>
  :root {
    --primary: #0056b3;
    --muted: #5f6c7b;
    --border: #e1e4e8;
  }
  body {
    font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
    color: #2c3e50;
    margin: 0;
    padding: 40px;
    font-size: 14px;
    line-height: 1.5;
  }
  .report { max-width: 900px; margin: auto; }
  header { border-bottom: 3px solid var(--primary); padding-bottom: 12px; margin-bottom: 24px; }
  header h1 { color: var(--primary); margin: 0; }
  header .doctor { color: var(--muted); }
  .patient-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 4px 24px; margin-bottom: 28px; }
  .patient-grid .label { color: var(--muted); font-size: 12px; text-transform: uppercase; }
  .visit-card { border: 1px solid var(--border); border-radius: 8px; margin-bottom: 16px; page-break-inside: avoid; }
  .visit-header { background: #f0f4f8; padding: 8px 14px; display: flex; justify-content: space-between; }
  .visit-body { padding: 12px 14px; }
  .visit-body .label { color: var(--muted); font-size: 12px; text-transform: uppercase; display: block; }
  .meds li { margin: 2px 0; }
  .no-records { color: var(--muted); text-align: center; padding: 32px; }
  footer { margin-top: 32px; color: var(--muted); font-size: 12px; text-align: center; }
  @media print { body { padding: 0; } }
</style>
</head>
<body>
<div class="report">
  <header>
    <h1>{{.ClinicName}}</h1>
    {{if .DoctorName}}<div class="doctor">{{.DoctorName}}</div>{{end}}
  </header>

  <section class="patient-grid">
    <div><span class="label">Patient</span> {{.Patient.Name}} (#{{.Patient.ID}})</div>
    <div><span class="label">Phone</span> {{.Patient.Phone}}</div>
    <div><span class="label">Age / Gender</span> {{.Patient.Age}} / {{.Patient.Gender}}</div>
    <div><span class="label">Address</span> {{.Patient.Address}}</div>
    {{if .Patient.Notes}}<div><span class="label">Notes</span> {{.Patient.Notes}}</div>{{end}}
  </section>

  {{if .Visits}}
    {{range .Visits}}
    <div class="visit-card">
      <div class="visit-header">
        <span>Date: {{.Date}}</span>
        <span>Visit #{{.ID}}</span>
      </div>
      <div class="visit-body">
        <span class="label">Diagnosis / History</span>
        <div>{{.Complaints}}</div>
        <span class="label">Rx (Medicines)</span>
        {{if .Medicines}}
        <ul class="meds">
          {{range .Medicines}}<li>{{.}}</li>{{end}}
        </ul>
        {{else}}<div>N/A</div>{{end}}
        {{if .Remarks}}<span class="label">Remarks</span> <div>{{.Remarks}}</div>{{end}}
      </div>
    </div>
    {{end}}
  {{else}}
    <div class="no-records">No visit history found for this patient.</div>
  {{end}}

  <footer>Printed {{.PrintedAt}}</footer>
</div>
</body>
</html>
`)))
