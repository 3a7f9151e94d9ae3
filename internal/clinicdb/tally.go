// ABOUTME: Medicine usage tally: a denormalized popularity counter per name.
// ABOUTME: Upserted once per medicine name extracted from a visit's text.
package clinicdb

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hamzakhoso/clinic/internal/models"
)

type tallyRow struct {
	ID          int64          `db:"medicine_id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	TimesUsed   int            `db:"times_used"`
	LastUsed    sql.NullString `db:"last_used"`
}

func (r tallyRow) toModel() *models.MedicineTally {
	t := &models.MedicineTally{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		TimesUsed:   r.TimesUsed,
	}
	if r.LastUsed.Valid {
		lu := parseStoredTime(r.LastUsed.String)
		t.LastUsed = &lu
	}
	return t
}

const tallyColumns = "medicine_id, name, description, times_used, last_used"

// CreateOrIncrementMedicine bumps the usage counter for a medicine name,
// creating the tally row on first sight. The caller splits a visit's
// comma-separated medicine text and calls this once per distinct name.
func (d *DB) CreateOrIncrementMedicine(name string) error {
	now := formatTime(time.Now())
	tx, err := d.db.Beginx()
	if err != nil {
		return fmt.Errorf("tally medicine: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var id int64
	err = tx.Get(&id, "SELECT medicine_id FROM medicines WHERE name = ?", name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.Exec(
			"INSERT INTO medicines (name, times_used, last_used) VALUES (?, 1, ?)",
			name, now)
	case err == nil:
		_, err = tx.Exec(
			"UPDATE medicines SET times_used = times_used + 1, last_used = ? WHERE medicine_id = ?",
			now, id)
	}
	if err != nil {
		return fmt.Errorf("tally medicine %q: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tally medicine %q: %w", name, err)
	}
	return nil
}

// AddTallyMedicine registers a medicine name ahead of any usage, with an
// optional description. Duplicate names are rejected.
func (d *DB) AddTallyMedicine(name, description string) error {
	_, err := d.db.Exec(
		"INSERT INTO medicines (name, description) VALUES (?, ?)", name, description)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("add medicine %q: already exists", name)
		}
		return fmt.Errorf("add medicine: %w", err)
	}
	return nil
}

// DeleteTallyMedicine removes a tally row by id.
func (d *DB) DeleteTallyMedicine(id int64) error {
	res, err := d.db.Exec("DELETE FROM medicines WHERE medicine_id = ?", id)
	if err != nil {
		return fmt.Errorf("delete medicine: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete medicine: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete medicine %d: %w", id, ErrNotFound)
	}
	return nil
}

// ListMedicineTally returns all tally rows, most used first, then by name.
func (d *DB) ListMedicineTally() ([]*models.MedicineTally, error) {
	var rows []tallyRow
	err := d.db.Select(&rows,
		"SELECT "+tallyColumns+" FROM medicines ORDER BY times_used DESC, name ASC")
	if err != nil {
		return nil, fmt.Errorf("list medicine tally: %w", err)
	}
	return tallyFromRows(rows), nil
}

// SearchMedicineTally matches tally names by substring, most used first.
func (d *DB) SearchMedicineTally(query string) ([]*models.MedicineTally, error) {
	var rows []tallyRow
	err := d.db.Select(&rows,
		"SELECT "+tallyColumns+" FROM medicines WHERE name LIKE ? ORDER BY times_used DESC",
		"%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("search medicine tally: %w", err)
	}
	return tallyFromRows(rows), nil
}

func tallyFromRows(rows []tallyRow) []*models.MedicineTally {
	tallies := make([]*models.MedicineTally, 0, len(rows))
	for _, r := range rows {
		tallies = append(tallies, r.toModel())
	}
	return tallies
}
