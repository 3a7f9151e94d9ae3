// ABOUTME: Clinic store schema definition and first-run seeding.
// ABOUTME: Tables: patients, visits, users, medicine usage tally.
package clinicdb

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// initSchema creates the clinic schema if it doesn't exist and seeds the
// default admin account on an empty users table.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT DEFAULT 'admin',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS patients (
		patient_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		phone TEXT,
		age INTEGER,
		gender TEXT,
		address TEXT,
		notes TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS visits (
		visit_id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient_id INTEGER NOT NULL,
		visit_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		complaints TEXT,
		medicine TEXT,
		fees INTEGER,
		remarks TEXT,
		FOREIGN KEY (patient_id) REFERENCES patients (patient_id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS medicines (
		medicine_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		description TEXT DEFAULT '',
		times_used INTEGER DEFAULT 0,
		last_used DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_visits_patient ON visits(patient_id);
	CREATE INDEX IF NOT EXISTS idx_visits_date ON visits(visit_date DESC);
	CREATE INDEX IF NOT EXISTS idx_patients_name ON patients(name);
	`

	if _, err := d.db.Exec(schema); err != nil {
		return err
	}
	return d.seedDefaultUser()
}

// seedDefaultUser inserts the admin/admin account only when the users table
// is empty at first run. The CLI warns while the default credential still
// verifies; see `clinic user verify`.
func (d *DB) seedDefaultUser() error {
	var count int
	if err := d.db.Get(&count, "SELECT COUNT(*) FROM users"); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}
	_, err = d.db.Exec(
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		"admin", string(hash),
	)
	if err != nil {
		return fmt.Errorf("seed default user: %w", err)
	}
	return nil
}
