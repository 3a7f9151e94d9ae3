// ABOUTME: Login user management: verify, change password, add, list.
// ABOUTME: Passwords are stored as bcrypt hashes.
package clinicdb

import (
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hamzakhoso/clinic/internal/models"
)

// VerifyLogin checks a username/password pair against the stored hash.
// An unknown username verifies false without error.
func (d *DB) VerifyLogin(username, password string) (bool, error) {
	var hash string
	err := d.db.Get(&hash, "SELECT password_hash FROM users WHERE username = ?", username)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("verify login: %w", err)
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}

// ChangePassword re-verifies the old password before writing the new hash.
func (d *DB) ChangePassword(username, oldPassword, newPassword string) error {
	ok, err := d.VerifyLogin(username, oldPassword)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBadCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = d.db.Exec("UPDATE users SET password_hash = ? WHERE username = ?",
		string(hash), username)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

// AddUser creates a login account. A duplicate username fails with
// ErrUsernameExists and leaves the existing account untouched.
func (d *DB) AddUser(username, password, role string) error {
	if role == "" {
		role = "admin"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = d.db.Exec(
		"INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)",
		username, string(hash), role)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("add user %q: %w", username, ErrUsernameExists)
		}
		return fmt.Errorf("add user: %w", err)
	}
	return nil
}

// DeleteUser removes a login account by username.
func (d *DB) DeleteUser(username string) error {
	res, err := d.db.Exec("DELETE FROM users WHERE username = ?", username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete user %q: %w", username, ErrNotFound)
	}
	return nil
}

type userRow struct {
	ID        int64  `db:"user_id"`
	Username  string `db:"username"`
	Role      string `db:"role"`
	CreatedAt string `db:"created_at"`
}

// ListUsers returns all accounts without their password hashes.
func (d *DB) ListUsers() ([]*models.User, error) {
	var rows []userRow
	err := d.db.Select(&rows,
		"SELECT user_id, username, role, created_at FROM users ORDER BY user_id ASC")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]*models.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, &models.User{
			ID:        r.ID,
			Username:  r.Username,
			Role:      r.Role,
			CreatedAt: parseStoredTime(r.CreatedAt),
		})
	}
	return users, nil
}
