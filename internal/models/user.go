// ABOUTME: Login user model for the clinic store.
package models

import "time"

// User is a login account. PasswordHash is a bcrypt hash and never leaves
// the store layer in listings.
type User struct {
	ID           int64     `db:"user_id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
