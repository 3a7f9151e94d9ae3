// ABOUTME: Tests for user accounts and login verification.
// ABOUTME: Covers the seeded default, password changes, and duplicates.
package clinicdb

import (
	"errors"
	"testing"
)

func TestDefaultAdminSeeded(t *testing.T) {
	db := setupTestDB(t)

	ok, err := db.VerifyLogin("admin", "admin")
	if err != nil {
		t.Fatalf("VerifyLogin failed: %v", err)
	}
	if !ok {
		t.Error("expected seeded admin/admin to verify on a fresh store")
	}
}

func TestVerifyLoginRejectsBadPassword(t *testing.T) {
	db := setupTestDB(t)

	ok, err := db.VerifyLogin("admin", "wrong")
	if err != nil {
		t.Fatalf("VerifyLogin failed: %v", err)
	}
	if ok {
		t.Error("wrong password should not verify")
	}

	// Unknown users are a clean false, not an error.
	ok, err = db.VerifyLogin("nobody", "admin")
	if err != nil {
		t.Fatalf("VerifyLogin failed: %v", err)
	}
	if ok {
		t.Error("unknown user should not verify")
	}
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)

	if err := db.ChangePassword("admin", "admin", "s3cret"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	if ok, _ := db.VerifyLogin("admin", "admin"); ok {
		t.Error("old password should no longer verify")
	}
	if ok, _ := db.VerifyLogin("admin", "s3cret"); !ok {
		t.Error("new password should verify")
	}
}

func TestChangePasswordRequiresOldPassword(t *testing.T) {
	db := setupTestDB(t)

	err := db.ChangePassword("admin", "wrong", "s3cret")
	if !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials, got %v", err)
	}
	if ok, _ := db.VerifyLogin("admin", "admin"); !ok {
		t.Error("password should be unchanged after a failed attempt")
	}
}

func TestAddUserRejectsDuplicates(t *testing.T) {
	db := setupTestDB(t)

	if err := db.AddUser("reception", "pass1", "staff"); err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}

	err := db.AddUser("reception", "pass2", "staff")
	if !errors.Is(err, ErrUsernameExists) {
		t.Errorf("expected ErrUsernameExists, got %v", err)
	}

	// The original credentials still stand.
	if ok, _ := db.VerifyLogin("reception", "pass1"); !ok {
		t.Error("original password should still verify")
	}
	if ok, _ := db.VerifyLogin("reception", "pass2"); ok {
		t.Error("duplicate's password must not verify")
	}
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)

	if err := db.AddUser("reception", "pass1", "staff"); err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}
	if err := db.DeleteUser("reception"); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if ok, _ := db.VerifyLogin("reception", "pass1"); ok {
		t.Error("deleted user should not verify")
	}

	if err := db.DeleteUser("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListUsersOmitsHashes(t *testing.T) {
	db := setupTestDB(t)

	users, err := db.ListUsers()
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected the seeded admin, got %d users", len(users))
	}
	if users[0].Username != "admin" {
		t.Errorf("Username = %q", users[0].Username)
	}
	if users[0].PasswordHash != "" {
		t.Error("listing must not expose password hashes")
	}
}
