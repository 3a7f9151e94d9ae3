// ABOUTME: CLI commands for store user accounts.
// ABOUTME: Verify, add, delete, list, and password change.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hamzakhoso/clinic/internal/clinicdb"
)

var userRole string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage store user accounts",
	Long: `Manage store user accounts. A fresh store is seeded with an
admin/admin account; change its password before real use.`,
}

var userVerifyCmd = &cobra.Command{
	Use:   "verify <username> <password>",
	Short: "Check a username/password pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := clinicStore.VerifyLogin(args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to verify login: %w", err)
		}
		if !ok {
			color.Red("✗ Invalid credentials")
			return nil
		}
		color.Green("✓ Credentials valid")

		// Nag while the seeded default still works.
		if defaultOK, err := clinicStore.VerifyLogin("admin", "admin"); err == nil && defaultOK {
			color.Yellow("! The default admin/admin account is still active. Run 'clinic user passwd admin'.")
		}
		return nil
	},
}

var userAddCmd = &cobra.Command{
	Use:   "add <username> <password>",
	Short: "Add a user account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := clinicStore.AddUser(args[0], args[1], userRole)
		if errors.Is(err, clinicdb.ErrUsernameExists) {
			return fmt.Errorf("username already taken: %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to add user: %w", err)
		}
		color.Green("✓ Added user %s", args[0])
		return nil
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <username>",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := clinicStore.DeleteUser(args[0]); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		color.Green("✓ Deleted user %s", args[0])
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := clinicStore.ListUsers()
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		faint := color.New(color.Faint)
		for _, u := range users {
			fmt.Printf("%s %s\n", padRight(u.Username, 20), faint.Sprint(u.Role))
		}
		return nil
	},
}

var userPasswdCmd = &cobra.Command{
	Use:   "passwd <username> <old-password> <new-password>",
	Short: "Change a user's password",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := clinicStore.ChangePassword(args[0], args[1], args[2])
		if errors.Is(err, clinicdb.ErrBadCredentials) {
			return fmt.Errorf("old password is incorrect")
		}
		if err != nil {
			return fmt.Errorf("failed to change password: %w", err)
		}
		color.Green("✓ Password changed for %s", args[0])
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userRole, "role", "staff", "account role")
	userCmd.AddCommand(userVerifyCmd, userAddCmd, userDeleteCmd, userListCmd, userPasswdCmd)
	rootCmd.AddCommand(userCmd)
}
