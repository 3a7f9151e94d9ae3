// ABOUTME: CLI commands for the medicine usage tally.
// ABOUTME: List, search, add, and delete tally entries.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hamzakhoso/clinic/internal/models"
)

var tallyDescription string

var tallyCmd = &cobra.Command{
	Use:   "tally",
	Short: "Manage the medicine usage tally",
	Long: `The tally counts how often each medicine name appears in visit
prescriptions. It is a popularity counter, not an inventory: stock lives
in the pharmacy catalog.`,
}

var tallyListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List medicines by usage count",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := clinicStore.ListMedicineTally()
		if err != nil {
			return fmt.Errorf("failed to list medicine tally: %w", err)
		}
		printTally(entries)
		return nil
	},
}

var tallySearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tally entries by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := clinicStore.SearchMedicineTally(args[0])
		if err != nil {
			return fmt.Errorf("failed to search medicine tally: %w", err)
		}
		printTally(entries)
		return nil
	},
}

var tallyAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a tally entry without recording a use",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := clinicStore.AddTallyMedicine(args[0], tallyDescription); err != nil {
			return fmt.Errorf("failed to add tally entry: %w", err)
		}
		color.Green("✓ Added %s to the tally", args[0])
		return nil
	},
}

var tallyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tally entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := clinicStore.DeleteTallyMedicine(id); err != nil {
			return fmt.Errorf("failed to delete tally entry: %w", err)
		}
		color.Green("✓ Deleted tally entry #%d", id)
		return nil
	},
}

func printTally(entries []*models.MedicineTally) {
	if len(entries) == 0 {
		fmt.Println("No tally entries found.")
		return
	}
	faint := color.New(color.Faint)
	for _, e := range entries {
		lastUsed := "never"
		if e.LastUsed != nil {
			lastUsed = e.LastUsed.Format("2006-01-02")
		}
		fmt.Printf("%s %s %4d uses  %s\n",
			faint.Sprintf("#%-5d", e.ID),
			padRight(e.Name, 32),
			e.TimesUsed,
			faint.Sprintf("last %s", lastUsed))
	}
}

func init() {
	tallyAddCmd.Flags().StringVar(&tallyDescription, "description", "", "optional description")
	tallyCmd.AddCommand(tallyListCmd, tallySearchCmd, tallyAddCmd, tallyDeleteCmd)
	rootCmd.AddCommand(tallyCmd)
}
