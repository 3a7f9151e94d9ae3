// ABOUTME: CLI commands for patient records.
// ABOUTME: Add, list, search, show, update, and delete patients.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hamzakhoso/clinic/internal/models"
)

var (
	patientPhone   string
	patientAge     int
	patientGender  string
	patientAddress string
	patientNotes   string
	patientLimit   int
)

var patientCmd = &cobra.Command{
	Use:     "patient",
	Aliases: []string{"p"},
	Short:   "Manage patient records",
}

var patientAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new patient",
	Long: `Register a new patient. Only the name is required; everything else
can be filled in later with 'patient update'.

Examples:
  clinic patient add "Ali Khan" --phone 0300-1234567 --age 34 --gender M
  clinic patient add "Sara Ahmed" --address "Model Town, Lahore"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("patient name cannot be empty")
		}

		p := &models.Patient{
			Name:    name,
			Phone:   patientPhone,
			Age:     patientAge,
			Gender:  patientGender,
			Address: patientAddress,
			Notes:   patientNotes,
		}
		if err := clinicStore.CreatePatient(p); err != nil {
			return fmt.Errorf("failed to create patient: %w", err)
		}

		color.Green("✓ Registered %s", p.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("patient #%d", p.ID))
		return nil
	},
}

var patientListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List patients, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		var patients []*models.Patient
		var err error
		if patientLimit > 0 {
			patients, err = clinicStore.RecentPatients(patientLimit)
		} else {
			patients, err = clinicStore.ListPatients()
		}
		if err != nil {
			return fmt.Errorf("failed to list patients: %w", err)
		}
		printPatients(patients)
		return nil
	},
}

var patientSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search patients by name or phone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patients, err := clinicStore.SearchPatients(args[0])
		if err != nil {
			return fmt.Errorf("failed to search patients: %w", err)
		}
		printPatients(patients)
		return nil
	},
}

var patientShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a patient with visit history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		p, err := clinicStore.GetPatient(id)
		if err != nil {
			return fmt.Errorf("failed to load patient: %w", err)
		}

		fmt.Printf("%s (#%d)\n", color.New(color.Bold).Sprint(p.Name), p.ID)
		if p.Phone != "" {
			fmt.Printf("  Phone:   %s\n", p.Phone)
		}
		if p.Age > 0 || p.Gender != "" {
			fmt.Printf("  Age:     %d %s\n", p.Age, p.Gender)
		}
		if p.Address != "" {
			fmt.Printf("  Address: %s\n", p.Address)
		}
		if p.Notes != "" {
			fmt.Printf("  Notes:   %s\n", p.Notes)
		}
		fmt.Printf("  Since:   %s\n", p.CreatedAt.Format("2006-01-02"))

		visits, err := clinicStore.GetVisits(id, 10)
		if err != nil {
			return fmt.Errorf("failed to load visits: %w", err)
		}
		if len(visits) == 0 {
			fmt.Println("\nNo visits recorded.")
			return nil
		}

		fmt.Println("\nRecent visits:")
		faint := color.New(color.Faint)
		for _, v := range visits {
			fmt.Printf("  %s %s Rs.%d\n",
				faint.Sprint(v.VisitDate.Format("2006-01-02")),
				padRight(truncate(v.Complaints, 40), 42),
				v.Fees)
		}
		return nil
	},
}

var patientUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a patient's details",
	Long: `Update a patient's details. Only the flags you pass change; everything
else keeps its current value.

Examples:
  clinic patient update 1 --phone 0300-7654321
  clinic patient update 1 --age 35 --notes "Diabetic"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		p, err := clinicStore.GetPatient(id)
		if err != nil {
			return fmt.Errorf("failed to load patient: %w", err)
		}

		if cmd.Flags().Changed("phone") {
			p.Phone = patientPhone
		}
		if cmd.Flags().Changed("age") {
			p.Age = patientAge
		}
		if cmd.Flags().Changed("gender") {
			p.Gender = patientGender
		}
		if cmd.Flags().Changed("address") {
			p.Address = patientAddress
		}
		if cmd.Flags().Changed("notes") {
			p.Notes = patientNotes
		}

		if err := clinicStore.UpdatePatient(p); err != nil {
			return fmt.Errorf("failed to update patient: %w", err)
		}
		color.Green("✓ Updated %s", p.Name)
		return nil
	},
}

var patientDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a patient and all their visits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := clinicStore.DeletePatient(id); err != nil {
			return fmt.Errorf("failed to delete patient: %w", err)
		}
		color.Green("✓ Deleted patient #%d and their visits", id)
		return nil
	},
}

func printPatients(patients []*models.Patient) {
	if len(patients) == 0 {
		fmt.Println("No patients found.")
		return
	}
	faint := color.New(color.Faint)
	for _, p := range patients {
		fmt.Printf("%s %s %s %s\n",
			faint.Sprintf("#%-5d", p.ID),
			padRight(p.Name, 28),
			padRight(p.Phone, 16),
			faint.Sprint(p.CreatedAt.Format("2006-01-02")))
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	return id, nil
}

func init() {
	patientAddCmd.Flags().StringVar(&patientPhone, "phone", "", "phone number")
	patientAddCmd.Flags().IntVar(&patientAge, "age", 0, "age in years")
	patientAddCmd.Flags().StringVar(&patientGender, "gender", "", "gender")
	patientAddCmd.Flags().StringVar(&patientAddress, "address", "", "home address")
	patientAddCmd.Flags().StringVar(&patientNotes, "notes", "", "clinical notes")

	patientUpdateCmd.Flags().StringVar(&patientPhone, "phone", "", "phone number")
	patientUpdateCmd.Flags().IntVar(&patientAge, "age", 0, "age in years")
	patientUpdateCmd.Flags().StringVar(&patientGender, "gender", "", "gender")
	patientUpdateCmd.Flags().StringVar(&patientAddress, "address", "", "home address")
	patientUpdateCmd.Flags().StringVar(&patientNotes, "notes", "", "clinical notes")

	patientListCmd.Flags().IntVarP(&patientLimit, "limit", "n", 0, "max number of results (0 = all)")

	patientCmd.AddCommand(patientAddCmd, patientListCmd, patientSearchCmd,
		patientShowCmd, patientUpdateCmd, patientDeleteCmd)
	rootCmd.AddCommand(patientCmd)
}
