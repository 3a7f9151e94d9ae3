// ABOUTME: CLI commands for visit records.
// ABOUTME: Recording a visit also bumps the medicine tally per prescribed name.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hamzakhoso/clinic/internal/models"
)

var (
	visitComplaints string
	visitMedicine   string
	visitFees       int
	visitRemarks    string
	visitAt         string
	visitLimit      int
	visitFrom       string
	visitTo         string
)

var visitCmd = &cobra.Command{
	Use:     "visit",
	Aliases: []string{"v"},
	Short:   "Manage visit records",
}

var visitAddCmd = &cobra.Command{
	Use:   "add <patient-id>",
	Short: "Record a visit for a patient",
	Long: `Record a consultation for a patient. The --medicine flag takes a
comma-separated list of names exactly as prescribed; each name also bumps
the medicine usage tally.

Visits default to the current time. Use --at to backdate.

Examples:
  clinic visit add 1 --complaints "Fever, body ache" --medicine "Arnica 30, Belladonna 200" --fees 500
  clinic visit add 1 --fees 300 --at "2024-12-14 10:30"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patientID, err := parseID(args[0])
		if err != nil {
			return err
		}
		if visitFees < 0 {
			return fmt.Errorf("fees cannot be negative")
		}

		// Reject unknown patients up front for a clearer message than the
		// foreign key violation.
		p, err := clinicStore.GetPatient(patientID)
		if err != nil {
			return fmt.Errorf("failed to load patient: %w", err)
		}

		v := &models.Visit{
			PatientID:    patientID,
			Complaints:   visitComplaints,
			MedicineText: visitMedicine,
			Fees:         visitFees,
			Remarks:      visitRemarks,
		}
		if visitAt != "" {
			t, err := parseTime(visitAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", visitAt)
			}
			v.VisitDate = t
		}

		if err := clinicStore.CreateVisit(v); err != nil {
			return fmt.Errorf("failed to record visit: %w", err)
		}

		for _, name := range models.SplitMedicineNames(visitMedicine) {
			if err := clinicStore.CreateOrIncrementMedicine(name); err != nil {
				return fmt.Errorf("failed to update medicine tally: %w", err)
			}
		}

		color.Green("✓ Recorded visit for %s", p.Name)
		fmt.Printf("  %s Rs.%d\n",
			color.New(color.Faint).Sprintf("visit #%d", v.ID), v.Fees)
		return nil
	},
}

var visitListCmd = &cobra.Command{
	Use:     "list <patient-id>",
	Aliases: []string{"ls"},
	Short:   "List a patient's visits, most recent first",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patientID, err := parseID(args[0])
		if err != nil {
			return err
		}

		visits, err := clinicStore.GetVisits(patientID, visitLimit)
		if err != nil {
			return fmt.Errorf("failed to list visits: %w", err)
		}
		if len(visits) == 0 {
			fmt.Println("No visits found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, v := range visits {
			meds := ""
			if v.MedicineText != "" {
				meds = faint.Sprintf(" [%s]", truncate(v.MedicineText, 40))
			}
			fmt.Printf("%s %s %s Rs.%-6d%s\n",
				faint.Sprintf("#%-5d", v.ID),
				faint.Sprint(v.VisitDate.Format("2006-01-02 15:04")),
				padRight(truncate(v.Complaints, 36), 38),
				v.Fees,
				meds)
		}
		return nil
	},
}

var visitTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List today's visits across all patients",
	RunE: func(cmd *cobra.Command, args []string) error {
		visits, err := clinicStore.TodayVisits()
		if err != nil {
			return fmt.Errorf("failed to list today's visits: %w", err)
		}
		printVisitsWithPatient(visits)
		return nil
	},
}

var visitRangeCmd = &cobra.Command{
	Use:   "range",
	Short: "List visits in a date range",
	Long: `List visits between two dates, inclusive on both ends.

Examples:
  clinic visit range --from 2024-12-01 --to 2024-12-31`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := time.Parse("2006-01-02", visitFrom); err != nil {
			return fmt.Errorf("invalid --from date: %s (want YYYY-MM-DD)", visitFrom)
		}
		if _, err := time.Parse("2006-01-02", visitTo); err != nil {
			return fmt.Errorf("invalid --to date: %s (want YYYY-MM-DD)", visitTo)
		}

		visits, err := clinicStore.VisitsByDateRange(visitFrom, visitTo)
		if err != nil {
			return fmt.Errorf("failed to list visits: %w", err)
		}
		printVisitsWithPatient(visits)
		return nil
	},
}

var visitUpdateCmd = &cobra.Command{
	Use:   "update <visit-id>",
	Short: "Update a visit record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		v, err := clinicStore.GetVisit(id)
		if err != nil {
			return fmt.Errorf("failed to load visit: %w", err)
		}

		if cmd.Flags().Changed("complaints") {
			v.Complaints = visitComplaints
		}
		if cmd.Flags().Changed("medicine") {
			v.MedicineText = visitMedicine
		}
		if cmd.Flags().Changed("fees") {
			if visitFees < 0 {
				return fmt.Errorf("fees cannot be negative")
			}
			v.Fees = visitFees
		}
		if cmd.Flags().Changed("remarks") {
			v.Remarks = visitRemarks
		}
		if visitAt != "" {
			t, err := parseTime(visitAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", visitAt)
			}
			v.VisitDate = t
		}

		if err := clinicStore.UpdateVisit(v); err != nil {
			return fmt.Errorf("failed to update visit: %w", err)
		}
		color.Green("✓ Updated visit #%d", id)
		return nil
	},
}

var visitDeleteCmd = &cobra.Command{
	Use:   "delete <visit-id>",
	Short: "Delete a visit record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := clinicStore.DeleteVisit(id); err != nil {
			return fmt.Errorf("failed to delete visit: %w", err)
		}
		color.Green("✓ Deleted visit #%d", id)
		return nil
	},
}

func printVisitsWithPatient(visits []models.VisitWithPatient) {
	if len(visits) == 0 {
		fmt.Println("No visits found.")
		return
	}
	faint := color.New(color.Faint)
	total := 0
	for _, v := range visits {
		fmt.Printf("%s %s %s Rs.%d\n",
			faint.Sprint(v.VisitDate.Format("2006-01-02 15:04")),
			padRight(v.PatientName, 24),
			padRight(truncate(v.Complaints, 36), 38),
			v.Fees)
		total += v.Fees
	}
	fmt.Printf("%s\n", faint.Sprintf("%d visit(s), Rs.%d total", len(visits), total))
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func parseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity: %s", s)
	}
	return n, nil
}

func init() {
	visitAddCmd.Flags().StringVar(&visitComplaints, "complaints", "", "symptoms / diagnosis")
	visitAddCmd.Flags().StringVar(&visitMedicine, "medicine", "", "comma-separated prescribed medicines")
	visitAddCmd.Flags().IntVar(&visitFees, "fees", 0, "consultation fee")
	visitAddCmd.Flags().StringVar(&visitRemarks, "remarks", "", "follow-up remarks")
	visitAddCmd.Flags().StringVar(&visitAt, "at", "", "visit timestamp (YYYY-MM-DD HH:MM)")

	visitUpdateCmd.Flags().StringVar(&visitComplaints, "complaints", "", "symptoms / diagnosis")
	visitUpdateCmd.Flags().StringVar(&visitMedicine, "medicine", "", "comma-separated prescribed medicines")
	visitUpdateCmd.Flags().IntVar(&visitFees, "fees", 0, "consultation fee")
	visitUpdateCmd.Flags().StringVar(&visitRemarks, "remarks", "", "follow-up remarks")
	visitUpdateCmd.Flags().StringVar(&visitAt, "at", "", "visit timestamp (YYYY-MM-DD HH:MM)")

	visitListCmd.Flags().IntVarP(&visitLimit, "limit", "n", 20, "max number of results")

	visitRangeCmd.Flags().StringVar(&visitFrom, "from", "", "start date (YYYY-MM-DD)")
	visitRangeCmd.Flags().StringVar(&visitTo, "to", "", "end date (YYYY-MM-DD)")
	visitRangeCmd.MarkFlagRequired("from") //nolint:errcheck // flag exists
	visitRangeCmd.MarkFlagRequired("to")   //nolint:errcheck // flag exists

	visitCmd.AddCommand(visitAddCmd, visitListCmd, visitTodayCmd,
		visitRangeCmd, visitUpdateCmd, visitDeleteCmd)
	rootCmd.AddCommand(visitCmd)
}
