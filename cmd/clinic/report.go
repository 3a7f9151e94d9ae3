// ABOUTME: CLI command for the printable patient profile report.
// ABOUTME: Renders HTML to stdout or a file.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hamzakhoso/clinic/internal/report"
)

var reportOutput string

var reportCmd = &cobra.Command{
	Use:   "report <patient-id>",
	Short: "Generate a printable patient profile",
	Long: `Generate an HTML patient profile with the full visit history,
suitable for printing. The clinic and doctor names come from
~/.config/clinic/config.json.

Examples:
  clinic report 1 --output ali-khan.html
  clinic report 1 > profile.html`,
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
		visits, err := clinicStore.GetVisits(id, 0)
		if err != nil {
			return fmt.Errorf("failed to load visits: %w", err)
		}

		if reportOutput == "" {
			return report.WritePatientProfile(os.Stdout, cfg.GetClinicName(), cfg.DoctorName, p, visits)
		}

		f, err := os.Create(reportOutput)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()

		if err := report.WritePatientProfile(f, cfg.GetClinicName(), cfg.DoctorName, p, visits); err != nil {
			return err
		}
		color.Green("✓ Wrote report for %s to %s", p.Name, reportOutput)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "write report to a file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}
