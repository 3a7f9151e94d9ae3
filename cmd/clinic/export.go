// ABOUTME: CLI commands for exporting clinic data.
// ABOUTME: Patients to CSV and a full JSON/YAML backup.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export clinic data",
}

var exportPatientsCmd = &cobra.Command{
	Use:   "patients <file>",
	Short: "Export the patient register to CSV",
	Long: `Export the patient register to CSV with a fixed column layout:
ID, Name, Phone, Age, Gender, Address, Notes, Created At.

Examples:
  clinic export patients patients.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := clinicStore.ExportPatientsCSV(args[0]); err != nil {
			return fmt.Errorf("failed to export patients: %w", err)
		}
		color.Green("✓ Exported patients to %s", args[0])
		return nil
	},
}

var exportBackupCmd = &cobra.Command{
	Use:   "backup <file>",
	Short: "Export a full backup of the clinic store",
	Long: `Export patients, visits, and the medicine tally as a single
document. The export carries a version marker and a unique export id.

Examples:
  clinic export backup backup.json
  clinic export backup backup.yaml --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		switch exportFormat {
		case "json":
			data, err = clinicStore.ExportJSON()
		case "yaml":
			data, err = clinicStore.ExportYAML()
		default:
			return fmt.Errorf("unknown format: %s (want json or yaml)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("failed to build backup: %w", err)
		}
		if err := os.WriteFile(args[0], data, 0600); err != nil {
			return fmt.Errorf("failed to write backup: %w", err)
		}
		color.Green("✓ Exported backup to %s", args[0])
		return nil
	},
}

func init() {
	exportBackupCmd.Flags().StringVar(&exportFormat, "format", "json", "backup format: json or yaml")
	exportCmd.AddCommand(exportPatientsCmd, exportBackupCmd)
	rootCmd.AddCommand(exportCmd)
}
