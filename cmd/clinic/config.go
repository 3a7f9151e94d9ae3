// ABOUTME: CLI commands for tool configuration.
// ABOUTME: Show and set the clinic name, doctor name, and data directory.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hamzakhoso/clinic/internal/config"
)

var (
	cfgClinicName string
	cfgDoctorName string
	cfgDataDir    string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change tool configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("  Clinic name:  %s\n", cfg.GetClinicName())
		fmt.Printf("  Doctor name:  %s\n", cfg.DoctorName)
		fmt.Printf("  Data dir:     %s\n", cfg.GetDataDir())
		fmt.Printf("  Config file:  %s\n", config.GetConfigPath())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	Long: `Set configuration values. Only the flags you pass change.

Examples:
  clinic config set --clinic-name "City Homeo Clinic" --doctor-name "Dr. A. Khan"
  clinic config set --data-dir ~/clinic-data`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("clinic-name") {
			cfg.ClinicName = cfgClinicName
		}
		if cmd.Flags().Changed("doctor-name") {
			cfg.DoctorName = cfgDoctorName
		}
		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir = cfgDataDir
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ Configuration saved")
		return nil
	},
}

func init() {
	configSetCmd.Flags().StringVar(&cfgClinicName, "clinic-name", "", "clinic name shown on reports")
	configSetCmd.Flags().StringVar(&cfgDoctorName, "doctor-name", "", "doctor name shown on reports")
	configSetCmd.Flags().StringVar(&cfgDataDir, "data-dir", "", "directory holding the store files")
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
