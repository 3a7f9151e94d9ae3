// ABOUTME: Root Cobra command for clinic CLI.
// ABOUTME: Opens the clinic and pharmacy stores via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamzakhoso/clinic/internal/clinicdb"
	"github.com/hamzakhoso/clinic/internal/config"
	"github.com/hamzakhoso/clinic/internal/pharmacydb"
)

var (
	cfg           *config.Config
	clinicStore   *clinicdb.DB
	pharmacyStore *pharmacydb.DB
)

var rootCmd = &cobra.Command{
	Use:   "clinic",
	Short: "Single-clinic patient, visit, and pharmacy inventory tracker",
	Long: `Clinic is a CLI tool for running a single-doctor practice: patient
records, visit history, consultation earnings, and pharmacy inventory.

PATIENTS AND VISITS:

  $ clinic patient add "Ali Khan" --phone 0300-1234567 --age 34
  $ clinic patient search khan
  $ clinic visit add 1 --complaints "Fever" --medicine "Arnica 30, Belladonna" --fees 500
  $ clinic visit today
  $ clinic dashboard

PHARMACY INVENTORY:

  Catalog medicines have sellable variants (potency, form, bottle size).
  Every stock change is a movement in an append-only ledger.

  $ clinic medicine add "ARNICA MONTANA" --category DILUTION
  $ clinic variant add 1 --potency 30C --form liquid --bottle-size 30ml
  $ clinic stock add 1 50 --ref-id PO-2024-001
  $ clinic stock dispense 1 2
  $ clinic stock low
  $ clinic stock reconcile

REPORTS AND EXPORT:

  $ clinic report 1 --output ali-khan.html   # Printable patient profile
  $ clinic export patients patients.csv
  $ clinic export backup backup.yaml --format yaml

MCP INTEGRATION:

  Run 'clinic mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants. Add to your client config:

  {
    "mcpServers": {
      "clinic": { "command": "clinic", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Records live in two SQLite files under ~/.local/share/clinic
  (clinic.db and pharmacy.db). Set data_dir in
  ~/.config/clinic/config.json to move them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		clinicStore, err = cfg.OpenClinicStore()
		if err != nil {
			return fmt.Errorf("failed to open clinic store: %w", err)
		}

		pharmacyStore, err = cfg.OpenPharmacyStore()
		if err != nil {
			clinicStore.Close() //nolint:errcheck // already failing
			return fmt.Errorf("failed to open pharmacy store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if pharmacyStore != nil {
			pharmacyStore.Close() //nolint:errcheck // best effort on shutdown
		}
		if clinicStore != nil {
			return clinicStore.Close()
		}
		return nil
	},
}
