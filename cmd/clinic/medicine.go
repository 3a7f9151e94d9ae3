// ABOUTME: CLI commands for the pharmacy catalog.
// ABOUTME: Medicine masters and their sellable variants.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hamzakhoso/clinic/internal/models"
	"github.com/hamzakhoso/clinic/internal/service"
)

var (
	medCategory     string
	medManufacturer string
	medRestricted   bool
	medNotes        string

	variantPotency    string
	variantForm       string
	variantBottleSize string
	variantUnitType   string
	variantMinStock   int
	variantExpiry     string
)

var medicineCmd = &cobra.Command{
	Use:     "medicine",
	Aliases: []string{"med"},
	Short:   "Manage the pharmacy medicine catalog",
}

var medicineAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a medicine to the catalog",
	Long: `Add a medicine to the catalog. Names are stored trimmed and
upper-cased. Categories: Q, DILUTION, BIOCHEMIC, COMPLEX, NOSODE,
GLOBULE, OTHER.

Examples:
  clinic medicine add "Arnica Montana" --category DILUTION
  clinic medicine add "Opium" --category DILUTION --restricted`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewMedicineService(pharmacyStore)
		id, res := svc.CreateMedicine(args[0], models.Category(medCategory),
			medManufacturer, medRestricted, medNotes)
		if !res.OK() {
			return fmt.Errorf("%s", res.Message)
		}
		color.Green("✓ Added medicine")
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("medicine #%d", id))
		return nil
	},
}

var medicineShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a medicine with its variants and stock",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		svc := service.NewMedicineService(pharmacyStore)
		details, res := svc.GetMedicineDetails(id)
		if !res.OK() {
			return fmt.Errorf("%s", res.Message)
		}

		bold := color.New(color.Bold)
		fmt.Printf("%s (#%d) %s\n", bold.Sprint(details.Name), details.ID, details.Category)
		if details.Manufacturer != "" {
			fmt.Printf("  Manufacturer: %s\n", details.Manufacturer)
		}
		if details.Restricted {
			fmt.Printf("  %s\n", color.YellowString("Restricted"))
		}
		if details.Notes != "" {
			fmt.Printf("  Notes: %s\n", details.Notes)
		}

		if len(details.Variants) == 0 {
			fmt.Println("\nNo variants. Add one with 'clinic variant add'.")
			return nil
		}

		fmt.Println("\nVariants:")
		faint := color.New(color.Faint)
		for _, v := range details.Variants {
			expiry := ""
			if v.ExpiryDate != "" {
				expiry = faint.Sprintf(" exp %s", v.ExpiryDate)
			}
			fmt.Printf("  %s %s %s %s  %d in stock (min %d)%s\n",
				faint.Sprintf("#%-5d", v.ID),
				padRight(v.Potency, 8),
				padRight(v.Form, 10),
				padRight(v.BottleSize, 8),
				v.Quantity, v.MinStockLevel, expiry)
		}
		return nil
	},
}

var medicineSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewMedicineService(pharmacyStore)
		medicines, err := svc.SearchMedicines(args[0])
		if err != nil {
			return fmt.Errorf("failed to search catalog: %w", err)
		}
		if len(medicines) == 0 {
			fmt.Println("No catalog entries found.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, m := range medicines {
			flags := ""
			if m.Restricted {
				flags = color.YellowString(" [restricted]")
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprintf("#%-5d", m.ID),
				padRight(m.Name, 32),
				m.Category, flags)
		}
		return nil
	},
}

var variantCmd = &cobra.Command{
	Use:   "variant",
	Short: "Manage sellable variants of catalog medicines",
}

var variantAddCmd = &cobra.Command{
	Use:   "add <medicine-id>",
	Short: "Add a sellable variant to a catalog medicine",
	Long: `Add a sellable variant to a catalog medicine. A zero-quantity stock
row is created with the variant so stock commands work immediately.

Examples:
  clinic variant add 1 --potency 30C --form liquid --bottle-size 30ml
  clinic variant add 1 --potency 200C --form globules --min-stock 5 --expiry 2026-06-30`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		medicineID, err := parseID(args[0])
		if err != nil {
			return err
		}

		v := &models.Variant{
			MedicineID:    medicineID,
			Potency:       variantPotency,
			Form:          variantForm,
			BottleSize:    variantBottleSize,
			UnitType:      variantUnitType,
			MinStockLevel: variantMinStock,
			ExpiryDate:    variantExpiry,
		}
		svc := service.NewMedicineService(pharmacyStore)
		if res := svc.AddVariant(v); !res.OK() {
			return fmt.Errorf("%s", res.Message)
		}
		color.Green("✓ Added variant")
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("variant #%d", v.ID))
		return nil
	},
}

func init() {
	medicineAddCmd.Flags().StringVar(&medCategory, "category", "OTHER", "medicine category")
	medicineAddCmd.Flags().StringVar(&medManufacturer, "manufacturer", "", "manufacturer name")
	medicineAddCmd.Flags().BoolVar(&medRestricted, "restricted", false, "mark as restricted")
	medicineAddCmd.Flags().StringVar(&medNotes, "notes", "", "catalog notes")

	variantAddCmd.Flags().StringVar(&variantPotency, "potency", "", "potency, e.g. 30C")
	variantAddCmd.Flags().StringVar(&variantForm, "form", "", "form, e.g. liquid, globules")
	variantAddCmd.Flags().StringVar(&variantBottleSize, "bottle-size", "", "bottle size, e.g. 30ml")
	variantAddCmd.Flags().StringVar(&variantUnitType, "unit-type", "bottle", "counting unit")
	variantAddCmd.Flags().IntVar(&variantMinStock, "min-stock", 0, "low stock threshold")
	variantAddCmd.Flags().StringVar(&variantExpiry, "expiry", "", "expiry date (YYYY-MM-DD)")

	medicineCmd.AddCommand(medicineAddCmd, medicineShowCmd, medicineSearchCmd)
	variantCmd.AddCommand(variantAddCmd)
	rootCmd.AddCommand(medicineCmd, variantCmd)
}
