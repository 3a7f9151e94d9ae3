// ABOUTME: CLI commands for pharmacy stock movements.
// ABOUTME: Every mutation goes through the movement ledger.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hamzakhoso/clinic/internal/models"
	"github.com/hamzakhoso/clinic/internal/service"
)

var (
	stockRefID     string
	stockNotes     string
	movementsLimit int
)

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Manage pharmacy stock",
	Long: `Manage pharmacy stock. Every change writes both the cached quantity
and a row in the append-only movement ledger, in one transaction.
'stock reconcile' replays the ledger and reports any variant whose
cached quantity has drifted.`,
}

var stockAddCmd = &cobra.Command{
	Use:   "add <variant-id> <quantity>",
	Short: "Receive stock for a variant",
	Long: `Receive stock for a variant, recorded as a PURCHASE movement.

Examples:
  clinic stock add 1 50 --ref-id PO-2024-001
  clinic stock add 1 10 --notes "Free samples"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		variantID, quantity, err := parseStockArgs(args)
		if err != nil {
			return err
		}
		svc := service.NewInventoryService(pharmacyStore)
		res := svc.AddStock(variantID, quantity, models.RefPurchase, movementRefID(), stockNotes)
		return printStockResult(res, variantID)
	},
}

var stockDispenseCmd = &cobra.Command{
	Use:   "dispense <variant-id> <quantity>",
	Short: "Dispense stock against a prescription",
	Long: `Dispense stock, recorded as a PRESCRIPTION movement. Dispensing more
than the available quantity fails and changes nothing.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		variantID, quantity, err := parseStockArgs(args)
		if err != nil {
			return err
		}
		svc := service.NewInventoryService(pharmacyStore)
		res := svc.DispenseStock(variantID, quantity, models.RefPrescription, movementRefID(), stockNotes)
		return printStockResult(res, variantID)
	},
}

var stockAdjustCmd = &cobra.Command{
	Use:   "adjust <variant-id> <delta>",
	Short: "Correct stock after a physical count",
	Long: `Correct stock after a physical count. The delta may be negative:

  clinic stock adjust 1 -3 --notes "Broken bottles"
  clinic stock adjust 1 2 --notes "Count correction"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		variantID, err := parseID(args[0])
		if err != nil {
			return err
		}
		delta, err := parseQuantity(args[1])
		if err != nil {
			return err
		}
		svc := service.NewInventoryService(pharmacyStore)
		res := svc.AdjustStock(variantID, delta, stockNotes)
		return printStockResult(res, variantID)
	},
}

var stockExpireCmd = &cobra.Command{
	Use:   "expire <variant-id> <quantity>",
	Short: "Write off expired stock",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		variantID, quantity, err := parseStockArgs(args)
		if err != nil {
			return err
		}
		svc := service.NewInventoryService(pharmacyStore)
		res := svc.ExpireStock(variantID, quantity, stockNotes)
		return printStockResult(res, variantID)
	},
}

var stockLevelCmd = &cobra.Command{
	Use:   "level <variant-id>",
	Short: "Show the current quantity for a variant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		variantID, err := parseID(args[0])
		if err != nil {
			return err
		}
		quantity, err := pharmacyStore.StockLevel(variantID)
		if err != nil {
			return fmt.Errorf("failed to read stock level: %w", err)
		}
		fmt.Printf("Variant #%d: %d in stock\n", variantID, quantity)
		return nil
	},
}

var stockLowCmd = &cobra.Command{
	Use:   "low",
	Short: "List variants at or below their minimum stock level",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := pharmacyStore.LowStock()
		if err != nil {
			return fmt.Errorf("failed to list low stock: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("No low stock items.")
			return nil
		}
		for _, item := range items {
			fmt.Printf("%s %s %s  %d left (min %d)\n",
				padRight(item.Name, 28), padRight(item.Potency, 8),
				padRight(item.Form, 10), item.Quantity, item.MinStockLevel)
		}
		return nil
	},
}

var stockMovementsCmd = &cobra.Command{
	Use:   "movements <variant-id>",
	Short: "Show a variant's movement ledger, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		variantID, err := parseID(args[0])
		if err != nil {
			return err
		}
		movements, err := pharmacyStore.Movements(variantID, movementsLimit)
		if err != nil {
			return fmt.Errorf("failed to list movements: %w", err)
		}
		if len(movements) == 0 {
			fmt.Println("No movements recorded.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, m := range movements {
			ref := ""
			if m.ReferenceID != "" {
				ref = faint.Sprintf(" ref %s", m.ReferenceID)
			}
			notes := ""
			if m.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(m.Notes, 30))
			}
			fmt.Printf("%s %s %s %4d%s%s\n",
				faint.Sprint(m.Timestamp.Format("2006-01-02 15:04")),
				padRight(string(m.MovementType), 8),
				padRight(string(m.ReferenceType), 13),
				m.Quantity, ref, notes)
		}
		return nil
	},
}

var stockReconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Check cached quantities against the movement ledger",
	Long: `Replay every variant's movement ledger and compare the net against
the cached quantity. Drift means a write bypassed the ledger or the
database was edited by hand; the ledger is the authority.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewInventoryService(pharmacyStore)
		drifts, res := svc.VerifyLedger()
		if res.Kind == service.StorageError {
			return fmt.Errorf("reconcile failed: %s", res.Message)
		}
		if len(drifts) == 0 {
			color.Green("✓ %s", res.Message)
			return nil
		}
		color.Red("✗ %s", res.Message)
		for _, d := range drifts {
			fmt.Printf("  variant #%d: cached %d, ledger says %d\n",
				d.VariantID, d.Cached, d.LedgerNet)
		}
		return nil
	},
}

func parseStockArgs(args []string) (int64, int, error) {
	variantID, err := parseID(args[0])
	if err != nil {
		return 0, 0, err
	}
	quantity, err := parseQuantity(args[1])
	if err != nil {
		return 0, 0, err
	}
	return variantID, quantity, nil
}

// movementRefID returns the user-supplied reference id, or a generated one
// so every ledger row stays traceable.
func movementRefID() string {
	if stockRefID != "" {
		return stockRefID
	}
	return uuid.NewString()[:8]
}

func printStockResult(res service.Result, variantID int64) error {
	if !res.OK() {
		return fmt.Errorf("%s", res.Message)
	}
	quantity, err := pharmacyStore.StockLevel(variantID)
	if err != nil {
		return fmt.Errorf("failed to read stock level: %w", err)
	}
	color.Green("✓ %s", res.Message)
	fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("variant #%d now at %d", variantID, quantity))
	return nil
}

func init() {
	for _, c := range []*cobra.Command{stockAddCmd, stockDispenseCmd, stockAdjustCmd, stockExpireCmd} {
		c.Flags().StringVar(&stockRefID, "ref-id", "", "reference id, e.g. a purchase order number")
		c.Flags().StringVar(&stockNotes, "notes", "", "movement notes")
	}
	stockMovementsCmd.Flags().IntVarP(&movementsLimit, "limit", "n", 20, "max number of results")

	stockCmd.AddCommand(stockAddCmd, stockDispenseCmd, stockAdjustCmd, stockExpireCmd,
		stockLevelCmd, stockLowCmd, stockMovementsCmd, stockReconcileCmd)
	rootCmd.AddCommand(stockCmd)
}
