// ABOUTME: CLI commands for raw globule pellet stock.
// ABOUTME: Size-class counters outside the catalog hierarchy.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var globuleCmd = &cobra.Command{
	Use:   "globule",
	Short: "Track raw globule pellet stock by size",
	Long: `Track raw globule pellets by numeric size class (10, 20, 30, 40).
These are consumables used to prepare doses, so they sit outside the
medicine catalog. Quantities never go below zero.`,
}

var globuleAdjustCmd = &cobra.Command{
	Use:   "adjust <size> <delta>",
	Short: "Add or remove globule stock for a size class",
	Long: `Add or remove globule stock. A positive delta on a new size creates
its row.

Examples:
  clinic globule adjust 30 500     # received 500 size-30 pellets
  clinic globule adjust 30 -50     # used 50`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := strconv.Atoi(args[0])
		if err != nil || size <= 0 {
			return fmt.Errorf("invalid size: %s", args[0])
		}
		delta, err := parseQuantity(args[1])
		if err != nil {
			return err
		}
		if delta == 0 {
			return fmt.Errorf("no change in quantity")
		}

		if err := pharmacyStore.UpdateGlobuleStock(size, delta); err != nil {
			return fmt.Errorf("failed to update globule stock: %w", err)
		}
		color.Green("✓ Updated size %d globules", size)
		return nil
	},
}

var globuleListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List globule stock by size",
	RunE: func(cmd *cobra.Command, args []string) error {
		stock, err := pharmacyStore.GlobuleStock()
		if err != nil {
			return fmt.Errorf("failed to list globule stock: %w", err)
		}
		if len(stock) == 0 {
			fmt.Println("No globule stock recorded.")
			return nil
		}
		for _, g := range stock {
			warn := ""
			if g.Quantity <= g.MinLevel {
				warn = color.YellowString(" low")
			}
			fmt.Printf("size %-4d %6d%s\n", g.Size, g.Quantity, warn)
		}
		return nil
	},
}

func init() {
	globuleCmd.AddCommand(globuleAdjustCmd, globuleListCmd)
	rootCmd.AddCommand(globuleCmd)
}
