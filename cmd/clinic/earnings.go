// ABOUTME: CLI command for consultation earnings summaries.
// ABOUTME: Daily, monthly, date-range, and lifetime fee totals.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	earningsMonth string
	earningsFrom  string
	earningsTo    string
)

var earningsCmd = &cobra.Command{
	Use:   "earnings",
	Short: "Show consultation fee totals",
	Long: `Show consultation fee totals. With no flags, prints today, the
current month, and the lifetime total.

Examples:
  clinic earnings
  clinic earnings --month 2024-12
  clinic earnings --from 2024-12-01 --to 2024-12-15`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if earningsFrom != "" || earningsTo != "" {
			if earningsFrom == "" || earningsTo == "" {
				return fmt.Errorf("--from and --to must be given together")
			}
			if _, err := time.Parse("2006-01-02", earningsFrom); err != nil {
				return fmt.Errorf("invalid --from date: %s (want YYYY-MM-DD)", earningsFrom)
			}
			if _, err := time.Parse("2006-01-02", earningsTo); err != nil {
				return fmt.Errorf("invalid --to date: %s (want YYYY-MM-DD)", earningsTo)
			}
			total, err := clinicStore.EarningsByDateRange(earningsFrom, earningsTo)
			if err != nil {
				return fmt.Errorf("failed to read earnings: %w", err)
			}
			fmt.Printf("Earnings %s to %s: Rs.%d\n", earningsFrom, earningsTo, total)
			return nil
		}

		if earningsMonth != "" {
			t, err := time.Parse("2006-01", earningsMonth)
			if err != nil {
				return fmt.Errorf("invalid --month: %s (want YYYY-MM)", earningsMonth)
			}
			total, err := clinicStore.MonthEarnings(t.Year(), t.Month())
			if err != nil {
				return fmt.Errorf("failed to read earnings: %w", err)
			}
			fmt.Printf("Earnings %s: Rs.%d\n", earningsMonth, total)
			return nil
		}

		today, err := clinicStore.TodayEarnings()
		if err != nil {
			return fmt.Errorf("failed to read earnings: %w", err)
		}
		now := time.Now()
		month, err := clinicStore.MonthEarnings(now.Year(), now.Month())
		if err != nil {
			return fmt.Errorf("failed to read earnings: %w", err)
		}
		total, err := clinicStore.TotalEarnings()
		if err != nil {
			return fmt.Errorf("failed to read earnings: %w", err)
		}

		fmt.Printf("  Today:       Rs.%d\n", today)
		fmt.Printf("  This month:  Rs.%d\n", month)
		fmt.Printf("  All time:    Rs.%d\n", total)
		return nil
	},
}

func init() {
	earningsCmd.Flags().StringVar(&earningsMonth, "month", "", "month to total (YYYY-MM)")
	earningsCmd.Flags().StringVar(&earningsFrom, "from", "", "start date (YYYY-MM-DD)")
	earningsCmd.Flags().StringVar(&earningsTo, "to", "", "end date (YYYY-MM-DD)")
	rootCmd.AddCommand(earningsCmd)
}
