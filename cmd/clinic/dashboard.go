// ABOUTME: CLI dashboard command.
// ABOUTME: Shows headline counters, recent activity, and low stock warnings.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Show today's numbers at a glance",
	Long: `Show the daily overview: patient counters, today's earnings, the
latest visits, and any pharmacy variants running low.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		total, err := clinicStore.TotalPatients()
		if err != nil {
			return fmt.Errorf("failed to load dashboard: %w", err)
		}
		newToday, err := clinicStore.NewPatientsToday()
		if err != nil {
			return fmt.Errorf("failed to load dashboard: %w", err)
		}
		todayVisits, err := clinicStore.TodayVisits()
		if err != nil {
			return fmt.Errorf("failed to load dashboard: %w", err)
		}
		earnings, err := clinicStore.TodayEarnings()
		if err != nil {
			return fmt.Errorf("failed to load dashboard: %w", err)
		}

		bold := color.New(color.Bold)
		fmt.Printf("%s\n\n", bold.Sprint(cfg.GetClinicName()))
		fmt.Printf("  Patients:        %d (%d new today)\n", total, newToday)
		fmt.Printf("  Visits today:    %d\n", len(todayVisits))
		fmt.Printf("  Earnings today:  Rs.%d\n", earnings)

		activity, err := clinicStore.RecentActivity(5)
		if err != nil {
			return fmt.Errorf("failed to load dashboard: %w", err)
		}
		if len(activity) > 0 {
			fmt.Printf("\n%s\n", bold.Sprint("Recent activity"))
			faint := color.New(color.Faint)
			for _, a := range activity {
				fmt.Printf("  %s %s %s\n",
					faint.Sprint(a.VisitDate.Format("2006-01-02 15:04")),
					padRight(a.PatientName, 24),
					truncate(a.Complaints, 40))
			}
		}

		low, err := pharmacyStore.LowStock()
		if err != nil {
			return fmt.Errorf("failed to load dashboard: %w", err)
		}
		if len(low) > 0 {
			fmt.Printf("\n%s\n", color.YellowString("Low stock (%d)", len(low)))
			for _, item := range low {
				fmt.Printf("  %s %s %s  %d left (min %d)\n",
					padRight(item.Name, 24), item.Potency, item.Form,
					item.Quantity, item.MinStockLevel)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
