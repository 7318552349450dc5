package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusbook/scheduler/internal/csvio"
	"github.com/campusbook/scheduler/pkg/core/services"
)

// AuditCmd creates the audit command
func AuditCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Scan committed calendar events for double-bookings and capacity problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			output, _ := cmd.Flags().GetString("output")

			events, err := loadConfiguredEvents(app)
			if err != nil {
				return err
			}
			if len(events) == 0 && app.Database == nil {
				return fmt.Errorf("nothing to audit: configure eventsFile or databaseURL")
			}

			result, err := services.AuditCalendar(app.Ctx, app.Database, app.Logger, events, dryRun)
			if err != nil {
				return err
			}

			// Display results
			fmt.Printf("\n✓ Audited %d events\n\n", result.EventCount)

			if len(result.Conflicts) == 0 {
				fmt.Println("No double-bookings found.")
			} else {
				fmt.Printf("Found %d conflicts:\n", len(result.Conflicts))
				for _, c := range result.Conflicts {
					fmt.Printf("  ✗ [%s] %s\n", c.Kind, c.Description)
				}
			}

			if len(result.CapacityIssues) > 0 {
				fmt.Printf("\nCapacity issues:\n")
				for _, issue := range result.CapacityIssues {
					fmt.Printf("  ⚠ %s\n", issue.Description)
				}
			}
			fmt.Println()

			if output != "" {
				if err := csvio.WriteConflicts(result.Conflicts, output); err != nil {
					return err
				}
				fmt.Printf("Conflict report written to %s\n", output)
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Run without replacing stored findings")
	cmd.Flags().String("output", "", "Write the conflict report to a CSV file")

	return cmd
}
