package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusbook/scheduler/pkg/core/services"
)

// AnalyzeCmd creates the analyze command
func AnalyzeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Summarize room, teacher and weekday utilization of committed events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := loadConfiguredEvents(app)
			if err != nil {
				return err
			}

			if app.Database != nil {
				records, err := app.Database.GetEvents(app.Ctx)
				if err != nil {
					return fmt.Errorf("failed to fetch events: %w", err)
				}
				for _, r := range records {
					event, err := r.ToTimetable()
					if err != nil {
						return fmt.Errorf("stored event %d: %w", r.ID, err)
					}
					events = append(events, event)
				}
			}

			if len(events) == 0 {
				fmt.Println("No events to analyze.")
				return nil
			}

			report := services.Utilization(events)

			fmt.Printf("\nUtilization over %d events (%d booked minutes)\n\n",
				report.EventCount, report.TotalMinutes)

			fmt.Println("Rooms:")
			for _, usage := range report.RoomUsage {
				fmt.Printf("  %-20s %4d events  %5d min\n",
					usage.ResourceName, usage.EventCount, usage.BookedMinutes)
			}

			fmt.Println("\nTeachers:")
			for _, usage := range report.TeacherUsage {
				fmt.Printf("  %-20s %4d events  %5d min\n",
					usage.ResourceName, usage.EventCount, usage.BookedMinutes)
			}

			fmt.Printf("\nBusiest day: %s (%d min)\n\n", report.BusiestDay, report.BusiestDayMin)

			return nil
		},
	}
}
