package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusbook/scheduler/internal/csvio"
	"github.com/campusbook/scheduler/pkg/core/services"
)

// ScheduleCmd creates the schedule command
func ScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule <week_start>",
		Short: "Generate a week's timetable from the configured course, teacher and room files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, err := parseWeekStart(args[0])
			if err != nil {
				return err
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			output, _ := cmd.Flags().GetString("output")

			if app.Cfg.CoursesFile == "" || app.Cfg.TeachersFile == "" || app.Cfg.RoomsFile == "" {
				return fmt.Errorf("coursesFile, teachersFile and roomsFile must be configured")
			}

			courses, err := csvio.LoadCourses(app.Cfg.CoursesFile)
			if err != nil {
				return fmt.Errorf("failed to load courses: %w", err)
			}
			teachers, err := csvio.LoadTeachers(app.Cfg.TeachersFile)
			if err != nil {
				return fmt.Errorf("failed to load teachers: %w", err)
			}
			rooms, err := csvio.LoadRooms(app.Cfg.RoomsFile)
			if err != nil {
				return fmt.Errorf("failed to load rooms: %w", err)
			}
			events, err := loadConfiguredEvents(app)
			if err != nil {
				return err
			}

			result, err := services.ScheduleWeek(app.Ctx, app.Database, app.Cfg,
				app.Logger, weekStart, courses, teachers, rooms, events, dryRun)
			if err != nil {
				return err
			}

			// Display results
			fmt.Printf("\n✓ Scheduling run %s completed\n\n", result.RunID)
			fmt.Printf("Week Start: %s\n", result.WeekStart.Format("2006-01-02"))
			fmt.Printf("Placed:     %d of %d sessions (%.0f%%)\n\n",
				result.Placed, result.Requested,
				100*services.PlacementRate(result.Requested, result.Placed))

			for _, a := range result.Assignments {
				fmt.Printf("  %-14s %s  %s with %s in %s\n",
					a.SessionID, a.Window.Date.Format("Mon"), a.Window,
					a.Teacher.Name, a.Room.Name)
			}

			if len(result.Unplaced) > 0 {
				fmt.Printf("\nUnplaced sessions:\n")
				for _, u := range result.Unplaced {
					fmt.Printf("  ✗ %-14s %s\n", u.Session.ID, u.Reason)
				}
			}
			fmt.Println()

			if output != "" {
				if err := csvio.WriteAssignments(result.Assignments, output); err != nil {
					return err
				}
				fmt.Printf("Schedule written to %s\n", output)
			}

			if dryRun {
				fmt.Println("Dry run - nothing was saved.")
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Run without saving generated events")
	cmd.Flags().String("output", "", "Write the generated schedule to a CSV file")

	return cmd
}
