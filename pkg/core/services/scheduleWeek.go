package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/campusbook/scheduler/internal/config"
	"github.com/campusbook/scheduler/pkg/core/scheduler"
	"github.com/campusbook/scheduler/pkg/core/timetable"
	"github.com/campusbook/scheduler/pkg/db"
)

// ScheduleWeekResult contains the outcome of one scheduling run
type ScheduleWeekResult struct {
	RunID       string
	WeekStart   time.Time
	Requested   int
	Placed      int
	Assignments []timetable.Assignment
	Unplaced    []scheduler.UnplacedSession
	SavedEvents []db.Event
}

// ScheduleWeek runs the allocation engine for the week starting at
// weekStart. Committed events come from the store plus any extraEvents the
// caller loaded elsewhere. If dryRun is true, or no store is configured,
// generated events are not saved.
func ScheduleWeek(
	ctx context.Context,
	database db.EventStore,
	cfg *config.Config,
	logger *zap.Logger,
	weekStart time.Time,
	courses []timetable.Course,
	teachers []timetable.Teacher,
	rooms []timetable.Room,
	extraEvents []timetable.Event,
	dryRun bool,
) (*ScheduleWeekResult, error) {
	weekStart = normalizeWeekStart(weekStart)
	runID := uuid.NewString()

	logger.Debug("Starting scheduleWeek",
		zap.String("run_id", runID),
		zap.Time("week_start", weekStart),
		zap.Bool("dry_run", dryRun))

	committed := extraEvents
	if database != nil {
		logger.Debug("Fetching committed events for week")
		records, err := database.GetEventsForWeek(ctx, weekStart.Format("2006-01-02"))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch events: %w", err)
		}
		// A previous run's generated events are replaced by this run, so
		// they must not block it. Only imported events stay committed.
		records = lo.Filter(records, func(r db.Event, _ int) bool {
			return r.Origin != string(timetable.OriginAllocated)
		})
		stored, err := recordsToEvents(records)
		if err != nil {
			return nil, err
		}
		committed = append(committed, stored...)
	}
	logger.Debug("Committed events", zap.Int("count", len(committed)))

	blocked, err := cfg.ResolveUnavailability(weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve unavailability rules: %w", err)
	}
	logger.Debug("Resolved unavailability rules", zap.Int("blocked_bookings", len(blocked)))

	sessions := scheduler.ExpandCourses(courses)
	logger.Debug("Expanded courses",
		zap.Int("courses", len(courses)),
		zap.Int("sessions", len(sessions)))

	alloc := scheduler.NewAllocator(cfg.SchedulerConfig())

	logger.Info("Running allocation")
	result, err := alloc.Schedule(ctx, scheduler.ScheduleRequest{
		WeekStart: weekStart,
		Sessions:  sessions,
		Teachers:  teachers,
		Rooms:     rooms,
		Existing:  eventsToBookings(committed),
		Blocked:   blocked,
	})
	if err != nil {
		return nil, fmt.Errorf("allocation failed: %w", err)
	}

	logger.Info("Allocation completed",
		zap.Int("requested", result.Requested),
		zap.Int("placed", result.Placed),
		zap.Int("unplaced", len(result.Unplaced)))

	for _, u := range result.Unplaced {
		logger.Warn("Session not placed",
			zap.String("session_id", u.Session.ID),
			zap.String("course_id", u.Session.CourseID),
			zap.String("reason", string(u.Reason)))
	}

	out := &ScheduleWeekResult{
		RunID:       runID,
		WeekStart:   weekStart,
		Requested:   result.Requested,
		Placed:      result.Placed,
		Assignments: result.Assignments,
		Unplaced:    result.Unplaced,
	}

	if database == nil || dryRun {
		logger.Info("Dry run mode - generated events not saved")
		return out, nil
	}

	courseNames := lo.SliceToMap(courses, func(c timetable.Course) (string, string) {
		return c.ID, c.Name
	})

	records := lo.Map(result.Assignments, func(a timetable.Assignment, _ int) db.Event {
		return db.NewEventFromAssignment(a, courseNames[a.CourseID], runID)
	})

	logger.Info("Saving generated events", zap.Int("count", len(records)))
	removed, err := database.DeleteGeneratedEvents(ctx, weekStart.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to clear previously generated events: %w", err)
	}
	if removed > 0 {
		logger.Info("Cleared previously generated events", zap.Int64("count", removed))
	}

	saved, err := database.InsertEvents(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("failed to save events: %w", err)
	}
	logger.Info("Events saved", zap.Int("count", len(saved)))
	out.SavedEvents = saved

	return out, nil
}
