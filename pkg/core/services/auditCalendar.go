package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/campusbook/scheduler/pkg/core/audit"
	"github.com/campusbook/scheduler/pkg/core/timetable"
	"github.com/campusbook/scheduler/pkg/db"
)

// AuditCalendarResult contains the findings of one audit run
type AuditCalendarResult struct {
	EventCount     int
	Conflicts      []timetable.Conflict
	CapacityIssues []timetable.CapacityIssue
}

// AuditCalendar scans committed events for double-bookings and capacity
// problems. Events come from the store plus any extraEvents the caller
// loaded elsewhere. Unless dryRun is set, the stored findings are replaced
// with this run's.
func AuditCalendar(
	ctx context.Context,
	database db.Database,
	logger *zap.Logger,
	extraEvents []timetable.Event,
	dryRun bool,
) (*AuditCalendarResult, error) {
	logger.Debug("Starting auditCalendar", zap.Bool("dry_run", dryRun))

	events := extraEvents
	if database != nil {
		records, err := database.GetEvents(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch events: %w", err)
		}
		stored, err := recordsToEvents(records)
		if err != nil {
			return nil, err
		}
		events = append(events, stored...)
	}
	logger.Debug("Events to audit", zap.Int("count", len(events)))

	conflicts, err := audit.FindConflicts(events)
	if err != nil {
		return nil, fmt.Errorf("audit failed: %w", err)
	}
	capacityIssues := audit.FindCapacityIssues(events)

	logger.Info("Audit completed",
		zap.Int("events", len(events)),
		zap.Int("conflicts", len(conflicts)),
		zap.Int("capacity_issues", len(capacityIssues)))

	for _, c := range conflicts {
		logger.Warn("Conflict found",
			zap.String("kind", string(c.Kind)),
			zap.Int64("event_a", c.EventA),
			zap.Int64("event_b", c.EventB),
			zap.String("description", c.Description))
	}

	if database != nil && !dryRun {
		records := lo.Map(conflicts, func(c timetable.Conflict, _ int) db.Conflict {
			return db.NewConflictRecord(uuid.NewString(), c)
		})
		if err := database.ReplaceConflicts(ctx, records); err != nil {
			return nil, fmt.Errorf("failed to save conflicts: %w", err)
		}
		logger.Info("Conflicts saved", zap.Int("count", len(records)))
	}

	return &AuditCalendarResult{
		EventCount:     len(events),
		Conflicts:      conflicts,
		CapacityIssues: capacityIssues,
	}, nil
}
