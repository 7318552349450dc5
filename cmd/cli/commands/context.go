package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campusbook/scheduler/internal/config"
	"github.com/campusbook/scheduler/internal/csvio"
	"github.com/campusbook/scheduler/pkg/core/timetable"
	"github.com/campusbook/scheduler/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
}

// parseWeekStart parses a "2006-01-02" date argument.
func parseWeekStart(arg string) (time.Time, error) {
	weekStart, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("week_start must be formatted as YYYY-MM-DD: %w", err)
	}
	return weekStart, nil
}

// loadConfiguredEvents loads committed events from the configured CSV file,
// or nothing when no file is configured.
func loadConfiguredEvents(app *AppContext) ([]timetable.Event, error) {
	if app.Cfg.EventsFile == "" {
		return nil, nil
	}
	events, err := csvio.LoadEvents(app.Cfg.EventsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	app.Logger.Debug("Loaded events from CSV",
		zap.String("path", app.Cfg.EventsFile),
		zap.Int("count", len(events)))
	return events, nil
}
