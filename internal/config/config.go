package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/campusbook/scheduler/pkg/core/scheduler"
	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// UnavailabilityRule blocks a resource on dates matching an RRULE pattern.
// Start and End are clock times ("HH:MM"); when both are empty the whole
// working day is blocked.
type UnavailabilityRule struct {
	ResourceID string `yaml:"resourceID" validate:"required"`
	Kind       string `yaml:"kind" validate:"required,oneof=TEACHER ROOM"`
	RRule      string `yaml:"rrule" validate:"required"`
	Start      string `yaml:"start,omitempty"`
	End        string `yaml:"end,omitempty"`
}

// BandConfig is one teaching band of the working-hours policy.
type BandConfig struct {
	Start string   `yaml:"start" validate:"required"`
	End   string   `yaml:"end" validate:"required"`
	Days  []string `yaml:"days" validate:"required,min=1"`
}

// WorkingHoursConfig overrides the institution's default policy. Zero
// values fall back to the defaults.
type WorkingHoursConfig struct {
	StepMinutes int          `yaml:"stepMinutes,omitempty" validate:"omitempty,min=5"`
	RestDays    []string     `yaml:"restDays,omitempty"`
	Bands       []BandConfig `yaml:"bands,omitempty" validate:"dive"`
}

// SubjectAffinity overrides one row of the subject to room-category
// affinity table.
type SubjectAffinity struct {
	Subject    string             `yaml:"subject" validate:"required"`
	Categories map[string]float64 `yaml:"categories" validate:"required,min=1"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL,omitempty"`

	TeachersFile string `yaml:"teachersFile,omitempty"`
	RoomsFile    string `yaml:"roomsFile,omitempty"`
	CoursesFile  string `yaml:"coursesFile,omitempty"`
	EventsFile   string `yaml:"eventsFile,omitempty"`

	WeeklySessionCap     *int  `yaml:"weeklySessionCap,omitempty" validate:"omitempty,min=0"`
	SpreadCourseSessions *bool `yaml:"spreadCourseSessions,omitempty"`

	WorkingHours      *WorkingHoursConfig  `yaml:"workingHours,omitempty"`
	SubjectAffinities []SubjectAffinity    `yaml:"subjectAffinities,omitempty" validate:"dive"`
	Unavailability    []UnavailabilityRule `yaml:"unavailability,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from scheduler_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, rrule syntax, clock times
// and weekday names.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, rule := range cfg.Unavailability {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in unavailability[%d]: %w", i, err)
		}
		if (rule.Start == "") != (rule.End == "") {
			return fmt.Errorf("unavailability[%d]: start and end must be set together", i)
		}
		if rule.Start != "" {
			start, err := ParseClock(rule.Start)
			if err != nil {
				return fmt.Errorf("unavailability[%d]: %w", i, err)
			}
			end, err := ParseClock(rule.End)
			if err != nil {
				return fmt.Errorf("unavailability[%d]: %w", i, err)
			}
			if end <= start {
				return fmt.Errorf("unavailability[%d]: start %q must precede end %q", i, rule.Start, rule.End)
			}
		}
	}

	if cfg.WorkingHours != nil {
		for _, name := range cfg.WorkingHours.RestDays {
			if _, err := ParseWeekday(name); err != nil {
				return fmt.Errorf("workingHours restDays: %w", err)
			}
		}
		for i, band := range cfg.WorkingHours.Bands {
			start, err := ParseClock(band.Start)
			if err != nil {
				return fmt.Errorf("workingHours bands[%d]: %w", i, err)
			}
			end, err := ParseClock(band.End)
			if err != nil {
				return fmt.Errorf("workingHours bands[%d]: %w", i, err)
			}
			if end <= start {
				return fmt.Errorf("workingHours bands[%d]: start %q must precede end %q", i, band.Start, band.End)
			}
			for _, name := range band.Days {
				if _, err := ParseWeekday(name); err != nil {
					return fmt.Errorf("workingHours bands[%d]: %w", i, err)
				}
			}
		}
	}

	return nil
}

// SchedulerConfig translates the file configuration into an allocator
// policy, falling back to the institution defaults for anything unset.
func (c *Config) SchedulerConfig() scheduler.Config {
	out := scheduler.DefaultConfig()

	if c.WeeklySessionCap != nil {
		out.WeeklySessionCap = *c.WeeklySessionCap
	}
	if c.SpreadCourseSessions != nil {
		out.SpreadCourseSessions = *c.SpreadCourseSessions
	}

	if c.WorkingHours != nil {
		if c.WorkingHours.StepMinutes > 0 {
			out.Hours.Step = time.Duration(c.WorkingHours.StepMinutes) * time.Minute
		}
		if len(c.WorkingHours.RestDays) > 0 {
			out.Hours.RestDays = mustWeekdays(c.WorkingHours.RestDays)
		}
		if len(c.WorkingHours.Bands) > 0 {
			bands := make([]scheduler.Band, 0, len(c.WorkingHours.Bands))
			for _, b := range c.WorkingHours.Bands {
				start, _ := ParseClock(b.Start)
				end, _ := ParseClock(b.End)
				bands = append(bands, scheduler.Band{
					Start: start,
					End:   end,
					Days:  mustWeekdays(b.Days),
				})
			}
			out.Hours.Bands = bands
		}
	}

	for _, row := range c.SubjectAffinities {
		out.Affinity.Subjects[strings.ToLower(row.Subject)] = row.Categories
	}

	return out
}

// ResolveUnavailability expands the configured rules into blocked bookings
// for the week starting at weekStart. Each date the rrule produces inside
// the week yields one booking.
func (c *Config) ResolveUnavailability(weekStart time.Time) ([]timetable.Booking, error) {
	weekStart = weekStart.Truncate(24 * time.Hour)
	weekEnd := weekStart.AddDate(0, 0, 7)

	var blocked []timetable.Booking
	for i, rule := range c.Unavailability {
		parsed, err := rrule.StrToRRule(rule.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in unavailability[%d]: %w", i, err)
		}
		parsed.DTStart(weekStart)

		start, end := timetable.ClockTime(0, 0), timetable.ClockTime(24, 0)
		if rule.Start != "" {
			if start, err = ParseClock(rule.Start); err != nil {
				return nil, fmt.Errorf("unavailability[%d]: %w", i, err)
			}
			if end, err = ParseClock(rule.End); err != nil {
				return nil, fmt.Errorf("unavailability[%d]: %w", i, err)
			}
		}

		kind := timetable.KindTeacher
		if rule.Kind == string(timetable.KindRoom) {
			kind = timetable.KindRoom
		}

		for _, date := range parsed.Between(weekStart, weekEnd, true) {
			if !date.Before(weekEnd) {
				continue
			}
			blocked = append(blocked, timetable.Booking{
				ID:         fmt.Sprintf("unavail-%s-%s", rule.ResourceID, date.Format("2006-01-02")),
				ResourceID: rule.ResourceID,
				Kind:       kind,
				Window:     timetable.NewTimeWindow(date, start, end),
				Origin:     timetable.OriginExisting,
			})
		}
	}

	return blocked, nil
}

// ParseClock parses an "HH:MM" clock time into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 24 {
		return 0, fmt.Errorf("invalid hour in clock time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in clock time %q", s)
	}
	// 24:00 marks end of day; nothing lies beyond it
	if hour == 24 && minute != 0 {
		return 0, fmt.Errorf("invalid clock time %q, latest is 24:00", s)
	}
	return timetable.ClockTime(hour, minute), nil
}

// ParseWeekday parses an English weekday name ("Monday").
func ParseWeekday(name string) (time.Weekday, error) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(day.String(), name) {
			return day, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", name)
}

func mustWeekdays(names []string) []time.Weekday {
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		// Validate already rejected anything unparseable
		if day, err := ParseWeekday(name); err == nil {
			days = append(days, day)
		}
	}
	return days
}

// findConfigFile searches for scheduler_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "scheduler_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
