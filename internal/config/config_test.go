package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/scheduler/pkg/core/timetable"
)

func TestValidate_ValidConfig(t *testing.T) {
	cap := 3
	spread := false
	cfg := &Config{
		DatabaseURL:          "postgres://localhost/campusbook",
		WeeklySessionCap:     &cap,
		SpreadCourseSessions: &spread,
		Unavailability: []UnavailabilityRule{
			{
				ResourceID: "t-42",
				Kind:       "TEACHER",
				RRule:      "FREQ=WEEKLY;BYDAY=FR",
				Start:      "09:00",
				End:        "12:00",
			},
		},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MinimalConfig(t *testing.T) {
	err := Validate(&Config{})
	assert.NoError(t, err)
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := &Config{
		Unavailability: []UnavailabilityRule{
			{ResourceID: "t-1", Kind: "TEACHER", RRule: "INVALID_RRULE_SYNTAX"},
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestValidate_InvalidKind(t *testing.T) {
	cfg := &Config{
		Unavailability: []UnavailabilityRule{
			{ResourceID: "t-1", Kind: "JANITOR", RRule: "FREQ=WEEKLY;BYDAY=FR"},
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_UnpairedClockRange(t *testing.T) {
	cfg := &Config{
		Unavailability: []UnavailabilityRule{
			{ResourceID: "t-1", Kind: "TEACHER", RRule: "FREQ=WEEKLY;BYDAY=FR", Start: "09:00"},
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "set together")
}

func TestValidate_InvalidBand(t *testing.T) {
	cfg := &Config{
		WorkingHours: &WorkingHoursConfig{
			Bands: []BandConfig{
				{Start: "12:00", End: "09:00", Days: []string{"Monday"}},
			},
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must precede")
}

func TestValidate_InvalidWeekday(t *testing.T) {
	cfg := &Config{
		WorkingHours: &WorkingHoursConfig{
			RestDays: []string{"Restday"},
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid weekday")
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	validConfig := `
databaseURL: "postgres://localhost/campusbook"
teachersFile: "teachers.csv"
weeklySessionCap: 5
spreadCourseSessions: false
workingHours:
  stepMinutes: 15
  restDays:
    - "Sunday"
    - "Saturday"
  bands:
    - start: "08:00"
      end: "12:00"
      days:
        - "Monday"
        - "Wednesday"
subjectAffinities:
  - subject: "Chemistry"
    categories:
      chemistry lab: 1.0
      science lab: 0.8
unavailability:
  - resourceID: "t-42"
    kind: "TEACHER"
    rrule: "FREQ=WEEKLY;BYDAY=FR"
    start: "09:00"
    end: "12:00"
`

	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/campusbook", cfg.DatabaseURL)
	assert.Equal(t, "teachers.csv", cfg.TeachersFile)
	require.NotNil(t, cfg.WeeklySessionCap)
	assert.Equal(t, 5, *cfg.WeeklySessionCap)
	require.NotNil(t, cfg.SpreadCourseSessions)
	assert.False(t, *cfg.SpreadCourseSessions)

	sched := cfg.SchedulerConfig()
	assert.Equal(t, 15*time.Minute, sched.Hours.Step)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, sched.Hours.RestDays)
	require.Len(t, sched.Hours.Bands, 1)
	assert.Equal(t, timetable.ClockTime(8, 0), sched.Hours.Bands[0].Start)
	assert.Equal(t, 5, sched.WeeklySessionCap)
	assert.False(t, sched.SpreadCourseSessions)
	assert.InDelta(t, 0.8, sched.Affinity.Score("chemistry", "science lab"), 0.001)
}

func TestLoadFromPath_DefaultsWhenUnset(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minimal_config.yaml")

	err := os.WriteFile(configPath, []byte("databaseURL: \"postgres://x\"\n"), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	sched := cfg.SchedulerConfig()
	assert.Equal(t, 30*time.Minute, sched.Hours.Step)
	assert.Equal(t, 4, sched.WeeklySessionCap)
	assert.True(t, sched.SpreadCourseSessions)
	assert.Len(t, sched.Hours.Bands, 2)
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_yaml.yaml")

	invalidYAML := `
databaseURL: "postgres://x"
  invalid indentation
`

	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestResolveUnavailability(t *testing.T) {
	cfg := &Config{
		Unavailability: []UnavailabilityRule{
			{
				ResourceID: "t-42",
				Kind:       "TEACHER",
				RRule:      "FREQ=WEEKLY;BYDAY=FR",
				Start:      "09:00",
				End:        "12:00",
			},
			{
				ResourceID: "r-7",
				Kind:       "ROOM",
				RRule:      "FREQ=DAILY",
			},
		},
	}

	// Monday 2025-01-06
	weekStart := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	blocked, err := cfg.ResolveUnavailability(weekStart)
	require.NoError(t, err)

	var teacherBlocks, roomBlocks []timetable.Booking
	for _, b := range blocked {
		switch b.Kind {
		case timetable.KindTeacher:
			teacherBlocks = append(teacherBlocks, b)
		case timetable.KindRoom:
			roomBlocks = append(roomBlocks, b)
		}
	}

	// One Friday in the week
	require.Len(t, teacherBlocks, 1)
	assert.Equal(t, "t-42", teacherBlocks[0].ResourceID)
	assert.Equal(t, time.Friday, teacherBlocks[0].Window.Weekday())
	assert.Equal(t, timetable.ClockTime(9, 0), teacherBlocks[0].Window.Start)
	assert.Equal(t, timetable.ClockTime(12, 0), teacherBlocks[0].Window.End)

	// Daily closure covers every day of the week, whole working day
	assert.Len(t, roomBlocks, 7)
	assert.Equal(t, timetable.OriginExisting, roomBlocks[0].Origin)
}

func TestParseClock(t *testing.T) {
	d, err := ParseClock("13:30")
	require.NoError(t, err)
	assert.Equal(t, timetable.ClockTime(13, 30), d)

	d, err = ParseClock("24:00")
	require.NoError(t, err)
	assert.Equal(t, timetable.ClockTime(24, 0), d)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("24:59")
	assert.Error(t, err)
	_, err = ParseClock("high noon")
	assert.Error(t, err)
}
