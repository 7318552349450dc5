package csvio

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/campusbook/scheduler/internal/config"
	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// TeacherRecord is one row of teachers.csv. Expertise packs subject:level
// pairs separated by semicolons, e.g. "chemistry:3;physics:2".
type TeacherRecord struct {
	ID        string `csv:"id"`
	Name      string `csv:"name"`
	Email     string `csv:"email"`
	Expertise string `csv:"expertise"`
}

// RoomRecord is one row of rooms.csv.
type RoomRecord struct {
	ID       string `csv:"id"`
	Name     string `csv:"name"`
	Capacity int    `csv:"capacity"`
	Category string `csv:"category"`
}

// CourseRecord is one row of courses.csv. PreferredDays packs weekday
// names separated by semicolons; clock fields use "HH:MM". Empty optional
// fields mean no preference.
type CourseRecord struct {
	ID              string `csv:"id"`
	Name            string `csv:"name"`
	Subject         string `csv:"subject"`
	DurationMinutes int    `csv:"duration_minutes"`
	SessionsPerWeek int    `csv:"sessions_per_week"`
	MinCapacity     int    `csv:"min_capacity"`
	Priority        int    `csv:"priority"`
	PreferredStart  string `csv:"preferred_start"`
	PreferredEnd    string `csv:"preferred_end"`
	PreferredDays   string `csv:"preferred_days"`
}

// EventRecord is one row of events.csv, a committed calendar entry.
type EventRecord struct {
	ID                   int64  `csv:"id"`
	Title                string `csv:"title"`
	Date                 string `csv:"date"`
	Start                string `csv:"start"`
	End                  string `csv:"end"`
	TeacherID            string `csv:"teacher_id"`
	TeacherName          string `csv:"teacher_name"`
	RoomID               string `csv:"room_id"`
	RoomName             string `csv:"room_name"`
	RoomCapacity         int    `csv:"room_capacity"`
	ExpectedParticipants int    `csv:"expected_participants"`
}

// AssignmentRecord is one row of the generated schedule report.
type AssignmentRecord struct {
	SessionID   string  `csv:"session_id"`
	CourseID    string  `csv:"course_id"`
	Date        string  `csv:"date"`
	Start       string  `csv:"start"`
	End         string  `csv:"end"`
	TeacherID   string  `csv:"teacher_id"`
	TeacherName string  `csv:"teacher_name"`
	RoomID      string  `csv:"room_id"`
	RoomName    string  `csv:"room_name"`
	Score       float64 `csv:"score"`
}

// ConflictRecord is one row of the audit report.
type ConflictRecord struct {
	Kind        string `csv:"kind"`
	EventA      int64  `csv:"event_a"`
	EventB      int64  `csv:"event_b"`
	Date        string `csv:"date"`
	Start       string `csv:"start"`
	End         string `csv:"end"`
	Description string `csv:"description"`
}

func (r TeacherRecord) toTeacher() (timetable.Teacher, error) {
	teacher := timetable.Teacher{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
	}

	if r.Expertise == "" {
		return teacher, nil
	}

	for _, pair := range strings.Split(r.Expertise, ";") {
		subject, levelStr, found := strings.Cut(strings.TrimSpace(pair), ":")
		if !found {
			return teacher, fmt.Errorf("teacher %q: expertise entry %q, expected subject:level", r.ID, pair)
		}
		level, err := strconv.Atoi(levelStr)
		if err != nil || level < 1 || level > 3 {
			return teacher, fmt.Errorf("teacher %q: expertise level in %q must be 1..3", r.ID, pair)
		}
		teacher.Expertise = append(teacher.Expertise, timetable.SubjectExpertise{
			Subject: strings.ToLower(strings.TrimSpace(subject)),
			Level:   timetable.ExpertiseLevel(level),
		})
	}

	return teacher, nil
}

func (r RoomRecord) toRoom() timetable.Room {
	return timetable.Room{
		ID:       r.ID,
		Name:     r.Name,
		Capacity: r.Capacity,
		Category: r.Category,
	}
}

func (r CourseRecord) toCourse() (timetable.Course, error) {
	course := timetable.Course{
		ID:              r.ID,
		Name:            r.Name,
		Subject:         strings.ToLower(r.Subject),
		Duration:        time.Duration(r.DurationMinutes) * time.Minute,
		SessionsPerWeek: r.SessionsPerWeek,
		MinCapacity:     r.MinCapacity,
		Priority:        r.Priority,
	}

	if r.PreferredStart != "" || r.PreferredEnd != "" {
		start, err := config.ParseClock(r.PreferredStart)
		if err != nil {
			return course, fmt.Errorf("course %q: %w", r.ID, err)
		}
		end, err := config.ParseClock(r.PreferredEnd)
		if err != nil {
			return course, fmt.Errorf("course %q: %w", r.ID, err)
		}
		course.PreferredStart = start
		course.PreferredEnd = end
	}

	if r.PreferredDays != "" {
		for _, name := range strings.Split(r.PreferredDays, ";") {
			day, err := config.ParseWeekday(strings.TrimSpace(name))
			if err != nil {
				return course, fmt.Errorf("course %q: %w", r.ID, err)
			}
			course.PreferredWeekdays = append(course.PreferredWeekdays, day)
		}
	}

	return course, nil
}

func (r EventRecord) toEvent() (timetable.Event, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return timetable.Event{}, fmt.Errorf("event %d: invalid date %q", r.ID, r.Date)
	}
	start, err := config.ParseClock(r.Start)
	if err != nil {
		return timetable.Event{}, fmt.Errorf("event %d: %w", r.ID, err)
	}
	end, err := config.ParseClock(r.End)
	if err != nil {
		return timetable.Event{}, fmt.Errorf("event %d: %w", r.ID, err)
	}

	return timetable.Event{
		ID:                   r.ID,
		Title:                r.Title,
		Window:               timetable.NewTimeWindow(date, start, end),
		TeacherID:            r.TeacherID,
		TeacherName:          r.TeacherName,
		RoomID:               r.RoomID,
		RoomName:             r.RoomName,
		RoomCapacity:         r.RoomCapacity,
		ExpectedParticipants: r.ExpectedParticipants,
	}, nil
}

func clockString(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
