package db

import (
	"time"

	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// Event is the stored shape of a committed calendar entry. Clock times are
// minute offsets from midnight; Date is "2006-01-02". Origin records
// whether the event was imported or produced by a scheduling run, and
// RunID groups the events of one run.
type Event struct {
	ID                   int64
	Title                string
	Date                 string
	StartMinutes         int
	EndMinutes           int
	TeacherID            string
	TeacherName          string
	RoomID               string
	RoomName             string
	RoomCapacity         int
	ExpectedParticipants int
	Origin               string
	RunID                string
}

// Conflict is the stored shape of one audit finding.
type Conflict struct {
	ID           string
	Kind         string
	EventA       int64
	EventB       int64
	Date         string
	StartMinutes int
	EndMinutes   int
	Description  string
}

// ToTimetable converts the stored record into the engine's event type.
func (e Event) ToTimetable() (timetable.Event, error) {
	date, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return timetable.Event{}, err
	}

	return timetable.Event{
		ID:    e.ID,
		Title: e.Title,
		Window: timetable.NewTimeWindow(date,
			time.Duration(e.StartMinutes)*time.Minute,
			time.Duration(e.EndMinutes)*time.Minute),
		TeacherID:            e.TeacherID,
		TeacherName:          e.TeacherName,
		RoomID:               e.RoomID,
		RoomName:             e.RoomName,
		RoomCapacity:         e.RoomCapacity,
		ExpectedParticipants: e.ExpectedParticipants,
	}, nil
}

// NewEventFromAssignment converts one allocation result into a storable
// event. The database assigns the ID on insert.
func NewEventFromAssignment(a timetable.Assignment, courseName, runID string) Event {
	return Event{
		Title:                courseName,
		Date:                 a.Window.Date.Format("2006-01-02"),
		StartMinutes:         int(a.Window.Start.Minutes()),
		EndMinutes:           int(a.Window.End.Minutes()),
		TeacherID:            a.Teacher.ID,
		TeacherName:          a.Teacher.Name,
		RoomID:               a.Room.ID,
		RoomName:             a.Room.Name,
		RoomCapacity:         a.Room.Capacity,
		ExpectedParticipants: 0,
		Origin:               string(timetable.OriginAllocated),
		RunID:                runID,
	}
}

// NewConflictRecord converts one audit finding into a storable record.
func NewConflictRecord(id string, c timetable.Conflict) Conflict {
	return Conflict{
		ID:           id,
		Kind:         string(c.Kind),
		EventA:       c.EventA,
		EventB:       c.EventB,
		Date:         c.Overlap.Date.Format("2006-01-02"),
		StartMinutes: int(c.Overlap.Start.Minutes()),
		EndMinutes:   int(c.Overlap.End.Minutes()),
		Description:  c.Description,
	}
}
