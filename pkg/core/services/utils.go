package services

import (
	"fmt"
	"time"

	"github.com/campusbook/scheduler/pkg/core/timetable"
	"github.com/campusbook/scheduler/pkg/db"
)

// eventsToBookings converts committed calendar events into the bookings
// the allocator treats as occupied time. An event with both a teacher and
// a room yields two bookings.
func eventsToBookings(events []timetable.Event) []timetable.Booking {
	var bookings []timetable.Booking
	for _, e := range events {
		if e.TeacherID != "" {
			bookings = append(bookings, timetable.Booking{
				ID:         fmt.Sprintf("event-%d-teacher", e.ID),
				ResourceID: e.TeacherID,
				Kind:       timetable.KindTeacher,
				Window:     e.Window,
				Origin:     timetable.OriginExisting,
			})
		}
		if e.RoomID != "" {
			bookings = append(bookings, timetable.Booking{
				ID:         fmt.Sprintf("event-%d-room", e.ID),
				ResourceID: e.RoomID,
				Kind:       timetable.KindRoom,
				Window:     e.Window,
				Origin:     timetable.OriginExisting,
			})
		}
	}
	return bookings
}

// recordsToEvents converts stored event records, rejecting malformed rows.
func recordsToEvents(records []db.Event) ([]timetable.Event, error) {
	events := make([]timetable.Event, 0, len(records))
	for _, r := range records {
		event, err := r.ToTimetable()
		if err != nil {
			return nil, fmt.Errorf("stored event %d: %w", r.ID, err)
		}
		events = append(events, event)
	}
	return events, nil
}

// normalizeWeekStart truncates to midnight UTC.
func normalizeWeekStart(weekStart time.Time) time.Time {
	return time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, time.UTC)
}
