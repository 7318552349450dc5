package scheduler

import (
	"time"

	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// RunState is the working state of one allocation run. Committed holds the
// caller's read-only snapshot (existing bookings plus resolved
// unavailability windows); Working accumulates the bookings created during
// this run. Nothing in RunState survives the run.
type RunState struct {
	WeekStart time.Time

	Committed []timetable.Booking
	Working   []timetable.Booking

	// TeacherSessions counts sessions carried by each teacher this week,
	// seeded from the committed snapshot and incremented per allocation.
	TeacherSessions map[string]int

	// CourseWeekdays tracks which weekdays each course has already been
	// placed on during this run (for session spreading).
	CourseWeekdays map[string]map[time.Weekday]bool

	// WeeklySessionCap is the per-teacher session limit for one week.
	WeeklySessionCap int
}

func newRunState(req ScheduleRequest, cap int) *RunState {
	state := &RunState{
		WeekStart:        req.WeekStart,
		Committed:        make([]timetable.Booking, 0, len(req.Existing)+len(req.Blocked)),
		Working:          []timetable.Booking{},
		TeacherSessions:  make(map[string]int),
		CourseWeekdays:   make(map[string]map[time.Weekday]bool),
		WeeklySessionCap: cap,
	}
	state.Committed = append(state.Committed, req.Existing...)
	state.Committed = append(state.Committed, req.Blocked...)

	// Existing teacher bookings count toward the weekly cap
	for _, b := range req.Existing {
		if b.Kind == timetable.KindTeacher {
			state.TeacherSessions[b.ResourceID]++
		}
	}

	return state
}

// commit records a placed session: one teacher booking and one room booking
// sharing the window, both entering the working set.
func (s *RunState) commit(session timetable.CourseSession, teacher timetable.Teacher, room timetable.Room, window timetable.TimeWindow, teacherBookingID, roomBookingID string) {
	s.Working = append(s.Working,
		timetable.Booking{
			ID:         teacherBookingID,
			ResourceID: teacher.ID,
			Kind:       timetable.KindTeacher,
			Window:     window,
			Origin:     timetable.OriginAllocated,
		},
		timetable.Booking{
			ID:         roomBookingID,
			ResourceID: room.ID,
			Kind:       timetable.KindRoom,
			Window:     window,
			Origin:     timetable.OriginAllocated,
		},
	)
	s.TeacherSessions[teacher.ID]++

	days := s.CourseWeekdays[session.CourseID]
	if days == nil {
		days = make(map[time.Weekday]bool)
		s.CourseWeekdays[session.CourseID] = days
	}
	days[window.Weekday()] = true
}

// courseUsedWeekday reports whether the course already has a session placed
// on the given weekday during this run.
func (s *RunState) courseUsedWeekday(courseID string, day time.Weekday) bool {
	return s.CourseWeekdays[courseID][day]
}
