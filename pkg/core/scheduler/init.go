package scheduler

import (
	"errors"
	"fmt"
	"sort"

	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// ErrInvalidInput rejects a whole Schedule call before any allocation is
// attempted. Per-session infeasibility is never an error; it lands in the
// result's unplaced list instead.
var ErrInvalidInput = errors.New("invalid input")

// ExpandCourses converts course records into independent CourseSessions:
// a course with N sessions per week yields N sessions that share subject,
// duration and priority but are placed separately. Session IDs are derived
// from the course ID so results stay stable across runs.
func ExpandCourses(courses []timetable.Course) []timetable.CourseSession {
	var sessions []timetable.CourseSession
	for _, course := range courses {
		count := course.SessionsPerWeek
		if count < 1 {
			count = 1
		}
		for i := 1; i <= count; i++ {
			sessions = append(sessions, timetable.CourseSession{
				ID:                fmt.Sprintf("%s-s%d", course.ID, i),
				CourseID:          course.ID,
				CourseName:        course.Name,
				Subject:           course.Subject,
				Duration:          course.Duration,
				MinCapacity:       course.MinCapacity,
				Priority:          course.Priority,
				PreferredStart:    course.PreferredStart,
				PreferredEnd:      course.PreferredEnd,
				PreferredWeekdays: course.PreferredWeekdays,
			})
		}
	}
	return sessions
}

// validateRequest rejects malformed input up front. Everything caught here
// is fatal to the call; partial failures are reported structurally instead.
func validateRequest(req ScheduleRequest) error {
	if req.WeekStart.IsZero() {
		return fmt.Errorf("%w: week start date is required", ErrInvalidInput)
	}
	if len(req.Sessions) == 0 {
		return fmt.Errorf("%w: no sessions to schedule", ErrInvalidInput)
	}
	if len(req.Teachers) == 0 {
		return fmt.Errorf("%w: teacher pool is empty", ErrInvalidInput)
	}
	if len(req.Rooms) == 0 {
		return fmt.Errorf("%w: room pool is empty", ErrInvalidInput)
	}

	seen := make(map[string]bool, len(req.Sessions))
	for _, s := range req.Sessions {
		if s.ID == "" {
			return fmt.Errorf("%w: session for course %q has no id", ErrInvalidInput, s.CourseID)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate session id %q", ErrInvalidInput, s.ID)
		}
		seen[s.ID] = true
		if s.Duration <= 0 {
			return fmt.Errorf("%w: session %q duration must be positive", ErrInvalidInput, s.ID)
		}
		if s.PreferredStart != 0 || s.PreferredEnd != 0 {
			if s.PreferredEnd <= s.PreferredStart {
				return fmt.Errorf("%w: session %q preferred range start must precede end", ErrInvalidInput, s.ID)
			}
		}
	}

	for _, b := range append(append([]timetable.Booking{}, req.Existing...), req.Blocked...) {
		if !b.Window.Valid() {
			return fmt.Errorf("%w: booking %q has malformed window (start must precede end)", ErrInvalidInput, b.ID)
		}
	}

	if req.Budget.Deadline.IsZero() && req.Budget.MaxChecks < 0 {
		return fmt.Errorf("%w: negative feasibility-check budget", ErrInvalidInput)
	}

	return nil
}

// sortSessions orders sessions descending by priority. The sort is stable
// so equal-priority sessions keep their submission order, which the
// determinism guarantee depends on.
func sortSessions(sessions []timetable.CourseSession) []timetable.CourseSession {
	sorted := make([]timetable.CourseSession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return sorted
}
