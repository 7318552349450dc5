// Package audit detects double-booking conflicts in a closed set of
// committed calendar events. It shares no state with the scheduler: it is
// a pure pass over its input, recomputable at any time, and persisting or
// discarding its findings is the caller's business.
package audit

import (
	"errors"
	"fmt"

	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// ErrInvalidEvent rejects an audit call whose input contains a malformed
// event (missing date, start at or after end). Events without a room or
// teacher are fine: they simply cannot conflict on that resource.
var ErrInvalidEvent = errors.New("invalid event")

// FindConflicts scans every unordered pair of events and reports each
// shared room and each shared teacher with overlapping times as a separate
// conflict, so one pair can yield zero, one or two records. The lower
// event id is always reported as EventA, and output order follows the
// pairwise scan, ROOM before TEACHER for the same pair — deterministic for
// identical input.
//
// The scan is O(n²) in the event count on purpose: the surrounding system
// recomputes conflicts globally rather than incrementally, which is fine
// at hundreds of events but will not scale to millions.
func FindConflicts(events []timetable.Event) ([]timetable.Conflict, error) {
	for _, e := range events {
		if !e.Window.Valid() {
			return nil, fmt.Errorf("%w: event %d has a malformed time window", ErrInvalidEvent, e.ID)
		}
	}

	conflicts := []timetable.Conflict{}

	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			a, b := events[i], events[j]

			if !a.Window.SameDay(b.Window) {
				continue
			}
			overlap, ok := a.Window.Intersect(b.Window)
			if !ok {
				continue
			}

			// Lower id is always eventA
			if a.ID > b.ID {
				a, b = b, a
			}

			if a.RoomID != "" && b.RoomID != "" && a.RoomID == b.RoomID {
				conflicts = append(conflicts, timetable.Conflict{
					Kind:    timetable.ConflictRoom,
					EventA:  a.ID,
					EventB:  b.ID,
					Overlap: overlap,
					Description: fmt.Sprintf("Room '%s' double-booked: event %d vs event %d on %s",
						a.RoomName, a.ID, b.ID, overlap),
				})
			}

			if a.TeacherID != "" && b.TeacherID != "" && a.TeacherID == b.TeacherID {
				conflicts = append(conflicts, timetable.Conflict{
					Kind:    timetable.ConflictTeacher,
					EventA:  a.ID,
					EventB:  b.ID,
					Overlap: overlap,
					Description: fmt.Sprintf("Teacher '%s' double-booked: event %d vs event %d on %s",
						a.TeacherName, a.ID, b.ID, overlap),
				})
			}
		}
	}

	return conflicts, nil
}

// FindCapacityIssues flags events whose expected attendance exceeds the
// assigned room's capacity. Events without a room or without an attendance
// figure are skipped.
func FindCapacityIssues(events []timetable.Event) []timetable.CapacityIssue {
	issues := []timetable.CapacityIssue{}

	for _, e := range events {
		if e.RoomID == "" || e.ExpectedParticipants <= 0 {
			continue
		}
		if e.ExpectedParticipants <= e.RoomCapacity {
			continue
		}
		issues = append(issues, timetable.CapacityIssue{
			EventID:  e.ID,
			RoomID:   e.RoomID,
			Capacity: e.RoomCapacity,
			Expected: e.ExpectedParticipants,
			Description: fmt.Sprintf("Event %d expects %d participants but room '%s' holds %d",
				e.ID, e.ExpectedParticipants, e.RoomName, e.RoomCapacity),
		})
	}

	return issues
}
