package scheduler

import (
	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// IsFree reports whether the resource has no booking overlapping the given
// window. Committed bookings and the run-local working set are treated
// uniformly: a slot held by an in-flight allocation blocks exactly like a
// pre-existing one. Pure predicate, no side effects.
func IsFree(resourceID string, kind timetable.ResourceKind, window timetable.TimeWindow, committed, working []timetable.Booking) bool {
	return !hasOverlap(resourceID, kind, window, committed) &&
		!hasOverlap(resourceID, kind, window, working)
}

func hasOverlap(resourceID string, kind timetable.ResourceKind, window timetable.TimeWindow, bookings []timetable.Booking) bool {
	for _, b := range bookings {
		if b.ResourceID != resourceID || b.Kind != kind {
			continue
		}
		if b.Window.Overlaps(window) {
			return true
		}
	}
	return false
}
