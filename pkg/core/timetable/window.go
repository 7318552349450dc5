package timetable

import (
	"fmt"
	"time"
)

// TimeWindow is a half-open interval [Start, End) on a single calendar day.
// Start and End carry clock times only; Date pins the day.
type TimeWindow struct {
	Date  time.Time
	Start time.Duration // offset from midnight
	End   time.Duration // offset from midnight
}

// NewTimeWindow builds a window from a date and two clock times expressed
// as offsets from midnight.
func NewTimeWindow(date time.Time, start, end time.Duration) TimeWindow {
	return TimeWindow{
		Date:  date.Truncate(24 * time.Hour),
		Start: start,
		End:   end,
	}
}

// ClockTime returns an offset from midnight for the given hour and minute.
func ClockTime(hour, minute int) time.Duration {
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute
}

// Valid reports whether the window is well-formed (start strictly before end).
func (w TimeWindow) Valid() bool {
	return !w.Date.IsZero() && w.Start < w.End
}

// Duration returns the window length.
func (w TimeWindow) Duration() time.Duration {
	return w.End - w.Start
}

// SameDay reports whether both windows fall on the same calendar day.
func (w TimeWindow) SameDay(other TimeWindow) bool {
	y1, m1, d1 := w.Date.Date()
	y2, m2, d2 := other.Date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Overlaps reports whether two windows overlap using half-open semantics:
// windows that merely touch at an endpoint do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	if !w.SameDay(other) {
		return false
	}
	return w.Start < other.End && w.End > other.Start
}

// Intersect returns the overlapping portion of two windows. The boolean is
// false when the windows do not overlap.
func (w TimeWindow) Intersect(other TimeWindow) (TimeWindow, bool) {
	if !w.Overlaps(other) {
		return TimeWindow{}, false
	}
	out := TimeWindow{Date: w.Date, Start: w.Start, End: w.End}
	if other.Start > out.Start {
		out.Start = other.Start
	}
	if other.End < out.End {
		out.End = other.End
	}
	return out, true
}

// Weekday returns the day of week of the window's date.
func (w TimeWindow) Weekday() time.Weekday {
	return w.Date.Weekday()
}

func formatClock(d time.Duration) string {
	minutes := int(d.Minutes())
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// String renders the window as "2006-01-02 09:00-10:30".
func (w TimeWindow) String() string {
	return fmt.Sprintf("%s %s-%s", w.Date.Format("2006-01-02"), formatClock(w.Start), formatClock(w.End))
}
