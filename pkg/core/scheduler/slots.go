package scheduler

import (
	"time"

	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// Band is a contiguous teaching period within a working day, active only on
// the listed weekdays.
type Band struct {
	Start time.Duration
	End   time.Duration
	Days  []time.Weekday
}

// WorkingHours is the institutional working-hours policy the slot generator
// enumerates candidate windows under. Bands are tried in declared order, so
// their order encodes intra-day preference.
type WorkingHours struct {
	Step     time.Duration
	RestDays []time.Weekday
	Bands    []Band
}

// DefaultWorkingHours returns the institution's standard policy: Sunday is
// the full-rest day, mornings run 09:00-12:15 on every working day, and
// afternoons run 13:30-16:45 on Monday, Tuesday, Thursday and Friday.
// Start times are enumerated every 30 minutes.
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{
		Step:     30 * time.Minute,
		RestDays: []time.Weekday{time.Sunday},
		Bands: []Band{
			{
				Start: timetable.ClockTime(9, 0),
				End:   timetable.ClockTime(12, 15),
				Days: []time.Weekday{
					time.Monday, time.Tuesday, time.Wednesday,
					time.Thursday, time.Friday, time.Saturday,
				},
			},
			{
				Start: timetable.ClockTime(13, 30),
				End:   timetable.ClockTime(16, 45),
				Days: []time.Weekday{
					time.Monday, time.Tuesday, time.Thursday, time.Friday,
				},
			},
		},
	}
}

func (h WorkingHours) isRestDay(day time.Weekday) bool {
	for _, d := range h.RestDays {
		if d == day {
			return true
		}
	}
	return false
}

func (b Band) activeOn(day time.Weekday) bool {
	for _, d := range b.Days {
		if d == day {
			return true
		}
	}
	return false
}

// GenerateSlots enumerates every candidate window of the given duration in
// the week starting at weekStart. The output order encodes preference:
// earlier days before later ones, earlier bands before later ones, earlier
// start times first. A band shorter than the duration contributes nothing.
// Deterministic for identical inputs.
func (h WorkingHours) GenerateSlots(weekStart time.Time, duration time.Duration) []timetable.TimeWindow {
	var slots []timetable.TimeWindow
	if duration <= 0 || h.Step <= 0 {
		return slots
	}

	for offset := 0; offset < 7; offset++ {
		date := weekStart.AddDate(0, 0, offset)
		if h.isRestDay(date.Weekday()) {
			continue
		}

		for _, band := range h.Bands {
			if !band.activeOn(date.Weekday()) {
				continue
			}
			for start := band.Start; start+duration <= band.End; start += h.Step {
				slots = append(slots, timetable.NewTimeWindow(date, start, start+duration))
			}
		}
	}

	return slots
}
