package services

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// ResourceUsage aggregates booked time for one room or teacher.
type ResourceUsage struct {
	ResourceID    string
	ResourceName  string
	EventCount    int
	BookedMinutes int
}

// UtilizationReport summarizes how a set of committed events uses rooms,
// teachers and weekdays.
type UtilizationReport struct {
	EventCount    int
	TotalMinutes  int
	RoomUsage     []ResourceUsage
	TeacherUsage  []ResourceUsage
	BusiestDay    time.Weekday
	BusiestDayMin int
}

// Utilization computes a report over committed events. Pure aggregation;
// events with malformed windows contribute nothing.
func Utilization(events []timetable.Event) *UtilizationReport {
	valid := lo.Filter(events, func(e timetable.Event, _ int) bool {
		return e.Window.Valid()
	})

	report := &UtilizationReport{
		EventCount: len(valid),
		TotalMinutes: lo.SumBy(valid, func(e timetable.Event) int {
			return int(e.Window.Duration().Minutes())
		}),
	}

	report.RoomUsage = usageBy(valid,
		func(e timetable.Event) (string, string) { return e.RoomID, e.RoomName })
	report.TeacherUsage = usageBy(valid,
		func(e timetable.Event) (string, string) { return e.TeacherID, e.TeacherName })

	byDay := make(map[time.Weekday]int)
	for _, e := range valid {
		byDay[e.Window.Weekday()] += int(e.Window.Duration().Minutes())
	}
	for day := time.Sunday; day <= time.Saturday; day++ {
		if byDay[day] > report.BusiestDayMin {
			report.BusiestDay = day
			report.BusiestDayMin = byDay[day]
		}
	}

	return report
}

// PlacementRate is the fraction of requested sessions a run placed.
func PlacementRate(requested, placed int) float64 {
	if requested <= 0 {
		return 0
	}
	return float64(placed) / float64(requested)
}

func usageBy(events []timetable.Event, key func(timetable.Event) (string, string)) []ResourceUsage {
	byID := make(map[string]*ResourceUsage)
	for _, e := range events {
		id, name := key(e)
		if id == "" {
			continue
		}
		usage, ok := byID[id]
		if !ok {
			usage = &ResourceUsage{ResourceID: id, ResourceName: name}
			byID[id] = usage
		}
		usage.EventCount++
		usage.BookedMinutes += int(e.Window.Duration().Minutes())
	}

	out := lo.Map(lo.Values(byID), func(u *ResourceUsage, _ int) ResourceUsage { return *u })
	sort.Slice(out, func(i, j int) bool {
		if out[i].BookedMinutes != out[j].BookedMinutes {
			return out[i].BookedMinutes > out[j].BookedMinutes
		}
		return out[i].ResourceID < out[j].ResourceID
	})
	return out
}
