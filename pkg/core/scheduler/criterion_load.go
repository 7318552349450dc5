package scheduler

import (
	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// WeeklyLoadCriterion enforces the per-teacher weekly session cap and
// nudges the matcher toward less-loaded teachers.
//
// Eligibility:
//   - A teacher already at the cap (counting existing bookings and this
//     run's allocations) is excluded.
//
// Score:
//   - Remaining headroom as a fraction of the cap, so two equally expert
//     teachers resolve toward the one with more room left.
type WeeklyLoadCriterion struct {
	weight float64
}

// NewWeeklyLoadCriterion creates the criterion with the given weight.
func NewWeeklyLoadCriterion(weight float64) *WeeklyLoadCriterion {
	return &WeeklyLoadCriterion{weight: weight}
}

func (c *WeeklyLoadCriterion) Name() string {
	return "WeeklyLoad"
}

func (c *WeeklyLoadCriterion) IsEligible(state *RunState, session timetable.CourseSession, teacher timetable.Teacher) bool {
	if state.WeeklySessionCap <= 0 {
		return true
	}
	return state.TeacherSessions[teacher.ID] < state.WeeklySessionCap
}

func (c *WeeklyLoadCriterion) Score(state *RunState, session timetable.CourseSession, teacher timetable.Teacher) float64 {
	if state.WeeklySessionCap <= 0 {
		return 0
	}
	remaining := state.WeeklySessionCap - state.TeacherSessions[teacher.ID]
	if remaining < 0 {
		remaining = 0
	}
	return float64(remaining) / float64(state.WeeklySessionCap)
}

func (c *WeeklyLoadCriterion) Weight() float64 {
	return c.weight
}
