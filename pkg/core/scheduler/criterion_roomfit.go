package scheduler

import (
	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// RoomFitCriterion rejects rooms that cannot hold the session and rewards
// rooms that are right-sized for it.
//
// Eligibility:
//   - A room with capacity below the session's minimum is excluded. This is
//     the hard capacity filter.
//
// Score:
//   - Based on how far the capacity oversizes the minimum: a snug fit earns
//     the full score, moderate oversizing decays it, a hall that dwarfs the
//     class earns almost nothing.
type RoomFitCriterion struct {
	weight float64
}

// NewRoomFitCriterion creates the criterion with the given weight.
func NewRoomFitCriterion(weight float64) *RoomFitCriterion {
	return &RoomFitCriterion{weight: weight}
}

func (c *RoomFitCriterion) Name() string {
	return "RoomFit"
}

func (c *RoomFitCriterion) IsEligible(state *RunState, session timetable.CourseSession, room timetable.Room) bool {
	return room.Capacity >= session.MinCapacity
}

func (c *RoomFitCriterion) Score(state *RunState, session timetable.CourseSession, room timetable.Room) float64 {
	need := session.MinCapacity
	if need < 1 {
		need = 1
	}
	ratio := float64(room.Capacity) / float64(need)

	switch {
	case ratio < 1:
		return 0
	case ratio <= 1.5:
		return 1.0
	case ratio <= 2.5:
		return 0.6
	case ratio <= 4:
		return 0.3
	default:
		return 0.1
	}
}

func (c *RoomFitCriterion) Weight() float64 {
	return c.weight
}
