package scheduler

import (
	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// RoomAffinityCriterion scores rooms by the subject-to-room-category
// affinity table: specialist rooms for matching subjects first, generic
// lecture space as a moderate fallback, mismatched rooms low but usable.
//
// Eligibility:
//   - Always eligible; a mismatched room is a bad choice, not a forbidden
//     one.
type RoomAffinityCriterion struct {
	table  AffinityTable
	weight float64
}

// NewRoomAffinityCriterion creates the criterion over the given table.
func NewRoomAffinityCriterion(table AffinityTable, weight float64) *RoomAffinityCriterion {
	return &RoomAffinityCriterion{table: table, weight: weight}
}

func (c *RoomAffinityCriterion) Name() string {
	return "RoomAffinity"
}

func (c *RoomAffinityCriterion) IsEligible(state *RunState, session timetable.CourseSession, room timetable.Room) bool {
	return true
}

func (c *RoomAffinityCriterion) Score(state *RunState, session timetable.CourseSession, room timetable.Room) float64 {
	return c.table.Score(session.Subject, room.Category)
}

func (c *RoomAffinityCriterion) Weight() float64 {
	return c.weight
}
