package scheduler

import (
	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// TeacherCriterion is one pluggable rule for ranking a (session, teacher)
// pairing. IsEligible is a hard filter; Score contributes a weighted value
// in [0, 1] to the pairing's total.
type TeacherCriterion interface {
	Name() string
	IsEligible(state *RunState, session timetable.CourseSession, teacher timetable.Teacher) bool
	Score(state *RunState, session timetable.CourseSession, teacher timetable.Teacher) float64
	Weight() float64
}

// RoomCriterion is the room-side counterpart of TeacherCriterion.
type RoomCriterion interface {
	Name() string
	IsEligible(state *RunState, session timetable.CourseSession, room timetable.Room) bool
	Score(state *RunState, session timetable.CourseSession, room timetable.Room) float64
	Weight() float64
}
