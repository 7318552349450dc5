package scheduler

import (
	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// Matcher ranks (session, teacher) and (session, room) pairings by running
// the configured criteria. Scores are non-negative; higher is better; a
// zero score means the pairing failed a hard eligibility check.
type Matcher struct {
	teacherCriteria []TeacherCriterion
	roomCriteria    []RoomCriterion
}

// NewMatcher builds a matcher from explicit criterion lists.
func NewMatcher(teacherCriteria []TeacherCriterion, roomCriteria []RoomCriterion) *Matcher {
	return &Matcher{
		teacherCriteria: teacherCriteria,
		roomCriteria:    roomCriteria,
	}
}

// NewDefaultMatcher wires the standard criteria: subject expertise and
// weekly load on the teacher side, affinity table and capacity fit on the
// room side.
func NewDefaultMatcher(table AffinityTable) *Matcher {
	return NewMatcher(
		[]TeacherCriterion{
			NewSubjectExpertiseCriterion(WeightSubjectExpertise),
			NewWeeklyLoadCriterion(WeightTeacherLoad),
		},
		[]RoomCriterion{
			NewRoomAffinityCriterion(table, WeightRoomAffinity),
			NewRoomFitCriterion(WeightRoomFit),
		},
	)
}

// ScoreTeacher returns the weighted criterion sum for the pairing, or 0
// when any criterion rejects it.
func (m *Matcher) ScoreTeacher(state *RunState, session timetable.CourseSession, teacher timetable.Teacher) float64 {
	for _, c := range m.teacherCriteria {
		if !c.IsEligible(state, session, teacher) {
			return 0
		}
	}

	total := 0.0
	for _, c := range m.teacherCriteria {
		total += c.Score(state, session, teacher) * c.Weight()
	}
	return total
}

// ScoreRoom returns the weighted criterion sum for the pairing, or 0 when
// any criterion rejects it.
func (m *Matcher) ScoreRoom(state *RunState, session timetable.CourseSession, room timetable.Room) float64 {
	for _, c := range m.roomCriteria {
		if !c.IsEligible(state, session, room) {
			return 0
		}
	}

	total := 0.0
	for _, c := range m.roomCriteria {
		total += c.Score(state, session, room) * c.Weight()
	}
	return total
}

// HasQualifiedTeacher reports whether any teacher in the listing scores
// above zero for the session, ignoring time availability.
func (m *Matcher) HasQualifiedTeacher(state *RunState, session timetable.CourseSession, teachers []timetable.Teacher) bool {
	for _, t := range teachers {
		if m.ScoreTeacher(state, session, t) > 0 {
			return true
		}
	}
	return false
}

// HasQualifiedRoom reports whether any room in the listing scores above
// zero for the session, ignoring time availability.
func (m *Matcher) HasQualifiedRoom(state *RunState, session timetable.CourseSession, rooms []timetable.Room) bool {
	for _, r := range rooms {
		if m.ScoreRoom(state, session, r) > 0 {
			return true
		}
	}
	return false
}
