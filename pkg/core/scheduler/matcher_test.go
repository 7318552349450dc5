package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusbook/scheduler/pkg/core/timetable"
)

func TestSubjectExpertiseCriterion_Score(t *testing.T) {
	c := NewSubjectExpertiseCriterion(1.0)
	state := &RunState{TeacherSessions: map[string]int{}}
	session := timetable.CourseSession{Subject: "chemistry"}

	expert := timetable.Teacher{ID: "t1", Expertise: []timetable.SubjectExpertise{{Subject: "chemistry", Level: timetable.ExpertiseExpert}}}
	basic := timetable.Teacher{ID: "t2", Expertise: []timetable.SubjectExpertise{{Subject: "chemistry", Level: timetable.ExpertiseBasic}}}
	generic := timetable.Teacher{ID: "t3"}

	assert.Equal(t, 1.0, c.Score(state, session, expert))
	assert.InDelta(t, 1.0/3.0, c.Score(state, session, basic), 1e-9)
	assert.Equal(t, genericTeacherScore, c.Score(state, session, generic))
	assert.Greater(t, c.Score(state, session, basic), c.Score(state, session, generic))
}

func TestWeeklyLoadCriterion_ExcludesAtCap(t *testing.T) {
	c := NewWeeklyLoadCriterion(1.0)
	state := &RunState{
		TeacherSessions:  map[string]int{"t1": 4, "t2": 2},
		WeeklySessionCap: 4,
	}
	session := timetable.CourseSession{Subject: "math"}

	assert.False(t, c.IsEligible(state, session, timetable.Teacher{ID: "t1"}))
	assert.True(t, c.IsEligible(state, session, timetable.Teacher{ID: "t2"}))
	assert.True(t, c.IsEligible(state, session, timetable.Teacher{ID: "t3"}))

	// Less-loaded teachers score higher
	assert.Greater(t,
		c.Score(state, session, timetable.Teacher{ID: "t3"}),
		c.Score(state, session, timetable.Teacher{ID: "t2"}))
}

func TestRoomFitCriterion_CapacityFilter(t *testing.T) {
	c := NewRoomFitCriterion(1.0)
	state := &RunState{TeacherSessions: map[string]int{}}
	session := timetable.CourseSession{MinCapacity: 40}

	assert.False(t, c.IsEligible(state, session, timetable.Room{ID: "small", Capacity: 39}))
	assert.True(t, c.IsEligible(state, session, timetable.Room{ID: "exact", Capacity: 40}))

	// Right-sized beats oversized
	assert.Greater(t,
		c.Score(state, session, timetable.Room{Capacity: 50}),
		c.Score(state, session, timetable.Room{Capacity: 200}))
}

func TestAffinityTable_Score(t *testing.T) {
	table := DefaultAffinityTable()

	exact := table.Score("chemistry", "Chemistry Lab E01")
	related := table.Score("chemistry", "Science Lab E04")
	generic := table.Score("chemistry", "Lecture Hall A01")
	mismatch := table.Score("chemistry", "Design Studio D09")

	assert.Equal(t, 1.0, exact)
	assert.Greater(t, exact, related)
	assert.Greater(t, related, generic)
	assert.Greater(t, generic, mismatch)
	assert.Greater(t, mismatch, 0.0, "mismatches score low but nonzero")
}

func TestMatcher_ScoreTeacher_ZeroWhenIneligible(t *testing.T) {
	m := NewDefaultMatcher(DefaultAffinityTable())
	state := &RunState{
		TeacherSessions:  map[string]int{"t1": 4},
		WeeklySessionCap: 4,
	}
	session := timetable.CourseSession{Subject: "physics"}

	capped := timetable.Teacher{ID: "t1", Expertise: []timetable.SubjectExpertise{{Subject: "physics", Level: timetable.ExpertiseExpert}}}
	assert.Equal(t, 0.0, m.ScoreTeacher(state, session, capped))
}

func TestMatcher_HasQualifiedRoom(t *testing.T) {
	m := NewDefaultMatcher(DefaultAffinityTable())
	state := &RunState{TeacherSessions: map[string]int{}}
	session := timetable.CourseSession{Subject: "math", MinCapacity: 100}

	smallRooms := []timetable.Room{
		{ID: "r1", Capacity: 30, Category: "classroom"},
		{ID: "r2", Capacity: 60, Category: "lecture hall"},
	}
	assert.False(t, m.HasQualifiedRoom(state, session, smallRooms))

	withHall := append(smallRooms, timetable.Room{ID: "r3", Capacity: 120, Category: "auditorium"})
	assert.True(t, m.HasQualifiedRoom(state, session, withHall))
}
