package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTimeWindow_Overlaps_HalfOpenBoundary(t *testing.T) {
	day := date(2025, time.January, 1)

	a := NewTimeWindow(day, ClockTime(9, 0), ClockTime(10, 0))
	b := NewTimeWindow(day, ClockTime(10, 0), ClockTime(11, 0))

	// Touching at an endpoint is not an overlap
	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))

	c := NewTimeWindow(day, ClockTime(9, 30), ClockTime(10, 30))
	assert.True(t, a.Overlaps(c))
	assert.True(t, c.Overlaps(a))
}

func TestTimeWindow_Overlaps_DifferentDates(t *testing.T) {
	a := NewTimeWindow(date(2025, time.January, 1), ClockTime(9, 0), ClockTime(10, 0))
	b := NewTimeWindow(date(2025, time.January, 2), ClockTime(9, 0), ClockTime(10, 0))

	assert.False(t, a.Overlaps(b))
}

func TestTimeWindow_Intersect(t *testing.T) {
	day := date(2025, time.January, 1)

	a := NewTimeWindow(day, ClockTime(9, 0), ClockTime(10, 0))
	b := NewTimeWindow(day, ClockTime(9, 30), ClockTime(10, 30))

	overlap, ok := a.Intersect(b)
	assert.True(t, ok)
	assert.Equal(t, ClockTime(9, 30), overlap.Start)
	assert.Equal(t, ClockTime(10, 0), overlap.End)

	c := NewTimeWindow(day, ClockTime(11, 0), ClockTime(12, 0))
	_, ok = a.Intersect(c)
	assert.False(t, ok)
}

func TestTimeWindow_Valid(t *testing.T) {
	day := date(2025, time.January, 1)

	assert.True(t, NewTimeWindow(day, ClockTime(9, 0), ClockTime(10, 0)).Valid())
	assert.False(t, NewTimeWindow(day, ClockTime(10, 0), ClockTime(10, 0)).Valid())
	assert.False(t, NewTimeWindow(day, ClockTime(11, 0), ClockTime(10, 0)).Valid())
	assert.False(t, TimeWindow{Start: ClockTime(9, 0), End: ClockTime(10, 0)}.Valid())
}

func TestTimeWindow_String(t *testing.T) {
	w := NewTimeWindow(date(2025, time.March, 3), ClockTime(13, 30), ClockTime(15, 0))
	assert.Equal(t, "2025-03-03 13:30-15:00", w.String())
}

func TestTeacher_ExpertiseIn(t *testing.T) {
	teacher := Teacher{
		ID:   "t1",
		Name: "Dr. Chen",
		Expertise: []SubjectExpertise{
			{Subject: "chemistry", Level: ExpertiseExpert},
			{Subject: "biology", Level: ExpertiseBasic},
		},
	}

	assert.Equal(t, ExpertiseExpert, teacher.ExpertiseIn("chemistry"))
	assert.Equal(t, ExpertiseBasic, teacher.ExpertiseIn("biology"))
	assert.Equal(t, ExpertiseLevel(0), teacher.ExpertiseIn("history"))
}

func TestCourseSession_PrefersWeekday(t *testing.T) {
	any := CourseSession{}
	assert.True(t, any.PrefersWeekday(time.Monday))
	assert.True(t, any.PrefersWeekday(time.Saturday))

	picky := CourseSession{PreferredWeekdays: []time.Weekday{time.Tuesday, time.Thursday}}
	assert.True(t, picky.PrefersWeekday(time.Tuesday))
	assert.False(t, picky.PrefersWeekday(time.Monday))
}
