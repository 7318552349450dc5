package timetable

import "time"

// ExpertiseLevel ranks a teacher's proficiency in a subject.
type ExpertiseLevel int

const (
	ExpertiseBasic        ExpertiseLevel = 1
	ExpertiseIntermediate ExpertiseLevel = 2
	ExpertiseExpert       ExpertiseLevel = 3
)

// SubjectExpertise records a teacher's proficiency in one subject.
type SubjectExpertise struct {
	Subject string
	Level   ExpertiseLevel
}

// Teacher is read-only reference data for the duration of one scheduling run.
type Teacher struct {
	ID        string
	Name      string
	Email     string
	Expertise []SubjectExpertise
}

// ExpertiseIn returns the teacher's proficiency in the given subject, or
// zero when the subject is not in their expertise list.
func (t Teacher) ExpertiseIn(subject string) ExpertiseLevel {
	for _, e := range t.Expertise {
		if e.Subject == subject {
			return e.Level
		}
	}
	return 0
}

// Room is read-only reference data for the duration of one scheduling run.
// Category is the location tag used by the subject affinity table
// (e.g. "chemistry lab", "lecture hall", "computer lab").
type Room struct {
	ID       string
	Name     string
	Capacity int
	Category string
}

// Course is the external system's course record. The engine never schedules
// a Course directly; it is expanded into per-week CourseSessions first.
type Course struct {
	ID              string
	Name            string
	Subject         string
	Duration        time.Duration
	SessionsPerWeek int
	MinCapacity     int
	Priority        int

	PreferredStart    time.Duration
	PreferredEnd      time.Duration
	PreferredWeekdays []time.Weekday
}

// CourseSession is one schedulable unit derived from a course. A course with
// N sessions per week yields N independent CourseSession values.
type CourseSession struct {
	ID          string
	CourseID    string
	CourseName  string
	Subject     string
	Duration    time.Duration
	MinCapacity int
	Priority    int // higher schedules first

	// Optional placement preferences. Zero values mean no preference.
	PreferredStart    time.Duration // clock offset from midnight
	PreferredEnd      time.Duration // clock offset from midnight
	PreferredWeekdays []time.Weekday
}

// HasPreferredRange reports whether the session restricts start times to a
// clock-time range.
func (s CourseSession) HasPreferredRange() bool {
	return s.PreferredEnd > s.PreferredStart
}

// PrefersWeekday reports whether the given weekday is acceptable for this
// session. An empty preference list accepts every day.
func (s CourseSession) PrefersWeekday(day time.Weekday) bool {
	if len(s.PreferredWeekdays) == 0 {
		return true
	}
	for _, d := range s.PreferredWeekdays {
		if d == day {
			return true
		}
	}
	return false
}
