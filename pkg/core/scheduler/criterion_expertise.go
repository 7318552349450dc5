package scheduler

import (
	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// SubjectExpertiseCriterion prefers teachers with recorded expertise in the
// session's subject, ranked by proficiency level.
//
// Eligibility:
//   - Every teacher is eligible; a teacher with no recorded expertise in
//     the subject scores the generic baseline, so subject-matched teachers
//     outrank them but the pool never empties on expertise alone.
//
// Score:
//   - Expert 1.0, Intermediate 2/3, Basic 1/3, no match 0.1.
type SubjectExpertiseCriterion struct {
	weight float64
}

// NewSubjectExpertiseCriterion creates the criterion with the given weight.
func NewSubjectExpertiseCriterion(weight float64) *SubjectExpertiseCriterion {
	return &SubjectExpertiseCriterion{weight: weight}
}

// genericTeacherScore is what a teacher without subject expertise earns,
// keeping the any-teacher fallback available when no specialist is free.
const genericTeacherScore = 0.1

func (c *SubjectExpertiseCriterion) Name() string {
	return "SubjectExpertise"
}

func (c *SubjectExpertiseCriterion) IsEligible(state *RunState, session timetable.CourseSession, teacher timetable.Teacher) bool {
	return true
}

func (c *SubjectExpertiseCriterion) Score(state *RunState, session timetable.CourseSession, teacher timetable.Teacher) float64 {
	level := teacher.ExpertiseIn(session.Subject)
	if level == 0 {
		return genericTeacherScore
	}
	return float64(level) / float64(timetable.ExpertiseExpert)
}

func (c *SubjectExpertiseCriterion) Weight() float64 {
	return c.weight
}
