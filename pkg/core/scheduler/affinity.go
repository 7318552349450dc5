package scheduler

import (
	"strings"
)

// AffinityTable maps subject categories to room categories and the score a
// pairing earns. The original institution encoded these rules as keyword
// checks on free-text room locations; keeping them in a table lets the
// policy change without code changes.
//
// Lookup is case-insensitive and matches a table key when the room's
// category contains it, so an entry keyed "chemistry lab" covers rooms
// tagged "Chemistry Lab E01". When several keys match, the highest score
// wins.
type AffinityTable struct {
	// Subjects maps a lowercase subject category to room-category scores.
	Subjects map[string]map[string]float64

	// GenericCategories are room categories that host any subject at a
	// moderate baseline (lecture halls, plain classrooms).
	GenericCategories []string

	// GenericScore is the baseline for generic teaching space.
	GenericScore float64

	// MismatchScore is the low-but-nonzero floor for rooms with no match.
	MismatchScore float64
}

// DefaultAffinityTable reproduces the source institution's subject-to-room
// preferences.
func DefaultAffinityTable() AffinityTable {
	return AffinityTable{
		Subjects: map[string]map[string]float64{
			"chemistry": {
				"chemistry lab": 1.0,
				"science lab":   0.8,
				"research lab":  0.8,
			},
			"physics": {
				"physics lab":  1.0,
				"science lab":  0.8,
				"research lab": 0.8,
			},
			"biology": {
				"biology lab":  1.0,
				"science lab":  0.8,
				"research lab": 0.8,
			},
			"computer science": {
				"computer lab":    1.0,
				"programming lab": 0.95,
				"lecture hall":    0.5,
			},
			"mathematics": {
				"math classroom": 1.0,
				"statistics lab": 0.95,
				"lecture hall":   0.6,
			},
			"engineering": {
				"engineering lab": 1.0,
				"workshop":        0.95,
				"cad lab":         0.9,
				"design studio":   0.85,
			},
			"business": {
				"business classroom": 1.0,
				"case study room":    0.95,
				"conference room":    0.8,
				"lecture hall":       0.5,
			},
			"art": {
				"design studio": 1.0,
			},
		},
		GenericCategories: []string{"lecture hall", "classroom", "auditorium", "seminar room"},
		GenericScore:      0.4,
		MismatchScore:     0.1,
	}
}

// Score returns the affinity of a subject for a room category. Exact table
// matches score highest, generic teaching space scores the moderate
// baseline, mismatches score low but nonzero.
func (t AffinityTable) Score(subject, roomCategory string) float64 {
	subject = strings.ToLower(strings.TrimSpace(subject))
	roomCategory = strings.ToLower(strings.TrimSpace(roomCategory))

	best := 0.0
	if row, ok := t.Subjects[subject]; ok {
		for key, score := range row {
			if strings.Contains(roomCategory, key) && score > best {
				best = score
			}
		}
	}
	if best > 0 {
		return best
	}

	for _, generic := range t.GenericCategories {
		if strings.Contains(roomCategory, generic) {
			return t.GenericScore
		}
	}

	return t.MismatchScore
}
