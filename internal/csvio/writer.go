package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// WriteAssignments writes a schedule report to the CSV file at path.
func WriteAssignments(assignments []timetable.Assignment, path string) error {
	rows := make([]*AssignmentRecord, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, &AssignmentRecord{
			SessionID:   a.SessionID,
			CourseID:    a.CourseID,
			Date:        a.Window.Date.Format("2006-01-02"),
			Start:       clockString(a.Window.Start),
			End:         clockString(a.Window.End),
			TeacherID:   a.Teacher.ID,
			TeacherName: a.Teacher.Name,
			RoomID:      a.Room.ID,
			RoomName:    a.Room.Name,
			Score:       a.Score,
		})
	}

	return marshalFile(path, &rows)
}

// WriteConflicts writes an audit report to the CSV file at path.
func WriteConflicts(conflicts []timetable.Conflict, path string) error {
	rows := make([]*ConflictRecord, 0, len(conflicts))
	for _, c := range conflicts {
		rows = append(rows, &ConflictRecord{
			Kind:        string(c.Kind),
			EventA:      c.EventA,
			EventB:      c.EventB,
			Date:        c.Overlap.Date.Format("2006-01-02"),
			Start:       clockString(c.Overlap.Start),
			End:         clockString(c.Overlap.End),
			Description: c.Description,
		})
	}

	return marshalFile(path, &rows)
}

func marshalFile(path string, rows interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
