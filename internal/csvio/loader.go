// Package csvio reads reference data and writes reports as CSV files, the
// data source for runs that do not use a database.
package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// LoadTeachers reads and parses the given csv file for teacher data.
func LoadTeachers(path string) ([]timetable.Teacher, error) {
	var records []*TeacherRecord
	if err := unmarshalFile(path, &records); err != nil {
		return nil, err
	}

	teachers := make([]timetable.Teacher, 0, len(records))
	for _, r := range records {
		teacher, err := r.toTeacher()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		teachers = append(teachers, teacher)
	}

	return teachers, nil
}

// LoadRooms reads and parses the given csv file for room data.
func LoadRooms(path string) ([]timetable.Room, error) {
	var records []*RoomRecord
	if err := unmarshalFile(path, &records); err != nil {
		return nil, err
	}

	rooms := make([]timetable.Room, 0, len(records))
	for _, r := range records {
		rooms = append(rooms, r.toRoom())
	}

	return rooms, nil
}

// LoadCourses reads and parses the given csv file for course data.
func LoadCourses(path string) ([]timetable.Course, error) {
	var records []*CourseRecord
	if err := unmarshalFile(path, &records); err != nil {
		return nil, err
	}

	courses := make([]timetable.Course, 0, len(records))
	for _, r := range records {
		course, err := r.toCourse()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// LoadEvents reads and parses the given csv file for committed calendar
// events.
func LoadEvents(path string) ([]timetable.Event, error) {
	var records []*EventRecord
	if err := unmarshalFile(path, &records); err != nil {
		return nil, err
	}

	events := make([]timetable.Event, 0, len(records))
	for _, r := range records {
		event, err := r.toEvent()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		events = append(events, event)
	}

	return events, nil
}

func unmarshalFile(path string, out interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if err := gocsv.UnmarshalFile(file, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
