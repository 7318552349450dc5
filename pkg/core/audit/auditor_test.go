package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/scheduler/pkg/core/timetable"
)

var day = time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)

func event(id int64, roomID, teacherID string, startH, startM, endH, endM int) timetable.Event {
	return timetable.Event{
		ID:          id,
		Title:       "Session",
		Window:      timetable.NewTimeWindow(day, timetable.ClockTime(startH, startM), timetable.ClockTime(endH, endM)),
		TeacherID:   teacherID,
		TeacherName: teacherID,
		RoomID:      roomID,
		RoomName:    roomID,
	}
}

func TestFindConflicts_SharedRoom(t *testing.T) {
	events := []timetable.Event{
		event(3, "room-a", "t1", 9, 0, 10, 0),
		event(4, "room-a", "t2", 9, 30, 10, 30),
	}

	conflicts, err := FindConflicts(events)
	require.NoError(t, err)

	require.Len(t, conflicts, 1)
	c := conflicts[0]
	assert.Equal(t, timetable.ConflictRoom, c.Kind)
	assert.Equal(t, int64(3), c.EventA)
	assert.Equal(t, int64(4), c.EventB)
	assert.Equal(t, timetable.ClockTime(9, 30), c.Overlap.Start)
	assert.Equal(t, timetable.ClockTime(10, 0), c.Overlap.End)
	assert.Contains(t, c.Description, "room-a")
}

func TestFindConflicts_SharedTeacher(t *testing.T) {
	events := []timetable.Event{
		event(1, "room-a", "t1", 9, 0, 10, 30),
		event(2, "room-b", "t1", 10, 0, 11, 0),
	}

	conflicts, err := FindConflicts(events)
	require.NoError(t, err)

	require.Len(t, conflicts, 1)
	assert.Equal(t, timetable.ConflictTeacher, conflicts[0].Kind)
	assert.Contains(t, conflicts[0].Description, "t1")
}

func TestFindConflicts_BothKindsForOnePair(t *testing.T) {
	events := []timetable.Event{
		event(1, "room-a", "t1", 9, 0, 10, 0),
		event(2, "room-a", "t1", 9, 30, 10, 30),
	}

	conflicts, err := FindConflicts(events)
	require.NoError(t, err)

	require.Len(t, conflicts, 2)
	kinds := []timetable.ConflictKind{conflicts[0].Kind, conflicts[1].Kind}
	assert.Contains(t, kinds, timetable.ConflictRoom)
	assert.Contains(t, kinds, timetable.ConflictTeacher)
}

func TestFindConflicts_TouchingWindowsDoNotConflict(t *testing.T) {
	events := []timetable.Event{
		event(1, "room-a", "t1", 9, 0, 10, 0),
		event(2, "room-a", "t1", 10, 0, 11, 0),
	}

	conflicts, err := FindConflicts(events)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_DifferentDays(t *testing.T) {
	a := event(1, "room-a", "t1", 9, 0, 10, 0)
	b := event(2, "room-a", "t1", 9, 0, 10, 0)
	b.Window = timetable.NewTimeWindow(day.AddDate(0, 0, 1), b.Window.Start, b.Window.End)

	conflicts, err := FindConflicts([]timetable.Event{a, b})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_UnassignedResourcesIgnored(t *testing.T) {
	// Two events with no room and no teacher cannot conflict no matter the
	// overlap.
	events := []timetable.Event{
		event(1, "", "", 9, 0, 10, 0),
		event(2, "", "", 9, 0, 10, 0),
	}

	conflicts, err := FindConflicts(events)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_NoDuplicatePairs(t *testing.T) {
	// Three events in one room, all overlapping: exactly one conflict per
	// unordered pair, lower id always first.
	events := []timetable.Event{
		event(30, "room-a", "", 9, 0, 11, 0),
		event(10, "room-a", "", 9, 30, 10, 30),
		event(20, "room-a", "", 10, 0, 12, 0),
	}

	conflicts, err := FindConflicts(events)
	require.NoError(t, err)

	require.Len(t, conflicts, 3)
	seen := make(map[[2]int64]bool)
	for _, c := range conflicts {
		assert.Less(t, c.EventA, c.EventB)
		pair := [2]int64{c.EventA, c.EventB}
		assert.False(t, seen[pair], "pair (%d,%d) reported twice", c.EventA, c.EventB)
		seen[pair] = true
	}
}

func TestFindConflicts_MalformedWindow(t *testing.T) {
	bad := event(7, "room-a", "t1", 10, 0, 9, 0)

	_, err := FindConflicts([]timetable.Event{bad})
	assert.ErrorIs(t, err, ErrInvalidEvent)
}

func TestFindConflicts_Empty(t *testing.T) {
	conflicts, err := FindConflicts(nil)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindCapacityIssues(t *testing.T) {
	overfull := event(1, "room-a", "t1", 9, 0, 10, 0)
	overfull.RoomCapacity = 30
	overfull.ExpectedParticipants = 45

	fits := event(2, "room-b", "t2", 9, 0, 10, 0)
	fits.RoomCapacity = 50
	fits.ExpectedParticipants = 50

	noRoom := event(3, "", "t3", 9, 0, 10, 0)
	noRoom.ExpectedParticipants = 100

	noCount := event(4, "room-c", "t4", 9, 0, 10, 0)
	noCount.RoomCapacity = 10

	issues := FindCapacityIssues([]timetable.Event{overfull, fits, noRoom, noCount})

	require.Len(t, issues, 1)
	assert.Equal(t, int64(1), issues[0].EventID)
	assert.Equal(t, "room-a", issues[0].RoomID)
	assert.Equal(t, 30, issues[0].Capacity)
	assert.Equal(t, 45, issues[0].Expected)
}
