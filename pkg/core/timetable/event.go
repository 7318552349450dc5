package timetable

// Event is a committed calendar entry as materialized by the surrounding
// system. TeacherID and RoomID may be empty: an event without a room (or
// teacher) cannot conflict on that resource.
type Event struct {
	ID                   int64
	Title                string
	Window               TimeWindow
	TeacherID            string
	TeacherName          string
	RoomID               string
	RoomName             string
	RoomCapacity         int
	ExpectedParticipants int
}

// ConflictKind classifies a double-booking conflict.
type ConflictKind string

const (
	ConflictRoom    ConflictKind = "ROOM"
	ConflictTeacher ConflictKind = "TEACHER"
)

// Conflict reports one double-booked resource between two events. EventA is
// always the lower event id. Conflicts are derived, never authoritative:
// they can be recomputed at any time from the committed event set.
type Conflict struct {
	Kind        ConflictKind
	EventA      int64
	EventB      int64
	Overlap     TimeWindow
	Description string
}

// CapacityIssue flags a single event whose expected attendance exceeds the
// assigned room's capacity.
type CapacityIssue struct {
	EventID     int64
	RoomID      string
	Capacity    int
	Expected    int
	Description string
}
