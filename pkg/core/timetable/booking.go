package timetable

// ResourceKind distinguishes the two bookable resource types.
type ResourceKind string

const (
	KindTeacher ResourceKind = "TEACHER"
	KindRoom    ResourceKind = "ROOM"
)

// BookingOrigin tags a booking with where it came from.
type BookingOrigin string

const (
	// OriginExisting marks bookings supplied by the caller as the committed
	// snapshot at the start of a run.
	OriginExisting BookingOrigin = "EXISTING"
	// OriginAllocated marks bookings created by the allocator during the
	// current run.
	OriginAllocated BookingOrigin = "ALLOCATED"
)

// Booking is a committed (resource, time window) pair. Once created it is
// never mutated; cancellation in the surrounding system produces new state.
type Booking struct {
	ID         string
	ResourceID string
	Kind       ResourceKind
	Window     TimeWindow
	Origin     BookingOrigin
}

// Assignment is the allocator's output for one placed session. It maps 1:1
// to a committed teacher-booking + room-booking pair sharing one window.
type Assignment struct {
	SessionID string
	CourseID  string
	Teacher   Teacher
	Room      Room
	Window    TimeWindow
	Score     float64
}
