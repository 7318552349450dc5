package scheduler

// Built-in criterion weights for matching sessions to resources
const (
	// WeightSubjectExpertise is the weight applied to how strongly a
	// teacher's recorded expertise matches the session's subject. This is
	// the dominant teacher-side signal.
	WeightSubjectExpertise = 1.0

	// WeightTeacherLoad is the weight applied to how much room a teacher
	// has left under the weekly session cap. Keeps load spread without
	// overriding expertise.
	WeightTeacherLoad = 0.25

	// WeightRoomAffinity is the weight applied to the subject-to-room
	// affinity table score. This is the dominant room-side signal.
	WeightRoomAffinity = 1.0

	// WeightRoomFit is the weight applied to how right-sized a room's
	// capacity is for the session's expected attendance.
	WeightRoomFit = 0.5
)

// DefaultWeeklySessionCap is the per-teacher session limit for one week.
const DefaultWeeklySessionCap = 4
