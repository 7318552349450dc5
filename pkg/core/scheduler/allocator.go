package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campusbook/scheduler/pkg/core/timetable"
)

// Budget bounds one allocation run. MaxChecks caps the number of
// per-candidate feasibility checks; Deadline is a wall-clock cutoff. Zero
// values mean unbounded. Exhausting the budget degrades gracefully:
// placements already committed stand, remaining sessions come back
// unplaced.
type Budget struct {
	MaxChecks int
	Deadline  time.Time
}

// ScheduleRequest carries everything one allocation run consumes. All
// slices are read-only snapshots for the duration of the call; the engine
// fetches nothing itself.
type ScheduleRequest struct {
	WeekStart time.Time
	Sessions  []timetable.CourseSession
	Teachers  []timetable.Teacher
	Rooms     []timetable.Room

	// Existing is the committed-bookings snapshot from the system of record.
	Existing []timetable.Booking

	// Blocked holds resolved unavailability windows (teacher time off,
	// room closures). They block exactly like committed bookings but are
	// not counted toward teacher weekly load.
	Blocked []timetable.Booking

	Budget Budget
}

// UnplacedReason explains why a session could not be placed.
type UnplacedReason string

const (
	ReasonNoQualifiedTeacher UnplacedReason = "NO_QUALIFIED_TEACHER"
	ReasonNoQualifiedRoom    UnplacedReason = "NO_QUALIFIED_ROOM"
	ReasonNoFreeSlot         UnplacedReason = "NO_FREE_SLOT"
	ReasonBudgetExceeded     UnplacedReason = "BUDGET_EXCEEDED"
)

// UnplacedSession records one session the run could not place.
type UnplacedSession struct {
	Session timetable.CourseSession
	Reason  UnplacedReason
}

// Result aggregates one allocation run. WorkingSet holds the bookings the
// caller should persist alongside the assignments.
type Result struct {
	Requested   int
	Placed      int
	Assignments []timetable.Assignment
	Unplaced    []UnplacedSession
	WorkingSet  []timetable.Booking
}

// Config tunes an Allocator. The zero value is not usable; call
// DefaultConfig and override.
type Config struct {
	Hours            WorkingHours
	Affinity         AffinityTable
	WeeklySessionCap int

	// SpreadCourseSessions keeps multiple sessions of one course on
	// distinct weekdays.
	SpreadCourseSessions bool
}

// DefaultConfig returns the institution's standard policy.
func DefaultConfig() Config {
	return Config{
		Hours:                DefaultWorkingHours(),
		Affinity:             DefaultAffinityTable(),
		WeeklySessionCap:     DefaultWeeklySessionCap,
		SpreadCourseSessions: true,
	}
}

// Allocator is the scheduling engine: a greedy, priority-ordered first-fit
// allocator. It holds no state between runs; two calls with identical
// inputs produce identical results.
type Allocator struct {
	cfg     Config
	matcher *Matcher
}

// NewAllocator builds an allocator for the given policy.
func NewAllocator(cfg Config) *Allocator {
	return &Allocator{
		cfg:     cfg,
		matcher: NewDefaultMatcher(cfg.Affinity),
	}
}

// NewAllocatorWithMatcher builds an allocator with a custom criterion set.
func NewAllocatorWithMatcher(cfg Config, matcher *Matcher) *Allocator {
	return &Allocator{cfg: cfg, matcher: matcher}
}

// Schedule places every session it can and reports the rest. Sessions are
// taken in descending priority order (stable for ties); for each session
// the first slot in generator preference order with both a qualified free
// teacher and a qualified free room wins. The run never backtracks across
// already-committed sessions.
func (a *Allocator) Schedule(ctx context.Context, req ScheduleRequest) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	state := newRunState(req, a.cfg.WeeklySessionCap)
	sessions := sortSessions(req.Sessions)

	result := &Result{
		Requested:   len(sessions),
		Assignments: []timetable.Assignment{},
		Unplaced:    []UnplacedSession{},
	}

	budget := newBudgetTracker(ctx, req.Budget)

	for i, session := range sessions {
		if budget.exhausted() {
			for _, remaining := range sessions[i:] {
				result.Unplaced = append(result.Unplaced, UnplacedSession{
					Session: remaining,
					Reason:  ReasonBudgetExceeded,
				})
			}
			break
		}

		reason, assignment := a.placeSession(state, budget, req, session)
		if reason != "" {
			result.Unplaced = append(result.Unplaced, UnplacedSession{Session: session, Reason: reason})
			continue
		}

		result.Assignments = append(result.Assignments, *assignment)
		result.Placed++
	}

	result.WorkingSet = state.Working
	return result, nil
}

// placeSession runs the first-fit search for one session. An empty reason
// means the session was placed.
func (a *Allocator) placeSession(state *RunState, budget *budgetTracker, req ScheduleRequest, session timetable.CourseSession) (UnplacedReason, *timetable.Assignment) {
	// A session with no qualified resources fails before any slot walk,
	// and with a more specific reason than NoFreeSlot.
	if !a.matcher.HasQualifiedTeacher(state, session, req.Teachers) {
		return ReasonNoQualifiedTeacher, nil
	}
	if !a.matcher.HasQualifiedRoom(state, session, req.Rooms) {
		return ReasonNoQualifiedRoom, nil
	}

	for _, slot := range a.cfg.Hours.GenerateSlots(req.WeekStart, session.Duration) {
		if !a.slotAcceptable(state, session, slot) {
			continue
		}
		if !budget.spend() {
			return ReasonBudgetExceeded, nil
		}

		teacher, teacherScore := a.bestFreeTeacher(state, session, slot, req.Teachers)
		if teacher == nil {
			continue
		}
		room, roomScore := a.bestFreeRoom(state, session, slot, req.Rooms)
		if room == nil {
			continue
		}

		state.commit(session, *teacher, *room, slot, uuid.NewString(), uuid.NewString())
		return "", &timetable.Assignment{
			SessionID: session.ID,
			CourseID:  session.CourseID,
			Teacher:   *teacher,
			Room:      *room,
			Window:    slot,
			Score:     teacherScore + roomScore,
		}
	}

	return ReasonNoFreeSlot, nil
}

// slotAcceptable applies the session's own placement preferences plus the
// course-spreading rule. Availability is checked per resource, not here.
func (a *Allocator) slotAcceptable(state *RunState, session timetable.CourseSession, slot timetable.TimeWindow) bool {
	if !session.PrefersWeekday(slot.Weekday()) {
		return false
	}
	if session.HasPreferredRange() {
		if slot.Start < session.PreferredStart || slot.End > session.PreferredEnd {
			return false
		}
	}
	if a.cfg.SpreadCourseSessions && state.courseUsedWeekday(session.CourseID, slot.Weekday()) {
		return false
	}
	return true
}

// bestFreeTeacher picks the highest-scoring teacher that is free for the
// slot. Candidates are walked in listing order with a strict comparison,
// so ties resolve to the first listed.
func (a *Allocator) bestFreeTeacher(state *RunState, session timetable.CourseSession, slot timetable.TimeWindow, teachers []timetable.Teacher) (*timetable.Teacher, float64) {
	var best *timetable.Teacher
	var bestScore float64

	for i := range teachers {
		teacher := &teachers[i]
		score := a.matcher.ScoreTeacher(state, session, *teacher)
		if score <= 0 || score <= bestScore {
			continue
		}
		if !IsFree(teacher.ID, timetable.KindTeacher, slot, state.Committed, state.Working) {
			continue
		}
		best = teacher
		bestScore = score
	}

	return best, bestScore
}

// bestFreeRoom picks the highest-scoring room that is free for the slot,
// with the same first-listed tie-breaking as bestFreeTeacher.
func (a *Allocator) bestFreeRoom(state *RunState, session timetable.CourseSession, slot timetable.TimeWindow, rooms []timetable.Room) (*timetable.Room, float64) {
	var best *timetable.Room
	var bestScore float64

	for i := range rooms {
		room := &rooms[i]
		score := a.matcher.ScoreRoom(state, session, *room)
		if score <= 0 || score <= bestScore {
			continue
		}
		if !IsFree(room.ID, timetable.KindRoom, slot, state.Committed, state.Working) {
			continue
		}
		best = room
		bestScore = score
	}

	return best, bestScore
}

// budgetTracker counts feasibility checks against the run budget and the
// caller's context.
type budgetTracker struct {
	ctx      context.Context
	max      int
	spent    int
	deadline time.Time
}

func newBudgetTracker(ctx context.Context, b Budget) *budgetTracker {
	return &budgetTracker{ctx: ctx, max: b.MaxChecks, deadline: b.Deadline}
}

// spend consumes one feasibility check. Returns false when the budget was
// already exhausted.
func (t *budgetTracker) spend() bool {
	if t.exhausted() {
		return false
	}
	t.spent++
	return true
}

func (t *budgetTracker) exhausted() bool {
	if t.max > 0 && t.spent >= t.max {
		return true
	}
	if !t.deadline.IsZero() && time.Now().After(t.deadline) {
		return true
	}
	select {
	case <-t.ctx.Done():
		return true
	default:
		return false
	}
}
