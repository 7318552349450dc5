package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/campusbook/scheduler/pkg/core/timetable"
	"github.com/campusbook/scheduler/pkg/db"
)

const eventColumns = `id, title, date, start_minutes, end_minutes,
	teacher_id, teacher_name, room_id, room_name, room_capacity,
	expected_participants, origin, run_id`

// GetEvents retrieves all calendar events
func (d *DB) GetEvents(ctx context.Context) ([]db.Event, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM event
		ORDER BY date, start_minutes, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// GetEventsForWeek retrieves events in the 7 days starting at weekStart
// ("2006-01-02").
func (d *DB) GetEventsForWeek(ctx context.Context, weekStart string) ([]db.Event, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM event
		WHERE date >= $1 AND date < $1::date + 7
		ORDER BY date, start_minutes, id
	`, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to query events for week %s: %w", weekStart, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// InsertEvents inserts event records and returns them with their assigned
// ids.
func (d *DB) InsertEvents(ctx context.Context, events []db.Event) ([]db.Event, error) {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	inserted := make([]db.Event, 0, len(events))
	for _, e := range events {
		row := tx.QueryRow(ctx, `
			INSERT INTO event (title, date, start_minutes, end_minutes,
				teacher_id, teacher_name, room_id, room_name, room_capacity,
				expected_participants, origin, run_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id
		`, e.Title, e.Date, e.StartMinutes, e.EndMinutes,
			e.TeacherID, e.TeacherName, e.RoomID, e.RoomName, e.RoomCapacity,
			e.ExpectedParticipants, e.Origin, e.RunID)
		if err := row.Scan(&e.ID); err != nil {
			return nil, fmt.Errorf("failed to insert event %q: %w", e.Title, err)
		}
		inserted = append(inserted, e)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit events: %w", err)
	}

	return inserted, nil
}

// DeleteGeneratedEvents removes allocated events in the week starting at
// weekStart, keeping imported ones. Returns the number of rows removed.
func (d *DB) DeleteGeneratedEvents(ctx context.Context, weekStart string) (int64, error) {
	tag, err := d.pool.Exec(ctx, `
		DELETE FROM event
		WHERE origin = $1 AND date >= $2 AND date < $2::date + 7
	`, string(timetable.OriginAllocated), weekStart)
	if err != nil {
		return 0, fmt.Errorf("failed to delete generated events: %w", err)
	}
	return tag.RowsAffected(), nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEvents(rows pgxRows) ([]db.Event, error) {
	var events []db.Event
	for rows.Next() {
		var e db.Event
		var date time.Time
		if err := rows.Scan(&e.ID, &e.Title, &date, &e.StartMinutes, &e.EndMinutes,
			&e.TeacherID, &e.TeacherName, &e.RoomID, &e.RoomName, &e.RoomCapacity,
			&e.ExpectedParticipants, &e.Origin, &e.RunID); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Date = date.Format("2006-01-02")
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}
