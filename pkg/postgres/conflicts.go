package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/campusbook/scheduler/pkg/db"
)

// GetConflicts retrieves all stored audit findings
func (d *DB) GetConflicts(ctx context.Context) ([]db.Conflict, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, kind, event_a, event_b, date, start_minutes, end_minutes, description
		FROM conflict
		ORDER BY date, start_minutes, event_a, event_b
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicts: %w", err)
	}
	defer rows.Close()

	var conflicts []db.Conflict
	for rows.Next() {
		var c db.Conflict
		var date time.Time
		if err := rows.Scan(&c.ID, &c.Kind, &c.EventA, &c.EventB, &date,
			&c.StartMinutes, &c.EndMinutes, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan conflict: %w", err)
		}
		c.Date = date.Format("2006-01-02")
		conflicts = append(conflicts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conflicts: %w", err)
	}

	return conflicts, nil
}

// ReplaceConflicts clears the stored audit findings and inserts the given
// set, so the table always reflects the latest audit run.
func (d *DB) ReplaceConflicts(ctx context.Context, conflicts []db.Conflict) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM conflict`); err != nil {
		return fmt.Errorf("failed to clear conflicts: %w", err)
	}

	for _, c := range conflicts {
		_, err := tx.Exec(ctx, `
			INSERT INTO conflict (id, kind, event_a, event_b, date, start_minutes, end_minutes, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, c.ID, c.Kind, c.EventA, c.EventB, c.Date, c.StartMinutes, c.EndMinutes, c.Description)
		if err != nil {
			return fmt.Errorf("failed to insert conflict %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit conflicts: %w", err)
	}

	return nil
}
