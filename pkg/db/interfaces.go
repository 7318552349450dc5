package db

import "context"

// EventStore defines the interface for calendar event operations
type EventStore interface {
	GetEvents(ctx context.Context) ([]Event, error)
	GetEventsForWeek(ctx context.Context, weekStart string) ([]Event, error)
	InsertEvents(ctx context.Context, events []Event) ([]Event, error)
	DeleteGeneratedEvents(ctx context.Context, weekStart string) (int64, error)
}

// Database defines the interface for all database operations the services
// depend on. The postgres.DB implementation satisfies it.
type Database interface {
	EventStore
	GetConflicts(ctx context.Context) ([]Conflict, error)
	ReplaceConflicts(ctx context.Context, conflicts []Conflict) error
}
