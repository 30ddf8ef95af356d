package todo

import "context"

// ListFilter controls which items are returned by List.
type ListFilter struct {
	UserID   string   // empty means all users
	Status   Status   // empty means all statuses
	Priority Priority // empty means all priorities
}

// Store defines the interface for todo item persistence.
//
// Implementations return snapshots: mutating a returned entity must not
// affect stored state until Update is called.
type Store interface {
	// Create persists a new todo item.
	Create(ctx context.Context, e *Entity) error

	// Get returns a single todo item by ID.
	// Returns ErrNotFound if the item does not exist.
	Get(ctx context.Context, id string) (*Entity, error)

	// List returns todo items matching the filter, ordered by created_at DESC.
	List(ctx context.Context, filter ListFilter) ([]*Entity, error)

	// Update persists a mutated aggregate. expectedVersion is the version the
	// caller loaded; Returns ErrVersionConflict if the stored version differs
	// and ErrNotFound if the item does not exist.
	Update(ctx context.Context, e *Entity, expectedVersion uint64) error

	// Delete removes a todo item.
	// Returns ErrNotFound if the item does not exist.
	Delete(ctx context.Context, id string) error
}

// EventStore is the append-only sink for domain events.
// Consumers must treat appended events as immutable history.
type EventStore interface {
	// Append adds events to the log in order.
	Append(ctx context.Context, events ...Event) error

	// ForAggregate returns all events recorded for an aggregate, in append order.
	ForAggregate(ctx context.Context, aggregateID string) ([]Event, error)
}
