package stores

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/colonyops/todocore/internal/core/todo"
)

// EventStore implements todo.EventStore as an in-memory append-only log.
type EventStore struct {
	mu     sync.RWMutex
	log    []todo.Event
	byAggr map[string][]int
}

var _ todo.EventStore = (*EventStore)(nil)

// NewEventStore creates an empty in-memory event store.
func NewEventStore() *EventStore {
	return &EventStore{byAggr: make(map[string][]int)}
}

// Append adds events to the log in order. Events without an aggregate id are
// rejected; history is never rewritten.
func (s *EventStore) Append(ctx context.Context, events ...todo.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ev := range events {
		if ev.AggregateID == "" {
			return fmt.Errorf("append event %s: missing aggregate id", ev.Type)
		}
		s.byAggr[ev.AggregateID] = append(s.byAggr[ev.AggregateID], len(s.log))
		s.log = append(s.log, ev)
	}
	return nil
}

// ForAggregate returns all events recorded for an aggregate, in append order.
func (s *EventStore) ForAggregate(ctx context.Context, aggregateID string) ([]todo.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idxs := s.byAggr[aggregateID]
	out := make([]todo.Event, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, s.log[i])
	}
	return out, nil
}

// All returns a copy of the full log in append order.
func (s *EventStore) All(ctx context.Context) ([]todo.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.log), nil
}
