// Package todos provides the orchestration layer over the todo domain core:
// input validation, persistence, and domain-event hand-off.
package todos

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/todocore/internal/core/logging"
	"github.com/colonyops/todocore/internal/core/scoring"
	"github.com/colonyops/todocore/internal/core/spec"
	"github.com/colonyops/todocore/internal/core/todo"
	"github.com/colonyops/todocore/internal/core/validate"
)

// Service wraps todo.Store and todo.EventStore with aggregate lifecycle
// logic. Every accepted mutation is persisted with an optimistic version
// check and its pending events are appended to the event store.
type Service struct {
	store  todo.Store
	events todo.EventStore
	log    zerolog.Logger
}

// NewService creates a new Service.
func NewService(store todo.Store, events todo.EventStore, log zerolog.Logger) *Service {
	return &Service{
		store:  store,
		events: events,
		log:    logging.Component(log, "todo-service"),
	}
}

// CreateParams carries the inputs for creating a todo item.
type CreateParams struct {
	UserID      string
	Title       string
	Description string
	Priority    todo.Priority
	DueDate     todo.DueDate
}

// Create validates the params, builds the aggregate, persists it, and hands
// its events to the event store.
func (s *Service) Create(ctx context.Context, p CreateParams) (*todo.Entity, error) {
	if err := validate.UserIDField("user_id", p.UserID); err != nil {
		return nil, err
	}
	if err := validate.TodoTitleField("title", p.Title); err != nil {
		return nil, err
	}

	priority := p.Priority
	if priority == "" {
		priority = todo.PriorityNormal
	}

	e, err := todo.New(p.UserID, p.Title, priority)
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	if p.Description != "" {
		if err := e.UpdateDescription(p.Description); err != nil {
			return nil, fmt.Errorf("set description: %w", err)
		}
	}
	if !p.DueDate.IsZero() {
		if err := e.Reschedule(p.DueDate); err != nil {
			return nil, fmt.Errorf("set due date: %w", err)
		}
	}

	if err := s.store.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("persist todo: %w", err)
	}
	if err := s.handOff(ctx, e); err != nil {
		return nil, err
	}

	ctx = logging.WithUserID(logging.WithTodoID(ctx, e.ID()), e.UserID())
	s.log.Debug().Ctx(ctx).Msg("todo created")
	return e, nil
}

// Start moves a todo item into progress.
func (s *Service) Start(ctx context.Context, id string) (*todo.Entity, error) {
	return s.mutate(ctx, id, (*todo.Entity).Start)
}

// Complete finishes a todo item.
func (s *Service) Complete(ctx context.Context, id string) (*todo.Entity, error) {
	e, err := s.mutate(ctx, id, (*todo.Entity).Complete)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Ctx(logging.WithTodoID(ctx, id)).Msg("todo completed")
	return e, nil
}

// Cancel abandons a todo item.
func (s *Service) Cancel(ctx context.Context, id string) (*todo.Entity, error) {
	return s.mutate(ctx, id, (*todo.Entity).Cancel)
}

// Reopen returns a terminal todo item to pending.
func (s *Service) Reopen(ctx context.Context, id string) (*todo.Entity, error) {
	return s.mutate(ctx, id, (*todo.Entity).Reopen)
}

// Rename changes a todo item's title.
func (s *Service) Rename(ctx context.Context, id, title string) (*todo.Entity, error) {
	if err := validate.TodoTitleField("title", title); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(e *todo.Entity) error {
		return e.Rename(title)
	})
}

// UpdateDescription changes a todo item's description.
func (s *Service) UpdateDescription(ctx context.Context, id, description string) (*todo.Entity, error) {
	return s.mutate(ctx, id, func(e *todo.Entity) error {
		return e.UpdateDescription(description)
	})
}

// Reschedule sets or clears a todo item's due date.
func (s *Service) Reschedule(ctx context.Context, id string, due todo.DueDate) (*todo.Entity, error) {
	return s.mutate(ctx, id, func(e *todo.Entity) error {
		return e.Reschedule(due)
	})
}

// ChangePriority changes a todo item's priority.
func (s *Service) ChangePriority(ctx context.Context, id string, priority todo.Priority) (*todo.Entity, error) {
	return s.mutate(ctx, id, func(e *todo.Entity) error {
		return e.ChangePriority(priority)
	})
}

// AddSubTask attaches a subtask reference to a todo item.
func (s *Service) AddSubTask(ctx context.Context, id, subTaskID, title string) (*todo.Entity, error) {
	if err := validate.TodoTitleField("title", title); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(e *todo.Entity) error {
		e.AddSubTask(subTaskID, title)
		return nil
	})
}

// RemoveSubTask detaches a subtask reference from a todo item.
func (s *Service) RemoveSubTask(ctx context.Context, id, subTaskID string) (*todo.Entity, error) {
	return s.mutate(ctx, id, func(e *todo.Entity) error {
		e.RemoveSubTask(subTaskID)
		return nil
	})
}

// Get returns a single todo item by ID.
func (s *Service) Get(ctx context.Context, id string) (*todo.Entity, error) {
	return s.store.Get(ctx, id)
}

// List returns todo items matching the filter.
func (s *Service) List(ctx context.Context, filter todo.ListFilter) ([]*todo.Entity, error) {
	return s.store.List(ctx, filter)
}

// ListMatching returns items matching both the store filter and the
// specification, preserving store order. All predicate logic goes through
// the specification; callers never filter on raw fields.
func (s *Service) ListMatching(ctx context.Context, filter todo.ListFilter, sp spec.Specification[*todo.Entity]) ([]*todo.Entity, error) {
	items, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return spec.Filter(items, sp), nil
}

// History returns the recorded events for a todo item, in append order.
func (s *Service) History(ctx context.Context, id string) ([]todo.Event, error) {
	return s.events.ForAggregate(ctx, id)
}

// AdjustmentSuggestion pairs an item with its priority-adjustment outcome.
type AdjustmentSuggestion struct {
	Todo       *todo.Entity
	Suggestion scoring.Suggestion
}

// SuggestAdjustments evaluates the adjustment rules for every item matching
// the filter. Items whose priority is already appropriate are included with
// ShouldAdjust false.
func (s *Service) SuggestAdjustments(ctx context.Context, filter todo.ListFilter) ([]AdjustmentSuggestion, error) {
	items, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list todos for suggestions: %w", err)
	}

	out := make([]AdjustmentSuggestion, 0, len(items))
	for _, e := range items {
		out = append(out, AdjustmentSuggestion{Todo: e, Suggestion: scoring.SuggestAdjustment(e)})
	}
	return out, nil
}

// mutate loads an aggregate, applies fn, and persists the result when fn
// produced an observable change. No-op mutations skip the store round trip.
func (s *Service) mutate(ctx context.Context, id string, fn func(*todo.Entity) error) (*todo.Entity, error) {
	e, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get todo: %w", err)
	}

	expected := e.Version()
	if err := fn(e); err != nil {
		return nil, err
	}
	if e.Version() == expected {
		return e, nil
	}

	if err := s.store.Update(ctx, e, expected); err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return e, s.handOff(ctx, e)
}

// handOff appends the aggregate's pending events to the event store and
// clears its buffer. After hand-off the events are immutable history.
func (s *Service) handOff(ctx context.Context, e *todo.Entity) error {
	events := e.PendingEvents()
	if len(events) == 0 {
		return nil
	}
	if err := s.events.Append(ctx, events...); err != nil {
		return fmt.Errorf("append events: %w", err)
	}
	e.ClearPendingEvents()
	return nil
}
