// Package stores provides in-memory implementations of the domain store
// interfaces. They are the reference stores for tests and embedding
// applications; persistence-backed stores live outside this module.
package stores

import (
	"context"
	"sort"
	"sync"

	"github.com/colonyops/todocore/internal/core/todo"
)

// TodoStore implements todo.Store in memory.
//
// Entities are cloned on the way in and out, so callers always hold
// snapshots. Update enforces optimistic concurrency against the stored
// aggregate version.
type TodoStore struct {
	mu    sync.RWMutex
	items map[string]*todo.Entity
}

var _ todo.Store = (*TodoStore)(nil)

// NewTodoStore creates an empty in-memory todo store.
func NewTodoStore() *TodoStore {
	return &TodoStore{items: make(map[string]*todo.Entity)}
}

// Create persists a new todo item.
// Returns todo.ErrDuplicateID if the ID is already taken.
func (s *TodoStore) Create(ctx context.Context, e *todo.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[e.ID()]; ok {
		return todo.ErrDuplicateID
	}

	s.items[e.ID()] = e.Clone()
	return nil
}

// Get returns a single todo item by ID.
// Returns todo.ErrNotFound if the item does not exist.
func (s *TodoStore) Get(ctx context.Context, id string) (*todo.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.items[id]
	if !ok {
		return nil, todo.ErrNotFound
	}
	return e.Clone(), nil
}

// List returns todo items matching the filter, ordered by created_at DESC.
func (s *TodoStore) List(ctx context.Context, filter todo.ListFilter) ([]*todo.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*todo.Entity, 0, len(s.items))
	for _, e := range s.items {
		if filter.UserID != "" && e.UserID() != filter.UserID {
			continue
		}
		if filter.Status != "" && e.Status() != filter.Status {
			continue
		}
		if filter.Priority != "" && e.Priority() != filter.Priority {
			continue
		}
		out = append(out, e.Clone())
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out, nil
}

// Update persists a mutated aggregate after checking the expected version.
func (s *TodoStore) Update(ctx context.Context, e *todo.Entity, expectedVersion uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[e.ID()]
	if !ok {
		return todo.ErrNotFound
	}
	if stored.Version() != expectedVersion {
		return todo.ErrVersionConflict
	}

	s.items[e.ID()] = e.Clone()
	return nil
}

// Delete removes a todo item.
func (s *TodoStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return todo.ErrNotFound
	}
	delete(s.items, id)
	return nil
}
