package todos

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/todocore/internal/core/spec"
	"github.com/colonyops/todocore/internal/core/todo"
	"github.com/colonyops/todocore/internal/data/stores"
)

func newService() (*Service, *stores.EventStore) {
	events := stores.NewEventStore()
	return NewService(stores.NewTodoStore(), events, zerolog.Nop()), events
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and hands off events", func(t *testing.T) {
		svc, events := newService()

		due, err := todo.NewDueDate(time.Now().AddDate(0, 0, 3))
		require.NoError(t, err)

		e, err := svc.Create(ctx, CreateParams{
			UserID:      "user-1",
			Title:       "Write report",
			Description: "Quarterly numbers",
			Priority:    todo.PriorityHigh,
			DueDate:     due,
		})
		require.NoError(t, err)
		assert.Empty(t, e.PendingEvents(), "events are cleared after hand-off")

		got, err := svc.Get(ctx, e.ID())
		require.NoError(t, err)
		assert.Equal(t, "Write report", got.Title())
		assert.Equal(t, "Quarterly numbers", got.Description())
		assert.True(t, got.HasDueDate())

		history, err := events.ForAggregate(ctx, e.ID())
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, todo.EventCreated, history[0].Type)
		assert.Equal(t, todo.EventDescriptionUpdated, history[1].Type)
		assert.Equal(t, todo.EventDueDateChanged, history[2].Type)
	})

	t.Run("defaults priority to normal", func(t *testing.T) {
		svc, _ := newService()

		e, err := svc.Create(ctx, CreateParams{UserID: "user-1", Title: "Task"})
		require.NoError(t, err)
		assert.Equal(t, todo.PriorityNormal, e.Priority())
	})

	t.Run("rejects blank inputs", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.Create(ctx, CreateParams{UserID: "user-1", Title: "  "})
		assert.Error(t, err)

		_, err = svc.Create(ctx, CreateParams{UserID: "", Title: "Task"})
		assert.Error(t, err)
	})
}

func TestService_Logging(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	svc := NewService(stores.NewTodoStore(), stores.NewEventStore(), zerolog.New(&buf))

	e, err := svc.Create(ctx, CreateParams{UserID: "user-1", Title: "Task"})
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "todo-service", entry["cmp"])
	assert.Equal(t, "user-1", entry["user_id"])
	assert.Equal(t, e.ID(), entry["todo_id"])
}

func TestService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc, events := newService()

	e, err := svc.Create(ctx, CreateParams{UserID: "user-1", Title: "Task"})
	require.NoError(t, err)

	_, err = svc.Start(ctx, e.ID())
	require.NoError(t, err)

	done, err := svc.Complete(ctx, e.ID())
	require.NoError(t, err)
	assert.Equal(t, todo.StatusCompleted, done.Status())
	assert.Equal(t, uint64(3), done.Version())

	_, err = svc.Complete(ctx, e.ID())
	assert.ErrorIs(t, err, todo.ErrInvalidStateTransition)

	reopened, err := svc.Reopen(ctx, e.ID())
	require.NoError(t, err)
	assert.Equal(t, todo.StatusPending, reopened.Status())

	history, err := events.ForAggregate(ctx, e.ID())
	require.NoError(t, err)
	wantTypes := []todo.EventType{
		todo.EventCreated, todo.EventStarted, todo.EventCompleted, todo.EventReopened,
	}
	require.Len(t, history, len(wantTypes))
	for i, ev := range history {
		assert.Equal(t, wantTypes[i], ev.Type)
	}

	assert.Equal(t, history, mustHistory(t, svc, ctx, e.ID()))
}

func mustHistory(t *testing.T, svc *Service, ctx context.Context, id string) []todo.Event {
	t.Helper()
	history, err := svc.History(ctx, id)
	require.NoError(t, err)
	return history
}

func TestService_Mutations(t *testing.T) {
	ctx := context.Background()

	t.Run("rename no-op skips persistence and events", func(t *testing.T) {
		svc, events := newService()

		e, err := svc.Create(ctx, CreateParams{UserID: "user-1", Title: "Task"})
		require.NoError(t, err)

		same, err := svc.Rename(ctx, e.ID(), "Task")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), same.Version())

		history, err := events.ForAggregate(ctx, e.ID())
		require.NoError(t, err)
		assert.Len(t, history, 1, "only the created event")
	})

	t.Run("priority and due date changes", func(t *testing.T) {
		svc, _ := newService()

		e, err := svc.Create(ctx, CreateParams{UserID: "user-1", Title: "Task"})
		require.NoError(t, err)

		updated, err := svc.ChangePriority(ctx, e.ID(), todo.PriorityUrgent)
		require.NoError(t, err)
		assert.Equal(t, todo.PriorityUrgent, updated.Priority())

		due, err := todo.NewDueDate(time.Now().AddDate(0, 0, 1))
		require.NoError(t, err)
		updated, err = svc.Reschedule(ctx, e.ID(), due)
		require.NoError(t, err)
		assert.True(t, updated.HasDueDate())
	})

	t.Run("subtasks", func(t *testing.T) {
		svc, _ := newService()

		e, err := svc.Create(ctx, CreateParams{UserID: "user-1", Title: "Task"})
		require.NoError(t, err)

		updated, err := svc.AddSubTask(ctx, e.ID(), "st-1", "Outline")
		require.NoError(t, err)
		require.Len(t, updated.SubTasks(), 1)

		updated, err = svc.RemoveSubTask(ctx, e.ID(), "st-1")
		require.NoError(t, err)
		assert.Empty(t, updated.SubTasks())
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.Start(ctx, "missing")
		assert.ErrorIs(t, err, todo.ErrNotFound)
	})
}

func TestService_ListMatching(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, err := svc.Create(ctx, CreateParams{UserID: "user-1", Title: "Low", Priority: todo.PriorityLow})
	require.NoError(t, err)
	high, err := svc.Create(ctx, CreateParams{UserID: "user-1", Title: "High", Priority: todo.PriorityHigh})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateParams{UserID: "user-2", Title: "Other", Priority: todo.PriorityUrgent})
	require.NoError(t, err)

	got, err := svc.ListMatching(ctx, todo.ListFilter{UserID: "user-1"}, todo.HighPriority())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, high.ID(), got[0].ID())

	none, err := svc.ListMatching(ctx, todo.ListFilter{UserID: "user-1"},
		spec.And(todo.HighPriority(), todo.Completed()))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestService_SuggestAdjustments(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	overdue, err := todo.RestoreDueDate(time.Now().AddDate(0, 0, -2))
	require.NoError(t, err)

	e, err := svc.Create(ctx, CreateParams{
		UserID:   "user-1",
		Title:    "Late task",
		Priority: todo.PriorityNormal,
		DueDate:  overdue,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateParams{UserID: "user-1", Title: "Calm task"})
	require.NoError(t, err)

	suggestions, err := svc.SuggestAdjustments(ctx, todo.ListFilter{UserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	byID := make(map[string]AdjustmentSuggestion, len(suggestions))
	for _, s := range suggestions {
		byID[s.Todo.ID()] = s
	}

	late := byID[e.ID()]
	assert.True(t, late.Suggestion.ShouldAdjust)
	assert.Equal(t, todo.PriorityHigh, late.Suggestion.SuggestedPriority)
}
