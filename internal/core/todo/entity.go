package todo

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/colonyops/todocore/pkg/randid"
)

// SubTask is a lightweight reference to a child task owned by an Entity.
type SubTask struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Entity is the todo aggregate root. It owns the status state machine and
// appends exactly one domain event per accepted mutation.
//
// An Entity is not safe for concurrent mutation. Callers serialize writes to
// a single aggregate and rely on the version counter for optimistic
// concurrency when persisting.
type Entity struct {
	id          string
	userID      string
	title       string
	description string
	status      Status
	priority    Priority
	dueDate     DueDate
	subTasks    []SubTask
	createdAt   time.Time
	updatedAt   time.Time
	version     uint64
	pending     []Event
}

// New creates a pending todo item and emits the created event.
func New(userID, title string, priority Priority) (*Entity, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	now := nowFunc()
	e := &Entity{
		id:        randid.Generate(8),
		userID:    userID,
		title:     title,
		status:    StatusPending,
		priority:  priority,
		createdAt: now,
		updatedAt: now,
	}
	e.record(now, CreatedPayload{Title: title, Status: StatusPending, Priority: priority})
	return e, nil
}

// RestoreParams carries a persisted snapshot back into an aggregate.
type RestoreParams struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     DueDate
	SubTasks    []SubTask
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     uint64
}

// Restore rehydrates an aggregate from a snapshot without emitting events.
func Restore(p RestoreParams) *Entity {
	return &Entity{
		id:          p.ID,
		userID:      p.UserID,
		title:       p.Title,
		description: p.Description,
		status:      p.Status,
		priority:    p.Priority,
		dueDate:     p.DueDate,
		subTasks:    slices.Clone(p.SubTasks),
		createdAt:   p.CreatedAt,
		updatedAt:   p.UpdatedAt,
		version:     p.Version,
	}
}

func (e *Entity) ID() string           { return e.id }
func (e *Entity) UserID() string       { return e.userID }
func (e *Entity) Title() string        { return e.title }
func (e *Entity) Description() string  { return e.description }
func (e *Entity) Status() Status       { return e.status }
func (e *Entity) Priority() Priority   { return e.priority }
func (e *Entity) CreatedAt() time.Time { return e.createdAt }
func (e *Entity) UpdatedAt() time.Time { return e.updatedAt }
func (e *Entity) Version() uint64      { return e.version }

// DueDate returns the due date; the zero value means none is set.
func (e *Entity) DueDate() DueDate { return e.dueDate }

// HasDueDate reports whether a due date is set.
func (e *Entity) HasDueDate() bool { return !e.dueDate.IsZero() }

// SubTasks returns a copy of the ordered subtask references.
func (e *Entity) SubTasks() []SubTask { return slices.Clone(e.subTasks) }

// PendingEvents returns a copy of events recorded since the last clear.
func (e *Entity) PendingEvents() []Event { return slices.Clone(e.pending) }

// ClearPendingEvents drops buffered events after hand-off to an event store.
func (e *Entity) ClearPendingEvents() { e.pending = nil }

// Clone returns a deep copy of the aggregate.
func (e *Entity) Clone() *Entity {
	c := *e
	c.subTasks = slices.Clone(e.subTasks)
	c.pending = slices.Clone(e.pending)
	return &c
}

// record applies the bookkeeping shared by every accepted mutation:
// one version increment, one updatedAt bump, one event.
func (e *Entity) record(now time.Time, payload EventPayload) {
	e.version++
	e.updatedAt = now
	e.pending = append(e.pending, newEvent(e.id, now, payload))
}

func (e *Entity) transitionErr(op string) error {
	return fmt.Errorf("%w: cannot %s from %s", ErrInvalidStateTransition, op, e.status)
}

// Start moves a pending item into progress.
func (e *Entity) Start() error {
	if !e.status.CanStart() {
		return e.transitionErr("start")
	}
	e.status = StatusInProgress
	e.record(nowFunc(), StartedPayload{})
	return nil
}

// Complete finishes a pending or in-progress item.
func (e *Entity) Complete() error {
	if !e.status.CanComplete() {
		return e.transitionErr("complete")
	}
	now := nowFunc()
	e.status = StatusCompleted
	e.record(now, CompletedPayload{CompletedAt: now})
	return nil
}

// Cancel abandons a pending or in-progress item.
func (e *Entity) Cancel() error {
	if !e.status.CanCancel() {
		return e.transitionErr("cancel")
	}
	e.status = StatusCancelled
	e.record(nowFunc(), CancelledPayload{})
	return nil
}

// Reopen returns a completed or cancelled item to pending.
func (e *Entity) Reopen() error {
	if !e.status.CanReopen() {
		return e.transitionErr("reopen")
	}
	e.status = StatusPending
	e.record(nowFunc(), ReopenedPayload{})
	return nil
}

// Rename changes the title. Renaming to the current title is a no-op.
func (e *Entity) Rename(title string) error {
	if e.status.IsTerminal() {
		return e.transitionErr("rename")
	}
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if title == e.title {
		return nil
	}
	old := e.title
	e.title = title
	e.record(nowFunc(), TitleUpdatedPayload{OldTitle: old, NewTitle: title})
	return nil
}

// UpdateDescription changes the description. Equal values are a no-op.
func (e *Entity) UpdateDescription(description string) error {
	if e.status.IsTerminal() {
		return e.transitionErr("update description")
	}
	if description == e.description {
		return nil
	}
	old := e.description
	e.description = description
	e.record(nowFunc(), DescriptionUpdatedPayload{OldDescription: old, NewDescription: description})
	return nil
}

// Reschedule sets or clears the due date. Passing the zero value clears it.
// Rescheduling to the same instant is a no-op.
func (e *Entity) Reschedule(due DueDate) error {
	if e.status.IsTerminal() {
		return e.transitionErr("reschedule")
	}
	if due.IsZero() && e.dueDate.IsZero() {
		return nil
	}
	if due.Equals(e.dueDate) {
		return nil
	}

	payload := DueDateChangedPayload{}
	if !e.dueDate.IsZero() {
		old := e.dueDate
		payload.OldDueDate = &old
	}
	if !due.IsZero() {
		next := due
		payload.NewDueDate = &next
	}

	e.dueDate = due
	e.record(nowFunc(), payload)
	return nil
}

// ChangePriority changes the priority. Equal values are a no-op.
func (e *Entity) ChangePriority(priority Priority) error {
	if e.status.IsTerminal() {
		return e.transitionErr("change priority")
	}
	if priority == e.priority {
		return nil
	}
	old := e.priority
	e.priority = priority
	e.record(nowFunc(), PriorityChangedPayload{OldPriority: old, NewPriority: priority})
	return nil
}

// AddSubTask attaches a subtask reference. Adding an already attached id is a
// no-op.
func (e *Entity) AddSubTask(id, title string) {
	if slices.ContainsFunc(e.subTasks, func(s SubTask) bool { return s.ID == id }) {
		return
	}
	e.subTasks = append(e.subTasks, SubTask{ID: id, Title: title})
	e.record(nowFunc(), SubTaskAddedPayload{SubTaskID: id, Title: title})
}

// RemoveSubTask detaches a subtask reference. Unknown ids are a no-op.
func (e *Entity) RemoveSubTask(id string) {
	idx := slices.IndexFunc(e.subTasks, func(s SubTask) bool { return s.ID == id })
	if idx < 0 {
		return
	}
	e.subTasks = slices.Delete(e.subTasks, idx, idx+1)
	e.record(nowFunc(), SubTaskRemovedPayload{SubTaskID: id})
}

// IsOverdue reports whether the item has a due date in the past and is not
// completed.
func (e *Entity) IsOverdue() bool {
	return e.HasDueDate() && e.status != StatusCompleted && e.dueDate.IsOverdue()
}

// IsDueToday reports whether the item is due today.
func (e *Entity) IsDueToday() bool {
	return e.HasDueDate() && e.dueDate.IsToday()
}

// IsDueWithinDays reports whether the item is due within n days from today.
func (e *Entity) IsDueWithinDays(n int) bool {
	return e.HasDueDate() && e.dueDate.IsWithinDays(n)
}
