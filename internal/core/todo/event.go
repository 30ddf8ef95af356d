package todo

import "time"

// EventType discriminates domain event payloads on the wire.
type EventType string

const (
	EventCreated            EventType = "todo.created"
	EventStarted            EventType = "todo.started"
	EventCompleted          EventType = "todo.completed"
	EventCancelled          EventType = "todo.cancelled"
	EventReopened           EventType = "todo.reopened"
	EventTitleUpdated       EventType = "todo.title_updated"
	EventDescriptionUpdated EventType = "todo.description_updated"
	EventDueDateChanged     EventType = "todo.due_date_changed"
	EventPriorityChanged    EventType = "todo.priority_changed"
	EventSubTaskAdded       EventType = "todo.subtask_added"
	EventSubTaskRemoved     EventType = "todo.subtask_removed"
)

// Event is an immutable record of a single accepted aggregate mutation.
// Events are append-only: once handed to an event store they are never
// rewritten.
type Event struct {
	AggregateID string       `json:"aggregate_id"`
	Type        EventType    `json:"event_type"`
	OccurredAt  time.Time    `json:"occurred_at"`
	Payload     EventPayload `json:"payload"`
}

// EventPayload is the closed set of per-event payload shapes. The unexported
// method seals the set so consumer switches stay exhaustive at compile time.
type EventPayload interface {
	eventType() EventType
}

// CreatedPayload is emitted when a todo item is created.
type CreatedPayload struct {
	Title    string   `json:"title"`
	Status   Status   `json:"status"`
	Priority Priority `json:"priority"`
}

// StartedPayload is emitted when work on a todo item begins.
type StartedPayload struct{}

// CompletedPayload is emitted when a todo item is completed.
type CompletedPayload struct {
	CompletedAt time.Time `json:"completed_at"`
}

// CancelledPayload is emitted when a todo item is cancelled.
type CancelledPayload struct{}

// ReopenedPayload is emitted when a terminal todo item returns to pending.
type ReopenedPayload struct{}

// TitleUpdatedPayload is emitted when the title changes.
type TitleUpdatedPayload struct {
	OldTitle string `json:"old_title"`
	NewTitle string `json:"new_title"`
}

// DescriptionUpdatedPayload is emitted when the description changes.
type DescriptionUpdatedPayload struct {
	OldDescription string `json:"old_description"`
	NewDescription string `json:"new_description"`
}

// DueDateChangedPayload is emitted when the due date is rescheduled.
// A nil date means "no due date" on that side of the change.
type DueDateChangedPayload struct {
	OldDueDate *DueDate `json:"old_due_date,omitempty"`
	NewDueDate *DueDate `json:"new_due_date,omitempty"`
}

// PriorityChangedPayload is emitted when the priority changes.
type PriorityChangedPayload struct {
	OldPriority Priority `json:"old_priority"`
	NewPriority Priority `json:"new_priority"`
}

// SubTaskAddedPayload is emitted when a subtask reference is attached.
type SubTaskAddedPayload struct {
	SubTaskID string `json:"subtask_id"`
	Title     string `json:"title"`
}

// SubTaskRemovedPayload is emitted when a subtask reference is detached.
type SubTaskRemovedPayload struct {
	SubTaskID string `json:"subtask_id"`
}

func (CreatedPayload) eventType() EventType            { return EventCreated }
func (StartedPayload) eventType() EventType            { return EventStarted }
func (CompletedPayload) eventType() EventType          { return EventCompleted }
func (CancelledPayload) eventType() EventType          { return EventCancelled }
func (ReopenedPayload) eventType() EventType           { return EventReopened }
func (TitleUpdatedPayload) eventType() EventType       { return EventTitleUpdated }
func (DescriptionUpdatedPayload) eventType() EventType { return EventDescriptionUpdated }
func (DueDateChangedPayload) eventType() EventType     { return EventDueDateChanged }
func (PriorityChangedPayload) eventType() EventType    { return EventPriorityChanged }
func (SubTaskAddedPayload) eventType() EventType       { return EventSubTaskAdded }
func (SubTaskRemovedPayload) eventType() EventType     { return EventSubTaskRemoved }

func newEvent(aggregateID string, at time.Time, payload EventPayload) Event {
	return Event{
		AggregateID: aggregateID,
		Type:        payload.eventType(),
		OccurredAt:  at,
		Payload:     payload,
	}
}
