package todo

// Status represents the lifecycle state of a todo item.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// IsTerminal returns true for states that end the active lifecycle.
// Terminal items can only be reopened; their fields cannot be edited.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanStart returns true if the item may transition to in_progress.
func (s Status) CanStart() bool {
	return s == StatusPending
}

// CanComplete returns true if the item may transition to completed.
func (s Status) CanComplete() bool {
	return s == StatusPending || s == StatusInProgress
}

// CanCancel returns true if the item may transition to cancelled.
func (s Status) CanCancel() bool {
	return s == StatusPending || s == StatusInProgress
}

// CanReopen returns true if the item may transition back to pending.
func (s Status) CanReopen() bool {
	return s == StatusCompleted || s == StatusCancelled
}
