package scoring

import "github.com/colonyops/todocore/internal/core/todo"

// Suggestion is the outcome of a priority-adjustment check.
type Suggestion struct {
	ShouldAdjust      bool          `json:"should_adjust"`
	SuggestedPriority todo.Priority `json:"suggested_priority,omitempty"`
	Reason            string        `json:"reason"`
}

// SuggestAdjustment evaluates whether an item's priority should change based
// on its due date. Branches are evaluated in order; the first match wins.
func SuggestAdjustment(e *todo.Entity) Suggestion {
	switch {
	case e.Status() == todo.StatusCompleted:
		return Suggestion{Reason: "task is already completed"}
	case e.Priority().IsUrgent():
		return Suggestion{Reason: "priority is already at the maximum"}
	case !e.HasDueDate():
		return Suggestion{Reason: "no due date to evaluate"}
	case e.IsOverdue():
		return Suggestion{
			ShouldAdjust:      true,
			SuggestedPriority: todo.PriorityHigh,
			Reason:            "task is overdue",
		}
	case e.IsDueToday() && !e.Priority().IsHigh():
		return Suggestion{
			ShouldAdjust:      true,
			SuggestedPriority: todo.PriorityHigh,
			Reason:            "task is due today",
		}
	case e.IsDueWithinDays(3) && e.Priority().IsLow():
		return Suggestion{
			ShouldAdjust:      true,
			SuggestedPriority: todo.PriorityNormal,
			Reason:            "task is due within 3 days",
		}
	default:
		return Suggestion{Reason: "current priority is appropriate"}
	}
}
