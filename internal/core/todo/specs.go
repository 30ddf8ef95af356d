package todo

import (
	"fmt"

	"github.com/colonyops/todocore/internal/core/spec"
)

// Leaf specifications over *Entity. All are stateless beyond their
// construction parameters and safe to share across calls.

// Completed matches items in the completed status.
func Completed() spec.Specification[*Entity] {
	return spec.New("完了済み", func(e *Entity) bool {
		return e.Status() == StatusCompleted
	})
}

// Pending matches items in the pending status.
func Pending() spec.Specification[*Entity] {
	return spec.New("未着手", func(e *Entity) bool {
		return e.Status() == StatusPending
	})
}

// Overdue matches items past their due date, excluding completed ones.
func Overdue() spec.Specification[*Entity] {
	return spec.New("期限切れ", func(e *Entity) bool {
		return e.IsOverdue()
	})
}

// HighPriority matches items with high or urgent priority.
func HighPriority() spec.Specification[*Entity] {
	return spec.New("高優先度", func(e *Entity) bool {
		return e.Priority().IsHigh() || e.Priority().IsUrgent()
	})
}

// DueToday matches items due today.
func DueToday() spec.Specification[*Entity] {
	return spec.New("今日が期限", func(e *Entity) bool {
		return e.IsDueToday()
	})
}

// DueWithinDays matches items due within n days from today.
func DueWithinDays(n int) spec.Specification[*Entity] {
	return spec.New(fmt.Sprintf("%d日以内が期限", n), func(e *Entity) bool {
		return e.IsDueWithinDays(n)
	})
}

// OwnedBy matches items owned by the given user.
func OwnedBy(userID string) spec.Specification[*Entity] {
	return spec.New(fmt.Sprintf("ユーザー%sの所有", userID), func(e *Entity) bool {
		return e.UserID() == userID
	})
}
