package scoring

import (
	"cmp"
	"slices"

	"github.com/colonyops/todocore/internal/core/todo"
)

// Distribution counts items per priority. All four priorities are always
// present in the result, zero-filled when absent.
func Distribution(todos []*todo.Entity) map[todo.Priority]int {
	dist := make(map[todo.Priority]int, 4)
	for _, p := range todo.Priorities() {
		dist[p] = 0
	}
	for _, e := range todos {
		if e.Priority().Valid() {
			dist[e.Priority()]++
		}
	}
	return dist
}

// HighPriorityTodos returns items with high or urgent priority, in input order.
func HighPriorityTodos(todos []*todo.Entity) []*todo.Entity {
	out := make([]*todo.Entity, 0, len(todos))
	for _, e := range todos {
		if e.Priority().IsHigh() || e.Priority().IsUrgent() {
			out = append(out, e)
		}
	}
	return out
}

// UrgentActionRequired returns items needing attention: urgent items, plus
// high-priority items that are overdue or due today. Completed items are
// excluded.
func UrgentActionRequired(todos []*todo.Entity) []*todo.Entity {
	out := make([]*todo.Entity, 0, len(todos))
	for _, e := range todos {
		if e.Status() == todo.StatusCompleted {
			continue
		}
		switch {
		case e.Priority().IsUrgent():
			out = append(out, e)
		case e.Priority().IsHigh() && (e.IsOverdue() || e.IsDueToday()):
			out = append(out, e)
		}
	}
	return out
}

// SortByPriority returns a copy sorted by priority, highest first.
// The sort is stable and the input is not mutated.
func SortByPriority(todos []*todo.Entity) []*todo.Entity {
	out := slices.Clone(todos)
	slices.SortStableFunc(out, func(a, b *todo.Entity) int {
		return b.Priority().Compare(a.Priority())
	})
	return out
}

// PrioritizeByUrgency returns a copy sorted by urgency score, highest first,
// using the default weights. The sort is stable and the input is not mutated.
func PrioritizeByUrgency(todos []*todo.Entity) []*todo.Entity {
	return PrioritizeByUrgencyWith(todos, DefaultWeights())
}

// PrioritizeByUrgencyWith is PrioritizeByUrgency with custom weights.
func PrioritizeByUrgencyWith(todos []*todo.Entity, w Weights) []*todo.Entity {
	out := slices.Clone(todos)
	slices.SortStableFunc(out, func(a, b *todo.Entity) int {
		return cmp.Compare(score(b, w), score(a, w))
	})
	return out
}

// score combines the priority base with a due-date proximity bonus.
// It is an ordering key only, never exposed as a metric.
func score(e *todo.Entity, w Weights) int {
	s := w.base(e.Priority())
	if !e.HasDueDate() {
		return s
	}
	switch {
	case e.IsOverdue():
		s += w.Bonuses.Overdue
	case e.IsDueToday():
		s += w.Bonuses.DueToday
	case e.IsDueWithinDays(3):
		s += w.Bonuses.WithinThreeDays
	case e.IsDueWithinDays(7):
		s += w.Bonuses.WithinSevenDays
	}
	return s
}
