package todo

// Priority represents the importance of a todo item.
// Priorities are totally ordered: low < normal < high < urgent.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities returns all priority values in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}
}

func (p Priority) rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityNormal:
		return 1
	case PriorityHigh:
		return 2
	case PriorityUrgent:
		return 3
	default:
		return -1
	}
}

// Valid returns true if p is one of the four defined priorities.
func (p Priority) Valid() bool {
	return p.rank() >= 0
}

// Compare returns -1, 0, or 1 as p is ordered before, equal to, or after other.
func (p Priority) Compare(other Priority) int {
	a, b := p.rank(), other.rank()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsLow returns true for the low priority.
func (p Priority) IsLow() bool { return p == PriorityLow }

// IsHigh returns true for the high priority.
func (p Priority) IsHigh() bool { return p == PriorityHigh }

// IsUrgent returns true for the urgent priority.
func (p Priority) IsUrgent() bool { return p == PriorityUrgent }
