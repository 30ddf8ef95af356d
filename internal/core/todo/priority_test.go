package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority_Compare(t *testing.T) {
	ordered := Priorities()

	for i, lower := range ordered {
		assert.Equal(t, 0, lower.Compare(lower))
		for _, higher := range ordered[i+1:] {
			assert.Equal(t, -1, lower.Compare(higher), "%s < %s", lower, higher)
			assert.Equal(t, 1, higher.Compare(lower), "%s > %s", higher, lower)
		}
	}
}

func TestPriority_Classification(t *testing.T) {
	assert.True(t, PriorityLow.IsLow())
	assert.True(t, PriorityHigh.IsHigh())
	assert.True(t, PriorityUrgent.IsUrgent())

	assert.False(t, PriorityNormal.IsLow())
	assert.False(t, PriorityNormal.IsHigh())
	assert.False(t, PriorityNormal.IsUrgent())
	assert.False(t, PriorityUrgent.IsHigh())
}

func TestPriority_Valid(t *testing.T) {
	for _, p := range Priorities() {
		assert.True(t, p.Valid())
	}
	assert.False(t, Priority("").Valid())
	assert.False(t, Priority("critical").Valid())
}
