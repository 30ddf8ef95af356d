// Package scoring ranks and analyzes todo collections by priority and
// due-date proximity.
package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/todocore/internal/core/todo"
)

// Weights tunes the urgency score. The defaults are the canonical values;
// deployments may override them from a YAML file.
type Weights struct {
	Base    BaseWeights  `yaml:"base"`
	Bonuses BonusWeights `yaml:"bonuses"`
}

// BaseWeights is the score contributed by the item's priority.
type BaseWeights struct {
	Low    int `yaml:"low"`
	Normal int `yaml:"normal"`
	High   int `yaml:"high"`
	Urgent int `yaml:"urgent"`
}

// BonusWeights is the score added for due-date proximity. Buckets are
// mutually exclusive; the most urgent matching bucket wins.
type BonusWeights struct {
	Overdue         int `yaml:"overdue"`
	DueToday        int `yaml:"due_today"`
	WithinThreeDays int `yaml:"within_three_days"`
	WithinSevenDays int `yaml:"within_seven_days"`
}

// DefaultWeights returns the canonical urgency weights.
func DefaultWeights() Weights {
	return Weights{
		Base: BaseWeights{
			Low:    1,
			Normal: 10,
			High:   100,
			Urgent: 1000,
		},
		Bonuses: BonusWeights{
			Overdue:         500,
			DueToday:        100,
			WithinThreeDays: 50,
			WithinSevenDays: 10,
		},
	}
}

// Load reads weights from the given YAML path. An empty or missing path
// returns the defaults.
func Load(path string) (Weights, error) {
	w := DefaultWeights()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return Weights{}, fmt.Errorf("read weights file: %w", err)
			}
			if err := yaml.Unmarshal(data, &w); err != nil {
				return Weights{}, fmt.Errorf("parse weights file: %w", err)
			}
		}
	}

	if err := w.Validate(); err != nil {
		return Weights{}, fmt.Errorf("invalid weights: %w", err)
	}
	return w, nil
}

// Validate checks that weights are non-negative and base scores follow the
// priority order.
func (w Weights) Validate() error {
	for name, v := range map[string]int{
		"base.low":                  w.Base.Low,
		"base.normal":               w.Base.Normal,
		"base.high":                 w.Base.High,
		"base.urgent":               w.Base.Urgent,
		"bonuses.overdue":           w.Bonuses.Overdue,
		"bonuses.due_today":         w.Bonuses.DueToday,
		"bonuses.within_three_days": w.Bonuses.WithinThreeDays,
		"bonuses.within_seven_days": w.Bonuses.WithinSevenDays,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}

	if w.Base.Low >= w.Base.Normal || w.Base.Normal >= w.Base.High || w.Base.High >= w.Base.Urgent {
		return fmt.Errorf("base scores must increase with priority")
	}
	return nil
}

func (w Weights) base(p todo.Priority) int {
	switch p {
	case todo.PriorityLow:
		return w.Base.Low
	case todo.PriorityNormal:
		return w.Base.Normal
	case todo.PriorityHigh:
		return w.Base.High
	case todo.PriorityUrgent:
		return w.Base.Urgent
	default:
		return 0
	}
}
