package checklist

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
)

// ErrUnknownItem is returned when toggling an id that is not a defined item.
var ErrUnknownItem = errors.New("unknown checklist item")

// Tracker holds the in-memory completion state for a fixed item list.
// Absence of an id in the completion map means unchecked.
type Tracker struct {
	items      []Item
	known      map[string]bool
	completion map[string]bool
}

// NewTracker creates a tracker over items with an empty completion map.
func NewTracker(items []Item) *Tracker {
	known := make(map[string]bool, len(items))
	for _, it := range items {
		known[it.ID] = true
	}
	return &Tracker{
		items:      slices.Clone(items),
		known:      known,
		completion: make(map[string]bool),
	}
}

// Items returns the fixed item list.
func (t *Tracker) Items() []Item {
	return slices.Clone(t.items)
}

// Toggle flips the completion value of id and returns the new value.
// Ids that are not defined items are rejected and never stored.
func (t *Tracker) Toggle(id string) (bool, error) {
	if !t.known[id] {
		return false, fmt.Errorf("toggle %q: %w", id, ErrUnknownItem)
	}
	v := !t.completion[id]
	t.completion[id] = v
	return v, nil
}

// Checked reports whether id is checked.
func (t *Tracker) Checked(id string) bool {
	return t.completion[id]
}

// CheckedCount returns the number of defined items that are checked.
func (t *Tracker) CheckedCount() int {
	n := 0
	for _, it := range t.items {
		if t.completion[it.ID] {
			n++
		}
	}
	return n
}

// Total returns the number of defined items.
func (t *Tracker) Total() int {
	return len(t.items)
}

// Completion returns a copy of the completion map.
func (t *Tracker) Completion() map[string]bool {
	return maps.Clone(t.completion)
}

// CompletionPercent returns checked/total*100 rounded to the nearest integer.
// An empty item list yields 0.
func (t *Tracker) CompletionPercent() int {
	if len(t.items) == 0 {
		return 0
	}
	return int(math.Round(float64(t.CheckedCount()) / float64(len(t.items)) * 100))
}

// ByCategory groups the fixed item list by category.
func (t *Tracker) ByCategory() []Group {
	return GroupByCategory(t.items)
}

// Reset clears all completion values.
func (t *Tracker) Reset() {
	clear(t.completion)
}
