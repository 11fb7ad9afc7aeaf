package session

import "github.com/abhisek/edulanding/internal/curriculum"

// EventKind identifies what changed.
type EventKind int

const (
	EventSectionChanged EventKind = iota // Current section was (re)selected
	EventItemToggled                     // A checklist item flipped
	EventChecklistReset                  // All checklist items were cleared
)

// String returns a short name for the kind, used in logs.
func (k EventKind) String() string {
	switch k {
	case EventSectionChanged:
		return "section-changed"
	case EventItemToggled:
		return "item-toggled"
	case EventChecklistReset:
		return "checklist-reset"
	default:
		return "unknown"
	}
}

// Event describes a state change. Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	// Section changes.
	From curriculum.SectionID
	To   curriculum.SectionID

	// Item toggles.
	ItemID  string
	Checked bool
}

// Listener receives events synchronously after each state change.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}
