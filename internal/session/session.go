package session

import (
	"io"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/edulanding/internal/checklist"
	"github.com/abhisek/edulanding/internal/curriculum"
	"github.com/abhisek/edulanding/internal/navigation"
)

// Session owns the navigation and checklist state for one run of the
// application. It is not safe for concurrent use: every operation is expected
// to be called from the single UI update loop.
type Session struct {
	// ID identifies this session in log lines.
	ID string

	catalog *curriculum.Catalog
	nav     *navigation.Navigator
	tracker *checklist.Tracker
	logger  *slog.Logger

	subs   []subscription
	nextID int
}

// New creates a session over catalog, positioned at the first section with
// an empty checklist. A nil logger discards all output.
func New(catalog *curriculum.Catalog, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	id := uuid.New().String()
	return &Session{
		ID:      id,
		catalog: catalog,
		nav:     navigation.New(catalog.IDs()),
		tracker: checklist.NewTracker(catalog.ChecklistItems()),
		logger:  logger.With("session", id),
	}
}

// Subscribe registers fn to be called after every state change. The returned
// function removes the subscription.
func (s *Session) Subscribe(fn Listener) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

func (s *Session) notify(ev Event) {
	// Copy so listeners may unsubscribe while being notified.
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(ev)
	}
}

// Catalog returns the curriculum backing this session.
func (s *Session) Catalog() *curriculum.Catalog {
	return s.catalog
}

// --- Navigation ---

// SelectSection makes id the current section. Unknown ids are logged and
// ignored; the return value reports whether the selection was accepted.
func (s *Session) SelectSection(id curriculum.SectionID) bool {
	from := s.nav.Current()
	if err := s.nav.Select(id); err != nil {
		s.logger.Warn("section selection rejected", "section", id, "error", err)
		return false
	}
	s.logger.Debug("section selected", "from", from, "to", id)
	s.notify(Event{Kind: EventSectionChanged, From: from, To: id})
	return true
}

// Advance moves to the next section; no-op on the last one.
func (s *Session) Advance() bool {
	from := s.nav.Current()
	if !s.nav.Advance() {
		return false
	}
	s.logger.Debug("section advanced", "from", from, "to", s.nav.Current())
	s.notify(Event{Kind: EventSectionChanged, From: from, To: s.nav.Current()})
	return true
}

// Retreat moves to the previous section; no-op on the first one.
func (s *Session) Retreat() bool {
	from := s.nav.Current()
	if !s.nav.Retreat() {
		return false
	}
	s.logger.Debug("section retreated", "from", from, "to", s.nav.Current())
	s.notify(Event{Kind: EventSectionChanged, From: from, To: s.nav.Current()})
	return true
}

// CurrentID returns the current section id.
func (s *Session) CurrentID() curriculum.SectionID {
	return s.nav.Current()
}

// Current returns the current section.
func (s *Session) Current() curriculum.Section {
	sec, _ := s.catalog.Section(s.nav.Current())
	return sec
}

// Index returns the zero-based position of the current section.
func (s *Session) Index() int {
	return s.nav.Index()
}

// SectionCount returns the number of sections.
func (s *Session) SectionCount() int {
	return s.nav.Len()
}

// IsFirst reports whether the current section is the first.
func (s *Session) IsFirst() bool {
	return s.nav.IsFirst()
}

// IsLast reports whether the current section is the last.
func (s *Session) IsLast() bool {
	return s.nav.IsLast()
}

// ProgressPercent returns the linear navigation progress.
func (s *Session) ProgressPercent() float64 {
	return s.nav.ProgressPercent()
}

// --- Checklist ---

// Toggle flips a checklist item. Unknown ids are logged and ignored; the
// return value reports whether the toggle was applied.
func (s *Session) Toggle(itemID string) bool {
	checked, err := s.tracker.Toggle(itemID)
	if err != nil {
		s.logger.Warn("checklist toggle rejected", "item", itemID, "error", err)
		return false
	}
	s.logger.Debug("checklist item toggled", "item", itemID, "checked", checked,
		"percent", s.tracker.CompletionPercent())
	s.notify(Event{Kind: EventItemToggled, ItemID: itemID, Checked: checked})
	return true
}

// ResetChecklist clears every checklist item.
func (s *Session) ResetChecklist() {
	s.tracker.Reset()
	s.logger.Debug("checklist reset")
	s.notify(Event{Kind: EventChecklistReset})
}

// Checked reports whether a checklist item is checked.
func (s *Session) Checked(itemID string) bool {
	return s.tracker.Checked(itemID)
}

// Completion returns a copy of the checklist completion map.
func (s *Session) Completion() map[string]bool {
	return s.tracker.Completion()
}

// CheckedCount returns the number of checked items.
func (s *Session) CheckedCount() int {
	return s.tracker.CheckedCount()
}

// CompletionPercent returns the rounded checklist completion.
func (s *Session) CompletionPercent() int {
	return s.tracker.CompletionPercent()
}

// ChecklistItems returns the checklist items in authored order.
func (s *Session) ChecklistItems() []checklist.Item {
	return s.tracker.Items()
}

// ByCategory returns the checklist grouped by category.
func (s *Session) ByCategory() []checklist.Group {
	return s.tracker.ByCategory()
}
