package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/abhisek/edulanding/internal/ui/theme"
)

// SidebarItem is one entry in the section list.
type SidebarItem struct {
	Icon  string
	Label string
}

// Sidebar is a vertical list with a cursor and a separately highlighted
// active entry. The cursor moves freely; the active entry only changes when
// the caller says so.
type Sidebar struct {
	Items   []SidebarItem
	Cursor  int
	Active  int
	Focused bool
}

// NewSidebar creates a sidebar with the cursor on the active entry.
func NewSidebar(items []SidebarItem, active int) Sidebar {
	return Sidebar{Items: items, Cursor: active, Active: active, Focused: true}
}

// Up moves the cursor up one entry, stopping at the top.
func (s *Sidebar) Up() {
	if s.Cursor > 0 {
		s.Cursor--
	}
}

// Down moves the cursor down one entry, stopping at the bottom.
func (s *Sidebar) Down() {
	if s.Cursor < len(s.Items)-1 {
		s.Cursor++
	}
}

// SetActive marks i as active and moves the cursor there.
func (s *Sidebar) SetActive(i int) {
	if i < 0 || i >= len(s.Items) {
		return
	}
	s.Active = i
	s.Cursor = i
}

// View renders the list inside a bordered panel of the given outer size.
func (s Sidebar) View(width, height int) string {
	inner := max(width-4, 1) // border + padding
	var b strings.Builder
	for i, item := range s.Items {
		marker := "  "
		if i == s.Cursor && s.Focused {
			marker = theme.Cursor.Render("▸ ")
		}
		label := runewidth.Truncate(item.Icon+" "+item.Label, inner-2, "…")
		switch {
		case i == s.Active:
			label = theme.Selected.Render(label)
		default:
			label = theme.Unselected.Render(label)
		}
		b.WriteString(marker + label)
		if i < len(s.Items)-1 {
			b.WriteString("\n")
		}
	}

	style := theme.Card
	if s.Focused {
		style = theme.FocusedCard
	}
	return style.
		Width(width).
		Height(height).
		MaxHeight(height).
		Render(lipgloss.NewStyle().Width(inner).Render(b.String()))
}
