// Package help shows the key reference as an overlay pushed on top of the
// shell. Closing it pops back to the shell with its state untouched.
package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edulanding/internal/router"
	"github.com/abhisek/edulanding/internal/screen"
	"github.com/abhisek/edulanding/internal/ui/layout"
	"github.com/abhisek/edulanding/internal/ui/theme"
)

// Binding is one row in the reference.
type Binding struct {
	Keys        string
	Description string
}

// Group is a titled block of bindings.
type Group struct {
	Title    string
	Bindings []Binding
}

// DefaultGroups lists every shell key binding.
var DefaultGroups = []Group{
	{
		Title: "Navigation",
		Bindings: []Binding{
			{"↑ ↓  j k", "Move the sidebar cursor"},
			{"Enter", "Open the highlighted section"},
			{"← →  p n", "Previous / next section"},
			{"1-9  0", "Jump to section 1-10"},
			{"Tab", "Switch focus between sidebar and content"},
			{"PgUp PgDn", "Scroll content"},
		},
	},
	{
		Title: "Checklist",
		Bindings: []Binding{
			{"↑ ↓  j k", "Move between items (content focused)"},
			{"Space Enter", "Toggle item"},
			{"r", "Reset all items"},
			{"y", "Copy the A/B test template"},
		},
	},
	{
		Title: "General",
		Bindings: []Binding{
			{"?", "Show or hide this help"},
			{"Esc", "Close this help"},
			{"q  Ctrl+C", "Quit"},
		},
	},
}

// HelpScreen renders the key reference.
type HelpScreen struct {
	groups []Group
}

var _ screen.Screen = (*HelpScreen)(nil)

// New creates a HelpScreen for groups.
func New(groups []Group) *HelpScreen {
	return &HelpScreen{groups: groups}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "?", "q", "esc", "enter":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	keyWidth := 0
	for _, g := range h.groups {
		for _, b := range g.Bindings {
			keyWidth = max(keyWidth, lipgloss.Width(b.Keys))
		}
	}
	keyStyle := theme.KeyCap.Width(keyWidth + 3)

	var blocks []string
	for _, g := range h.groups {
		lines := []string{theme.Title.Render(g.Title)}
		for _, b := range g.Bindings {
			lines = append(lines, keyStyle.Render(b.Keys)+theme.Subtitle.Render(b.Description))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	card := theme.FocusedCard.Padding(1, 3).Render(strings.Join(blocks, "\n\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (h *HelpScreen) Title() string {
	return "Help"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Close"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
