// Package shell is the main course screen: a section sidebar on the left and
// the scrollable section content on the right. All state lives in the
// session; the shell only keeps view concerns such as focus, scroll position
// and the checklist cursor.
package shell

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"

	"github.com/abhisek/edulanding/internal/curriculum"
	"github.com/abhisek/edulanding/internal/router"
	"github.com/abhisek/edulanding/internal/screen"
	"github.com/abhisek/edulanding/internal/screens/content"
	"github.com/abhisek/edulanding/internal/screens/help"
	"github.com/abhisek/edulanding/internal/session"
	"github.com/abhisek/edulanding/internal/ui/components"
	"github.com/abhisek/edulanding/internal/ui/layout"
	"github.com/abhisek/edulanding/internal/ui/theme"
)

type focus int

const (
	focusSidebar focus = iota
	focusContent
)

// ShellScreen renders the course.
type ShellScreen struct {
	sess *session.Session
	sel  *content.Selector

	sidebar components.Sidebar
	vp      viewport.Model
	focus   focus

	// cursor is the flat index of the highlighted checklist item.
	cursor int
	flash  string
	dirty  bool

	copyFn func(string) error
}

var (
	_ screen.Screen           = (*ShellScreen)(nil)
	_ screen.KeyHintProvider  = (*ShellScreen)(nil)
	_ screen.StatusProvider   = (*ShellScreen)(nil)
	_ screen.ProgressProvider = (*ShellScreen)(nil)
)

// New creates the shell over sess and subscribes to its changes.
func New(sess *session.Session, sel *content.Selector) *ShellScreen {
	items := make([]components.SidebarItem, 0, sess.SectionCount())
	for _, sec := range sess.Catalog().Sections() {
		items = append(items, components.SidebarItem{Icon: sec.Icon, Label: sec.Title})
	}

	s := &ShellScreen{
		sess:    sess,
		sel:     sel,
		sidebar: components.NewSidebar(items, sess.Index()),
		vp:      viewport.New(),
		dirty:   true,
		copyFn:  clipboard.WriteAll,
	}
	sess.Subscribe(s.onEvent)
	return s
}

func (s *ShellScreen) onEvent(ev session.Event) {
	if ev.Kind == session.EventSectionChanged {
		s.sidebar.SetActive(s.sess.Index())
		s.cursor = 0
		s.flash = ""
		s.vp.GotoTop()
	}
	s.dirty = true
}

func (s *ShellScreen) Init() tea.Cmd {
	return nil
}

func (s *ShellScreen) Title() string {
	return s.sess.Current().Title
}

// Status shows the position in the course.
func (s *ShellScreen) Status() string {
	return fmt.Sprintf("%d/%d  %.0f%%", s.sess.Index()+1, s.sess.SectionCount(), s.sess.ProgressPercent())
}

// ProgressPercent drives the bar under the header.
func (s *ShellScreen) ProgressPercent() float64 {
	return s.sess.ProgressPercent()
}

func (s *ShellScreen) onChecklist() bool {
	return s.sess.CurrentID() == curriculum.SectionChecklist
}

func (s *ShellScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	switch key {
	case "q":
		return s, tea.Quit
	case "?":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: help.New(help.DefaultGroups)}
		}
	case "tab":
		if s.focus == focusSidebar {
			s.focus = focusContent
		} else {
			s.focus = focusSidebar
			s.sidebar.Cursor = s.sidebar.Active
		}
		s.sidebar.Focused = s.focus == focusSidebar
		s.dirty = true
		return s, nil
	case "left", "p":
		s.sess.Retreat()
		return s, nil
	case "right", "n":
		s.sess.Advance()
		return s, nil
	case "pgup":
		s.vp.PageUp()
		return s, nil
	case "pgdown":
		s.vp.PageDown()
		return s, nil
	}

	if idx, ok := jumpIndex(key); ok {
		if ids := s.sess.Catalog().IDs(); idx < len(ids) {
			s.sess.SelectSection(ids[idx])
		}
		return s, nil
	}

	if s.focus == focusSidebar {
		return s.updateSidebar(key)
	}
	return s.updateContent(key)
}

// jumpIndex maps "1".."9" to 0..8 and "0" to 9.
func jumpIndex(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	if n == 0 {
		return 9, true
	}
	return n - 1, true
}

func (s *ShellScreen) updateSidebar(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		s.sidebar.Up()
	case "down", "j":
		s.sidebar.Down()
	case "enter", "space":
		ids := s.sess.Catalog().IDs()
		if s.sidebar.Cursor < len(ids) {
			s.sess.SelectSection(ids[s.sidebar.Cursor])
		}
	}
	return s, nil
}

func (s *ShellScreen) updateContent(key string) (screen.Screen, tea.Cmd) {
	if s.onChecklist() {
		return s.updateChecklist(key)
	}
	switch key {
	case "up", "k":
		s.vp.ScrollUp(1)
	case "down", "j":
		s.vp.ScrollDown(1)
	case "home", "g":
		s.vp.GotoTop()
	case "end", "G":
		s.vp.GotoBottom()
	}
	return s, nil
}

func (s *ShellScreen) updateChecklist(key string) (screen.Screen, tea.Cmd) {
	items := content.FlatItems(s.sess.ByCategory())
	switch key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
			s.dirty = true
		}
	case "down", "j":
		if s.cursor < len(items)-1 {
			s.cursor++
			s.dirty = true
		}
	case "space", "enter":
		if s.cursor < len(items) {
			s.sess.Toggle(items[s.cursor].ID)
		}
	case "r":
		s.sess.ResetChecklist()
		s.flash = "Checklist reset"
	case "y":
		if err := s.copyFn(s.sess.Catalog().ChecklistTemplate()); err != nil {
			s.flash = "Clipboard unavailable: " + err.Error()
		} else {
			s.flash = "Template copied to clipboard"
		}
	}
	return s, nil
}

// sync sizes the viewport and re-renders the page when something changed.
func (s *ShellScreen) sync(width, height int) {
	if width != s.vp.Width() || height != s.vp.Height() {
		s.vp.SetWidth(width)
		s.vp.SetHeight(height)
		s.dirty = true
	}
	if !s.dirty {
		return
	}
	page := s.sel.Render(s.sess.CurrentID(), content.Context{
		Width:   width,
		Session: s.sess,
		Cursor:  s.cursor,
		Focused: s.focus == focusContent,
	})
	s.vp.SetContent(page.Text)
	if page.FocusLine >= 0 {
		s.vp.EnsureVisible(page.FocusLine, 0, 0)
	}
	s.dirty = false
}

func (s *ShellScreen) View(width, height int) string {
	sidebarWidth := layout.SidebarWidth
	if layout.IsCompactWidth(width) {
		sidebarWidth = layout.SidebarWidth - 6
	}
	contentWidth := max(width-sidebarWidth, 10)

	// Panel border (2) and padding (2); one line for the status row.
	s.sync(contentWidth-4, max(height-3, 1))

	side := s.sidebar.View(sidebarWidth, height)

	panel := theme.Card
	if s.focus == focusContent {
		panel = theme.FocusedCard
	}
	body := s.vp.View() + "\n" + s.statusLine(contentWidth-4)
	main := panel.Width(contentWidth).Height(height).MaxHeight(height).Render(body)

	return lipgloss.JoinHorizontal(lipgloss.Top, side, main)
}

func (s *ShellScreen) statusLine(width int) string {
	left := theme.Subtitle.Render(fmt.Sprintf("%.0f%% scrolled", s.vp.ScrollPercent()*100))
	if s.onChecklist() {
		left = theme.Subtitle.Render(fmt.Sprintf("%d/%d checked  %d%%",
			s.sess.CheckedCount(), len(s.sess.ChecklistItems()), s.sess.CompletionPercent()))
	}
	if s.flash == "" {
		return left
	}
	flash := theme.Flash.Render(layout.Truncate(s.flash, max(width-lipgloss.Width(left)-3, 0)))
	return left + "   " + flash
}

// KeyHints lists the bindings for the current focus. Prev and Next are
// hidden at the ends of the course.
func (s *ShellScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if s.focus == focusSidebar {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Navigate"},
			layout.KeyHint{Key: "Enter", Description: "Open"},
		)
	} else if s.onChecklist() {
		hints = append(hints,
			layout.KeyHint{Key: "Space", Description: "Toggle"},
			layout.KeyHint{Key: "r", Description: "Reset"},
			layout.KeyHint{Key: "y", Description: "Copy template"},
		)
	} else {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Scroll"})
	}

	if !s.sess.IsFirst() {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Prev"})
	}
	if !s.sess.IsLast() {
		hints = append(hints, layout.KeyHint{Key: "→", Description: "Next"})
	}
	return append(hints,
		layout.KeyHint{Key: "Tab", Description: "Focus"},
		layout.KeyHint{Key: "?", Description: "Help"},
		layout.KeyHint{Key: "q", Description: "Quit"},
	)
}
