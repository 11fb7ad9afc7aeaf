package shell

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edulanding/internal/curriculum"
	"github.com/abhisek/edulanding/internal/router"
	"github.com/abhisek/edulanding/internal/screens/content"
	"github.com/abhisek/edulanding/internal/screens/help"
	"github.com/abhisek/edulanding/internal/session"
)

func newTestShell(t *testing.T) (*ShellScreen, *session.Session) {
	t.Helper()
	cat, err := curriculum.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	sess := session.New(cat, nil)
	return New(sess, content.New(content.Options{Style: "notty"})), sess
}

func press(s *ShellScreen, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = s.Update(k)
	}
	return cmd
}

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var (
	keyUp    = tea.KeyPressMsg{Code: tea.KeyUp}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyLeft  = tea.KeyPressMsg{Code: tea.KeyLeft}
	keyRight = tea.KeyPressMsg{Code: tea.KeyRight}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keySpace = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	keyTab   = tea.KeyPressMsg{Code: tea.KeyTab}
	keyPgDn  = tea.KeyPressMsg{Code: tea.KeyPgDown}
)

func TestInitialState(t *testing.T) {
	s, sess := newTestShell(t)

	if s.Title() != sess.Current().Title {
		t.Errorf("title = %q, want %q", s.Title(), sess.Current().Title)
	}
	if s.Status() != "1/10  10%" {
		t.Errorf("status = %q", s.Status())
	}
	if s.ProgressPercent() != 10 {
		t.Errorf("progress = %v, want 10", s.ProgressPercent())
	}
	if s.focus != focusSidebar {
		t.Error("sidebar should start focused")
	}
}

func TestArrowKeysAdvanceAndRetreat(t *testing.T) {
	s, sess := newTestShell(t)

	press(s, keyLeft)
	if sess.Index() != 0 {
		t.Errorf("retreat at first section should be a no-op, index %d", sess.Index())
	}

	press(s, keyRight, char('n'), keyRight, char('n'))
	if sess.Index() != 4 {
		t.Errorf("expected index 4, got %d", sess.Index())
	}
	if sess.ProgressPercent() != 50 {
		t.Errorf("expected 50%%, got %v", sess.ProgressPercent())
	}
	if s.sidebar.Active != 4 {
		t.Errorf("sidebar should follow the session, active %d", s.sidebar.Active)
	}

	press(s, char('p'))
	if sess.CurrentID() != curriculum.SectionMobile {
		t.Errorf("expected mobile after retreat, got %q", sess.CurrentID())
	}
}

func TestNumberKeysJump(t *testing.T) {
	s, sess := newTestShell(t)

	press(s, char('4'))
	if sess.CurrentID() != curriculum.SectionTesting {
		t.Errorf("'4' should open testing, got %q", sess.CurrentID())
	}
	press(s, char('0'))
	if sess.CurrentID() != curriculum.SectionChecklist {
		t.Errorf("'0' should open the checklist, got %q", sess.CurrentID())
	}
	press(s, char('1'))
	if sess.CurrentID() != curriculum.SectionIntro {
		t.Errorf("'1' should open intro, got %q", sess.CurrentID())
	}
}

func TestSidebarSelect(t *testing.T) {
	s, sess := newTestShell(t)

	press(s, keyDown, char('j'), keyDown, keyUp)
	if sess.Index() != 0 {
		t.Error("moving the cursor should not change the section")
	}
	press(s, keyEnter)
	if sess.CurrentID() != curriculum.SectionDesign {
		t.Errorf("expected design, got %q", sess.CurrentID())
	}
}

func TestChecklistInteraction(t *testing.T) {
	s, sess := newTestShell(t)
	press(s, char('0'), keyTab)
	if s.focus != focusContent {
		t.Fatal("tab should focus content")
	}

	press(s, keyDown, keyDown, keySpace)
	if !sess.Checked("c3") {
		t.Error("space should toggle the third item")
	}
	press(s, keyDown, keyDown, keyEnter)
	if !sess.Checked("d1") {
		t.Error("enter should toggle the fifth item")
	}
	if sess.CompletionPercent() != 17 {
		t.Errorf("expected 17%%, got %d", sess.CompletionPercent())
	}

	press(s, char('r'))
	if sess.CheckedCount() != 0 {
		t.Errorf("reset should clear all items, %d checked", sess.CheckedCount())
	}
	if s.flash != "Checklist reset" {
		t.Errorf("flash = %q", s.flash)
	}
}

func TestChecklistCursorBounds(t *testing.T) {
	s, sess := newTestShell(t)
	press(s, char('0'), keyTab, keyUp)
	if s.cursor != 0 {
		t.Errorf("cursor should stay at 0, got %d", s.cursor)
	}
	for i := 0; i < 20; i++ {
		press(s, keyDown)
	}
	if s.cursor != len(sess.ChecklistItems())-1 {
		t.Errorf("cursor should stop at the last item, got %d", s.cursor)
	}
}

func TestChecklistSurvivesNavigation(t *testing.T) {
	s, sess := newTestShell(t)
	press(s, char('0'), keyTab, keySpace)
	press(s, char('1'), char('0'))
	if !sess.Checked("c1") {
		t.Error("checklist state should survive navigation")
	}
	if s.cursor != 0 {
		t.Error("section change should reset the item cursor")
	}
}

func TestCopyTemplate(t *testing.T) {
	s, sess := newTestShell(t)
	var copied string
	s.copyFn = func(text string) error {
		copied = text
		return nil
	}

	press(s, char('0'), keyTab, char('y'))
	if copied != sess.Catalog().ChecklistTemplate() {
		t.Errorf("copied %q", copied)
	}
	if s.flash != "Template copied to clipboard" {
		t.Errorf("flash = %q", s.flash)
	}

	s.copyFn = func(string) error { return errors.New("no xclip") }
	press(s, char('y'))
	if !strings.Contains(s.flash, "no xclip") {
		t.Errorf("flash should report the clipboard error, got %q", s.flash)
	}
}

func TestCopyOnlyOnChecklist(t *testing.T) {
	s, _ := newTestShell(t)
	called := false
	s.copyFn = func(string) error {
		called = true
		return nil
	}
	press(s, keyTab, char('y'))
	if called {
		t.Error("y outside the checklist should do nothing")
	}
}

func TestHelpPushesOverlay(t *testing.T) {
	s, _ := newTestShell(t)
	cmd := press(s, char('?'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*help.HelpScreen); !ok {
		t.Errorf("expected help screen, got %T", push.Screen)
	}
}

func TestQuit(t *testing.T) {
	s, _ := newTestShell(t)
	cmd := press(s, char('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestKeyHintsAtBoundaries(t *testing.T) {
	s, _ := newTestShell(t)

	has := func(desc string) bool {
		for _, h := range s.KeyHints() {
			if h.Description == desc {
				return true
			}
		}
		return false
	}

	if has("Prev") || !has("Next") {
		t.Error("first section: Prev hidden, Next shown")
	}
	press(s, char('5'))
	if !has("Prev") || !has("Next") {
		t.Error("middle section: Prev and Next shown")
	}
	press(s, char('0'))
	if !has("Prev") || has("Next") {
		t.Error("last section: Prev shown, Next hidden")
	}

	press(s, keyTab)
	if !has("Toggle") || !has("Copy template") {
		t.Error("focused checklist should advertise its keys")
	}
}

func TestViewRendersSidebarAndContent(t *testing.T) {
	s, sess := newTestShell(t)
	view := s.View(110, 20)

	for _, sec := range sess.Catalog().Sections()[:3] {
		if !strings.Contains(view, sec.Title) {
			t.Errorf("sidebar missing %q", sec.Title)
		}
	}
	if !strings.Contains(view, "scrolled") {
		t.Error("expected status row")
	}
}

func TestSectionChangeScrollsToTop(t *testing.T) {
	s, _ := newTestShell(t)
	press(s, char('3'))
	s.View(110, 20)

	press(s, keyPgDn)
	if s.vp.YOffset() == 0 {
		t.Fatal("page down should scroll long content")
	}

	press(s, keyRight)
	s.View(110, 20)
	if s.vp.YOffset() != 0 {
		t.Errorf("section change should reset scroll, offset %d", s.vp.YOffset())
	}
}

func TestJumpIndex(t *testing.T) {
	tests := []struct {
		key  string
		want int
		ok   bool
	}{
		{"1", 0, true},
		{"9", 8, true},
		{"0", 9, true},
		{"a", 0, false},
		{"10", 0, false},
		{"+", 0, false},
	}
	for _, tt := range tests {
		got, ok := jumpIndex(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("jumpIndex(%q) = %d, %v; want %d, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}
