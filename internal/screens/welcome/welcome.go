package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edulanding/internal/router"
	"github.com/abhisek/edulanding/internal/screen"
	"github.com/abhisek/edulanding/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// A landing page in miniature: headline, copy, call to action.
const pageArt = `╭──────────────────────────╮
│ ● ● ●                    │
├──────────────────────────┤
│  ▬▬▬▬▬▬▬▬▬▬      ╭─────╮ │
│  ▬▬▬▬▬▬▬         │  ▶  │ │
│  ▬▬▬▬▬▬▬▬▬       ╰─────╯ │
│  [ Đăng Ký Ngay ]        │
╰──────────────────────────╯`

// cursor frames blink on the CTA line
var cursorFrames = []string{"◀", " "}

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing over to the course shell.
type WelcomeScreen struct {
	title        string
	subtitle     string
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with the screen produced
// by next on the first key press.
func New(title, subtitle string, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		title:    title,
		subtitle: subtitle,
		next:     next,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Secondary).Render(pageArt)

	// Phase 2+: blinking pointer at the CTA
	if w.elapsed >= phase1End {
		lines := strings.Split(rendered, "\n")
		if len(lines) > 6 {
			frame := cursorFrames[w.tickCount%len(cursorFrames)]
			lines[6] += " " + lipgloss.NewStyle().Foreground(theme.Accent).Render(frame)
		}
		rendered = strings.Join(lines, "\n")
	}
	sections = append(sections, rendered)

	// Phase 3+: banner, tagline and hint
	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(w.subtitle))
		if w.title != "" {
			sections = append(sections, theme.Subtitle.Render(w.title))
		}
		sections = append(sections, "", theme.Hint.Render("press any key to continue"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
