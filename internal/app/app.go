// Package app wires the session, screens and router into the Bubble Tea
// program.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edulanding/internal/config"
	"github.com/abhisek/edulanding/internal/curriculum"
	"github.com/abhisek/edulanding/internal/router"
	"github.com/abhisek/edulanding/internal/screen"
	"github.com/abhisek/edulanding/internal/screens/content"
	"github.com/abhisek/edulanding/internal/screens/shell"
	"github.com/abhisek/edulanding/internal/screens/welcome"
	"github.com/abhisek/edulanding/internal/session"
	"github.com/abhisek/edulanding/internal/ui/components"
	"github.com/abhisek/edulanding/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Config  config.Config
	Catalog *curriculum.Catalog
	Logger  *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *session.Session
	width   int
	height  int
}

// newAppModel builds the session and the first screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	sess := session.New(opts.Catalog, logger)
	sel := content.New(content.Options{
		Style:    opts.Config.UI.MarkdownStyle,
		WordWrap: opts.Config.UI.WordWrap,
		Logger:   logger,
	})
	shellFactory := func() screen.Screen { return shell.New(sess, sel) }

	var first screen.Screen
	if opts.Config.UI.SkipWelcome {
		first = shellFactory()
	} else {
		first = welcome.New(opts.Catalog.Edition, opts.Catalog.Subtitle, shellFactory)
	}

	logger.Info("session started", "session", sess.ID, "sections", sess.SectionCount(),
		"skip_welcome", opts.Config.UI.SkipWelcome)

	return AppModel{
		router:  router.New(first),
		session: sess,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	v.SetContent(m.frame(active))
	return v
}

// frame renders header, optional progress bar, the active screen and footer.
func (m AppModel) frame(active screen.Screen) string {
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}
	header := layout.RenderHeader(title, status, m.width)

	if pp, ok := active.(screen.ProgressProvider); ok {
		header += "\n" + components.NewProgressBar("", pp.ProgressPercent(), false, m.width).View()
	}

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Catalog == nil {
		return fmt.Errorf("run: no curriculum catalog")
	}
	m := newAppModel(opts)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	if opts.Logger != nil {
		opts.Logger.Info("session ended", "session", m.session.ID,
			"section", m.session.CurrentID(), "checklist_percent", m.session.CompletionPercent())
	}
	return nil
}
