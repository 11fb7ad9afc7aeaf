// Package content turns a curriculum section into terminal text. Each known
// section id maps to exactly one renderer; ids without a renderer fall back to
// the introduction.
package content

import (
	"io"
	"log/slog"
	"strings"

	"github.com/abhisek/edulanding/internal/curriculum"
	"github.com/abhisek/edulanding/internal/session"
	"github.com/abhisek/edulanding/internal/ui/components"
)

// Context carries the per-frame inputs a renderer needs besides the section.
type Context struct {
	Width   int
	Session *session.Session

	// Cursor is the flat index of the highlighted checklist item.
	Cursor int
	// Focused reports whether the content pane has keyboard focus.
	Focused bool
}

// Page is rendered section content.
type Page struct {
	Text string
	// FocusLine is the line that should be kept visible, or -1.
	FocusLine int
}

// Renderer renders one section.
type Renderer func(sel *Selector, sec curriculum.Section, ctx Context) Page

// Options configures a Selector.
type Options struct {
	// Style is a glamour standard style name ("dark", "light", "notty", ...).
	Style string
	// WordWrap caps the markdown wrap width; 0 means fit the pane.
	WordWrap int
	Logger   *slog.Logger
}

// Selector dispatches sections to their renderers.
type Selector struct {
	md        *markdown
	logger    *slog.Logger
	renderers map[curriculum.SectionID]Renderer
}

// New creates a Selector with the fixed section table.
func New(opts Options) *Selector {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Selector{
		md:     newMarkdown(opts.Style, opts.WordWrap),
		logger: logger,
		renderers: map[curriculum.SectionID]Renderer{
			curriculum.SectionIntro:     renderProse,
			curriculum.SectionTheory:    renderProse,
			curriculum.SectionDesign:    renderWireframe,
			curriculum.SectionMobile:    renderCharted,
			curriculum.SectionTesting:   renderCharted,
			curriculum.SectionVideo:     renderProse,
			curriculum.SectionTools:     renderProse,
			curriculum.SectionCases:     renderProse,
			curriculum.SectionRoadmap:   renderProse,
			curriculum.SectionChecklist: renderChecklist,
		},
	}
}

// Has reports whether id has a dedicated renderer.
func (s *Selector) Has(id curriculum.SectionID) bool {
	_, ok := s.renderers[id]
	return ok
}

// Render renders section id. Unknown ids render the introduction.
func (s *Selector) Render(id curriculum.SectionID, ctx Context) Page {
	cat := ctx.Session.Catalog()
	r, ok := s.renderers[id]
	sec, found := cat.Section(id)
	if !ok || !found {
		s.logger.Warn("no renderer for section, showing introduction", "section", id)
		r = s.renderers[curriculum.SectionIntro]
		sec, _ = cat.Section(curriculum.SectionIntro)
	}
	return r(s, sec, ctx)
}

// Markdown renders a markdown body at the given width, falling back to the
// raw text if glamour fails.
func (s *Selector) Markdown(key string, body string, width int) string {
	out, err := s.md.render(key, body, width)
	if err != nil {
		s.logger.Error("markdown render failed", "key", key, "error", err)
		return body
	}
	return out
}

func renderProse(sel *Selector, sec curriculum.Section, ctx Context) Page {
	return Page{Text: sel.Markdown(string(sec.ID), sec.Body, ctx.Width), FocusLine: -1}
}

func renderCharted(sel *Selector, sec curriculum.Section, ctx Context) Page {
	parts := []string{sel.Markdown(string(sec.ID), sec.Body, ctx.Width)}
	for _, c := range sec.Charts {
		parts = append(parts, indent(components.NewBarChart(c, ctx.Width-2).View(), 2))
	}
	return Page{Text: strings.Join(parts, "\n\n"), FocusLine: -1}
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}
