package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

type cacheKey struct {
	key   string
	width int
}

// markdown renders and caches glamour output. Building a TermRenderer parses
// a full style sheet, so one is kept per wrap width.
type markdown struct {
	style     string
	wrap      int
	renderers map[int]*glamour.TermRenderer
	cache     map[cacheKey]string
}

func newMarkdown(style string, wrap int) *markdown {
	if style == "" {
		style = "dark"
	}
	return &markdown{
		style:     style,
		wrap:      wrap,
		renderers: make(map[int]*glamour.TermRenderer),
		cache:     make(map[cacheKey]string),
	}
}

func (m *markdown) wrapWidth(width int) int {
	if m.wrap > 0 && m.wrap < width {
		return m.wrap
	}
	return max(width, 20)
}

func (m *markdown) render(key, body string, width int) (string, error) {
	w := m.wrapWidth(width)
	ck := cacheKey{key: key, width: w}
	if out, ok := m.cache[ck]; ok {
		return out, nil
	}

	r, ok := m.renderers[w]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.style),
			glamour.WithWordWrap(w),
		)
		if err != nil {
			return "", fmt.Errorf("create markdown renderer: %w", err)
		}
		m.renderers[w] = r
	}

	out, err := r.Render(body)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	out = strings.Trim(out, "\n")
	m.cache[ck] = out
	return out, nil
}
