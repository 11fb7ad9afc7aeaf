package content

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edulanding/internal/curriculum"
	"github.com/abhisek/edulanding/internal/session"
)

func newTestContext(t *testing.T) Context {
	t.Helper()
	cat, err := curriculum.Default()
	require.NoError(t, err)
	return Context{Width: 100, Session: session.New(cat, nil)}
}

func newTestSelector() *Selector {
	return New(Options{Style: "notty"})
}

func TestEverySectionHasRenderer(t *testing.T) {
	sel := newTestSelector()
	for _, id := range curriculum.AllSectionIDs() {
		assert.True(t, sel.Has(id), "missing renderer for %q", id)
	}
	assert.False(t, sel.Has("pricing"))
}

func TestRender_UnknownFallsBackToIntro(t *testing.T) {
	var logs bytes.Buffer
	sel := New(Options{Style: "notty", Logger: slog.New(slog.NewTextHandler(&logs, nil))})
	ctx := newTestContext(t)

	intro := sel.Render(curriculum.SectionIntro, ctx)
	unknown := sel.Render("pricing", ctx)

	assert.Equal(t, intro.Text, unknown.Text)
	assert.Contains(t, logs.String(), "no renderer for section")
}

func TestRender_ProseContainsHeading(t *testing.T) {
	sel := newTestSelector()
	ctx := newTestContext(t)

	for _, sec := range ctx.Session.Catalog().Sections() {
		page := sel.Render(sec.ID, ctx)
		assert.NotEmpty(t, page.Text, sec.ID)
	}

	page := sel.Render(curriculum.SectionVideo, ctx)
	assert.Contains(t, page.Text, "Video")
	assert.Equal(t, -1, page.FocusLine)
}

func TestRender_MobileChart(t *testing.T) {
	page := newTestSelector().Render(curriculum.SectionMobile, newTestContext(t))
	for _, want := range []string{"Desktop Conv.", "Mobile Conv.", "3.7%", "3.3%"} {
		assert.Contains(t, page.Text, want)
	}
}

func TestRender_TestingChartHasBothSeries(t *testing.T) {
	page := newTestSelector().Render(curriculum.SectionTesting, newTestContext(t))
	assert.Contains(t, page.Text, "Uplift")
	assert.Contains(t, page.Text, "Headline")
	assert.Contains(t, page.Text, "50")
	assert.Contains(t, page.Text, "Nỗ lực")
}

func TestRender_DesignWireframe(t *testing.T) {
	page := newTestSelector().Render(curriculum.SectionDesign, newTestContext(t))
	assert.Contains(t, page.Text, "Wireframe Hero Section")
	assert.Contains(t, page.Text, "CTA: Đăng Ký Ngay")
}

func TestRender_Checklist(t *testing.T) {
	sel := newTestSelector()
	ctx := newTestContext(t)
	for _, id := range []string{"c1", "d1", "t1"} {
		require.True(t, ctx.Session.Toggle(id))
	}

	page := sel.Render(curriculum.SectionChecklist, ctx)
	for _, want := range []string{"Copy & Content", "Design & UX", "Technical", "25%", "Test #", "[✓]"} {
		assert.Contains(t, page.Text, want)
	}
	assert.Equal(t, 3, strings.Count(page.Text, "[✓]"))
	assert.Equal(t, -1, page.FocusLine)
	assert.NotContains(t, page.Text, "▸")
}

func TestRender_ChecklistFocusLineFollowsCursor(t *testing.T) {
	sel := newTestSelector()
	ctx := newTestContext(t)
	ctx.Focused = true

	ctx.Cursor = 0
	first := sel.Render(curriculum.SectionChecklist, ctx)
	ctx.Cursor = 5
	later := sel.Render(curriculum.SectionChecklist, ctx)

	require.GreaterOrEqual(t, first.FocusLine, 0)
	assert.Greater(t, later.FocusLine, first.FocusLine)

	lines := strings.Split(later.Text, "\n")
	require.Less(t, later.FocusLine, len(lines))
	assert.Contains(t, lines[later.FocusLine], "▸")
}

func TestFlatItems_DisplayOrder(t *testing.T) {
	ctx := newTestContext(t)
	var ids []string
	for _, it := range FlatItems(ctx.Session.ByCategory()) {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"c1", "c2", "c3", "c4", "d1", "d2", "d3", "d4", "t1", "t2", "t3", "t4"}, ids)
}

func TestMarkdown_WrapWidth(t *testing.T) {
	tests := []struct {
		wrap, width, want int
	}{
		{0, 100, 100},
		{60, 100, 60},
		{120, 100, 100},
		{0, 5, 20},
	}
	for _, tt := range tests {
		m := newMarkdown("notty", tt.wrap)
		assert.Equal(t, tt.want, m.wrapWidth(tt.width), "wrap=%d width=%d", tt.wrap, tt.width)
	}
}

func TestMarkdown_Caches(t *testing.T) {
	m := newMarkdown("notty", 0)
	a, err := m.render("k", "# Hello\n\nworld", 60)
	require.NoError(t, err)
	b, err := m.render("k", "ignored because cached", 60)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Contains(t, a, "Hello")
	assert.Len(t, m.cache, 1)
	assert.Len(t, m.renderers, 1)
}

func TestMarkdown_BadStyleFallsBackToRaw(t *testing.T) {
	var logs bytes.Buffer
	sel := New(Options{Style: "neon", Logger: slog.New(slog.NewTextHandler(&logs, nil))})

	out := sel.Markdown("k", "# raw body", 60)
	assert.Equal(t, "# raw body", out)
	assert.Contains(t, logs.String(), "markdown render failed")
}
