package content

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edulanding/internal/curriculum"
	"github.com/abhisek/edulanding/internal/ui/theme"
)

func renderWireframe(sel *Selector, sec curriculum.Section, ctx Context) Page {
	body := sel.Markdown(string(sec.ID), sec.Body, ctx.Width)
	return Page{Text: body + "\n\n" + indent(heroWireframe(ctx.Width-2), 2), FocusLine: -1}
}

// heroWireframe sketches an above-the-fold hero: copy and CTA on the left,
// the media slot on the right.
func heroWireframe(width int) string {
	width = min(width, 80)
	colWidth := max((width-7)/2, 12)

	bar := func(frac float64, s lipgloss.Style) string {
		return s.Render(strings.Repeat("▬", max(1, int(float64(colWidth)*frac))))
	}
	dim := lipgloss.NewStyle().Foreground(theme.Border)
	strong := lipgloss.NewStyle().Foreground(theme.Text)

	left := strings.Join([]string{
		bar(0.33, dim),
		bar(1, strong),
		bar(1, dim),
		bar(0.66, dim),
		"",
		lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(theme.BgDark).
			Bold(true).
			Padding(0, 1).
			Render("CTA: Đăng Ký Ngay"),
	}, "\n")

	right := lipgloss.NewStyle().
		Width(colWidth).
		Height(8).
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Image/Video\n(80% giá trị)")

	row := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Width(colWidth).Render(left), "   ", right)

	caption := theme.Hint.Render("Wireframe Hero Section")
	return caption + "\n" + theme.Card.Render(row)
}
