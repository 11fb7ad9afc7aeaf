package content

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edulanding/internal/checklist"
	"github.com/abhisek/edulanding/internal/curriculum"
	"github.com/abhisek/edulanding/internal/session"
	"github.com/abhisek/edulanding/internal/ui/components"
	"github.com/abhisek/edulanding/internal/ui/theme"
)

// FlatItems returns checklist items in display order, which is category
// order and then authored order within each category.
func FlatItems(groups []checklist.Group) []checklist.Item {
	var out []checklist.Item
	for _, g := range groups {
		out = append(out, g.Items...)
	}
	return out
}

func renderChecklist(sel *Selector, sec curriculum.Section, ctx Context) Page {
	head := sel.Markdown(string(sec.ID), sec.Body, ctx.Width)
	list, cursorLine := checklistView(ctx.Session, ctx.Cursor, ctx.Focused, ctx.Width-2)
	tmpl := templateView(ctx.Session.Catalog(), ctx.Width-2)

	focus := -1
	if ctx.Focused {
		focus = lipgloss.Height(head) + 1 + cursorLine
	}
	return Page{
		Text:      head + "\n\n" + indent(list, 2) + "\n\n" + indent(tmpl, 2),
		FocusLine: focus,
	}
}

// checklistView renders the progress bar and grouped items. It also returns
// the line index of the cursor row within the output.
func checklistView(s *session.Session, cursor int, focused bool, width int) (string, int) {
	var lines []string
	bar := components.NewProgressBar("Tiến độ kiểm tra", float64(s.CompletionPercent()), true, width)
	lines = append(lines, bar.View(), "")

	cursorLine := 0
	flat := 0
	for gi, g := range s.ByCategory() {
		if gi > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, theme.Title.Render(g.Category))
		for _, it := range g.Items {
			marker := "  "
			if focused && flat == cursor {
				marker = theme.Cursor.Render("▸ ")
				cursorLine = len(lines)
			}

			box := "[ ] "
			text := theme.Body.Render(it.Text)
			if s.Checked(it.ID) {
				box = theme.Check.Render("[✓] ")
				text = theme.Done.Render(it.Text)
			}
			lines = append(lines, marker+box+text)
			flat++
		}
	}
	return strings.Join(lines, "\n"), cursorLine
}

func templateView(cat *curriculum.Catalog, width int) string {
	body := theme.Title.Render("A/B Test Template") + "\n\n" + theme.Body.Render(cat.ChecklistTemplate())
	card := theme.Card.Width(min(width, 90)).Render(body)

	hint := cat.ChecklistTemplateHint()
	if hint != "" {
		hint += "  "
	}
	return card + "\n" + theme.Hint.Render(hint+"(y: copy to clipboard)")
}
