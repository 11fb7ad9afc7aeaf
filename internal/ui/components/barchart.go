package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/abhisek/edulanding/internal/curriculum"
	"github.com/abhisek/edulanding/internal/ui/theme"
)

// BarChart renders a curriculum chart as horizontal bars, one row per label
// and series. Each series is scaled to its own maximum so mixed units (an
// uplift percentage next to an effort score) stay readable side by side.
type BarChart struct {
	Chart curriculum.Chart
	Width int
}

// NewBarChart creates a chart renderer for the given outer width.
func NewBarChart(c curriculum.Chart, width int) BarChart {
	return BarChart{Chart: c, Width: width}
}

// BarLen returns the number of cells for value v when max fills barWidth.
func BarLen(v, maxV float64, barWidth int) int {
	if maxV <= 0 || v <= 0 || barWidth <= 0 {
		return 0
	}
	n := int(v/maxV*float64(barWidth) + 0.5)
	return max(1, min(n, barWidth))
}

// View renders the chart.
func (c BarChart) View() string {
	ch := c.Chart
	if len(ch.Series) == 0 {
		return ""
	}

	labelWidth := 0
	for _, p := range ch.Series[0].Points {
		labelWidth = max(labelWidth, runewidth.StringWidth(p.Label))
	}
	labelWidth = min(labelWidth, c.Width/3)

	valueWidth := 0
	for _, s := range ch.Series {
		for _, p := range s.Points {
			valueWidth = max(valueWidth, len(formatValue(p.Value, ch.Unit)))
		}
	}
	barWidth := max(c.Width-labelWidth-valueWidth-3, 4)

	maxes := make([]float64, len(ch.Series))
	for i, s := range ch.Series {
		for _, p := range s.Points {
			maxes[i] = max(maxes[i], p.Value)
		}
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(ch.Title))
	b.WriteString("\n")

	for pi, p := range ch.Series[0].Points {
		for si, s := range ch.Series {
			label := ""
			if si == 0 {
				label = runewidth.Truncate(p.Label, labelWidth, "…")
			}
			label = runewidth.FillRight(label, labelWidth)

			v := s.Points[pi].Value
			n := BarLen(v, maxes[si], barWidth)
			style := theme.SeriesColors[si%len(theme.SeriesColors)]
			bar := style.Render(strings.Repeat("█", n)) + strings.Repeat(" ", barWidth-n)

			fmt.Fprintf(&b, "%s %s %s\n", theme.Body.Render(label), bar,
				theme.Subtitle.Render(formatValue(v, ch.Unit)))
		}
	}

	if len(ch.Series) > 1 {
		legend := make([]string, 0, len(ch.Series))
		for si, s := range ch.Series {
			style := theme.SeriesColors[si%len(theme.SeriesColors)]
			legend = append(legend, style.Render("█")+" "+s.Name)
		}
		b.WriteString(strings.Join(legend, "   "))
		b.WriteString("\n")
	}
	if ch.Note != "" {
		b.WriteString(theme.Hint.Render(ch.Note))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatValue(v float64, unit string) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return s + unit
}
