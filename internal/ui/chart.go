package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"benchdash/internal/perf"
)

// sparkRunes map a normalized sample to a block glyph, lowest to
// highest.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// renderChart draws one sparkline row per line mark, sharing a single
// y-scale, headed by the axis label. No marks renders an empty hint.
func renderChart(marks []perf.LineMark, axisLabel string, width int) string {
	if len(marks) == 0 {
		return axisStyle.Render("no series to plot")
	}

	lo, hi := bounds(marks)

	labelWidth := 0
	for _, m := range marks {
		if len(m.Label) > labelWidth {
			labelWidth = len(m.Label)
		}
	}

	sparkWidth := width - labelWidth - 16
	if sparkWidth < 8 {
		sparkWidth = 8
	}

	var b strings.Builder
	b.WriteString(axisStyle.Render(axisLabel))
	b.WriteString("\n")
	for _, m := range marks {
		color := lipgloss.NewStyle().Foreground(lipgloss.Color(m.Color))
		line := sparkline(m.Points, lo, hi, sparkWidth)
		last := ""
		if n := len(m.Points); n > 0 {
			last = fmt.Sprintf("%.4g", m.Points[n-1].Y)
		}
		fmt.Fprintf(&b, "%-*s %s %s\n", labelWidth, m.Label, color.Render(line), axisStyle.Render(last))
	}
	return strings.TrimRight(b.String(), "\n")
}

// sparkline resamples points into width glyphs normalized to [lo,hi].
func sparkline(points []perf.Point, lo, hi float64, width int) string {
	if len(points) == 0 {
		return strings.Repeat(" ", width)
	}
	if width > len(points) {
		width = len(points)
	}

	runes := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		// Nearest-sample resampling keeps ordering intact.
		idx := i * len(points) / width
		runes = append(runes, sparkRune(points[idx].Y, lo, hi))
	}
	return string(runes)
}

func sparkRune(y, lo, hi float64) rune {
	if hi <= lo {
		return sparkRunes[0]
	}
	norm := (y - lo) / (hi - lo)
	idx := int(norm * float64(len(sparkRunes)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sparkRunes) {
		idx = len(sparkRunes) - 1
	}
	return sparkRunes[idx]
}

// bounds finds the shared y-range across all marks.
func bounds(marks []perf.LineMark) (lo, hi float64) {
	first := true
	for _, m := range marks {
		for _, p := range m.Points {
			if first {
				lo, hi = p.Y, p.Y
				first = false
				continue
			}
			if p.Y < lo {
				lo = p.Y
			}
			if p.Y > hi {
				hi = p.Y
			}
		}
	}
	return lo, hi
}
