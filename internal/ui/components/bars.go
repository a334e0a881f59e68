package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adaptiq/internal/metrics"
	"github.com/abhisek/adaptiq/internal/ui/theme"
)

const barMaxHeight = 5

// BarChart renders difficulty bars as vertical columns with their 0-9 scale
// labels underneath. Heights are taken as-is; an out-of-range bar simply
// draws wrong, matching the degrade-don't-fail contract of the metrics
// engine.
type BarChart struct {
	Bars []metrics.Bar
}

// View renders the chart.
func (c BarChart) View() string {
	if len(c.Bars) == 0 {
		return theme.Hint.Render("no difficulty data")
	}

	heights := make([]int, len(c.Bars))
	for i, bar := range c.Bars {
		heights[i] = int(bar.Height * barMaxHeight)
	}

	var b strings.Builder
	for row := barMaxHeight; row >= 1; row-- {
		for i := range c.Bars {
			if heights[i] >= row {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("█ "))
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	for _, bar := range c.Bars {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d ", bar.Label)))
	}

	return b.String()
}
