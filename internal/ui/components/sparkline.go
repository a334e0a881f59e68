package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adaptiq/internal/metrics"
	"github.com/abhisek/adaptiq/internal/ui/theme"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a percentage series as a compact one-line chart. It is
// a pure renderer: the series is replaced wholesale on every refresh and
// nothing is accumulated between calls.
type Sparkline struct {
	Series []metrics.Point
}

// View renders the sparkline with the final percentage appended.
func (s Sparkline) View() string {
	if len(s.Series) == 0 {
		return ""
	}

	var b strings.Builder
	for _, p := range s.Series {
		b.WriteRune(sparkRune(p.Percent))
	}

	last := s.Series[len(s.Series)-1].Percent
	chart := lipgloss.NewStyle().Foreground(theme.Secondary).Render(b.String())
	label := lipgloss.NewStyle().
		Foreground(theme.KnowledgeColor(last)).
		Bold(true).
		Render(fmt.Sprintf("%d%%", last))

	return chart + "  " + label
}

func sparkRune(percent int) rune {
	idx := percent * len(sparkRunes) / 101
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sparkRunes) {
		idx = len(sparkRunes) - 1
	}
	return sparkRunes[idx]
}
