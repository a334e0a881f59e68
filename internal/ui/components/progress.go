package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adaptiq/internal/ui/theme"
)

// ProgressDots renders a fixed-slot progress indicator: one dot per
// question, filled as answers are submitted.
type ProgressDots struct {
	Total  int
	Filled int
}

// View renders the dots.
func (p ProgressDots) View() string {
	filled := p.Filled
	if filled > p.Total {
		filled = p.Total
	}
	if filled < 0 {
		filled = 0
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("● ", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("○ ", p.Total-filled)))
	return strings.TrimRight(b.String(), " ")
}
