package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adaptiq/internal/api"
	"github.com/abhisek/adaptiq/internal/metrics"
	"github.com/abhisek/adaptiq/internal/ui/components"
	"github.com/abhisek/adaptiq/internal/ui/theme"
)

var labelStyle = lipgloss.NewStyle().Foreground(theme.TextDim).Width(16)

func (r *ResultsScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Width(width).Render("Session Complete"),
		theme.Subtitle.Width(width).Render(fmt.Sprintf("%d of %d correct", r.sess.Correct, r.sess.Answered)),
		"",
	)

	switch {
	case r.loading:
		sections = append(sections,
			theme.Hint.Width(width).Align(lipgloss.Center).Render(r.spinner.View()+" Loading metrics..."))
	case r.snapshot != nil:
		sections = append(sections,
			lipgloss.PlaceHorizontal(width, lipgloss.Center, r.dashboard()))
	case r.errMsg != "":
		sections = append(sections,
			theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Metrics unavailable: "+r.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// dashboard renders the metrics snapshot. Every value is derived fresh from
// the snapshot; nothing is carried over from the session screen.
func (r *ResultsScreen) dashboard() string {
	snap := r.snapshot
	var rows []string

	spark := components.Sparkline{Series: metrics.KnowledgeSeries(snap.KnowledgeHistory)}
	rows = append(rows, labelStyle.Render("Knowledge")+spark.View(), "")

	acc := metrics.ComputeAccuracy(snap.AnswerHistory)
	rows = append(rows,
		labelStyle.Render("Accuracy")+theme.Body.Render(fmt.Sprintf("%s (%d%%)", acc.Ratio(), acc.Percent)))

	streak := metrics.ComputeStreak(snap.AnswerHistory)
	rows = append(rows, labelStyle.Render("Streak")+theme.Body.Render(streak.Label()))

	rows = append(rows, labelStyle.Render("Recent")+r.recentGlyphs(snap.AnswerHistory), "")

	if len(snap.DifficultyHistory) > 0 {
		bars := components.BarChart{Bars: metrics.DifficultyBars(snap.DifficultyHistory)}
		rows = append(rows, labelStyle.Render("Difficulty"), bars.View())
	}

	switch snap.Mode {
	case string(api.ModeBKT):
		if snap.Parameters != nil {
			rows = append(rows, "", r.parametersView(snap.Parameters))
		}
	case string(api.ModeLLM):
		if snap.UserModel != nil {
			rows = append(rows, "", r.userModelView(snap.UserModel))
		}
		rows = append(rows, "",
			labelStyle.Render("Comparison"),
			theme.Hint.Render(metrics.BuildComparisonInsight(snap.CurrentKnowledge, snap.UserModel)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *ResultsScreen) recentGlyphs(history []bool) string {
	recent := metrics.RecentAnswers(history, metrics.RecentWindow)
	if len(recent) == 0 {
		return theme.Hint.Render("-")
	}

	var b strings.Builder
	for _, ok := range recent {
		if ok {
			b.WriteString(theme.Correct.Render(metrics.PassFailGlyph(true)) + " ")
		} else {
			b.WriteString(theme.Incorrect.Render(metrics.PassFailGlyph(false)) + " ")
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func (r *ResultsScreen) parametersView(p *api.Parameters) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("BKT parameters"),
		theme.Hint.Render(fmt.Sprintf("  prior %.2f  learn %.2f  slip %.2f  guess %.2f", p.L0, p.T, p.S, p.G)),
	)
}

func (r *ResultsScreen) userModelView(um *api.UserModel) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("User model"),
		theme.Hint.Render(fmt.Sprintf("  knowledge %.0f%%  confidence %.2f", um.KnowledgeLevel*100, um.Confidence)),
		theme.Hint.Render(fmt.Sprintf("  learning rate %.2f  consistency %.2f  tolerance %.2f",
			um.LearningRate, um.PatternConsistency, um.DifficultyTolerance)),
	)
}
