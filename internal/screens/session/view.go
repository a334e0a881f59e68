package session

import (
	"fmt"
	"math"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adaptiq/internal/api"
	"github.com/abhisek/adaptiq/internal/quiz"
	"github.com/abhisek/adaptiq/internal/ui/components"
	"github.com/abhisek/adaptiq/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, s.progressLine(), "")

	switch {
	case s.loading && s.ctrl.Question() == nil:
		sections = append(sections, theme.Hint.Render(s.spin.View()+" Fetching question..."))
	case s.ctrl.Question() != nil:
		sections = append(sections, s.questionView()...)
	}

	if s.feedback != nil {
		sections = append(sections, "", s.feedbackView())
	}

	if s.errMsg != "" {
		sections = append(sections, "",
			theme.Incorrect.Render("✗ "+s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// progressLine shows the answered-question dots plus the mode-specific
// tracker: a live knowledge estimate in BKT mode, nothing in LLM mode.
func (s *SessionScreen) progressLine() string {
	sess := s.ctrl.Session()
	dots := components.ProgressDots{Total: quiz.SessionLength, Filled: sess.Answered}

	line := dots.View()
	if s.mode() == api.ModeBKT && s.knowledge != nil {
		percent := int(math.Round(*s.knowledge * 100))
		line += "   " + lipgloss.NewStyle().
			Foreground(theme.KnowledgeColor(percent)).
			Bold(true).
			Render(fmt.Sprintf("knowledge %d%%", percent))
	}
	return line
}

func (s *SessionScreen) questionView() []string {
	q := s.ctrl.Question()
	sections := []string{
		theme.Body.Bold(true).Render(q.Text),
		"",
		s.options.View(),
	}

	if s.mode() == api.ModeLLM && s.reasoning != "" {
		sections = append(sections,
			theme.Hint.Render("Why this question: "+s.reasoning))
	}

	if s.loading {
		sections = append(sections,
			theme.Hint.Render(s.spin.View()+" Checking..."))
	}

	return sections
}

func (s *SessionScreen) feedbackView() string {
	var lines []string

	if s.feedback.Correct {
		lines = append(lines, theme.Correct.Render("✓ Correct!"))
	} else {
		lines = append(lines,
			theme.Incorrect.Render("✗ Not quite"),
			theme.Body.Render("The answer was: "+s.feedback.CorrectAnswer))
	}

	if s.feedback.Feedback != "" {
		lines = append(lines, theme.Hint.Render(s.feedback.Feedback))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
