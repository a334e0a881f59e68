package session

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adaptiq/internal/api"
	"github.com/abhisek/adaptiq/internal/quiz"
	"github.com/abhisek/adaptiq/internal/router"
	"github.com/abhisek/adaptiq/internal/screen"
	"github.com/abhisek/adaptiq/internal/screens/results"
	"github.com/abhisek/adaptiq/internal/store"
	"github.com/abhisek/adaptiq/internal/ui/components"
	"github.com/abhisek/adaptiq/internal/ui/layout"
	"github.com/abhisek/adaptiq/internal/ui/theme"
)

// SessionScreen is the presentation adapter for the active quiz flow. All
// session decisions live in the quiz.Controller; this screen only turns
// user intents into controller calls and controller results into views.
type SessionScreen struct {
	ctrl    *quiz.Controller
	client  *api.Client
	st      *store.Store
	restart func() screen.Screen

	attemptID string
	options   components.OptionList
	spin      spinner.Model
	loading   bool
	errMsg    string

	feedback  *api.AnswerResult
	knowledge *float64 // latest BKT estimate, nil in LLM mode
	reasoning string   // LLM selection reasoning for the current question
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates the session screen for an already-started session.
func New(ctrl *quiz.Controller, client *api.Client, st *store.Store, restart func() screen.Screen) *SessionScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hint

	return &SessionScreen{
		ctrl:    ctrl,
		client:  client,
		st:      st,
		restart: restart,
		spin:    sp,
		loading: true,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.beginAttempt(),
		s.loadQuestion(),
		s.spin.Tick,
	)
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

// Status renders the header's right-hand side: mode and running score.
func (s *SessionScreen) Status() string {
	sess := s.ctrl.Session()
	if sess == nil {
		return ""
	}
	return fmt.Sprintf("%s  %d/%d", sess.Mode, sess.Correct, sess.Answered)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "any key", Description: "Dismiss"},
			{Key: "R", Description: "Restart"},
		}
	}
	if s.feedback != nil {
		advance := "Next question"
		if s.ctrl.NextAction() == quiz.AdvanceShowResults {
			advance = "View results"
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: advance},
			{Key: "R", Description: "Restart"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Answer"},
		{Key: "R", Description: "Restart"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptStartedMsg:
		s.attemptID = msg.ID
		return s, nil

	case questionMsg:
		return s.handleQuestion(msg)

	case answerMsg:
		return s.handleAnswer(msg)

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *SessionScreen) handleQuestion(msg questionMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		// Fetch failures are surfaced and not retried; the previous
		// view state stays as it was.
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.feedback = nil
	s.options = components.NewOptionList(msg.Result.Question.Options)

	if s.mode() == api.ModeBKT && msg.Result.CurrentKnowledge != nil {
		s.knowledge = msg.Result.CurrentKnowledge
	}
	if s.mode() == api.ModeLLM && msg.Result.SelectionReasoning != "" {
		s.reasoning = msg.Result.SelectionReasoning
	}

	return s, nil
}

func (s *SessionScreen) handleAnswer(msg answerMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		// Recoverable: re-enable the options so the same selection can
		// be retried.
		s.options.Disabled = false
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.feedback = msg.Result
	s.options.Resolve(msg.Option, msg.Result.CorrectAnswer)

	if s.mode() == api.ModeBKT && msg.Result.CurrentKnowledge != nil {
		s.knowledge = msg.Result.CurrentKnowledge
	}

	if s.attemptID != "" {
		sess := s.ctrl.Session()
		_ = s.st.RecordAnswer(context.Background(), s.attemptID, store.AnswerRecord{
			Position:   sess.Answered,
			QuestionID: msg.QuestionID,
			Answer:     msg.Option,
			Correct:    msg.Result.Correct,
		})
	}

	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "r" || key == "R" {
		return s.doRestart()
	}

	if s.errMsg != "" {
		s.errMsg = ""
		return s, nil
	}

	if s.loading {
		return s, nil
	}

	// Feedback showing: Enter performs the advance action selected by the
	// last submission.
	if s.feedback != nil {
		if key == "enter" {
			return s.advance()
		}
		return s, nil
	}

	// Active question.
	if s.ctrl.Phase() == quiz.PhaseQuestionActive {
		switch key {
		case "enter":
			return s.submit()
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			idx := int(key[0] - '1')
			if idx < len(s.options.Options) {
				s.options.Selected = idx
				return s.submit()
			}
			return s, nil
		}

		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submit disables the option controls and sends the selection for scoring.
// The disabled controls are the concurrency guard: no second submission can
// start until this one resolves.
func (s *SessionScreen) submit() (screen.Screen, tea.Cmd) {
	option := s.options.Value()
	if option == "" {
		return s, nil
	}

	s.options.Disabled = true
	s.loading = true

	ctrl := s.ctrl
	questionID := ctrl.Question().ID
	return s, tea.Batch(
		func() tea.Msg {
			result, err := ctrl.SelectAnswer(context.Background(), option)
			return answerMsg{Result: result, QuestionID: questionID, Option: option, Err: err}
		},
		s.spin.Tick,
	)
}

// advance moves past the feedback view, either to the next question or to
// the results screen.
func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	if s.ctrl.NextAction() == quiz.AdvanceShowResults {
		if err := s.ctrl.Complete(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		if s.attemptID != "" {
			_ = s.st.CompleteAttempt(context.Background(), s.attemptID, s.knowledge)
		}
		next := results.New(s.ctrl.Session(), s.knowledge, s.client, s.restart)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}

	s.loading = true
	return s, tea.Batch(s.loadQuestion(), s.spin.Tick)
}

// doRestart discards the session client-side and returns to mode selection.
func (s *SessionScreen) doRestart() (screen.Screen, tea.Cmd) {
	s.ctrl.Restart()
	next := s.restart()
	return s, func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
}

// loadQuestion fetches the next question asynchronously.
func (s *SessionScreen) loadQuestion() tea.Cmd {
	ctrl := s.ctrl
	return func() tea.Msg {
		result, err := ctrl.LoadNextQuestion(context.Background())
		return questionMsg{Result: result, Err: err}
	}
}

// beginAttempt opens the local attempt log row.
func (s *SessionScreen) beginAttempt() tea.Cmd {
	sess := s.ctrl.Session()
	st := s.st
	return func() tea.Msg {
		id, err := st.BeginAttempt(context.Background(), sess.ID, string(sess.Mode))
		if err != nil {
			return attemptStartedMsg{}
		}
		return attemptStartedMsg{ID: id}
	}
}

func (s *SessionScreen) mode() api.Mode {
	sess := s.ctrl.Session()
	if sess == nil {
		return ""
	}
	return sess.Mode
}
