package start

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/adaptiq/internal/api"
	"github.com/abhisek/adaptiq/internal/quiz"
	"github.com/abhisek/adaptiq/internal/router"
	"github.com/abhisek/adaptiq/internal/screen"
	"github.com/abhisek/adaptiq/internal/screens/session"
	"github.com/abhisek/adaptiq/internal/store"
	"github.com/abhisek/adaptiq/internal/ui/components"
	"github.com/abhisek/adaptiq/internal/ui/layout"
	"github.com/abhisek/adaptiq/internal/ui/theme"
)

// sessionStartedMsg is sent when the start-session call resolves.
type sessionStartedMsg struct {
	Mode api.Mode
	Err  error
}

// StartScreen lets the user pick an instructional mode and starts a session.
type StartScreen struct {
	client   *api.Client
	st       *store.Store
	ctrl     *quiz.Controller
	menu     components.Menu
	starting bool
	errMsg   string
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates the mode-selection screen.
func New(client *api.Client, st *store.Store) *StartScreen {
	s := &StartScreen{
		client: client,
		st:     st,
		ctrl:   quiz.NewController(client),
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{
			Label:       "Knowledge Tracing (BKT)",
			Description: "Probabilistic mastery tracking with live knowledge estimates",
			Action:      func() tea.Cmd { return s.startSession(api.ModeBKT) },
		},
		{
			Label:       "AI Tutor (LLM)",
			Description: "Generative model picks questions and explains its reasoning",
			Action:      func() tea.Cmd { return s.startSession(api.ModeLLM) },
		},
	})
	return s
}

func (s *StartScreen) Init() tea.Cmd {
	return nil
}

func (s *StartScreen) Title() string {
	return "Choose Mode"
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		s.starting = false
		if msg.Err != nil {
			// Start failures are terminal for the attempt; the user
			// picks a mode again.
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		next := session.New(s.ctrl, s.client, s.st, s.restartFactory())
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		if s.starting {
			return s, nil
		}
		if s.errMsg != "" {
			s.errMsg = ""
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	return s, nil
}

// startSession issues the remote start call.
func (s *StartScreen) startSession(mode api.Mode) tea.Cmd {
	s.starting = true
	ctrl := s.ctrl
	return func() tea.Msg {
		err := ctrl.StartSession(context.Background(), mode)
		return sessionStartedMsg{Mode: mode, Err: err}
	}
}

// restartFactory returns a fresh start screen for the restart flow.
func (s *StartScreen) restartFactory() func() screen.Screen {
	client, st := s.client, s.st
	return func() screen.Screen { return New(client, st) }
}

func (s *StartScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Width(width).Render("Adaptive Quiz"),
		theme.Subtitle.Width(width).Render("Ten questions, tuned to you as you answer"),
		"",
	)

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	if s.starting {
		sections = append(sections, "",
			theme.Hint.Width(width).Align(lipgloss.Center).Render("Starting session..."))
	}
	if s.errMsg != "" {
		sections = append(sections, "",
			theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Could not start session: "+s.errMsg),
			theme.Hint.Width(width).Align(lipgloss.Center).Render("Check the server and try again"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
