package results

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adaptiq/internal/api"
	"github.com/abhisek/adaptiq/internal/quiz"
	"github.com/abhisek/adaptiq/internal/router"
	"github.com/abhisek/adaptiq/internal/screen"
	"github.com/abhisek/adaptiq/internal/ui/layout"
	"github.com/abhisek/adaptiq/internal/ui/theme"
)

// metricsMsg is sent when the metrics fetch resolves.
type metricsMsg struct {
	Snapshot *api.MetricsSnapshot
	Err      error
}

// ResultsScreen shows the completed session's score and the metrics
// dashboard. The dashboard degrades to score-only when the metrics fetch
// fails; the session itself is already over at this point.
type ResultsScreen struct {
	sess      *quiz.Session
	knowledge *float64
	client    *api.Client
	restart   func() screen.Screen

	spinner  spinner.Model
	loading  bool
	snapshot *api.MetricsSnapshot
	errMsg   string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a finished session.
func New(sess *quiz.Session, knowledge *float64, client *api.Client, restart func() screen.Screen) *ResultsScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hint

	return &ResultsScreen{
		sess:      sess,
		knowledge: knowledge,
		client:    client,
		restart:   restart,
		spinner:   sp,
		loading:   true,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return tea.Batch(r.fetchMetrics(), r.spinner.Tick)
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "New session"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case metricsMsg:
		r.loading = false
		if msg.Err != nil {
			r.errMsg = msg.Err.Error()
			return r, nil
		}
		r.snapshot = msg.Snapshot
		return r, nil

	case spinner.TickMsg:
		if !r.loading {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "r", "R", "enter":
			next := r.restart()
			return r, func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
		}
	}

	return r, nil
}

// fetchMetrics loads the full snapshot for the dashboard.
func (r *ResultsScreen) fetchMetrics() tea.Cmd {
	client := r.client
	sessionID := r.sess.ID
	return func() tea.Msg {
		snapshot, err := client.Metrics(context.Background(), sessionID)
		return metricsMsg{Snapshot: snapshot, Err: err}
	}
}
