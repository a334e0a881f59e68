package quiz

import "github.com/abhisek/adaptiq/internal/api"

// SessionLength is the fixed number of questions per session, matching the
// server's limit. Progress display divides by this; completion itself is
// always decided by the server's session_complete flag.
// TODO: read from the server if the contract ever exposes it.
const SessionLength = 10

// Phase represents the current phase of the session flow.
type Phase int

const (
	PhaseIdle             Phase = iota // no session
	PhaseAwaitingQuestion              // session started, question fetch pending
	PhaseQuestionActive                // question displayed, answer not yet submitted
	PhaseAwaitingFeedback              // answer scored, feedback showing
	PhaseComplete                      // server reported session_complete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingQuestion:
		return "awaiting-question"
	case PhaseQuestionActive:
		return "question-active"
	case PhaseAwaitingFeedback:
		return "awaiting-feedback"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Session is one bounded attempt at the quiz, identified by a server-issued
// opaque id. Owned exclusively by the Controller; discarded on restart.
type Session struct {
	ID       string
	Mode     api.Mode
	Answered int
	Correct  int
}

// Progress returns the display-only completion ratio in [0,1].
func (s *Session) Progress() float64 {
	return float64(s.Answered) / float64(SessionLength)
}

// Advance is the single action available to the user after feedback. It is
// selected once per answer submission rather than rewired imperatively.
type Advance int

const (
	AdvanceNone         Advance = iota
	AdvanceNextQuestion         // fetch and show the next question
	AdvanceShowResults          // session complete, show the results screen
)
