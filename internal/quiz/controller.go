package quiz

import (
	"context"
	"fmt"

	"github.com/abhisek/adaptiq/internal/api"
)

// Service is the remote surface the controller drives. *api.Client
// satisfies it; tests substitute a fake.
type Service interface {
	StartSession(ctx context.Context, mode api.Mode) (string, error)
	NextQuestion(ctx context.Context, sessionID string) (*api.QuestionResult, error)
	SubmitAnswer(ctx context.Context, sessionID, questionID, answer string) (*api.AnswerResult, error)
}

// ErrInvalidPhase is returned when an operation is called outside the phase
// it is valid in.
var ErrInvalidPhase = fmt.Errorf("operation not valid in current phase")

// Controller owns the session lifecycle: identity, current question,
// answered/correct counters, and the phase transitions between them. It
// issues at most one remote call per user action and never touches the
// presentation layer.
type Controller struct {
	svc      Service
	phase    Phase
	session  *Session
	question *api.Question
	next     Advance
}

// NewController creates a controller in the idle phase.
func NewController(svc Service) *Controller {
	return &Controller{svc: svc, phase: PhaseIdle}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Session returns the active session, or nil before start / after restart.
func (c *Controller) Session() *Session { return c.session }

// Question returns the current question, or nil when none is active.
func (c *Controller) Question() *api.Question { return c.question }

// NextAction returns the advance action selected by the last submission.
func (c *Controller) NextAction() Advance { return c.next }

// StartSession creates a session in the given mode. On success the
// controller holds a zeroed session and awaits the first question; on
// failure it stays idle and the error is surfaced to the user.
func (c *Controller) StartSession(ctx context.Context, mode api.Mode) error {
	if c.phase != PhaseIdle {
		return fmt.Errorf("%w: start in phase %s", ErrInvalidPhase, c.phase)
	}

	id, err := c.svc.StartSession(ctx, mode)
	if err != nil {
		return err
	}

	c.session = &Session{ID: id, Mode: mode}
	c.phase = PhaseAwaitingQuestion
	return nil
}

// LoadNextQuestion fetches one question and makes it current, replacing any
// previous question wholesale. Valid when awaiting the first question or
// advancing past feedback. On failure the phase and question are unchanged.
func (c *Controller) LoadNextQuestion(ctx context.Context) (*api.QuestionResult, error) {
	if c.phase != PhaseAwaitingQuestion && c.phase != PhaseAwaitingFeedback {
		return nil, fmt.Errorf("%w: load question in phase %s", ErrInvalidPhase, c.phase)
	}

	result, err := c.svc.NextQuestion(ctx, c.session.ID)
	if err != nil {
		return nil, err
	}

	c.question = &result.Question
	c.phase = PhaseQuestionActive
	c.next = AdvanceNone
	return result, nil
}

// SelectAnswer submits the chosen option text for scoring. The text is sent
// as given; sending something that isn't one of the current options is a
// caller bug, not a runtime error. On success the counters advance and the
// next action is selected from the server's session_complete flag. On
// failure nothing advances, so the caller can re-enable the option controls
// and let the user retry.
func (c *Controller) SelectAnswer(ctx context.Context, option string) (*api.AnswerResult, error) {
	if c.phase != PhaseQuestionActive {
		return nil, fmt.Errorf("%w: answer in phase %s", ErrInvalidPhase, c.phase)
	}

	result, err := c.svc.SubmitAnswer(ctx, c.session.ID, c.question.ID, option)
	if err != nil {
		return nil, err
	}

	c.session.Answered++
	if result.Correct {
		c.session.Correct++
	}
	c.phase = PhaseAwaitingFeedback

	if result.SessionComplete {
		c.next = AdvanceShowResults
	} else {
		c.next = AdvanceNextQuestion
	}
	return result, nil
}

// Complete moves to the terminal phase. Valid only when the last submission
// selected AdvanceShowResults.
func (c *Controller) Complete() error {
	if c.phase != PhaseAwaitingFeedback || c.next != AdvanceShowResults {
		return fmt.Errorf("%w: complete in phase %s", ErrInvalidPhase, c.phase)
	}
	c.phase = PhaseComplete
	c.question = nil
	return nil
}

// Restart discards the session and returns to idle. Valid from any phase;
// purely client-local, no remote call is issued.
func (c *Controller) Restart() {
	c.session = nil
	c.question = nil
	c.next = AdvanceNone
	c.phase = PhaseIdle
}
