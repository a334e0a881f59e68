package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/adaptiq/internal/api"
)

// fakeService scripts remote responses for controller tests.
type fakeService struct {
	startID    string
	startErr   error
	question   api.Question
	fetchErr   error
	answer     api.AnswerResult
	submitErr  error
	startCalls int
	fetchCalls int
	submits    int
}

func (f *fakeService) StartSession(ctx context.Context, mode api.Mode) (string, error) {
	f.startCalls++
	if f.startErr != nil {
		return "", f.startErr
	}
	return f.startID, nil
}

func (f *fakeService) NextQuestion(ctx context.Context, sessionID string) (*api.QuestionResult, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return &api.QuestionResult{Question: f.question}, nil
}

func (f *fakeService) SubmitAnswer(ctx context.Context, sessionID, questionID, answer string) (*api.AnswerResult, error) {
	f.submits++
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	result := f.answer
	return &result, nil
}

func newStarted(t *testing.T, svc *fakeService) *Controller {
	t.Helper()
	c := NewController(svc)
	if err := c.StartSession(context.Background(), api.ModeBKT); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	return c
}

func TestStartSessionHappyPath(t *testing.T) {
	svc := &fakeService{
		startID:  "s1",
		question: api.Question{ID: "q1", Text: "2+2?", Options: []string{"A", "B"}},
		answer:   api.AnswerResult{Correct: true, CorrectAnswer: "A"},
	}
	c := newStarted(t, svc)

	if c.Phase() != PhaseAwaitingQuestion {
		t.Fatalf("phase = %s, want awaiting-question", c.Phase())
	}
	if c.Session().ID != "s1" {
		t.Errorf("session id = %q, want s1", c.Session().ID)
	}

	if _, err := c.LoadNextQuestion(context.Background()); err != nil {
		t.Fatalf("LoadNextQuestion: %v", err)
	}
	if c.Phase() != PhaseQuestionActive {
		t.Fatalf("phase = %s, want question-active", c.Phase())
	}

	result, err := c.SelectAnswer(context.Background(), "A")
	if err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	if !result.Correct {
		t.Error("expected correct result")
	}
	if c.Session().Answered != 1 || c.Session().Correct != 1 {
		t.Errorf("counters = %d/%d, want 1/1", c.Session().Correct, c.Session().Answered)
	}
	if c.NextAction() != AdvanceNextQuestion {
		t.Errorf("next action = %d, want AdvanceNextQuestion", c.NextAction())
	}

	// Advancing loads another question and returns to active.
	if _, err := c.LoadNextQuestion(context.Background()); err != nil {
		t.Fatalf("LoadNextQuestion after answer: %v", err)
	}
	if c.Phase() != PhaseQuestionActive {
		t.Errorf("phase = %s, want question-active", c.Phase())
	}
}

func TestStartSessionFailureStaysIdle(t *testing.T) {
	svc := &fakeService{startErr: &api.StartError{Err: errors.New("boom")}}
	c := NewController(svc)

	err := c.StartSession(context.Background(), api.ModeLLM)
	if err == nil {
		t.Fatal("expected error")
	}
	if c.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want idle", c.Phase())
	}
	if c.Session() != nil {
		t.Error("expected no session after failed start")
	}
}

func TestStartTwiceRejected(t *testing.T) {
	svc := &fakeService{startID: "s1"}
	c := newStarted(t, svc)

	err := c.StartSession(context.Background(), api.ModeBKT)
	if !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("err = %v, want ErrInvalidPhase", err)
	}
	if svc.startCalls != 1 {
		t.Errorf("start calls = %d, want 1", svc.startCalls)
	}
}

func TestSelectAnswerOutsideActivePhase(t *testing.T) {
	svc := &fakeService{startID: "s1"}
	c := newStarted(t, svc)

	_, err := c.SelectAnswer(context.Background(), "A")
	if !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("err = %v, want ErrInvalidPhase", err)
	}
	if svc.submits != 0 {
		t.Errorf("submits = %d, want 0", svc.submits)
	}
}

func TestSubmitFailureRecoverable(t *testing.T) {
	svc := &fakeService{
		startID:  "s1",
		question: api.Question{ID: "q1", Options: []string{"A", "B"}},
	}
	c := newStarted(t, svc)
	if _, err := c.LoadNextQuestion(context.Background()); err != nil {
		t.Fatalf("LoadNextQuestion: %v", err)
	}

	svc.submitErr = &api.SubmitError{Err: errors.New("network down")}
	_, err := c.SelectAnswer(context.Background(), "A")
	if err == nil {
		t.Fatal("expected error")
	}

	// Nothing advanced: same phase, same counters, retry allowed.
	if c.Phase() != PhaseQuestionActive {
		t.Errorf("phase = %s, want question-active", c.Phase())
	}
	if c.Session().Answered != 0 {
		t.Errorf("answered = %d, want 0", c.Session().Answered)
	}

	svc.submitErr = nil
	svc.answer = api.AnswerResult{Correct: false, CorrectAnswer: "B"}
	result, err := c.SelectAnswer(context.Background(), "A")
	if err != nil {
		t.Fatalf("retry SelectAnswer: %v", err)
	}
	if result.Correct {
		t.Error("expected incorrect result")
	}
	if c.Session().Answered != 1 || c.Session().Correct != 0 {
		t.Errorf("counters = %d/%d, want 0/1", c.Session().Correct, c.Session().Answered)
	}
}

func TestSessionCompleteFlow(t *testing.T) {
	svc := &fakeService{
		startID:  "s1",
		question: api.Question{ID: "q1", Options: []string{"A", "B"}},
	}
	c := newStarted(t, svc)

	// Answer ten questions; the tenth reports session_complete.
	for i := 0; i < SessionLength; i++ {
		if _, err := c.LoadNextQuestion(context.Background()); err != nil {
			t.Fatalf("question %d: %v", i+1, err)
		}
		svc.answer = api.AnswerResult{
			Correct:         true,
			CorrectAnswer:   "A",
			SessionComplete: i == SessionLength-1,
		}
		if _, err := c.SelectAnswer(context.Background(), "A"); err != nil {
			t.Fatalf("answer %d: %v", i+1, err)
		}

		s := c.Session()
		if s.Correct > s.Answered || s.Answered > SessionLength {
			t.Fatalf("invariant violated: correct=%d answered=%d", s.Correct, s.Answered)
		}
	}

	if c.NextAction() != AdvanceShowResults {
		t.Fatalf("next action = %d, want AdvanceShowResults", c.NextAction())
	}
	if err := c.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if c.Phase() != PhaseComplete {
		t.Errorf("phase = %s, want complete", c.Phase())
	}

	// Restart is client-local: counters reset, no extra remote calls.
	startCalls, fetchCalls, submits := svc.startCalls, svc.fetchCalls, svc.submits
	c.Restart()
	if c.Phase() != PhaseIdle || c.Session() != nil {
		t.Error("expected idle phase and no session after restart")
	}
	if svc.startCalls != startCalls || svc.fetchCalls != fetchCalls || svc.submits != submits {
		t.Error("restart issued a remote call")
	}
}

func TestCompleteRequiresShowResults(t *testing.T) {
	svc := &fakeService{
		startID:  "s1",
		question: api.Question{ID: "q1", Options: []string{"A"}},
		answer:   api.AnswerResult{Correct: true, SessionComplete: false},
	}
	c := newStarted(t, svc)
	if _, err := c.LoadNextQuestion(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SelectAnswer(context.Background(), "A"); err != nil {
		t.Fatal(err)
	}

	if err := c.Complete(); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("err = %v, want ErrInvalidPhase", err)
	}
}

func TestProgress(t *testing.T) {
	s := &Session{Answered: 3}
	if got := s.Progress(); got != 0.3 {
		t.Errorf("Progress = %v, want 0.3", got)
	}
}
