package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAttemptLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.BeginAttempt(ctx, "s1", "bkt")
	if err != nil {
		t.Fatalf("BeginAttempt: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty attempt id")
	}

	answers := []AnswerRecord{
		{Position: 1, QuestionID: "q1", Answer: "A", Correct: true},
		{Position: 2, QuestionID: "q2", Answer: "B", Correct: false},
		{Position: 3, QuestionID: "q3", Answer: "C", Correct: true},
	}
	for _, rec := range answers {
		if err := s.RecordAnswer(ctx, id, rec); err != nil {
			t.Fatalf("RecordAnswer %d: %v", rec.Position, err)
		}
	}

	knowledge := 0.82
	if err := s.CompleteAttempt(ctx, id, &knowledge); err != nil {
		t.Fatalf("CompleteAttempt: %v", err)
	}

	recent, err := s.RecentAttempts(ctx, 10)
	if err != nil {
		t.Fatalf("RecentAttempts: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("got %d attempts, want 1", len(recent))
	}

	a := recent[0]
	if a.Answered != 3 || a.Correct != 2 {
		t.Errorf("counters = %d/%d, want 2/3", a.Correct, a.Answered)
	}
	if a.CompletedAt == nil {
		t.Error("expected completed timestamp")
	}
	if a.FinalKnowledge == nil || *a.FinalKnowledge != 0.82 {
		t.Errorf("final knowledge = %v, want 0.82", a.FinalKnowledge)
	}
}

func TestStatsByMode(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	bkt, err := s.BeginAttempt(ctx, "s1", "bkt")
	if err != nil {
		t.Fatal(err)
	}
	llm, err := s.BeginAttempt(ctx, "s2", "llm")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.RecordAnswer(ctx, bkt, AnswerRecord{Position: 1, QuestionID: "q1", Answer: "A", Correct: true}); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordAnswer(ctx, llm, AnswerRecord{Position: 1, QuestionID: "q1", Answer: "B", Correct: false}); err != nil {
		t.Fatal(err)
	}
	if err := s.CompleteAttempt(ctx, bkt, nil); err != nil {
		t.Fatal(err)
	}

	stats, err := s.StatsByMode(ctx)
	if err != nil {
		t.Fatalf("StatsByMode: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d mode rows, want 2", len(stats))
	}

	// Ordered by mode name: bkt before llm.
	if stats[0].Mode != "bkt" || stats[1].Mode != "llm" {
		t.Fatalf("modes = %s/%s, want bkt/llm", stats[0].Mode, stats[1].Mode)
	}
	if stats[0].Completed != 1 || stats[1].Completed != 0 {
		t.Errorf("completed = %d/%d, want 1/0", stats[0].Completed, stats[1].Completed)
	}
	if stats[0].Accuracy() != 1.0 {
		t.Errorf("bkt accuracy = %v, want 1.0", stats[0].Accuracy())
	}
	if stats[1].Accuracy() != 0.0 {
		t.Errorf("llm accuracy = %v, want 0.0", stats[1].Accuracy())
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.BeginAttempt(ctx, "s1", "bkt")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RecordAnswer(ctx, id, AnswerRecord{Position: 1, QuestionID: "q1", Answer: "A", Correct: true}); err != nil {
		t.Fatal(err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	recent, err := s.RecentAttempts(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 0 {
		t.Errorf("got %d attempts after reset, want 0", len(recent))
	}
}
