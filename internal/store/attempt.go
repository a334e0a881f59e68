package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Attempt is one locally recorded quiz attempt. Server session ids are
// opaque and not guaranteed unique across servers, so each attempt gets its
// own client-generated id.
type Attempt struct {
	ID             string
	SessionID      string
	Mode           string
	StartedAt      time.Time
	CompletedAt    *time.Time
	Answered       int
	Correct        int
	FinalKnowledge *float64
}

// AnswerRecord is one answered question within an attempt.
type AnswerRecord struct {
	Position   int
	QuestionID string
	Answer     string
	Correct    bool
}

// BeginAttempt records the start of a new quiz attempt and returns its id.
func (s *Store) BeginAttempt(ctx context.Context, sessionID, mode string) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (id, session_id, mode, started_at) VALUES (?, ?, ?, ?)`,
		id, sessionID, mode, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("insert attempt: %w", err)
	}
	return id, nil
}

// RecordAnswer appends an answer to the attempt and bumps its counters.
func (s *Store) RecordAnswer(ctx context.Context, attemptID string, rec AnswerRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO attempt_answers (attempt_id, position, question_id, answer, correct, answered_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		attemptID, rec.Position, rec.QuestionID, rec.Answer, rec.Correct, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}

	correctDelta := 0
	if rec.Correct {
		correctDelta = 1
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE attempts SET answered = answered + 1, correct = correct + ? WHERE id = ?`,
		correctDelta, attemptID,
	)
	if err != nil {
		return fmt.Errorf("update attempt counters: %w", err)
	}

	return tx.Commit()
}

// CompleteAttempt marks the attempt finished, optionally with the final
// knowledge estimate (BKT mode only).
func (s *Store) CompleteAttempt(ctx context.Context, attemptID string, finalKnowledge *float64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE attempts SET completed_at = ?, final_knowledge = ? WHERE id = ?`,
		time.Now().UTC(), finalKnowledge, attemptID,
	)
	if err != nil {
		return fmt.Errorf("complete attempt: %w", err)
	}
	return nil
}

// ModeStats aggregates attempts for one mode.
type ModeStats struct {
	Mode      string
	Attempts  int
	Completed int
	Answered  int
	Correct   int
}

// Accuracy returns the all-time accuracy for the mode in [0,1].
func (m ModeStats) Accuracy() float64 {
	if m.Answered == 0 {
		return 0
	}
	return float64(m.Correct) / float64(m.Answered)
}

// StatsByMode returns per-mode aggregates across all recorded attempts,
// ordered by mode name.
func (s *Store) StatsByMode(ctx context.Context) ([]ModeStats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT mode,
		        COUNT(*),
		        COUNT(completed_at),
		        COALESCE(SUM(answered), 0),
		        COALESCE(SUM(correct), 0)
		 FROM attempts GROUP BY mode ORDER BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stats []ModeStats
	for rows.Next() {
		var m ModeStats
		if err := rows.Scan(&m.Mode, &m.Attempts, &m.Completed, &m.Answered, &m.Correct); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		stats = append(stats, m)
	}
	return stats, rows.Err()
}

// RecentAttempts returns the most recent attempts, newest first.
func (s *Store) RecentAttempts(ctx context.Context, limit int) ([]Attempt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, mode, started_at, completed_at, answered, correct, final_knowledge
		 FROM attempts ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var completed sql.NullTime
		var knowledge sql.NullFloat64
		err := rows.Scan(&a.ID, &a.SessionID, &a.Mode, &a.StartedAt, &completed,
			&a.Answered, &a.Correct, &knowledge)
		if err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if completed.Valid {
			t := completed.Time
			a.CompletedAt = &t
		}
		if knowledge.Valid {
			v := knowledge.Float64
			a.FinalKnowledge = &v
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// Reset deletes all recorded attempts and answers.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM attempt_answers`); err != nil {
		return fmt.Errorf("clear answers: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
		return fmt.Errorf("clear attempts: %w", err)
	}
	return nil
}
