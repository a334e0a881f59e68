package api

// Mode selects the instructional mode for a session.
type Mode string

const (
	ModeBKT Mode = "bkt"
	ModeLLM Mode = "llm"
)

// Question is one multiple-choice question served by the quiz service.
// Field names match the server's JSON casing verbatim.
type Question struct {
	ID      string   `json:"ID"`
	Text    string   `json:"Text"`
	Options []string `json:"Options"`
}

// QuestionResult is the response to a next-question fetch. CurrentKnowledge
// is only populated in BKT mode; SelectionReasoning only in LLM mode.
type QuestionResult struct {
	Question           Question `json:"question"`
	CurrentKnowledge   *float64 `json:"current_knowledge,omitempty"`
	SelectionReasoning string   `json:"selection_reasoning,omitempty"`
}

// AnswerResult is the scoring outcome of a submitted answer.
type AnswerResult struct {
	Correct          bool     `json:"correct"`
	CorrectAnswer    string   `json:"correct_answer"`
	Feedback         string   `json:"feedback,omitempty"`
	CurrentKnowledge *float64 `json:"current_knowledge,omitempty"`
	SessionComplete  bool     `json:"session_complete"`
}

// Parameters are the fixed BKT model parameters reported by the server.
type Parameters struct {
	L0 float64 `json:"l0"`
	T  float64 `json:"t"`
	S  float64 `json:"s"`
	G  float64 `json:"g"`
}

// UserModel is the generative model's estimate of the learner, present only
// in LLM-mode metrics.
type UserModel struct {
	KnowledgeLevel      float64 `json:"knowledge_level"`
	Confidence          float64 `json:"confidence"`
	LearningRate        float64 `json:"learning_rate"`
	PatternConsistency  float64 `json:"pattern_consistency"`
	DifficultyTolerance float64 `json:"difficulty_tolerance"`
}

// MetricsSnapshot is the full metrics payload for a session at a point in
// time. Each fetch replaces any prior snapshot wholesale; history slices are
// ordered by question index and share the same length.
type MetricsSnapshot struct {
	Mode              string      `json:"mode,omitempty"`
	CurrentKnowledge  float64     `json:"current_knowledge"`
	KnowledgeHistory  []float64   `json:"knowledge_history"`
	AnswerHistory     []bool      `json:"answer_history"`
	DifficultyHistory []float64   `json:"difficulty_history"`
	Parameters        *Parameters `json:"parameters,omitempty"`
	UserModel         *UserModel  `json:"user_model,omitempty"`
}

type startRequest struct {
	Mode string `json:"mode"`
}

type startResponse struct {
	SessionID string `json:"session_id"`
}

type submitRequest struct {
	SessionID  string `json:"session_id"`
	QuestionID string `json:"question_id"`
	UserAnswer string `json:"user_answer"`
}

type errorResponse struct {
	Error string `json:"error"`
}
