package session

import "github.com/abhisek/adaptiq/internal/api"

// attemptStartedMsg is sent when the local attempt log row is created.
// A failed insert leaves the id empty and recording is skipped silently;
// the quiz itself never depends on the local log.
type attemptStartedMsg struct {
	ID string
}

// questionMsg is sent when a next-question fetch resolves.
type questionMsg struct {
	Result *api.QuestionResult
	Err    error
}

// answerMsg is sent when an answer submission resolves.
type answerMsg struct {
	Result     *api.AnswerResult
	QuestionID string
	Option     string
	Err        error
}
