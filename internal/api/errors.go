package api

import "fmt"

// StartError indicates a session could not be created. The attempt is not
// retried; the user must trigger the start action again.
type StartError struct {
	Err error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("start session: %v", e.Err)
}

func (e *StartError) Unwrap() error { return e.Err }

// FetchError indicates a question or metrics retrieval failed. Surfaced to
// the user without automatic retry; client state is left as it was.
type FetchError struct {
	What string // "question" or "metrics"
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.What, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// SubmitError indicates an answer submission failed. Recoverable: the same
// selection may be submitted again.
type SubmitError struct {
	Err error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submit answer: %v", e.Err)
}

func (e *SubmitError) Unwrap() error { return e.Err }
