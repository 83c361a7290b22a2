package flow

import "fmt"

// RecoverableError signals a failure the session survives: a default question
// was issued in place of the one that could not be fetched.
type RecoverableError struct {
	Message string
	Cause   error
}

func (e *RecoverableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RecoverableError) Unwrap() error {
	return e.Cause
}

// SubmissionError signals a failed application write. Local answers are kept
// so the submission can be retried.
type SubmissionError struct {
	Cause error
}

func (e *SubmissionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to submit application: %v", e.Cause)
	}
	return "failed to submit application"
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}
