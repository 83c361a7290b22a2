package types

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus tracks where a stored application sits in the review pipeline.
type ApplicationStatus string

// Valid application statuses.
const (
	StatusPending     ApplicationStatus = "pending"
	StatusReviewed    ApplicationStatus = "reviewed"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
)

// IsValid reports whether s is a recognized status.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusRejected:
		return true
	}
	return false
}

// StoredApplication is the durable record created once per completed flow.
// It is mutated only by status updates and score writes, never deleted.
type StoredApplication struct {
	ID        uuid.UUID         `json:"id"`
	Role      Role              `json:"role"`
	Answers   []Answer          `json:"answers"`
	Status    ApplicationStatus `json:"status"`
	Score     *int              `json:"score,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NextQuestionRequest is the body of a next-question call.
type NextQuestionRequest struct {
	Role    Role     `json:"role"`
	Answers []Answer `json:"answers"`
}

// NextQuestionResponse is the body of a next-question reply. Exactly one of
// Question or (Completed, Message) is meaningful.
type NextQuestionResponse struct {
	Question  *Question `json:"question,omitempty"`
	Completed bool      `json:"completed"`
	Message   string    `json:"message,omitempty"`
}

// SubmitApplicationRequest is the body of the final submission call.
type SubmitApplicationRequest struct {
	Role    Role     `json:"role"`
	Answers []Answer `json:"answers"`
}

// SubmitApplicationResponse acknowledges a stored application.
type SubmitApplicationResponse struct {
	Success bool      `json:"success"`
	ID      uuid.UUID `json:"id,omitempty"`
}

// CompletionMessage is the terminal message returned when an application is done.
const CompletionMessage = "Thank you for completing your application! We'll review it and get back to you soon."
