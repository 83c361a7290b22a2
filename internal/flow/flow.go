// Package flow holds the client-side application session: the state machine
// that walks a candidate from the first question to a stored submission.
package flow

import (
	"context"
	"fmt"
	"math"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/sequencer"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// QuestionService is the boundary the controller drives. Implementations talk
// to the HTTP backend or, in tests, return canned responses.
type QuestionService interface {
	// NextQuestion returns the next question or a terminal completion signal.
	NextQuestion(ctx context.Context, role types.Role, answers []types.Answer) (*types.NextQuestionResponse, error)
	// Submit persists the finished application.
	Submit(ctx context.Context, role types.Role, answers []types.Answer) (*types.SubmitApplicationResponse, error)
}

// State is the ephemeral per-session application state. It is created at flow
// start and discarded on role change or restart, never persisted locally.
type State struct {
	Role            types.Role
	Answers         []types.Answer
	CurrentQuestion *types.Question
	CurrentStep     int
	TotalSteps      int
	Completed       bool
	Message         string
}

// Progress returns the percentage of completed steps, rounded to the nearest integer.
func (s *State) Progress() int {
	if s.TotalSteps == 0 {
		return 0
	}
	completed := len(s.Answers)
	if completed > s.TotalSteps {
		completed = s.TotalSteps
	}
	return int(math.Round(100 * float64(completed) / float64(s.TotalSteps)))
}

// Controller advances a session one answer at a time. It issues a single
// outstanding request at a time; callers serialize input around it.
type Controller struct {
	service   QuestionService
	state     State
	submitted bool
}

// NewController starts a fresh session for the given role.
func NewController(service QuestionService, role types.Role) *Controller {
	return &Controller{
		service: service,
		state: State{
			Role:        role,
			CurrentStep: 1,
			TotalSteps:  sequencer.TotalSteps,
		},
	}
}

// State returns a copy of the current session state.
func (c *Controller) State() State {
	return c.state
}

// Start fetches the first question. Failures are recovered by issuing the
// default name question so the session always has an input control.
func (c *Controller) Start(ctx context.Context) (*types.Question, error) {
	return c.fetchNext(ctx)
}

// SubmitAnswer records one answer and advances the flow. When the backend
// reports completion the accumulated application is submitted exactly once.
// The returned question is nil once the session is complete.
func (c *Controller) SubmitAnswer(ctx context.Context, value any) (*types.Question, error) {
	if c.state.Completed {
		return nil, fmt.Errorf("application already completed")
	}
	if c.state.CurrentQuestion == nil {
		return nil, fmt.Errorf("no question is pending")
	}

	c.state.Answers = append(c.state.Answers, types.Answer{
		Key:   c.state.CurrentQuestion.Key,
		Value: value,
	})
	c.state.CurrentQuestion = nil

	return c.fetchNext(ctx)
}

// fetchNext asks the service for the next question and applies the transition.
func (c *Controller) fetchNext(ctx context.Context) (*types.Question, error) {
	resp, err := c.service.NextQuestion(ctx, c.state.Role, c.state.Answers)
	if err != nil {
		// Recoverable: re-issue the default question rather than wedging the session.
		q := sequencer.DefaultQuestion()
		c.state.CurrentQuestion = &q
		return &q, &RecoverableError{Message: "could not fetch the next question", Cause: err}
	}

	if resp.Completed {
		c.state.Completed = true
		c.state.Message = resp.Message
		if c.state.Message == "" {
			c.state.Message = types.CompletionMessage
		}
		if err := c.submitOnce(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}

	c.state.CurrentQuestion = resp.Question
	c.state.CurrentStep = len(c.state.Answers) + 1
	return resp.Question, nil
}

// submitOnce persists the finished application. Answers are retained on
// failure so the caller can retry; a retry may store a duplicate record.
func (c *Controller) submitOnce(ctx context.Context) error {
	if c.submitted {
		return nil
	}

	resp, err := c.service.Submit(ctx, c.state.Role, c.state.Answers)
	if err != nil {
		return &SubmissionError{Cause: err}
	}
	if !resp.Success {
		return &SubmissionError{}
	}

	c.submitted = true
	return nil
}

// RetrySubmit re-attempts a failed submission of a completed application.
func (c *Controller) RetrySubmit(ctx context.Context) error {
	if !c.state.Completed {
		return fmt.Errorf("application is not complete")
	}
	return c.submitOnce(ctx)
}

// ChangeRole discards the session and starts over with a new role.
func (c *Controller) ChangeRole(role types.Role) {
	c.state = State{
		Role:        role,
		CurrentStep: 1,
		TotalSteps:  sequencer.TotalSteps,
	}
	c.submitted = false
}

// Restart clears the session but keeps the selected role.
func (c *Controller) Restart() {
	c.ChangeRole(c.state.Role)
}
