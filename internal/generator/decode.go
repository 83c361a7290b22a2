package generator

import (
	"encoding/json"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/schemas"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// Outcome is the result of a generation round: either the next question
// or a completion signal, never both.
type Outcome struct {
	Completed bool
	Message   string
	Question  *types.Question
}

// rawOutcome mirrors the JSON contract the model is instructed to follow.
type rawOutcome struct {
	Completed bool            `json:"completed"`
	Message   string          `json:"message"`
	Question  *types.Question `json:"question"`
}

// decodeOutcome validates and repairs an LLM response payload.
// Unknown question types are coerced to text, and a select question
// without options degrades to a textarea. A question whose key was
// already answered is rejected so the caller can fall back.
func decodeOutcome(raw string, answered map[string]bool) (*Outcome, error) {
	if err := schemas.Validate(schemas.NextQuestion, []byte(raw)); err != nil {
		return nil, &DecodeError{Message: "response does not match schema", Cause: err}
	}

	var parsed rawOutcome
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &DecodeError{Message: "failed to parse response JSON", Cause: err}
	}

	if parsed.Completed {
		message := parsed.Message
		if message == "" {
			message = types.CompletionMessage
		}
		return &Outcome{Completed: true, Message: message}, nil
	}

	question := parsed.Question
	if answered[question.Key] {
		return nil, &DecodeError{Message: "question key " + question.Key + " was already answered"}
	}

	if !question.Type.IsValid() {
		question.Type = types.QuestionText
		question.Options = nil
	}
	if question.Type == types.QuestionSelect && len(question.Options) == 0 {
		question.Type = types.QuestionTextarea
	}
	if question.Type != types.QuestionSelect {
		question.Options = nil
	}
	question.Required = true

	return &Outcome{Question: question}, nil
}
