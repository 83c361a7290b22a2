// Package generator produces the next application question for a role using
// LLM generation, validating and repairing responses before they reach callers.
package generator

import (
	"context"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/llm"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/sequencer"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// Generator wraps an LLM client for adaptive question generation
type Generator struct {
	client llm.Client
}

// New creates a Generator backed by the given LLM client
func New(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Next generates the next question for a candidate given their answers so far.
// Once six answers have been collected the application is complete and no
// model call is made.
func (g *Generator) Next(ctx context.Context, role types.Role, answers []types.Answer) (*Outcome, error) {
	if len(answers) >= sequencer.TotalSteps {
		return &Outcome{Completed: true, Message: types.CompletionMessage}, nil
	}

	prompt := buildPrompt(role, answers)

	response, err := g.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &GenerationError{Message: "LLM call failed", Cause: err}
	}

	outcome, err := decodeOutcome(response, types.AnsweredKeys(answers))
	if err != nil {
		return nil, &GenerationError{Message: "unusable LLM response", Cause: err}
	}

	return outcome, nil
}
