// Package scoring evaluates submitted applications with an LLM, producing a
// five-dimension assessment. Provider failures degrade to a placeholder
// assessment instead of an error so the admin surface always gets a result.
package scoring

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/llm"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/prompts"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/schemas"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// placeholderReasoning is returned when the provider cannot produce an assessment.
const placeholderReasoning = "AI scoring temporarily unavailable. This is a placeholder assessment based on application completeness and basic criteria."

// placeholderScore is the neutral value used for every dimension of a fallback assessment.
const placeholderScore = 70

// Scorer wraps an LLM client for candidate assessment
type Scorer struct {
	client llm.Client
}

// New creates a Scorer backed by the given LLM client
func New(client llm.Client) *Scorer {
	return &Scorer{client: client}
}

// Score evaluates one application. On provider or decode failure it returns a
// neutral placeholder assessment; the only error returned is context cancellation.
func (s *Scorer) Score(ctx context.Context, app *types.StoredApplication) (*types.CandidateScore, error) {
	prompt := buildPrompt(app)

	response, err := s.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("[scoring] LLM call failed for %s, using placeholder: %v", app.ID, err)
		return placeholder(app.ID), nil
	}

	score, err := decodeScore(response)
	if err != nil {
		log.Printf("[scoring] unusable response for %s, using placeholder: %v", app.ID, err)
		return placeholder(app.ID), nil
	}

	score.ApplicationID = app.ID
	return score, nil
}

// buildPrompt constructs the combined system and user scoring prompt
func buildPrompt(app *types.StoredApplication) string {
	var transcript strings.Builder
	for _, a := range app.Answers {
		transcript.WriteString(a.Key)
		transcript.WriteString(": ")
		transcript.WriteString(a.ValueString())
		transcript.WriteString("\n")
	}

	data := map[string]string{
		"RoleTitle":  app.Role.Title(),
		"Transcript": strings.TrimSuffix(transcript.String(), "\n"),
	}

	system := prompts.Format(prompts.MustGet(prompts.ScoringFile, "system"), data)
	user := prompts.Format(prompts.MustGet(prompts.ScoringFile, "user"), data)

	return system + "\n\n" + user
}

// decodeScore validates and repairs the assessment payload. Score fields that
// are not clean numbers are coerced, then clamped to the 0..100 range.
func decodeScore(raw string) (*types.CandidateScore, error) {
	if err := schemas.Validate(schemas.CandidateScore, []byte(raw)); err != nil {
		return nil, err
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, err
	}

	reasoning, _ := parsed["reasoning"].(string)
	return &types.CandidateScore{
		OverallScore:       coerceScore(parsed["overallScore"]),
		SkillsScore:        coerceScore(parsed["skillsScore"]),
		ExperienceScore:    coerceScore(parsed["experienceScore"]),
		CommunicationScore: coerceScore(parsed["communicationScore"]),
		CultureFitScore:    coerceScore(parsed["cultureFitScore"]),
		Reasoning:          reasoning,
	}, nil
}

// coerceScore converts an arbitrary JSON value to a score in 0..100.
// Unparseable values fall back to the midpoint of 50.
func coerceScore(v any) int {
	switch value := v.(type) {
	case float64:
		return clamp(int(value))
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return clamp(n)
		}
	}
	return 50
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// placeholder builds a neutral assessment for when the provider is unavailable.
func placeholder(id uuid.UUID) *types.CandidateScore {
	return &types.CandidateScore{
		ApplicationID:      id,
		OverallScore:       placeholderScore,
		SkillsScore:        placeholderScore,
		ExperienceScore:    placeholderScore,
		CommunicationScore: placeholderScore,
		CultureFitScore:    placeholderScore,
		Reasoning:          placeholderReasoning,
	}
}
