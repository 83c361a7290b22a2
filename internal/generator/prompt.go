package generator

import (
	"fmt"
	"strings"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/prompts"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/sequencer"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// buildPrompt constructs the combined system and user prompt for the next question
func buildPrompt(role types.Role, answers []types.Answer) string {
	rc := types.RoleContexts[role]
	stage := sequencer.StageForCount(len(answers))

	data := map[string]string{
		"RoleTitle":        role.Title(),
		"Focus":            rc.Focus,
		"Skills":           rc.Skills,
		"Responsibilities": rc.Responsibilities,
		"StageGuidance":    stage.Guidance(),
		"Transcript":       buildTranscript(answers),
		"AnswerCount":      fmt.Sprintf("%d", len(answers)),
	}

	system := prompts.Format(prompts.MustGet(prompts.GenerationFile, "system"), data)
	user := prompts.Format(prompts.MustGet(prompts.GenerationFile, "user"), data)

	return system + "\n\n" + user
}

// buildTranscript renders answered questions as a readable list for the prompt
func buildTranscript(answers []types.Answer) string {
	if len(answers) == 0 {
		return "(no answers yet)"
	}

	var sb strings.Builder
	for _, a := range answers {
		fmt.Fprintf(&sb, "- %s: %s\n", a.Key, a.ValueString())
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
