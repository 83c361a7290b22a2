// Package sequencer decides which question an application flow should ask next.
//
// It has two layers: a stage policy that maps the number of answers already
// given to the kind of question to ask, and a deterministic per-role question
// bank that serves as the authoritative fallback when generation is
// unavailable or produces invalid output.
package sequencer

// Stage is the kind of question to ask at a given point in the flow.
type Stage string

// Stages in order. Terminal means the application is complete.
const (
	StageName         Stage = "name"
	StageEmail        Stage = "email"
	StageExperience   Stage = "experience"
	StageSkills       Stage = "skills"
	StageProject      Stage = "project"
	StageAvailability Stage = "availability"
	StageTerminal     Stage = "terminal"
)

// TotalSteps is the fixed number of questions in every application.
const TotalSteps = 6

var stageOrder = [TotalSteps]Stage{
	StageName,
	StageEmail,
	StageExperience,
	StageSkills,
	StageProject,
	StageAvailability,
}

// StageForCount maps the count of answers already given to the next stage.
// Total over all non-negative counts; any count of TotalSteps or more is terminal.
func StageForCount(answerCount int) Stage {
	if answerCount < 0 || answerCount >= TotalSteps {
		return StageTerminal
	}
	return stageOrder[answerCount]
}

// Guidance returns the prompt steering text for a stage.
func (s Stage) Guidance() string {
	switch s {
	case StageName:
		return "Start with basic contact information (name)."
	case StageEmail:
		return "Ask for email address."
	case StageExperience:
		return "Ask about their experience level in the field."
	case StageSkills:
		return "Ask about specific skills, tools, or technologies relevant to the role."
	case StageProject:
		return "Ask about a specific project, portfolio piece, or work experience."
	case StageAvailability:
		return "Ask about availability or preferences for starting the role."
	default:
		return "The application should be complete. Return completed: true."
	}
}
