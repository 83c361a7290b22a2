package sequencer

import (
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

var experienceOptions = []string{"0-1 years", "2-3 years", "4-5 years", "6-8 years", "9+ years"}

var availabilityOptions = []string{"Immediately", "Within 2 weeks", "Within 1 month", "Within 2 months", "More than 2 months"}

// contactQuestions are the first two questions of every role's sequence.
func contactQuestions() []types.Question {
	return []types.Question{
		{Key: "name", Label: "What is your full name?", Type: types.QuestionText, Required: true},
		{Key: "email", Label: "What is your email address?", Type: types.QuestionText, Required: true},
	}
}

func experienceQuestion(label string) types.Question {
	return types.Question{Key: "experience", Label: label, Type: types.QuestionSelect, Options: experienceOptions, Required: true}
}

func availabilityQuestion() types.Question {
	return types.Question{Key: "availability", Label: "When would you be available to start?", Type: types.QuestionSelect, Options: availabilityOptions, Required: true}
}

func roleSequence(experienceLabel string, skills, project types.Question) []types.Question {
	seq := contactQuestions()
	seq = append(seq, experienceQuestion(experienceLabel), skills, project, availabilityQuestion())
	return seq
}

// bank holds the fixed six-question sequence for every role.
var bank = map[types.Role][]types.Question{
	types.RoleFrontendEngineer: roleSequence(
		"How many years of frontend development experience do you have?",
		types.Question{Key: "technologies", Label: "Which frontend technologies and frameworks are you most comfortable with? (e.g., React, Vue, Angular, TypeScript)", Type: types.QuestionTextarea, Required: true},
		types.Question{Key: "challenging_project", Label: "Tell us about your most challenging frontend project. What made it difficult and how did you overcome the challenges?", Type: types.QuestionTextarea, Required: true},
	),
	types.RoleProductDesigner: roleSequence(
		"How many years of product design experience do you have?",
		types.Question{Key: "design_tools", Label: "Which design tools do you use regularly? (e.g., Figma, Sketch, Adobe Creative Suite)", Type: types.QuestionTextarea, Required: true},
		types.Question{Key: "design_process", Label: "Describe your typical design process from initial concept to final delivery. How do you ensure your designs meet user needs?", Type: types.QuestionTextarea, Required: true},
	),
	types.RoleBackendEngineer: roleSequence(
		"How many years of backend development experience do you have?",
		types.Question{Key: "technologies", Label: "Which backend technologies and frameworks are you most experienced with? (e.g., Node.js, Python, Java, Go)", Type: types.QuestionTextarea, Required: true},
		types.Question{Key: "system_design", Label: "Describe a complex backend system you designed or worked on. What were the main challenges and how did you address them?", Type: types.QuestionTextarea, Required: true},
	),
	types.RoleFullstackEngineer: roleSequence(
		"How many years of full-stack development experience do you have?",
		types.Question{Key: "tech_stack", Label: "What is your preferred full-stack technology stack? Include frontend, backend, and database technologies.", Type: types.QuestionTextarea, Required: true},
		types.Question{Key: "fullstack_project", Label: "Tell us about a full-stack application you built from scratch. What technologies did you use and what challenges did you face?", Type: types.QuestionTextarea, Required: true},
	),
	types.RoleDataScientist: roleSequence(
		"How many years of data science experience do you have?",
		types.Question{Key: "tools_languages", Label: "Which programming languages and data science tools do you use regularly? (e.g., Python, R, SQL, TensorFlow)", Type: types.QuestionTextarea, Required: true},
		types.Question{Key: "ml_project", Label: "Describe a machine learning or data analysis project you worked on. What was the problem, approach, and outcome?", Type: types.QuestionTextarea, Required: true},
	),
	types.RoleDevOpsEngineer: roleSequence(
		"How many years of DevOps/Infrastructure experience do you have?",
		types.Question{Key: "cloud_tools", Label: "Which cloud platforms and DevOps tools do you have experience with? (e.g., AWS, Docker, Kubernetes, Jenkins)", Type: types.QuestionTextarea, Required: true},
		types.Question{Key: "infrastructure_project", Label: "Tell us about a complex infrastructure or automation project you implemented. What challenges did you solve?", Type: types.QuestionTextarea, Required: true},
	),
	types.RoleProductManager: roleSequence(
		"How many years of product management experience do you have?",
		types.Question{Key: "product_tools", Label: "What product management tools and methodologies do you use? (e.g., Jira, Figma, Agile, OKRs)", Type: types.QuestionTextarea, Required: true},
		types.Question{Key: "product_launch", Label: "Tell us about a successful product launch you managed. What was your strategy and how did you measure success?", Type: types.QuestionTextarea, Required: true},
	),
	types.RoleUIUXDesigner: roleSequence(
		"How many years of UI/UX design experience do you have?",
		types.Question{Key: "design_tools", Label: "Which design and prototyping tools do you use regularly? (e.g., Figma, Sketch, Adobe XD, Principle)", Type: types.QuestionTextarea, Required: true},
		types.Question{Key: "design_process", Label: "Walk us through your design process from user research to final handoff. How do you ensure user-centered design?", Type: types.QuestionTextarea, Required: true},
	),
	types.RoleMobileDeveloper: roleSequence(
		"How many years of mobile development experience do you have?",
		types.Question{Key: "mobile_platforms", Label: "Which mobile development platforms and technologies do you work with? (e.g., iOS/Swift, Android/Kotlin, React Native, Flutter)", Type: types.QuestionTextarea, Required: true},
		types.Question{Key: "mobile_app", Label: "Tell us about a mobile app you developed. What were the key features and technical challenges you faced?", Type: types.QuestionTextarea, Required: true},
	),
	types.RoleQAEngineer: roleSequence(
		"How many years of QA/Testing experience do you have?",
		types.Question{Key: "testing_tools", Label: "Which testing tools and frameworks do you use? (e.g., Selenium, Cypress, Jest, Postman, JIRA)", Type: types.QuestionTextarea, Required: true},
		types.Question{Key: "testing_approach", Label: "Describe your approach to testing a complex application. How do you balance manual and automated testing?", Type: types.QuestionTextarea, Required: true},
	),
}

// Sequence returns the role's fixed question sequence in order.
// The returned slice must not be modified.
func Sequence(role types.Role) []types.Question {
	return bank[role]
}

// DefaultQuestion is the question served when everything else fails, so the
// flow always has an input control to render.
func DefaultQuestion() types.Question {
	return types.Question{Key: "name", Label: "What is your full name?", Type: types.QuestionText, Required: true}
}

// NextFallback picks the first question in the role's sequence whose key has
// not been answered yet. The second return is false when the sequence is
// exhausted, which marks the application as complete.
func NextFallback(role types.Role, answeredKeys map[string]bool) (types.Question, bool) {
	for _, q := range bank[role] {
		if !answeredKeys[q.Key] {
			return q, true
		}
	}
	return types.Question{}, false
}
