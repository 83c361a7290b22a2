package observability

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

func TestPrintOverview(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	score := 91
	p.PrintOverview(&types.ApplicationAnalytics{
		TotalApplications:     12,
		CompletionRate:        100,
		AverageCompletionTime: 12,
		ApplicationsByRole:    map[string]int{"backend-engineer": 8, "product-designer": 4},
		TopCandidates: []types.StoredApplication{
			{ID: uuid.New(), Role: types.RoleBackendEngineer, Score: &score},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "APPLICATION OVERVIEW")
	assert.Contains(t, output, "Total applications:  12")
	assert.Contains(t, output, "backend-engineer")
	assert.Contains(t, output, "score=91")
}

func TestPrintOverview_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintOverview(nil)
	assert.Empty(t, buf.String())
}

func TestPrintQuestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintQuestions([]types.QuestionAnalytics{
		{
			QuestionKey:           "experience",
			Label:                 "How many years of experience do you have?",
			ResponseCount:         9,
			AverageResponseLength: 8,
			DropOffRate:           4,
			CommonResponses:       []types.CommonResponse{{Value: "4-5 years", Count: 3}},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "QUESTION ANALYTICS")
	assert.Contains(t, output, "responses=9")
	assert.Contains(t, output, "3x 4-5 years")
}

func TestPrintApplications(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	apps := []types.StoredApplication{
		{
			ID:      uuid.New(),
			Role:    types.RoleProductDesigner,
			Status:  types.StatusPending,
			Answers: []types.Answer{{Key: "name", Value: "Grace Hopper"}},
		},
	}
	p.PrintApplications(apps, 3)
	output := buf.String()

	assert.Contains(t, output, "APPLICATIONS (3)")
	assert.Contains(t, output, "Grace Hopper")
	assert.Contains(t, output, "1 of 3 shown")
}

func TestPrintApplications_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintApplications(nil, 0)
	assert.Contains(t, buf.String(), "No applications found.")
}
