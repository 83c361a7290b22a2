// Package analytics computes dashboard aggregates over stored applications.
// All functions are pure; callers load the application set first.
package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// averageCompletionMinutes is a fixed estimate; completion timestamps are not
// tracked per question, so there is nothing to measure yet.
const averageCompletionMinutes = 12

// dropOffKeys is the canonical question order used for the funnel estimate.
var dropOffKeys = []string{"name", "email", "experience", "technologies", "project", "availability"}

// questionLabels maps well-known question keys to their display labels.
var questionLabels = map[string]string{
	"name":                "What is your full name?",
	"email":               "What is your email address?",
	"experience":          "How many years of experience do you have?",
	"technologies":        "Which technologies are you comfortable with?",
	"design_tools":        "Which design tools do you use regularly?",
	"project":             "Tell us about your most challenging project",
	"design_process":      "Describe your typical design process",
	"challenging_project": "Tell us about your most challenging project",
	"availability":        "When would you be available to start?",
}

// Overview computes the aggregate dashboard view. Applications must be
// ordered newest-first, as returned by the store.
func Overview(apps []types.StoredApplication) types.ApplicationAnalytics {
	byRole := make(map[string]int)
	for _, app := range apps {
		byRole[string(app.Role)]++
	}

	// Only completed applications are ever stored, so the rate is constant.
	analytics := types.ApplicationAnalytics{
		TotalApplications:     len(apps),
		ApplicationsByRole:    byRole,
		CompletionRate:        100,
		AverageCompletionTime: averageCompletionMinutes,
		DropOffPoints:         dropOffPoints(),
		RecentApplications:    firstN(apps, 10),
		TopCandidates:         topCandidates(apps, 5),
	}
	return analytics
}

// dropOffPoints returns a deterministic funnel: earlier questions lose more
// candidates than later ones.
func dropOffPoints() []types.DropOffPoint {
	points := make([]types.DropOffPoint, 0, len(dropOffKeys))
	for i, key := range dropOffKeys {
		points = append(points, types.DropOffPoint{
			QuestionKey: key,
			DropOffRate: float64((len(dropOffKeys) - i) * 2),
		})
	}
	return points
}

func firstN(apps []types.StoredApplication, n int) []types.StoredApplication {
	if len(apps) < n {
		n = len(apps)
	}
	return apps[:n]
}

// topCandidates returns the highest-scored applications. Unscored
// applications are not ranked.
func topCandidates(apps []types.StoredApplication, n int) []types.StoredApplication {
	scored := make([]types.StoredApplication, 0, len(apps))
	for _, app := range apps {
		if app.Score != nil {
			scored = append(scored, app)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return *scored[i].Score > *scored[j].Score
	})
	return firstN(scored, n)
}

// Questions computes per-question response statistics across applications,
// sorted by response count with the most answered question first.
func Questions(apps []types.StoredApplication) []types.QuestionAnalytics {
	type stats struct {
		count       int
		totalLength int
		responses   map[string]int
	}

	perKey := make(map[string]*stats)
	for _, app := range apps {
		for _, answer := range app.Answers {
			s, ok := perKey[answer.Key]
			if !ok {
				s = &stats{responses: make(map[string]int)}
				perKey[answer.Key] = s
			}
			value := answer.ValueString()
			s.count++
			s.totalLength += len(value)
			s.responses[strings.ToLower(strings.TrimSpace(value))]++
		}
	}

	out := make([]types.QuestionAnalytics, 0, len(perKey))
	for key, s := range perKey {
		avg := 0
		if s.count > 0 {
			avg = int(math.Round(float64(s.totalLength) / float64(s.count)))
		}

		dropOff := 0.0
		if len(apps) > 0 {
			dropOff = float64(len(apps)-s.count) / float64(len(apps)) * 100
			dropOff = math.Round(dropOff*100) / 100
		}

		out = append(out, types.QuestionAnalytics{
			QuestionKey:           key,
			Label:                 labelFor(key),
			ResponseCount:         s.count,
			AverageResponseLength: avg,
			CommonResponses:       commonResponses(s.responses, 5),
			DropOffRate:           dropOff,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ResponseCount != out[j].ResponseCount {
			return out[i].ResponseCount > out[j].ResponseCount
		}
		return out[i].QuestionKey < out[j].QuestionKey
	})
	return out
}

// labelFor resolves a question key to a display label, falling back to a
// humanized form of the key.
func labelFor(key string) string {
	if label, ok := questionLabels[key]; ok {
		return label
	}
	return strings.ReplaceAll(key, "_", " ")
}

// commonResponses returns the n most frequent normalized responses.
// Ties break alphabetically so the output is stable.
func commonResponses(counts map[string]int, n int) []types.CommonResponse {
	out := make([]types.CommonResponse, 0, len(counts))
	for value, count := range counts {
		out = append(out, types.CommonResponse{Value: value, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
