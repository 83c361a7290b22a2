package types

import "github.com/google/uuid"

// ApplicationAnalytics is the aggregate view served to the admin dashboard.
type ApplicationAnalytics struct {
	TotalApplications     int                 `json:"totalApplications"`
	ApplicationsByRole    map[string]int      `json:"applicationsByRole"`
	CompletionRate        int                 `json:"completionRate"`
	AverageCompletionTime int                 `json:"averageCompletionTime"`
	DropOffPoints         []DropOffPoint      `json:"dropOffPoints"`
	RecentApplications    []StoredApplication `json:"recentApplications"`
	TopCandidates         []StoredApplication `json:"topCandidates"`
}

// DropOffPoint estimates abandonment at a given question.
type DropOffPoint struct {
	QuestionKey string  `json:"questionKey"`
	DropOffRate float64 `json:"dropOffRate"`
}

// QuestionAnalytics summarizes responses to one question key across applications.
type QuestionAnalytics struct {
	QuestionKey           string           `json:"questionKey"`
	Label                 string           `json:"label"`
	ResponseCount         int              `json:"responseCount"`
	AverageResponseLength int              `json:"averageResponseLength"`
	CommonResponses       []CommonResponse `json:"commonResponses"`
	DropOffRate           float64          `json:"dropOffRate"`
}

// CommonResponse is one of the most frequent answers to a question.
type CommonResponse struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CandidateScore is the AI assessment of a single application.
type CandidateScore struct {
	ApplicationID      uuid.UUID `json:"applicationId"`
	OverallScore       int       `json:"overallScore"`
	SkillsScore        int       `json:"skillsScore"`
	ExperienceScore    int       `json:"experienceScore"`
	CommunicationScore int       `json:"communicationScore"`
	CultureFitScore    int       `json:"cultureFitScore"`
	Reasoning          string    `json:"reasoning"`
}

// UpdateStatusRequest is the body of an admin status update.
type UpdateStatusRequest struct {
	Status ApplicationStatus `json:"status" validate:"required"`
}
