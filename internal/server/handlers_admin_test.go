package server

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

func seedApp(role types.Role, status types.ApplicationStatus, score *int, createdAt time.Time) types.StoredApplication {
	return types.StoredApplication{
		ID:     uuid.New(),
		Role:   role,
		Status: status,
		Score:  score,
		Answers: []types.Answer{
			{Key: "name", Value: "Ada Lovelace"},
			{Key: "email", Value: "ada@example.com"},
			{Key: "experience", Value: "4-5 years"},
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func seededStore() *fakeStore {
	now := time.Now()
	score := 88
	return &fakeStore{apps: []types.StoredApplication{
		seedApp(types.RoleBackendEngineer, types.StatusShortlisted, &score, now),
		seedApp(types.RoleBackendEngineer, types.StatusPending, nil, now.Add(-time.Hour)),
		seedApp(types.RoleProductDesigner, types.StatusReviewed, nil, now.Add(-2*time.Hour)),
	}}
}

func TestAdminEndpoints_RequireToken(t *testing.T) {
	s := newTestServer(t, seededStore(), nil, &fakeScorer{})
	id := uuid.New()

	endpoints := []struct {
		method, path string
	}{
		{http.MethodGet, "/admin/applications"},
		{http.MethodGet, "/admin/analytics"},
		{http.MethodGet, "/admin/question-analytics"},
		{http.MethodPost, "/admin/applications/" + id.String() + "/score"},
		{http.MethodPost, "/admin/applications/" + id.String() + "/status"},
		{http.MethodGet, "/admin/export"},
	}
	for _, ep := range endpoints {
		t.Run(ep.method+" "+ep.path, func(t *testing.T) {
			rec := doJSON(t, s, ep.method, ep.path, nil, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			rec = doJSON(t, s, ep.method, ep.path, nil, "garbage-token")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

type listResponse struct {
	Applications []types.StoredApplication `json:"applications"`
	Total        int                       `json:"total"`
}

func TestListApplications(t *testing.T) {
	s := newTestServer(t, seededStore(), nil, &fakeScorer{})
	token := loginToken(t, s)

	rec := doJSON(t, s, http.MethodGet, "/admin/applications", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[listResponse](t, rec)
	assert.Equal(t, 3, resp.Total)
	assert.Len(t, resp.Applications, 3)
}

func TestListApplications_Filters(t *testing.T) {
	s := newTestServer(t, seededStore(), nil, &fakeScorer{})
	token := loginToken(t, s)

	rec := doJSON(t, s, http.MethodGet, "/admin/applications?role=backend-engineer", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[listResponse](t, rec)
	assert.Equal(t, 2, resp.Total)

	rec = doJSON(t, s, http.MethodGet, "/admin/applications?status=reviewed", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeBody[listResponse](t, rec)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Applications, 1)
	assert.Equal(t, types.RoleProductDesigner, resp.Applications[0].Role)
}

func TestListApplications_Pagination(t *testing.T) {
	s := newTestServer(t, seededStore(), nil, &fakeScorer{})
	token := loginToken(t, s)

	rec := doJSON(t, s, http.MethodGet, "/admin/applications?limit=2&offset=2", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[listResponse](t, rec)
	assert.Equal(t, 3, resp.Total)
	assert.Len(t, resp.Applications, 1)
}

func TestListApplications_RejectsBadFilters(t *testing.T) {
	s := newTestServer(t, seededStore(), nil, &fakeScorer{})
	token := loginToken(t, s)

	for _, path := range []string{
		"/admin/applications?role=astronaut",
		"/admin/applications?status=maybe",
		"/admin/applications?limit=ten",
		"/admin/applications?offset=zero",
	} {
		rec := doJSON(t, s, http.MethodGet, path, nil, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestAnalyticsOverview(t *testing.T) {
	s := newTestServer(t, seededStore(), nil, &fakeScorer{})
	token := loginToken(t, s)

	rec := doJSON(t, s, http.MethodGet, "/admin/analytics", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[types.ApplicationAnalytics](t, rec)

	assert.Equal(t, 3, resp.TotalApplications)
	assert.Equal(t, 100, resp.CompletionRate)
	assert.Equal(t, 2, resp.ApplicationsByRole["backend-engineer"])
	assert.Equal(t, 1, resp.ApplicationsByRole["product-designer"])
	require.NotEmpty(t, resp.DropOffPoints)
	assert.Equal(t, "name", resp.DropOffPoints[0].QuestionKey)
	require.Len(t, resp.TopCandidates, 1, "only scored applications are ranked")
	assert.Equal(t, 88, *resp.TopCandidates[0].Score)
}

type questionAnalyticsResponse struct {
	Questions []types.QuestionAnalytics `json:"questions"`
}

func TestQuestionAnalytics(t *testing.T) {
	s := newTestServer(t, seededStore(), nil, &fakeScorer{})
	token := loginToken(t, s)

	rec := doJSON(t, s, http.MethodGet, "/admin/question-analytics", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[questionAnalyticsResponse](t, rec)

	require.NotEmpty(t, resp.Questions)
	for _, q := range resp.Questions {
		assert.Equal(t, 3, q.ResponseCount, q.QuestionKey)
	}
}

func TestQuestionAnalytics_RoleFilter(t *testing.T) {
	s := newTestServer(t, seededStore(), nil, &fakeScorer{})
	token := loginToken(t, s)

	rec := doJSON(t, s, http.MethodGet, "/admin/question-analytics?role=product-designer", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[questionAnalyticsResponse](t, rec)

	require.NotEmpty(t, resp.Questions)
	for _, q := range resp.Questions {
		assert.Equal(t, 1, q.ResponseCount, q.QuestionKey)
	}
}

func TestScoreApplication(t *testing.T) {
	store := seededStore()
	scorer := &fakeScorer{score: &types.CandidateScore{
		OverallScore:       82,
		SkillsScore:        85,
		ExperienceScore:    80,
		CommunicationScore: 78,
		CultureFitScore:    84,
		Reasoning:          "Strong backend background.",
	}}
	s := newTestServer(t, store, nil, scorer)
	token := loginToken(t, s)

	target := store.apps[1]
	rec := doJSON(t, s, http.MethodPost, "/admin/applications/"+target.ID.String()+"/score", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[types.CandidateScore](t, rec)
	assert.Equal(t, target.ID, resp.ApplicationID)
	assert.Equal(t, 82, resp.OverallScore)

	// The overall score is persisted on the application.
	require.NotNil(t, store.apps[1].Score)
	assert.Equal(t, 82, *store.apps[1].Score)
}

func TestScoreApplication_NotFound(t *testing.T) {
	s := newTestServer(t, seededStore(), nil, &fakeScorer{score: &types.CandidateScore{}})
	token := loginToken(t, s)

	rec := doJSON(t, s, http.MethodPost, "/admin/applications/"+uuid.NewString()+"/score", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScoreApplication_BadID(t *testing.T) {
	s := newTestServer(t, seededStore(), nil, &fakeScorer{score: &types.CandidateScore{}})
	token := loginToken(t, s)

	rec := doJSON(t, s, http.MethodPost, "/admin/applications/not-a-uuid/score", nil, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatus(t *testing.T) {
	store := seededStore()
	s := newTestServer(t, store, nil, &fakeScorer{})
	token := loginToken(t, s)

	target := store.apps[1]
	rec := doJSON(t, s, http.MethodPost, "/admin/applications/"+target.ID.String()+"/status",
		types.UpdateStatusRequest{Status: types.StatusShortlisted}, token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, types.StatusShortlisted, store.apps[1].Status)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	store := seededStore()
	s := newTestServer(t, store, nil, &fakeScorer{})
	token := loginToken(t, s)

	target := store.apps[0]
	rec := doJSON(t, s, http.MethodPost, "/admin/applications/"+target.ID.String()+"/status",
		map[string]string{"status": "hired"}, token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	s := newTestServer(t, seededStore(), nil, &fakeScorer{})
	token := loginToken(t, s)

	rec := doJSON(t, s, http.MethodPost, "/admin/applications/"+uuid.NewString()+"/status",
		types.UpdateStatusRequest{Status: types.StatusRejected}, token)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportCSV(t *testing.T) {
	s := newTestServer(t, seededStore(), nil, &fakeScorer{})
	token := loginToken(t, s)

	rec := doJSON(t, s, http.MethodGet, "/admin/export?format=csv", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header plus three applications")
	assert.Equal(t, "ID", records[0][0])
	assert.Equal(t, "Ada Lovelace", records[1][1])
}

func TestExportReport(t *testing.T) {
	s := newTestServer(t, seededStore(), nil, &fakeScorer{})
	token := loginToken(t, s)

	rec := doJSON(t, s, http.MethodGet, "/admin/export?format=report", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "JOB APPLICATIONS REPORT")
	assert.Contains(t, rec.Body.String(), "Total Applications: 3")
}

func TestExport_StatusFilter(t *testing.T) {
	s := newTestServer(t, seededStore(), nil, &fakeScorer{})
	token := loginToken(t, s)

	rec := doJSON(t, s, http.MethodGet, "/admin/export?format=csv&status=pending", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2, "header plus the single pending application")
}

func TestExport_RejectsUnknownFormat(t *testing.T) {
	s := newTestServer(t, seededStore(), nil, &fakeScorer{})
	token := loginToken(t, s)

	rec := doJSON(t, s, http.MethodGet, "/admin/export?format=docx", nil, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListApplications_StoreFailure(t *testing.T) {
	s := newTestServer(t, &fakeStore{listErr: fmt.Errorf("connection refused")}, nil, &fakeScorer{})
	token := loginToken(t, s)

	rec := doJSON(t, s, http.MethodGet, "/admin/applications", nil, token)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.NotContains(t, body["error"], "connection refused")
}
