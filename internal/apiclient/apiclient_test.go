package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/export"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestNextQuestion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/next-question", r.URL.Path)

		var req types.NextQuestionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, types.RoleBackendEngineer, req.Role)

		writeJSON(t, w, http.StatusOK, types.NextQuestionResponse{
			Question: &types.Question{Key: "email", Label: "What is your email address?", Type: types.QuestionText},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	resp, err := c.NextQuestion(context.Background(), types.RoleBackendEngineer, []types.Answer{{Key: "name", Value: "Ada"}})
	require.NoError(t, err)
	require.NotNil(t, resp.Question)
	assert.Equal(t, "email", resp.Question.Key)
}

func TestNextQuestion_SurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"error": "validation error: role - unknown role"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.NextQuestion(context.Background(), "astronaut", nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "unknown role")
}

func TestSubmit(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/applications", r.URL.Path)
		writeJSON(t, w, http.StatusCreated, types.SubmitApplicationResponse{Success: true, ID: id})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	resp, err := c.Submit(context.Background(), types.RoleFrontendEngineer, []types.Answer{{Key: "name", Value: "Ada"}})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, id, resp.ID)
}

func TestAdminLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/login":
			writeJSON(t, w, http.StatusOK, types.AdminLoginResponse{Success: true, Token: "issued-token"})
		case "/admin/analytics":
			assert.Equal(t, "Bearer issued-token", r.Header.Get("Authorization"))
			writeJSON(t, w, http.StatusOK, types.ApplicationAnalytics{TotalApplications: 7})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	a := NewAdmin(srv.URL, nil)
	require.NoError(t, a.Login(context.Background(), "admin@example.com", "secret"))

	overview, err := a.Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, overview.TotalApplications)
}

func TestAdminLogin_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, types.AdminLoginResponse{Success: false, Error: "Invalid credentials"})
	}))
	defer srv.Close()

	a := NewAdmin(srv.URL, nil)
	err := a.Login(context.Background(), "admin@example.com", "wrong")
	require.Error(t, err)
}

func TestListApplications_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "backend-engineer", r.URL.Query().Get("role"))
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		writeJSON(t, w, http.StatusOK, ListResult{Total: 1})
	}))
	defer srv.Close()

	a := NewAdmin(srv.URL, nil)
	a.SetToken("token")

	result, err := a.ListApplications(context.Background(), ListFilter{
		Role:   types.RoleBackendEngineer,
		Status: types.StatusPending,
		Limit:  25,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
}

func TestFetchDashboard(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/admin/applications":
			writeJSON(t, w, http.StatusOK, ListResult{
				Applications: []types.StoredApplication{{ID: uuid.New(), Role: types.RoleBackendEngineer}},
				Total:        4,
			})
		case "/admin/analytics":
			writeJSON(t, w, http.StatusOK, types.ApplicationAnalytics{TotalApplications: 4, CompletionRate: 100})
		case "/admin/question-analytics":
			writeJSON(t, w, http.StatusOK, map[string]any{
				"questions": []types.QuestionAnalytics{{QuestionKey: "name", ResponseCount: 4}},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := NewAdmin(srv.URL, nil)
	a.SetToken("token")

	dash, err := a.FetchDashboard(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 4, dash.Total)
	assert.Len(t, dash.Applications, 1)
	assert.Equal(t, 100, dash.Overview.CompletionRate)
	require.Len(t, dash.Questions, 1)
	assert.Equal(t, "name", dash.Questions[0].QuestionKey)
}

func TestFetchDashboard_PropagatesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/admin/analytics" {
			writeJSON(t, w, http.StatusInternalServerError, map[string]string{"error": "boom"})
			return
		}
		writeJSON(t, w, http.StatusOK, ListResult{})
	}))
	defer srv.Close()

	a := NewAdmin(srv.URL, nil)
	a.SetToken("token")

	_, err := a.FetchDashboard(context.Background(), ListFilter{})
	require.Error(t, err)
}

func TestScoreBatch_SkipsFailures(t *testing.T) {
	failing := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/admin/applications/"+failing.String()+"/score" {
			writeJSON(t, w, http.StatusInternalServerError, map[string]string{"error": "scoring failed"})
			return
		}
		writeJSON(t, w, http.StatusOK, types.CandidateScore{OverallScore: 75})
	}))
	defer srv.Close()

	a := NewAdmin(srv.URL, nil)
	a.SetToken("token")

	ids := []uuid.UUID{uuid.New(), failing, uuid.New()}
	scores, err := a.ScoreBatch(context.Background(), ids, 0)
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

func TestScoreBatch_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, types.CandidateScore{OverallScore: 75})
	}))
	defer srv.Close()

	a := NewAdmin(srv.URL, nil)
	a.SetToken("token")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.ScoreBatch(ctx, []uuid.UUID{uuid.New(), uuid.New()}, 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestUpdateStatus(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/applications/"+id.String()+"/status", r.URL.Path)

		var req types.UpdateStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, types.StatusShortlisted, req.Status)

		writeJSON(t, w, http.StatusOK, map[string]any{"success": true})
	}))
	defer srv.Close()

	a := NewAdmin(srv.URL, nil)
	a.SetToken("token")
	require.NoError(t, a.UpdateStatus(context.Background(), id, types.StatusShortlisted))
}

func TestExport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("ID,Name\n"))
	}))
	defer srv.Close()

	a := NewAdmin(srv.URL, nil)
	a.SetToken("token")

	data, err := a.Export(context.Background(), export.FormatCSV, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, "ID,Name\n", string(data))
}
