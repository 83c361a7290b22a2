package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/config"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/db"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/generator"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/sequencer"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/server/ratelimit"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "correct horse battery staple"
)

// fakeStore is an in-memory ApplicationStore.
type fakeStore struct {
	apps      []types.StoredApplication
	createErr error
	listErr   error
}

func (f *fakeStore) CreateApplication(_ context.Context, role types.Role, answers []types.Answer) (*types.StoredApplication, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	now := time.Now()
	app := types.StoredApplication{
		ID:        uuid.New(),
		Role:      role,
		Answers:   answers,
		Status:    types.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// Prepend so listings stay newest-first like the real store.
	f.apps = append([]types.StoredApplication{app}, f.apps...)
	return &app, nil
}

func (f *fakeStore) GetApplication(_ context.Context, id uuid.UUID) (*types.StoredApplication, error) {
	for i := range f.apps {
		if f.apps[i].ID == id {
			return &f.apps[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) matching(role *types.Role, status *types.ApplicationStatus) []types.StoredApplication {
	var out []types.StoredApplication
	for _, app := range f.apps {
		if role != nil && app.Role != *role {
			continue
		}
		if status != nil && app.Status != *status {
			continue
		}
		out = append(out, app)
	}
	return out
}

func (f *fakeStore) ListApplications(_ context.Context, opts db.ListApplicationsOptions) ([]types.StoredApplication, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	matched := f.matching(opts.Role, opts.Status)
	total := len(matched)

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := opts.Offset
	if offset > len(matched) {
		offset = len(matched)
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (f *fakeStore) ListAllApplications(_ context.Context, role *types.Role, status *types.ApplicationStatus) ([]types.StoredApplication, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.matching(role, status), nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, id uuid.UUID, status types.ApplicationStatus) (bool, error) {
	for i := range f.apps {
		if f.apps[i].ID == id {
			f.apps[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) UpdateScore(_ context.Context, id uuid.UUID, score int) (bool, error) {
	for i := range f.apps {
		if f.apps[i].ID == id {
			s := score
			f.apps[i].Score = &s
			return true, nil
		}
	}
	return false, nil
}

// fakeProvider returns a canned generation outcome.
type fakeProvider struct {
	outcome *generator.Outcome
	err     error
	calls   int
}

func (f *fakeProvider) Next(context.Context, types.Role, []types.Answer) (*generator.Outcome, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.outcome, nil
}

// fakeScorer returns a canned assessment.
type fakeScorer struct {
	score *types.CandidateScore
	err   error
}

func (f *fakeScorer) Score(_ context.Context, app *types.StoredApplication) (*types.CandidateScore, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := *f.score
	s.ApplicationID = app.ID
	return &s, nil
}

// newTestServer wires a server around fakes with rate limiting disabled and a
// fixed admin account.
func newTestServer(t *testing.T, store ApplicationStore, provider QuestionProvider, scorer CandidateScorer) *Server {
	t.Helper()

	passwords := &config.PasswordConfig{BcryptCost: 10}
	hash, err := passwords.HashPassword(testAdminPassword)
	require.NoError(t, err)

	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	authHandler := NewAuthHandler(
		&config.AdminConfig{Email: testAdminEmail, PasswordHash: hash},
		passwords, jwtService)

	return newServer(store, provider, scorer, jwtService, authHandler,
		ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}))
}

func doJSON(t *testing.T, s *Server, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil, &fakeScorer{})

	rec := doJSON(t, s, http.MethodGet, "/health", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
}

func TestNextQuestion_RejectsUnknownRole(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil, &fakeScorer{})

	rec := doJSON(t, s, http.MethodPost, "/next-question", map[string]any{
		"role": "astronaut",
	}, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNextQuestion_RejectsDuplicateAnswerKeys(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil, &fakeScorer{})

	rec := doJSON(t, s, http.MethodPost, "/next-question", types.NextQuestionRequest{
		Role: types.RoleFrontendEngineer,
		Answers: []types.Answer{
			{Key: "name", Value: "Ada"},
			{Key: "name", Value: "Ada again"},
		},
	}, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNextQuestion_UsesProvider(t *testing.T) {
	provider := &fakeProvider{outcome: &generator.Outcome{
		Question: &types.Question{Key: "stack", Label: "Which stack?", Type: types.QuestionText, Required: true},
	}}
	s := newTestServer(t, &fakeStore{}, provider, &fakeScorer{})

	rec := doJSON(t, s, http.MethodPost, "/next-question", types.NextQuestionRequest{
		Role:    types.RoleBackendEngineer,
		Answers: []types.Answer{{Key: "name", Value: "Ada"}},
	}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[types.NextQuestionResponse](t, rec)
	require.NotNil(t, resp.Question)
	assert.Equal(t, "stack", resp.Question.Key)
	assert.Equal(t, 1, provider.calls)
}

func TestNextQuestion_FallsBackWhenProviderFails(t *testing.T) {
	provider := &fakeProvider{err: fmt.Errorf("model unavailable")}
	s := newTestServer(t, &fakeStore{}, provider, &fakeScorer{})

	rec := doJSON(t, s, http.MethodPost, "/next-question", types.NextQuestionRequest{
		Role: types.RoleBackendEngineer,
	}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[types.NextQuestionResponse](t, rec)
	require.NotNil(t, resp.Question)
	assert.Equal(t, "name", resp.Question.Key)
}

func TestNextQuestion_FallsBackWithoutProvider(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil, &fakeScorer{})

	rec := doJSON(t, s, http.MethodPost, "/next-question", types.NextQuestionRequest{
		Role:    types.RoleProductDesigner,
		Answers: []types.Answer{{Key: "name", Value: "Ada"}},
	}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[types.NextQuestionResponse](t, rec)
	require.NotNil(t, resp.Question)
	assert.Equal(t, "email", resp.Question.Key)
}

func TestNextQuestion_CapsAtSixAnswers(t *testing.T) {
	provider := &fakeProvider{outcome: &generator.Outcome{
		Question: &types.Question{Key: "extra", Label: "One more?", Type: types.QuestionText},
	}}
	s := newTestServer(t, &fakeStore{}, provider, &fakeScorer{})

	answers := make([]types.Answer, sequencer.TotalSteps)
	for i := range answers {
		answers[i] = types.Answer{Key: fmt.Sprintf("q%d", i), Value: "answered"}
	}
	rec := doJSON(t, s, http.MethodPost, "/next-question", types.NextQuestionRequest{
		Role:    types.RoleDataScientist,
		Answers: answers,
	}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[types.NextQuestionResponse](t, rec)
	assert.True(t, resp.Completed)
	assert.Equal(t, types.CompletionMessage, resp.Message)
	assert.Nil(t, resp.Question)
	assert.Zero(t, provider.calls, "provider must not be consulted past the cap")
}

func TestSubmitApplication_Stores(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(t, store, nil, &fakeScorer{})

	rec := doJSON(t, s, http.MethodPost, "/applications", types.SubmitApplicationRequest{
		Role: types.RoleFrontendEngineer,
		Answers: []types.Answer{
			{Key: "name", Value: "Ada Lovelace"},
			{Key: "email", Value: "ada@example.com"},
		},
	}, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[types.SubmitApplicationResponse](t, rec)
	assert.True(t, resp.Success)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	require.Len(t, store.apps, 1)
	assert.Equal(t, types.StatusPending, store.apps[0].Status)
}

func TestSubmitApplication_RequiresAnswers(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil, &fakeScorer{})

	rec := doJSON(t, s, http.MethodPost, "/applications", types.SubmitApplicationRequest{
		Role: types.RoleFrontendEngineer,
	}, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitApplication_StoreFailure(t *testing.T) {
	store := &fakeStore{createErr: fmt.Errorf("connection refused")}
	s := newTestServer(t, store, nil, &fakeScorer{})

	rec := doJSON(t, s, http.MethodPost, "/applications", types.SubmitApplicationRequest{
		Role:    types.RoleFrontendEngineer,
		Answers: []types.Answer{{Key: "name", Value: "Ada"}},
	}, "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "Failed to store application", body["error"])
	assert.NotContains(t, body["error"], "connection refused")
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil, &fakeScorer{})

	req := httptest.NewRequest(http.MethodOptions, "/next-question", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
