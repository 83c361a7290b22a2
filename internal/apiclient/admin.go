package apiclient

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/export"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// AdminClient is the authenticated dashboard client. Login stores the bearer
// token; every other call sends it.
type AdminClient struct {
	client *Client
	token  string
}

// NewAdmin creates an admin client for the given base URL.
func NewAdmin(baseURL string, opts *Options) *AdminClient {
	return &AdminClient{client: New(baseURL, opts)}
}

// SetToken installs a previously issued bearer token.
func (a *AdminClient) SetToken(token string) {
	a.token = token
}

// Login authenticates and stores the bearer token for subsequent calls.
func (a *AdminClient) Login(ctx context.Context, email, password string) error {
	var resp types.AdminLoginResponse
	err := a.client.doJSON(ctx, http.MethodPost, "/admin/login", nil, types.AdminLoginRequest{
		Email:    email,
		Password: password,
	}, "", &resp)
	if err != nil {
		return err
	}
	if !resp.Success || resp.Token == "" {
		return &Error{Endpoint: "/admin/login", Message: "login rejected"}
	}
	a.token = resp.Token
	return nil
}

// ListFilter narrows admin listing and export calls.
type ListFilter struct {
	Role   types.Role
	Status types.ApplicationStatus
	Limit  int
	Offset int
}

func (f ListFilter) query() url.Values {
	q := url.Values{}
	if f.Role != "" {
		q.Set("role", string(f.Role))
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", fmt.Sprintf("%d", f.Offset))
	}
	return q
}

// ListResult is one page of applications plus the total matching count.
type ListResult struct {
	Applications []types.StoredApplication `json:"applications"`
	Total        int                       `json:"total"`
}

// ListApplications fetches a filtered page of applications.
func (a *AdminClient) ListApplications(ctx context.Context, filter ListFilter) (*ListResult, error) {
	var resp ListResult
	if err := a.client.doJSON(ctx, http.MethodGet, "/admin/applications", filter.query(), nil, a.token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Analytics fetches the aggregate dashboard view.
func (a *AdminClient) Analytics(ctx context.Context) (*types.ApplicationAnalytics, error) {
	var resp types.ApplicationAnalytics
	if err := a.client.doJSON(ctx, http.MethodGet, "/admin/analytics", nil, nil, a.token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// QuestionAnalytics fetches per-question response statistics.
func (a *AdminClient) QuestionAnalytics(ctx context.Context, role types.Role) ([]types.QuestionAnalytics, error) {
	q := url.Values{}
	if role != "" {
		q.Set("role", string(role))
	}
	var resp struct {
		Questions []types.QuestionAnalytics `json:"questions"`
	}
	if err := a.client.doJSON(ctx, http.MethodGet, "/admin/question-analytics", q, nil, a.token, &resp); err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

// Dashboard is everything the admin landing view needs in one fetch.
type Dashboard struct {
	Applications []types.StoredApplication
	Total        int
	Overview     types.ApplicationAnalytics
	Questions    []types.QuestionAnalytics
}

// FetchDashboard loads the listing, overview, and question statistics
// concurrently. The reads are independent and unordered; any failure cancels
// the rest.
func (a *AdminClient) FetchDashboard(ctx context.Context, filter ListFilter) (*Dashboard, error) {
	var dash Dashboard

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := a.ListApplications(ctx, filter)
		if err != nil {
			return err
		}
		dash.Applications = result.Applications
		dash.Total = result.Total
		return nil
	})
	g.Go(func() error {
		overview, err := a.Analytics(ctx)
		if err != nil {
			return err
		}
		dash.Overview = *overview
		return nil
	})
	g.Go(func() error {
		questions, err := a.QuestionAnalytics(ctx, filter.Role)
		if err != nil {
			return err
		}
		dash.Questions = questions
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}

// ScoreApplication runs the AI assessment for one application.
func (a *AdminClient) ScoreApplication(ctx context.Context, id uuid.UUID) (*types.CandidateScore, error) {
	var resp types.CandidateScore
	path := fmt.Sprintf("/admin/applications/%s/score", id)
	if err := a.client.doJSON(ctx, http.MethodPost, path, nil, nil, a.token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ScoreBatch scores the given applications one at a time with a fixed delay
// between calls, keeping the provider under its rate limits. Individual
// failures are logged and skipped; the batch keeps going.
func (a *AdminClient) ScoreBatch(ctx context.Context, ids []uuid.UUID, delay time.Duration) ([]types.CandidateScore, error) {
	scores := make([]types.CandidateScore, 0, len(ids))
	for i, id := range ids {
		if i > 0 && delay > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return scores, ctx.Err()
			}
		}

		score, err := a.ScoreApplication(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return scores, ctx.Err()
			}
			log.Printf("[score-batch] %s failed: %v", id, err)
			continue
		}
		scores = append(scores, *score)
	}
	return scores, nil
}

// UpdateStatus moves an application through the review pipeline.
func (a *AdminClient) UpdateStatus(ctx context.Context, id uuid.UUID, status types.ApplicationStatus) error {
	path := fmt.Sprintf("/admin/applications/%s/status", id)
	return a.client.doJSON(ctx, http.MethodPost, path, nil, types.UpdateStatusRequest{Status: status}, a.token, nil)
}

// Export downloads all matching applications in the given format.
func (a *AdminClient) Export(ctx context.Context, format export.Format, filter ListFilter) ([]byte, error) {
	q := filter.query()
	q.Set("format", string(format))

	endpoint := a.client.baseURL + "/admin/export?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &Error{Endpoint: "/admin/export", Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+a.token)

	resp, err := a.client.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Endpoint: "/admin/export", Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Endpoint: "/admin/export", Message: errorMessage(resp)}
	}
	return io.ReadAll(resp.Body)
}
