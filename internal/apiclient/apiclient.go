// Package apiclient provides typed HTTP clients for the application API:
// a public client driving the candidate flow and an admin client for the
// dashboard and review operations.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Error represents a failed API call.
type Error struct {
	Endpoint string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("api error for %s: %s: %v", e.Endpoint, e.Message, e.Cause)
	}
	return fmt.Sprintf("api error for %s: %s", e.Endpoint, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures client behavior.
type Options struct {
	Timeout    time.Duration
	HTTPClient *http.Client
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{Timeout: DefaultTimeout}
}

// Client is the public application-flow client. It implements the
// flow.QuestionService boundary.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a public client for the given base URL.
func New(baseURL string, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// NextQuestion asks the backend for the next question in the flow.
func (c *Client) NextQuestion(ctx context.Context, role types.Role, answers []types.Answer) (*types.NextQuestionResponse, error) {
	var resp types.NextQuestionResponse
	err := c.doJSON(ctx, http.MethodPost, "/next-question", nil, types.NextQuestionRequest{
		Role:    role,
		Answers: answers,
	}, "", &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Submit stores a completed application.
func (c *Client) Submit(ctx context.Context, role types.Role, answers []types.Answer) (*types.SubmitApplicationResponse, error) {
	var resp types.SubmitApplicationResponse
	err := c.doJSON(ctx, http.MethodPost, "/applications", nil, types.SubmitApplicationRequest{
		Role:    role,
		Answers: answers,
	}, "", &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health checks the backend is reachable.
func (c *Client) Health(ctx context.Context) error {
	var resp map[string]string
	return c.doJSON(ctx, http.MethodGet, "/health", nil, nil, "", &resp)
}

// doJSON executes one JSON round trip. A non-2xx status is an error; the
// server's error message is surfaced when the body carries one.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body any, token string, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &Error{Endpoint: path, Message: "failed to encode request", Cause: err}
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return &Error{Endpoint: path, Message: "failed to create request", Cause: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Endpoint: path, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Endpoint: path, Message: errorMessage(resp)}
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Endpoint: path, Message: "failed to decode response", Cause: err}
		}
	}
	return nil
}

// errorMessage extracts the server error string from a failed response.
func errorMessage(resp *http.Response) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return fmt.Sprintf("HTTP status %d: %s", resp.StatusCode, payload.Error)
	}
	return fmt.Sprintf("HTTP status %d", resp.StatusCode)
}
