// Package server provides the HTTP REST API for the application system.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/config"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/db"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/generator"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/llm"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/scoring"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/server/middleware"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/server/ratelimit"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// ApplicationStore is the persistence boundary used by the handlers.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, role types.Role, answers []types.Answer) (*types.StoredApplication, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*types.StoredApplication, error)
	ListApplications(ctx context.Context, opts db.ListApplicationsOptions) ([]types.StoredApplication, int, error)
	ListAllApplications(ctx context.Context, role *types.Role, status *types.ApplicationStatus) ([]types.StoredApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status types.ApplicationStatus) (bool, error)
	UpdateScore(ctx context.Context, id uuid.UUID, score int) (bool, error)
}

// QuestionProvider generates the next question for a candidate.
type QuestionProvider interface {
	Next(ctx context.Context, role types.Role, answers []types.Answer) (*generator.Outcome, error)
}

// CandidateScorer produces the AI assessment for one application.
type CandidateScorer interface {
	Score(ctx context.Context, app *types.StoredApplication) (*types.CandidateScore, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       ApplicationStore
	provider    QuestionProvider
	scorer      CandidateScorer
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	authHandler *AuthHandler
	llmClient   llm.Client
	database    *db.DB
}

// Config holds server configuration
type Config struct {
	Addr        string
	DatabaseURL string
}

// New creates a fully wired server instance: PostgreSQL storage, the
// configured LLM provider, and admin authentication from the environment.
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(context.Background()); err != nil {
		database.Close()
		return nil, err
	}

	var provider QuestionProvider
	var scorer CandidateScorer
	var client llm.Client

	llmConfig, err := llm.ConfigFromEnv()
	if err != nil {
		database.Close()
		return nil, err
	}
	if apiKey := llmConfig.APIKeyFromEnv(); apiKey != "" {
		client, err = llm.NewClient(context.Background(), llmConfig, apiKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		provider = generator.New(client)
		scorer = scoring.New(client)
	} else {
		// Without a key the question bank serves everything and scoring
		// returns placeholder assessments.
		log.Printf("[server] no LLM API key configured, generation falls back to the question bank")
		scorer = scoring.New(unavailableClient{})
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	adminConfig, err := config.NewAdminConfig(passwordConfig)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create admin config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	jwtService := NewJWTService(jwtConfig)
	s := newServer(database, provider, scorer,
		jwtService,
		NewAuthHandler(adminConfig, passwordConfig, jwtService),
		ratelimit.NewLimiter(ratelimit.LoadConfig()))
	s.database = database
	s.llmClient = client
	s.httpServer.Addr = cfg.Addr
	return s, nil
}

// newServer wires the router and middleware around the given collaborators.
func newServer(store ApplicationStore, provider QuestionProvider, scorer CandidateScorer,
	jwtService *JWTService, authHandler *AuthHandler, limiter *ratelimit.Limiter) *Server {

	s := &Server{
		store:       store,
		provider:    provider,
		scorer:      scorer,
		rateLimiter: limiter,
		jwtService:  jwtService,
		authHandler: authHandler,
	}

	mux := http.NewServeMux()

	// Public application flow
	mux.HandleFunc("POST /next-question", s.handleNextQuestion)
	mux.HandleFunc("POST /applications", s.handleSubmitApplication)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Admin surface; everything except login requires a bearer token
	mux.HandleFunc("POST /admin/login", s.handleAdminLogin)

	auth := middleware.AuthMiddleware(jwtService.AsTokenValidator())
	mux.Handle("GET /admin/applications", auth(http.HandlerFunc(s.handleListApplications)))
	mux.Handle("GET /admin/analytics", auth(http.HandlerFunc(s.handleAnalytics)))
	mux.Handle("GET /admin/question-analytics", auth(http.HandlerFunc(s.handleQuestionAnalytics)))
	mux.Handle("POST /admin/applications/{id}/score", auth(http.HandlerFunc(s.handleScoreApplication)))
	mux.Handle("POST /admin/applications/{id}/status", auth(http.HandlerFunc(s.handleUpdateStatus)))
	mux.Handle("GET /admin/export", auth(http.HandlerFunc(s.handleExport)))

	s.httpServer = &http.Server{
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the middleware-wrapped router.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

// unavailableClient stands in when no LLM API key is configured.
type unavailableClient struct{}

func (unavailableClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return "", fmt.Errorf("no LLM API key configured")
}
func (unavailableClient) GetModel(llm.ModelTier) string { return "" }
func (unavailableClient) Close() error                  { return nil }
