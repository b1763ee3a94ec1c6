// Package server provides the HTTP REST API for the interview assistant.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/interview-assistant/internal/agent"
	"github.com/jonathan/interview-assistant/internal/analytics"
	"github.com/jonathan/interview-assistant/internal/config"
	"github.com/jonathan/interview-assistant/internal/db"
	"github.com/jonathan/interview-assistant/internal/hrdata"
	"github.com/jonathan/interview-assistant/internal/llm"
	"github.com/jonathan/interview-assistant/internal/server/middleware"
	"github.com/jonathan/interview-assistant/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter

	llmClient   llm.Client
	runner      *agent.Runner
	coordinator *agent.Coordinator
	analytics   *analytics.Service
	batchLimit  int

	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string // Gemini API key; agent endpoints are disabled when empty
	ModelTier   string
	BatchLimit  int
}

// New creates a new server instance
func New(cfg Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:         database,
		logger:     logger,
		analytics:  analytics.NewService(database),
		batchLimit: cfg.BatchLimit,
	}
	if s.batchLimit < 1 {
		s.batchLimit = config.DefaultBatchLimit
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Agent pipeline. Without an API key the server still serves records and
	// analytics; generation-backed endpoints return 503.
	if cfg.APIKey != "" {
		client, err := llm.NewClient(context.Background(), llm.DefaultGeminiConfig(), cfg.APIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create generation client: %w", err)
		}
		s.llmClient = client

		gen := llm.NewStageGenerator(client, llm.ModelTier(cfg.ModelTier))
		s.runner = agent.NewRunner(gen, hrdata.NewStore(database), s.analytics,
			agent.WithLogger(logger))
		s.coordinator = agent.NewCoordinator(s.runner,
			agent.WithCoordinatorLogger(logger))
	}

	// Authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // long timeout for pipeline runs
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request multiplexer
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux.HandleFunc("GET /health", s.handleHealth)

	// Authentication
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("PUT /auth/password", requireAuth(http.HandlerFunc(s.handleUpdatePassword)))

	// Employee records
	mux.HandleFunc("POST /employees", s.handleCreateEmployee)
	mux.HandleFunc("GET /employees", s.handleListEmployees)
	mux.HandleFunc("GET /employees/{id}", s.handleGetEmployee)
	mux.HandleFunc("PUT /employees/{id}", s.handleUpdateEmployee)
	mux.HandleFunc("DELETE /employees/{id}", s.handleDeleteEmployee)
	mux.HandleFunc("POST /employees/{id}/ratings", s.handleAddRating)
	mux.HandleFunc("GET /employees/{id}/trends", s.handleEmployeeTrends)

	// Interview records
	mux.HandleFunc("POST /interviews", s.handleCreateInterview)
	mux.HandleFunc("GET /interviews", s.handleListInterviews)
	mux.HandleFunc("GET /interviews/{id}", s.handleGetInterview)
	mux.HandleFunc("DELETE /interviews/{id}", s.handleDeleteInterview)
	mux.HandleFunc("PUT /interviews/{id}/responses", s.handleSaveResponses)

	// Agent pipeline stages
	mux.HandleFunc("POST /interviews/batch", s.handleRunBatch)
	mux.HandleFunc("POST /interviews/{id}/questions", s.handleGenerateQuestions)
	mux.HandleFunc("GET /interviews/{id}/questions", s.handleGetQuestions)
	mux.HandleFunc("POST /interviews/{id}/analysis", s.handleAnalyzeResponses)
	mux.HandleFunc("GET /interviews/{id}/analysis", s.handleGetAnalysis)
	mux.HandleFunc("POST /interviews/{id}/recommendations", s.handleRecommend)
	mux.HandleFunc("GET /interviews/{id}/recommendations", s.handleGetRecommendations)
	mux.HandleFunc("POST /interviews/{id}/run", s.handleRunPipeline)

	// Analytics and the question bank
	mux.HandleFunc("GET /questions", s.handleListQuestionBank)
	mux.HandleFunc("GET /departments/{department}/benchmarks", s.handleBenchmarks)

	return mux
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	if s.llmClient != nil {
		//nolint:errcheck // shutting down anyway
		s.llmClient.Close()
	}
	s.db.Close()

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpdatePassword handles password update requests for the authenticated user
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.UpdatePasswordWithUserID(w, r, userID)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request. The IP
// from RemoteAddr is used; X-Forwarded-For is deliberately not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
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

	s.logger.Warn("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Time("reset_at", info.ResetTime),
	)
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
