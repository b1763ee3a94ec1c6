package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/interview-assistant/internal/config"
	"github.com/jonathan/interview-assistant/internal/server/ratelimit"
)

// testServer builds a Server without a database connection. Handlers that
// need the database are not exercised here; see the integration tests.
func testServer(t *testing.T) *Server {
	t.Helper()

	userService := NewUserService(newFakeUserStore(), testPasswordConfig())
	jwtService := NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-for-unit-tests",
		ExpirationHours: 24,
	})

	s := &Server{
		logger:      zap.NewNop(),
		rateLimiter: ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
		jwtService:  jwtService,
		userService: userService,
		authHandler: NewAuthHandler(userService, jwtService),
		batchLimit:  config.DefaultBatchLimit,
	}
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func (s *Server) testHandler() http.Handler {
	return s.withRateLimit(s.withLogging(s.withCORS(s.routes())))
}

func TestServer_Health(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.testHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestServer_CORSPreflight(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/employees", nil)
	rec := httptest.NewRecorder()
	s.testHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_GenerationEndpointsUnavailableWithoutAPIKey(t *testing.T) {
	s := testServer(t)
	id := uuid.New().String()

	paths := []string{
		"/interviews/" + id + "/questions",
		"/interviews/" + id + "/analysis",
		"/interviews/" + id + "/recommendations",
		"/interviews/" + id + "/run",
		"/interviews/batch",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()
		s.testHandler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
}

func TestServer_PasswordUpdateRequiresAuth(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPut, "/auth/password", nil)
	rec := httptest.NewRecorder()
	s.testHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_RateLimitHeadersAndRejection(t *testing.T) {
	s := testServer(t)
	s.rateLimiter.Stop()
	s.rateLimiter = ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})
	t.Cleanup(s.rateLimiter.Stop)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "198.51.100.7:5000"
	rec := httptest.NewRecorder()
	s.testHandler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))

	rec = httptest.NewRecorder()
	s.testHandler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "rate_limit_exceeded")
}

func TestServer_ExtractClientID(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "203.0.113.9:61532"
	assert.Equal(t, "203.0.113.9", s.extractClientID(req))

	req.RemoteAddr = "no-port-here"
	assert.Equal(t, "no-port-here", s.extractClientID(req))
}
