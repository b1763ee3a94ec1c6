package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/interviews/", Method: "POST", Limit: 30, Window: time.Hour, Burst: 2},
			{Path: "/interviews/batch", Method: "POST", Limit: 5, Window: time.Hour, Burst: 1},
			{Path: "/auth/", Method: "POST", Limit: 20, Window: time.Minute, Burst: 3},
		},
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 1000; i++ {
		allowed, _ := limiter.Allow("client", "/interviews/abc/run", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_BurstExhaustion(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	// Burst of 2 on the generation endpoints
	allowed, info := limiter.Allow("client", "/interviews/abc/run", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 30, info.Limit)

	allowed, _ = limiter.Allow("client", "/interviews/abc/run", "POST")
	assert.True(t, allowed)

	allowed, info = limiter.Allow("client", "/interviews/abc/run", "POST")
	assert.False(t, allowed)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Second)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	allowed, _ := limiter.Allow("alice", "/interviews/batch", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("alice", "/interviews/batch", "POST")
	require.False(t, allowed)

	// A different client still has a full bucket
	allowed, _ = limiter.Allow("bob", "/interviews/batch", "POST")
	assert.True(t, allowed)
}

func TestLimiter_UnmatchedEndpointUsesDefault(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	allowed, info := limiter.Allow("client", "/employees", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 100, info.Limit)
}

func TestConfig_LongestPrefixWins(t *testing.T) {
	cfg := testConfig()

	limit, _, burst := cfg.match("/interviews/batch", "POST")
	assert.Equal(t, 5, limit)
	assert.Equal(t, 1, burst)

	limit, _, burst = cfg.match("/interviews/abc123/questions", "POST")
	assert.Equal(t, 30, limit)
	assert.Equal(t, 2, burst)
}

func TestConfig_MethodMustMatch(t *testing.T) {
	cfg := testConfig()

	limit, window, _ := cfg.match("/interviews/abc123", "GET")
	assert.Equal(t, cfg.DefaultLimit, limit)
	assert.Equal(t, cfg.DefaultWindow, window)
}

func TestConfig_BurstDefaultsToLimit(t *testing.T) {
	cfg := &Config{
		Enabled:       true,
		DefaultLimit:  50,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/auth/", Method: "POST", Limit: 7, Window: time.Minute},
		},
	}

	_, _, burst := cfg.match("/auth/login", "POST")
	assert.Equal(t, 7, burst)
}

func TestLoadConfig_DisabledByEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.NotEmpty(t, cfg.EndpointConfigs)
}

func TestTokenBucket_Refills(t *testing.T) {
	// 100 tokens/second refill so the test does not need to sleep long
	bucket := newTokenBucket(1, 100)

	allowed, _, _ := bucket.take()
	require.True(t, allowed)
	allowed, _, _ = bucket.take()
	require.False(t, allowed)

	time.Sleep(50 * time.Millisecond)
	allowed, _, _ = bucket.take()
	assert.True(t, allowed)
}
