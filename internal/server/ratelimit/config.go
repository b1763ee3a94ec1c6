package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate limit for one endpoint class. Paths match by
// prefix; the longest matching prefix wins.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per window
	Window time.Duration
	Burst  int           // burst capacity, defaults to Limit
}

// Config holds the limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	EndpointConfigs []EndpointConfig
}

// LoadConfig loads limiter configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits. Generation-backed
// endpoints are the expensive tier; writes are moderate; reads use the
// default limit.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Generation-backed pipeline stages
		{Path: "/interviews/batch", Method: "POST", Limit: 5, Window: time.Hour, Burst: 1},
		{Path: "/interviews/", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},

		// Auth and record writes
		{Path: "/auth/", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/employees", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/employees/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/employees/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/interviews", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/interviews/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/interviews/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
	}
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
