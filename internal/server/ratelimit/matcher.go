package ratelimit

import (
	"strings"
	"time"
)

// match returns the limit, window, and burst capacity for the request.
// Endpoint configs match by path prefix and method; the longest matching
// prefix wins. Requests with no matching config use the default limit.
func (c *Config) match(path, method string) (int, time.Duration, int) {
	best := c.bestMatch(path, method)
	if best == nil {
		return c.DefaultLimit, c.DefaultWindow, c.DefaultLimit
	}

	burst := best.Burst
	if burst <= 0 {
		burst = best.Limit
	}
	return best.Limit, best.Window, burst
}

// classKey returns the bucket key component for the endpoint class the
// request falls into. Requests in the same class share a bucket per client.
func (c *Config) classKey(path, method string) string {
	if best := c.bestMatch(path, method); best != nil {
		return best.Path
	}
	return "default"
}

func (c *Config) bestMatch(path, method string) *EndpointConfig {
	var best *EndpointConfig
	for i := range c.EndpointConfigs {
		ec := &c.EndpointConfigs[i]
		if !strings.EqualFold(ec.Method, method) {
			continue
		}
		if !strings.HasPrefix(path, ec.Path) {
			continue
		}
		if best == nil || len(ec.Path) > len(best.Path) {
			best = ec
		}
	}
	return best
}
