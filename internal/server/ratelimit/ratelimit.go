// Package ratelimit provides per-client request rate limiting using a token
// bucket per client and endpoint class.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket refills at a steady rate up to its capacity. One token is
// consumed per allowed request.
type tokenBucket struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	now := time.Now()
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastSeen:   now,
	}
}

func (b *tokenBucket) refillLocked(now time.Time) {
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(float64(b.capacity), b.tokens+elapsed*b.refillRate)
	b.lastRefill = now
}

// take consumes a token if one is available and reports the bucket state.
func (b *tokenBucket) take() (allowed bool, remaining int, resetTime time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refillLocked(now)
	b.lastSeen = now

	if b.tokens >= 1.0 {
		b.tokens--
		allowed = true
	}

	remaining = int(b.tokens)
	resetTime = now
	if b.tokens < float64(b.capacity) {
		secondsUntilFull := (float64(b.capacity) - b.tokens) / b.refillRate
		resetTime = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return allowed, remaining, resetTime
}

// Info describes the rate limit state returned with each decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter tracks token buckets per client and endpoint class.
type Limiter struct {
	mu      sync.Mutex
	config  *Config
	buckets map[string]*tokenBucket
	done    chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(config *Config) *Limiter {
	l := &Limiter{
		config:  config,
		buckets: make(map[string]*tokenBucket),
		done:    make(chan struct{}),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether the client may perform the request. The decision is
// per client and per endpoint class; unknown endpoints use the default limit.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	limit, window, burst := l.config.match(path, method)
	key := clientID + "|" + method + "|" + l.config.classKey(path, method)

	l.mu.Lock()
	bucket, ok := l.buckets[key]
	if !ok {
		bucket = newTokenBucket(burst, float64(limit)/window.Seconds())
		l.buckets[key] = bucket
	}
	l.mu.Unlock()

	allowed, remaining, resetTime := bucket.take()
	info := Info{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: remaining,
		ResetTime: resetTime,
	}
	if !allowed {
		info.RetryAfter = time.Until(resetTime)
		if info.RetryAfter < time.Second {
			info.RetryAfter = time.Second
		}
	}
	return allowed, info
}

// Stop terminates the cleanup loop
func (l *Limiter) Stop() {
	select {
	case <-l.done:
	default:
		close(l.done)
	}
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.removeIdleBuckets()
		}
	}
}

// removeIdleBuckets drops buckets not used for two cleanup intervals
func (l *Limiter) removeIdleBuckets() {
	cutoff := time.Now().Add(-2 * l.config.CleanupInterval)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, bucket := range l.buckets {
		bucket.mu.Lock()
		idle := bucket.lastSeen.Before(cutoff)
		bucket.mu.Unlock()
		if idle {
			delete(l.buckets, key)
		}
	}
}
