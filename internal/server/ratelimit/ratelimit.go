// Package ratelimit provides a per-client token bucket limiter for the
// pledge endpoint. Campaign launches arrive in bursts, so the bucket allows
// short spikes while holding a steady refill rate.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config controls the limiter.
type Config struct {
	Enabled    bool
	Burst      int     // bucket capacity
	RefillRate float64 // tokens per second
}

// LoadConfig reads limiter settings from the environment.
func LoadConfig() Config {
	cfg := Config{Enabled: true, Burst: 10, RefillRate: 2}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Burst = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RefillRate = f
		}
	}
	return cfg
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// Limiter tracks one token bucket per client id.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	cfg     Config
}

// NewLimiter creates a limiter with the given config.
func NewLimiter(cfg Config) *Limiter {
	return &Limiter{buckets: make(map[string]*bucket), cfg: cfg}
}

// Allow reports whether the client may proceed, consuming a token if so.
func (l *Limiter) Allow(clientID string) bool {
	if !l.cfg.Enabled {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Burst), lastRefill: now}
		l.buckets[clientID] = b
	}

	b.tokens += now.Sub(b.lastRefill).Seconds() * l.cfg.RefillRate
	if b.tokens > float64(l.cfg.Burst) {
		b.tokens = float64(l.cfg.Burst)
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Prune drops buckets idle longer than maxIdle. Callers run it periodically
// to bound memory on long-lived processes.
func (l *Limiter) Prune(maxIdle time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	for id, b := range l.buckets {
		if b.lastRefill.Before(cutoff) {
			delete(l.buckets, id)
		}
	}
}
