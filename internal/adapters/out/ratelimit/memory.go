// Package ratelimit provides rate limiter implementations.
package ratelimit

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/bnema/hoard/internal/boundaries/out"
)

// Ensure MemoryStore implements out.RateLimiter.
var _ out.RateLimiter = (*MemoryStore)(nil)

// MemoryStore is an in-memory rate limiter using golang.org/x/time/rate.
// Each unique key gets its own independent limiter.
type MemoryStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rps      float64
	burst    int
	log      *log.Logger
}

// NewMemoryStore creates a new in-memory rate limiter store. A non-positive
// rps disables limiting.
func NewMemoryStore(rps float64, burst int, logger *log.Logger) *MemoryStore {
	if burst < 1 {
		burst = 1
	}
	return &MemoryStore{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
		log:      logger,
	}
}

// Wait blocks until a request identified by key is allowed.
func (s *MemoryStore) Wait(ctx context.Context, key string) error {
	limiter := s.getLimiter(key)
	if limiter.Tokens() < 1 {
		s.log.Debug("rate limited, waiting", "key", key)
	}
	return limiter.Wait(ctx)
}

// getLimiter returns the rate limiter for the given key, creating one if it doesn't exist.
func (s *MemoryStore) getLimiter(key string) *rate.Limiter {
	s.mu.RLock()
	limiter, exists := s.limiters[key]
	s.mu.RUnlock()

	if exists {
		return limiter
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists = s.limiters[key]; exists {
		return limiter
	}

	limit := rate.Limit(s.rps)
	if s.rps <= 0 {
		limit = rate.Inf
	}
	limiter = rate.NewLimiter(limit, s.burst)
	s.limiters[key] = limiter
	return limiter
}
