// Package ratelimit provides client-side request pacing so that bursts of
// API calls never trip the server's limits.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter paces requests against one limit.
type Limiter interface {
	// Wait blocks until a request is allowed or the context ends.
	Wait(ctx context.Context) error
	// Allow reports whether a request is allowed right now, consuming one
	// slot when it is.
	Allow() bool
	// Remaining returns the number of requests currently allowed without
	// waiting.
	Remaining() int
}

// TokenBucket is a token-bucket Limiter: capacity tokens, refilled at
// refillRate tokens per second.
type TokenBucket struct {
	capacity   int
	tokens     int
	refillRate int
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a full bucket.
func NewTokenBucket(capacity, refillRate int) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// refill is called with mu held.
func (tb *TokenBucket) refill() {
	now := time.Now()
	added := int(now.Sub(tb.lastRefill).Seconds()) * tb.refillRate
	if added > 0 {
		tb.tokens = min(tb.capacity, tb.tokens+added)
		tb.lastRefill = now
	}
}

func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.refill()
	if tb.tokens > 0 {
		tb.tokens--
		return true
	}
	return false
}

func (tb *TokenBucket) Remaining() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.refill()
	return tb.tokens
}

func (tb *TokenBucket) Wait(ctx context.Context) error {
	for {
		if tb.Allow() {
			return nil
		}
		wait := time.Second
		if tb.refillRate > 0 {
			wait = time.Second / time.Duration(tb.refillRate)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// SlidingWindow is a Limiter allowing at most limit requests per window.
type SlidingWindow struct {
	limit    int
	window   time.Duration
	requests []time.Time
	mu       sync.Mutex
}

// NewSlidingWindow creates an empty window.
func NewSlidingWindow(limit int, window time.Duration) *SlidingWindow {
	return &SlidingWindow{limit: limit, window: window}
}

func (sw *SlidingWindow) Allow() bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-sw.window)
	kept := sw.requests[:0]
	for _, r := range sw.requests {
		if r.After(cutoff) {
			kept = append(kept, r)
		}
	}
	sw.requests = kept

	if len(sw.requests) >= sw.limit {
		return false
	}
	sw.requests = append(sw.requests, now)
	return true
}

func (sw *SlidingWindow) Remaining() int {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	cutoff := time.Now().Add(-sw.window)
	active := 0
	for _, r := range sw.requests {
		if r.After(cutoff) {
			active++
		}
	}
	return max(sw.limit-active, 0)
}

func (sw *SlidingWindow) Wait(ctx context.Context) error {
	for {
		if sw.Allow() {
			return nil
		}
		sw.mu.Lock()
		wait := 100 * time.Millisecond
		if len(sw.requests) > 0 {
			if until := sw.window - time.Since(sw.requests[0]); until > 0 {
				wait = until
			}
		}
		sw.mu.Unlock()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// Group identifies a family of API endpoints sharing one limiter.
type Group string

const (
	GroupAccount Group = "account"
	GroupMarket  Group = "market"
	GroupInfo    Group = "info"
)

// Manager holds one limiter per endpoint group. The defaults are generous
// enough to never bind in normal interactive use; they only smooth bursts.
type Manager struct {
	limiters map[Group]Limiter
	fallback Limiter
	mu       sync.RWMutex
}

// NewManager creates a manager with default per-group limits.
func NewManager() *Manager {
	return &Manager{
		limiters: map[Group]Limiter{
			GroupAccount: NewTokenBucket(60, 6),
			GroupMarket:  NewTokenBucket(120, 12),
			GroupInfo:    NewSlidingWindow(200, 10*time.Second),
		},
		fallback: NewSlidingWindow(500, 10*time.Second),
	}
}

// SetLimiter replaces the limiter of one group.
func (m *Manager) SetLimiter(group Group, l Limiter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.limiters[group] = l
}

func (m *Manager) limiter(group Group) Limiter {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if l, ok := m.limiters[group]; ok {
		return l
	}
	return m.fallback
}

// Wait blocks until the group's limiter admits a request or the context
// ends.
func (m *Manager) Wait(ctx context.Context, group Group) error {
	return m.limiter(group).Wait(ctx)
}
