package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket is a refilling bucket guarding one user+action pair.
type TokenBucket struct {
	mu         sync.Mutex
	tokens     int
	maxTokens  int
	refillRate int
	refillTime time.Duration
	lastRefill time.Time
}

func NewTokenBucket(maxTokens, refillRate int, refillTime time.Duration) *TokenBucket {
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
		lastRefill: time.Now(),
	}
}

// Allow consumes a token when available. When the bucket is empty it
// returns false and the wait until the next refill.
func (tb *TokenBucket) Allow() (bool, time.Duration) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	refills := int(now.Sub(tb.lastRefill) / tb.refillTime)
	if refills > 0 {
		tb.tokens += refills * tb.refillRate
		if tb.tokens > tb.maxTokens {
			tb.tokens = tb.maxTokens
		}
		tb.lastRefill = now
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true, 0
	}

	return false, tb.lastRefill.Add(tb.refillTime).Sub(now)
}

// RateLimiter keys token buckets by user and action.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*TokenBucket
	limits  map[string]limit
}

type limit struct {
	maxTokens  int
	refillRate int
	refillTime time.Duration
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*TokenBucket),
		limits: map[string]limit{
			"send_message": {maxTokens: 20, refillRate: 10, refillTime: 10 * time.Second},
			"create_order": {maxTokens: 5, refillRate: 5, refillTime: time.Minute},
		},
	}
}

func (rl *RateLimiter) Allow(userID, action string) (bool, time.Duration) {
	key := userID + ":" + action

	rl.mu.Lock()
	bucket, ok := rl.buckets[key]
	if !ok {
		l, known := rl.limits[action]
		if !known {
			l = limit{maxTokens: 30, refillRate: 30, refillTime: time.Minute}
		}
		bucket = NewTokenBucket(l.maxTokens, l.refillRate, l.refillTime)
		rl.buckets[key] = bucket
	}
	rl.mu.Unlock()

	return bucket.Allow()
}
