package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket is a refilling token bucket guarding one key.
type TokenBucket struct {
	tokens     int
	maxTokens  int
	refillRate int
	refillTime time.Duration
	lastRefill time.Time
	mutex      sync.Mutex
}

// RateLimiter keys token buckets by caller identity (the contact form
// keys on client IP).
type RateLimiter struct {
	buckets    map[string]*TokenBucket
	maxTokens  int
	refillRate int
	refillTime time.Duration
	mutex      sync.RWMutex
}

func NewRateLimiter(maxTokens, refillRate int, refillTime time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets:    make(map[string]*TokenBucket),
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
	}
}

func newTokenBucket(maxTokens, refillRate int, refillTime time.Duration) *TokenBucket {
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
		lastRefill: time.Now(),
	}
}

// Allow reports whether the keyed caller may proceed, consuming a token
// when it does.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	bucket, ok := rl.buckets[key]
	if !ok {
		bucket = newTokenBucket(rl.maxTokens, rl.refillRate, rl.refillTime)
		rl.buckets[key] = bucket
	}
	rl.mutex.Unlock()

	return bucket.take()
}

func (tb *TokenBucket) take() bool {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tokensToAdd := int(elapsed/tb.refillTime) * tb.refillRate

	if tokensToAdd > 0 {
		tb.tokens += tokensToAdd
		if tb.tokens > tb.maxTokens {
			tb.tokens = tb.maxTokens
		}
		tb.lastRefill = now
	}

	if tb.tokens <= 0 {
		return false
	}

	tb.tokens--
	return true
}

// Cleanup drops buckets idle longer than maxIdle; called periodically so
// the map does not grow with every IP that ever submitted the form.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	for key, bucket := range rl.buckets {
		bucket.mutex.Lock()
		idle := bucket.lastRefill.Before(cutoff)
		bucket.mutex.Unlock()
		if idle {
			delete(rl.buckets, key)
		}
	}
}
