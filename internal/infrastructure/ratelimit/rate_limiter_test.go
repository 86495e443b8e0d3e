package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustion(t *testing.T) {
	bucket := NewTokenBucket(3, 3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := bucket.Allow()
		assert.True(t, allowed)
	}

	allowed, wait := bucket.Allow()
	assert.False(t, allowed)
	assert.Greater(t, wait, time.Duration(0))
}

func TestRateLimiterIsolatesUsersAndActions(t *testing.T) {
	rl := NewRateLimiter()

	// Drain alice's send_message budget.
	for i := 0; i < 20; i++ {
		allowed, _ := rl.Allow("alice", "send_message")
		assert.True(t, allowed)
	}
	allowed, _ := rl.Allow("alice", "send_message")
	assert.False(t, allowed)

	// Bob is untouched, and so is alice's other action.
	allowed, _ = rl.Allow("bob", "send_message")
	assert.True(t, allowed)
	allowed, _ = rl.Allow("alice", "create_order")
	assert.True(t, allowed)
}
