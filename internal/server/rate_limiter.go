package server

import (
	"sync"
	"time"
)

// loginThrottle caps login attempts per client IP over a fixed window. Counts
// reset when a bucket's window lapses; stale buckets are dropped on the next
// attempt from the same IP.
type loginThrottle struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	buckets map[string]*attemptBucket
}

type attemptBucket struct {
	openedAt time.Time
	attempts int
}

func newLoginThrottle(limit int, window time.Duration) *loginThrottle {
	return &loginThrottle{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*attemptBucket),
	}
}

// Allow records one attempt for ip and reports whether it is within the
// limit. An empty ip is always rejected.
func (t *loginThrottle) Allow(ip string) bool {
	if ip == "" {
		return false
	}

	now := time.Now().UTC()
	t.mu.Lock()
	defer t.mu.Unlock()

	bucket, ok := t.buckets[ip]
	if !ok || now.Sub(bucket.openedAt) > t.window {
		bucket = &attemptBucket{openedAt: now}
		t.buckets[ip] = bucket
	}
	if bucket.attempts >= t.limit {
		return false
	}
	bucket.attempts++
	return true
}
