package server

import (
	"testing"
	"time"
)

func TestLoginThrottle(t *testing.T) {
	throttle := newLoginThrottle(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !throttle.Allow("10.0.0.1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if throttle.Allow("10.0.0.1") {
		t.Fatal("fourth attempt should be rejected")
	}

	// Other clients keep their own budget.
	if !throttle.Allow("10.0.0.2") {
		t.Fatal("different ip should be allowed")
	}

	if throttle.Allow("") {
		t.Fatal("empty ip should be rejected")
	}
}

func TestLoginThrottleWindowReset(t *testing.T) {
	throttle := newLoginThrottle(1, time.Minute)

	if !throttle.Allow("10.0.0.1") {
		t.Fatal("first attempt should be allowed")
	}
	if throttle.Allow("10.0.0.1") {
		t.Fatal("second attempt should be rejected")
	}

	throttle.mu.Lock()
	throttle.buckets["10.0.0.1"].openedAt = time.Now().UTC().Add(-2 * time.Minute)
	throttle.mu.Unlock()

	if !throttle.Allow("10.0.0.1") {
		t.Fatal("attempt after window lapse should be allowed")
	}
}
