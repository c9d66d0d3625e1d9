package rate_limiter

import (
	"testing"
	"time"
)

func TestAllow_BurstThenReject(t *testing.T) {
	l := New(1, 3)
	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed within burst", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("expected fourth request to be rate limited")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("other clients must have their own bucket")
	}
}

func TestEvictIdle(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := New(1, 1)
	l.now = func() time.Time { return now }

	l.Allow("10.0.0.1")
	now = now.Add(2 * time.Minute)
	l.Allow("10.0.0.2")
	now = now.Add(4 * time.Minute)

	l.evictIdle()
	if got := l.Len(); got != 1 {
		t.Fatalf("expected 1 visitor after cleanup, got %d", got)
	}
}
