package resilience

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiterAllowsBurst(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Name: "api", Rate: 1, Burst: 3})

	for i := range 3 {
		if !rl.Allow() {
			t.Fatalf("request %d should be allowed within burst", i)
		}
	}
	if rl.Allow() {
		t.Error("request beyond burst should be limited")
	}
}

func TestRateLimiterRefills(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Name: "api", Rate: 100, Burst: 1})

	if !rl.Allow() {
		t.Fatal("first request should pass")
	}
	if rl.Allow() {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(20 * time.Millisecond)
	if !rl.Allow() {
		t.Error("bucket should have refilled")
	}
}

func TestRateLimiterWait(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Name: "api", Rate: 50, Burst: 1})
	_ = rl.Allow()

	start := time.Now()
	if err := rl.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 200*time.Millisecond {
		t.Errorf("waited too long: %v", elapsed)
	}
}

func TestRateLimiterWaitCancelled(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Name: "api", Rate: 0.001, Burst: 1})
	_ = rl.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := rl.Wait(ctx); err == nil {
		t.Error("expected context error")
	}
}

func TestRateLimiterOnLimit(t *testing.T) {
	limited := 0
	rl := NewRateLimiter(RateLimiterConfig{
		Name:    "api",
		Rate:    0.001,
		Burst:   1,
		OnLimit: func(name string) { limited++ },
	})

	_ = rl.Allow()
	_ = rl.Allow()

	if limited != 1 {
		t.Errorf("expected 1 limit callback, got %d", limited)
	}
}
