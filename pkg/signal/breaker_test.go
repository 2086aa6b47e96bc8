package signal

import (
	"testing"
	"time"
)

func TestBreakerStaysClosedBelowThreshold(t *testing.T) {
	clk := newFakeClock()
	b := NewBreaker(3, time.Minute, clk.now)

	b.Failure()
	b.Failure()
	if !b.Allow() {
		t.Error("Allow() with 2/3 failures = false, want true")
	}
}

func TestBreakerOpensAtThreshold(t *testing.T) {
	clk := newFakeClock()
	b := NewBreaker(3, time.Minute, clk.now)

	for i := 0; i < 3; i++ {
		b.Failure()
	}
	if b.Allow() {
		t.Error("Allow() with 3/3 failures = true, want false")
	}
}

func TestBreakerAdmitsProbeAfterCooldown(t *testing.T) {
	clk := newFakeClock()
	b := NewBreaker(1, time.Minute, clk.now)
	b.Failure()

	clk.advance(time.Minute)
	if !b.Allow() {
		t.Fatal("Allow() after cooldown = false, want true")
	}
	// The probe restarts the window; a second caller must wait.
	if b.Allow() {
		t.Error("Allow() immediately after probe = true, want false")
	}
}

func TestBreakerSuccessClosesCircuit(t *testing.T) {
	clk := newFakeClock()
	b := NewBreaker(1, time.Minute, clk.now)
	b.Failure()

	clk.advance(time.Minute)
	b.Allow()
	b.Success()
	if !b.Allow() {
		t.Error("Allow() after successful probe = false, want true")
	}
}

func TestBreakerFailedProbeRestartsCooldown(t *testing.T) {
	clk := newFakeClock()
	b := NewBreaker(1, time.Minute, clk.now)
	b.Failure()

	clk.advance(time.Minute)
	b.Allow()
	b.Failure()

	clk.advance(30 * time.Second)
	if b.Allow() {
		t.Error("Allow() mid-cooldown after failed probe = true, want false")
	}
	clk.advance(30 * time.Second)
	if !b.Allow() {
		t.Error("Allow() after full cooldown = false, want true")
	}
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	clk := newFakeClock()
	b := NewBreaker(2, time.Minute, clk.now)

	b.Failure()
	b.Success()
	b.Failure()
	if !b.Allow() {
		t.Error("Allow() with interleaved success = false, want true")
	}
}

func TestBreakerZeroThresholdNeverOpens(t *testing.T) {
	clk := newFakeClock()
	b := NewBreaker(0, time.Minute, clk.now)
	for i := 0; i < 10; i++ {
		b.Failure()
	}
	if !b.Allow() {
		t.Error("Allow() with zero threshold = false, want true")
	}
}
