package signal

import (
	"sync"
	"time"
)

// Breaker is a per-source circuit breaker. After threshold consecutive
// failures it opens and rejects fetches until the cooldown elapses, then
// admits a single probe. A successful probe closes the breaker; a failed
// one restarts the cooldown.
type Breaker struct {
	mu        sync.Mutex
	threshold int
	cooldown  time.Duration
	failures  int
	openedAt  time.Time
	now       Clock
}

// NewBreaker creates a breaker that opens after threshold consecutive
// failures and stays open for cooldown. A nil clock defaults to
// [time.Now]. A non-positive threshold never opens.
func NewBreaker(threshold int, cooldown time.Duration, now Clock) *Breaker {
	if now == nil {
		now = time.Now
	}
	return &Breaker{threshold: threshold, cooldown: cooldown, now: now}
}

// Allow reports whether a fetch may be attempted.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.threshold <= 0 || b.failures < b.threshold {
		return true
	}
	if b.now().Sub(b.openedAt) >= b.cooldown {
		// Half-open: admit one probe and restart the cooldown window so
		// concurrent callers do not stampede a recovering backend.
		b.openedAt = b.now()
		return true
	}
	return false
}

// Success records a successful fetch and closes the breaker.
func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
	b.openedAt = time.Time{}
}

// Failure records a failed fetch, opening the breaker once the
// consecutive-failure count reaches the threshold.
func (b *Breaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
	if b.threshold > 0 && b.failures >= b.threshold {
		b.openedAt = b.now()
	}
}
