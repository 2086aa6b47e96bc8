package signal

import (
	"sync"
	"time"
)

// Clock returns the current time. Production code uses [time.Now]; tests
// substitute a fake to drive limiter and breaker state deterministically.
type Clock func() time.Time

// Limiter enforces a minimum interval between fetches for one source.
// It is safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	now      Clock
}

// NewLimiter creates a limiter with the given minimum interval between
// allowed calls. A nil clock defaults to [time.Now]. A non-positive
// interval allows every call.
func NewLimiter(interval time.Duration, now Clock) *Limiter {
	if now == nil {
		now = time.Now
	}
	return &Limiter{interval: interval, now: now}
}

// Allow reports whether a fetch may proceed now. The first call always
// succeeds; subsequent calls succeed once the interval has elapsed since
// the last allowed call.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	t := l.now()
	if l.interval <= 0 || l.last.IsZero() || t.Sub(l.last) >= l.interval {
		l.last = t
		return true
	}
	return false
}
