package signal

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/griddlekit/griddle/pkg/cache"
	"github.com/griddlekit/griddle/pkg/catalog"
)

// Source produces the signal for one card kind.
type Source interface {
	// Kind returns the card kind this source reports on.
	Kind() string
	// Fetch resolves the current signal. Implementations should wrap
	// transient failures with [cache.Retryable] so the fetcher retries them.
	Fetch(ctx context.Context) (catalog.Signal, error)
}

// Fetcher resolves signals from all registered sources concurrently.
//
// Resolution order per source: cached value if fresh, otherwise a live
// fetch guarded by the source's limiter and breaker. A suppressed fetch
// (rate-limited or breaker open) reuses the last resolved value; a fetch
// that fails after retries degrades to an absent signal.
type Fetcher struct {
	sources  []Source
	cache    cache.Cache
	keyer    cache.Keyer
	origin   string
	ttl      time.Duration
	logger   *log.Logger
	now      Clock
	limiters map[string]*Limiter
	breakers map[string]*Breaker

	mu   sync.Mutex
	last map[string]catalog.Signal
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTTL sets the cache lifetime for resolved signals.
// The default is [cache.TTLSignal].
func WithTTL(ttl time.Duration) Option {
	return func(f *Fetcher) { f.ttl = ttl }
}

// WithOrigin labels cache keys with the backend the signals come from, so
// two fetchers pointed at different backends do not share entries.
func WithOrigin(origin string) Option {
	return func(f *Fetcher) { f.origin = origin }
}

// WithLimit enforces a minimum interval between live fetches per source.
func WithLimit(interval time.Duration) Option {
	return func(f *Fetcher) {
		for _, src := range f.sources {
			f.limiters[src.Kind()] = NewLimiter(interval, f.now)
		}
	}
}

// WithBreaker opens a per-source circuit after threshold consecutive
// failures, for the given cooldown.
func WithBreaker(threshold int, cooldown time.Duration) Option {
	return func(f *Fetcher) {
		for _, src := range f.sources {
			f.breakers[src.Kind()] = NewBreaker(threshold, cooldown, f.now)
		}
	}
}

// WithClock substitutes the clock used by limiters and breakers created
// by later options. It must appear before [WithLimit] or [WithBreaker].
func WithClock(now Clock) Option {
	return func(f *Fetcher) { f.now = now }
}

// NewFetcher creates a fetcher over the given sources. Pass a
// [cache.NullCache] to disable caching. A nil logger defaults to
// [log.Default].
func NewFetcher(sources []Source, c cache.Cache, logger *log.Logger, opts ...Option) *Fetcher {
	if logger == nil {
		logger = log.Default()
	}
	f := &Fetcher{
		sources:  sources,
		cache:    c,
		keyer:    cache.NewDefaultKeyer(),
		ttl:      cache.TTLSignal,
		logger:   logger,
		now:      time.Now,
		limiters: make(map[string]*Limiter),
		breakers: make(map[string]*Breaker),
		last:     make(map[string]catalog.Signal),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Kinds returns the card kinds covered by the registered sources, in
// registration order.
func (f *Fetcher) Kinds() []string {
	kinds := make([]string, len(f.sources))
	for i, src := range f.sources {
		kinds[i] = src.Kind()
	}
	return kinds
}

// Refresh resolves all sources concurrently and returns one signal per
// source, in registration order. It never fails: broken sources appear as
// absent signals.
func (f *Fetcher) Refresh(ctx context.Context) []catalog.Signal {
	out := make([]catalog.Signal, len(f.sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range f.sources {
		g.Go(func() error {
			out[i] = f.resolve(ctx, src)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (f *Fetcher) resolve(ctx context.Context, src Source) catalog.Signal {
	kind := src.Kind()
	key := f.keyer.SignalKey(kind, cache.SignalKeyOpts{Source: f.origin})

	if data, ok, err := f.cache.Get(ctx, key); err == nil && ok {
		var sig catalog.Signal
		if err := json.Unmarshal(data, &sig); err == nil {
			f.remember(sig)
			return sig
		}
	}

	if br := f.breakers[kind]; br != nil && !br.Allow() {
		f.logger.Debug("breaker open, reusing last signal", "kind", kind)
		return f.lastKnown(kind)
	}
	if lim := f.limiters[kind]; lim != nil && !lim.Allow() {
		return f.lastKnown(kind)
	}

	var sig catalog.Signal
	err := cache.RetryWithBackoff(ctx, func() error {
		var ferr error
		sig, ferr = src.Fetch(ctx)
		return ferr
	})
	if err != nil {
		if br := f.breakers[kind]; br != nil {
			br.Failure()
		}
		f.logger.Warn("signal fetch failed", "kind", kind, "error", err)
		return catalog.Signal{Kind: kind}
	}
	if br := f.breakers[kind]; br != nil {
		br.Success()
	}

	if data, err := json.Marshal(sig); err == nil {
		_ = f.cache.Set(ctx, key, data, f.ttl)
	}
	f.remember(sig)
	return sig
}

// remember records a successfully resolved signal. Failures never reach
// here, so a flapping source cannot clobber its last good value.
func (f *Fetcher) remember(sig catalog.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.last[sig.Kind] = sig
}

// lastKnown returns the most recent resolved signal for kind, or an
// absent signal if the kind has never resolved.
func (f *Fetcher) lastKnown(kind string) catalog.Signal {
	f.mu.Lock()
	defer f.mu.Unlock()
	if sig, ok := f.last[kind]; ok {
		return sig
	}
	return catalog.Signal{Kind: kind}
}
