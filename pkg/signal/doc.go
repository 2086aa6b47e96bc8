// Package signal collects card data signals from remote and local sources.
//
// A [Source] produces the signal for one card kind. The [Fetcher] fans out
// over all registered sources concurrently, caches resolved signals with a
// TTL, retries transient failures with backoff, and degrades failed sources
// to absent signals so a broken backend never blocks layout computation.
//
// Per-source rate limiting ([Limiter]) and circuit breaking ([Breaker])
// protect slow or flapping backends. Both take an injectable clock so their
// timing behavior is testable without sleeping.
package signal
