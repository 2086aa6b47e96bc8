package signal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/griddlekit/griddle/pkg/cache"
	"github.com/griddlekit/griddle/pkg/catalog"
	apperrors "github.com/griddlekit/griddle/pkg/errors"
)

const httpTimeout = 10 * time.Second

// HTTPSource fetches a signal from a JSON endpoint. The endpoint returns
//
//	{"present": true, "count": 12}
//
// where "present" defaults to true when omitted. A 404 response means the
// backend does not track this kind and maps to an absent signal rather
// than an error.
type HTTPSource struct {
	kind   string
	url    string
	client *http.Client
}

// NewHTTPSource creates a source for kind backed by the given URL.
func NewHTTPSource(kind, url string) *HTTPSource {
	return &HTTPSource{
		kind:   kind,
		url:    url,
		client: &http.Client{Timeout: httpTimeout},
	}
}

// Kind returns the card kind this source reports on.
func (s *HTTPSource) Kind() string { return s.kind }

// Fetch performs the HTTP request and decodes the signal payload.
// Connection errors, 429 and 5xx responses are wrapped with
// [cache.Retryable] so the fetcher retries them; other failures are
// permanent.
func (s *HTTPSource) Fetch(ctx context.Context) (catalog.Signal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return catalog.Signal{Kind: s.kind}, fmt.Errorf("build request for %s: %w", s.kind, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return catalog.Signal{Kind: s.kind}, cache.Retryable(fmt.Errorf("%w: fetch %s: %v", cache.ErrNetwork, s.kind, err))
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return catalog.Signal{Kind: s.kind}, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return catalog.Signal{Kind: s.kind}, cache.Retryable(apperrors.New(apperrors.ErrCodeRateLimited, "fetch %s: rate limited by backend", s.kind))
	case resp.StatusCode >= 500:
		return catalog.Signal{Kind: s.kind}, cache.Retryable(fmt.Errorf("%w: fetch %s: status %d", cache.ErrNetwork, s.kind, resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return catalog.Signal{Kind: s.kind}, fmt.Errorf("fetch %s: unexpected status %d", s.kind, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return catalog.Signal{Kind: s.kind}, cache.Retryable(fmt.Errorf("%w: read %s response: %v", cache.ErrNetwork, s.kind, err))
	}

	var payload struct {
		Present *bool `json:"present"`
		Count   int   `json:"count"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return catalog.Signal{Kind: s.kind}, fmt.Errorf("decode %s response: %w", s.kind, err)
	}

	present := payload.Present == nil || *payload.Present
	return catalog.Signal{Kind: s.kind, Present: present, Count: payload.Count}, nil
}
