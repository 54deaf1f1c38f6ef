package tabelle

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a single GET request and returns the response body.
	// Non-success statuses return a coded error (ETRANSIENT for throttling
	// and temporary unavailability, EPERMANENT otherwise). The context
	// controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources. Must be called when the Fetcher is
	// no longer needed.
	Close() error
}

// Limiter paces outbound requests. The politeness contract is a global
// pacing budget: every request, across all concurrent flows, must pass
// through one shared Limiter so the aggregate request rate stays within
// the configured delay range.
type Limiter interface {
	// Wait blocks until the next request may be issued. Returns an error
	// if the context is canceled before the wait completes.
	Wait(ctx context.Context) error
}
