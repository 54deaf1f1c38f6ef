// Package http provides an HTTP-based implementation of tabelle.Fetcher.
// It issues plain GET requests with a fixed identifying header set; pacing
// and retry policy live in the crawl package, not here.
package http

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dcravo/tabelle"
)

// DefaultTimeout is the default timeout for HTTP requests. Matches the
// production politeness config (tabelle.DefaultConfig).
const DefaultTimeout = 20 * time.Second

// Ensure Fetcher implements tabelle.Fetcher at compile time.
var _ tabelle.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs over HTTP. It holds no mutable
// state across calls; the only observable side effect of a fetch is the
// request itself.
type Fetcher struct {
	client  *resty.Client
	timeout time.Duration
	headers map[string]string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for individual HTTP requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHeaders sets the header set sent with every request.
func WithHeaders(headers map[string]string) Option {
	return func(f *Fetcher) {
		f.headers = headers
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = resty.New().
		SetTimeout(f.timeout).
		SetHeaders(f.headers)

	return f
}

// Fetch retrieves the HTML body from the given URL. Non-success statuses
// return a coded error per tabelle.ClassifyStatus; transport failures are
// returned as-is for tabelle.Classify to interpret.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", err
	}

	if code := tabelle.ClassifyStatus(resp.StatusCode()); code != "" {
		return "", tabelle.Errorf(code, "HTTP %d for %s", resp.StatusCode(), url)
	}

	return resp.String(), nil
}

// Close releases resources. The underlying client needs no explicit
// cleanup, so this is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
