package crawl

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/time/rate"

	"github.com/dcravo/tabelle"
)

var _ tabelle.Limiter = (*PoliteLimiter)(nil)

// PoliteLimiter enforces the politeness contract: every acquisition sleeps
// a duration drawn uniformly at random from [min, max], and a shared token
// bucket caps the aggregate request rate at one request per min across all
// flows holding the same limiter. The random delay is mandatory on every
// request, including the first.
type PoliteLimiter struct {
	bucket *rate.Limiter
	min    time.Duration
	max    time.Duration
}

// NewPoliteLimiter creates a PoliteLimiter for the given delay range.
// min must be >= 0 and max >= min (enforced by tabelle.Config.Validate).
func NewPoliteLimiter(min, max time.Duration) *PoliteLimiter {
	bucket := rate.NewLimiter(rate.Inf, 1)
	if min > 0 {
		bucket = rate.NewLimiter(rate.Every(min), 1)
	}
	return &PoliteLimiter{bucket: bucket, min: min, max: max}
}

// Wait blocks until the next request may be issued. Returns an error if
// the context is canceled before the wait completes.
func (l *PoliteLimiter) Wait(ctx context.Context) error {
	d := l.min
	if l.max > l.min {
		d += time.Duration(rand.Int63n(int64(l.max - l.min)))
	}

	if d > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}

	// The bucket only bites under concurrency: a single flow has already
	// paid at least min above, but parallel flows must still share one
	// aggregate budget.
	return l.bucket.Wait(ctx)
}
