// Package mock provides function-field mock implementations of the tabelle
// interfaces for testing.
package mock

import (
	"context"

	"github.com/dcravo/tabelle"
)

var _ tabelle.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of tabelle.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ tabelle.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of tabelle.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx)
}
