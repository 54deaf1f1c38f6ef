// Package slog provides logging decorators for tabelle interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/dcravo/tabelle"
)

// Ensure LoggingFetcher implements tabelle.Fetcher.
var _ tabelle.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of every request
// outcome.
type LoggingFetcher struct {
	next   tabelle.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next tabelle.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"code", tabelle.Classify(err),
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}

	f.logger.Info("fetch succeeded",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
