package slog_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcravo/tabelle"
	"github.com/dcravo/tabelle/mock"
	tabelleslog "github.com/dcravo/tabelle/slog"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs successful fetches and delegates", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html/>", nil
			},
		}

		f := tabelleslog.NewLoggingFetcher(next, logger)

		html, err := f.Fetch(context.Background(), "http://example.com/page")
		require.NoError(t, err)
		assert.Equal(t, "<html/>", html)
		assert.Contains(t, buf.String(), "fetch succeeded")
		assert.Contains(t, buf.String(), "http://example.com/page")
	})

	t.Run("logs failures with their classification", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", tabelle.Errorf(tabelle.ETRANSIENT, "HTTP 503 for %s", url)
			},
		}

		f := tabelleslog.NewLoggingFetcher(next, logger)

		_, err := f.Fetch(context.Background(), "http://example.com/page")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "fetch failed")
		assert.Contains(t, buf.String(), tabelle.ETRANSIENT)
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closeErr := errors.New("close failed")
		next := &mock.Fetcher{
			CloseFn: func() error { return closeErr },
		}

		f := tabelleslog.NewLoggingFetcher(next, slog.New(slog.NewTextHandler(io.Discard, nil)))

		assert.ErrorIs(t, f.Close(), closeErr)
	})
}
