package crawl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/dcravo/tabelle"
)

// FetchFunc is the signature of a single fetch attempt.
type FetchFunc func(ctx context.Context, url string) (string, error)

// SleepFunc pauses for d, returning early if ctx is canceled.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// FetchWithRetry attempts a fetch up to cfg.MaxRetries+1 times. Only
// failures classified as transient are retried; the inter-attempt delay
// grows as cfg.BackoffFactor^attempt seconds. Permanent failures return
// immediately, and exhausted retries return a transient-coded error naming
// the attempt count. Every attempt outcome is logged.
func FetchWithRetry(ctx context.Context, url string, cfg tabelle.Config, fetch FetchFunc, logger *slog.Logger) (string, error) {
	return FetchWithRetrySleep(ctx, url, cfg, fetch, logger, sleepCtx)
}

// FetchWithRetrySleep is like FetchWithRetry but allows injecting the
// sleep function. This is useful for testing without waiting for real
// backoff delays.
func FetchWithRetrySleep(ctx context.Context, url string, cfg tabelle.Config, fetch FetchFunc, logger *slog.Logger, sleep SleepFunc) (string, error) {
	maxAttempts := cfg.MaxRetries + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			if attempt > 0 {
				logger.Info("fetch recovered after retry",
					"url", url,
					"attempt", attempt+1,
				)
			}
			return html, nil
		}
		lastErr = err

		if code := tabelle.Classify(err); code != tabelle.ETRANSIENT {
			logger.Error("unrecoverable fetch failure",
				"url", url,
				"code", code,
				"error", err,
			)
			return "", err
		}

		if attempt >= maxAttempts-1 {
			break
		}

		delay := backoffDelay(cfg.BackoffFactor, attempt)
		logger.Warn("transient fetch failure, backing off",
			"url", url,
			"attempt", attempt+1,
			"max_attempts", maxAttempts,
			"delay", delay,
			"error", err,
		)
		if err := sleep(ctx, delay); err != nil {
			return "", err
		}
	}

	logger.Error("fetch retries exhausted",
		"url", url,
		"attempts", maxAttempts,
	)
	return "", tabelle.Errorf(tabelle.ETRANSIENT, "failed to fetch %s after %d attempts: %s", url, maxAttempts, tabelle.ErrorMessage(lastErr))
}

// backoffDelay grows as factor^attempt seconds, matching the throttling
// server's recovery expectations. Deliberately unjittered so retry
// schedules stay predictable; the politeness delay already randomizes
// overall pacing.
func backoffDelay(factor float64, attempt int) time.Duration {
	return time.Duration(math.Pow(factor, float64(attempt)) * float64(time.Second))
}
