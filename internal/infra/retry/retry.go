// Package retry provides a generic exponential-backoff retry wrapper used by
// the background jobs around projector and notification calls.
package retry

import (
	"context"
	"log/slog"
	"time"
)

// Options controls the retry behavior.
type Options struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultOptions returns the default retry configuration.
func DefaultOptions() Options {
	return Options{
		MaxAttempts:   3,
		InitialDelay:  1 * time.Second,
		MaxDelay:      30 * time.Second,
		BackoffFactor: 2,
	}
}

// withDefaults fills in zero-valued fields so partially populated Options
// behave sensibly.
func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = defaults.MaxAttempts
	}
	if o.InitialDelay <= 0 {
		o.InitialDelay = defaults.InitialDelay
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = defaults.MaxDelay
	}
	if o.BackoffFactor <= 1 {
		o.BackoffFactor = defaults.BackoffFactor
	}
	return o
}

// Do invokes operation up to MaxAttempts times, sleeping between attempts
// with exponential backoff capped at MaxDelay. The last error is returned
// unwrapped when every attempt fails. A warning is logged before each retry.
func Do(ctx context.Context, operation func(ctx context.Context) error, opts Options) error {
	opts = opts.withDefaults()

	var lastErr error
	delay := opts.InitialDelay

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		if err := operation(ctx); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt == opts.MaxAttempts {
			break
		}

		slog.Warn("Operation failed, retrying",
			"attempt", attempt,
			"maxAttempts", opts.MaxAttempts,
			"delay", delay.String(),
			"error", lastErr,
		)

		if err := sleep(ctx, delay); err != nil {
			return err
		}

		delay = time.Duration(float64(delay) * opts.BackoffFactor)
		if delay > opts.MaxDelay {
			delay = opts.MaxDelay
		}
	}

	return lastErr
}

// sleep waits for the given duration, aborting early when the context ends.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
