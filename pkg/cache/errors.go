package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork marks failures to reach a remote backend. Backends join it
// with the driver error, so callers can test errors.Is(err, ErrNetwork)
// without knowing which driver was involved.
var ErrNetwork = errors.New("network error")

const retryAttempts = 3

// backoffBase is the delay before the second attempt; it doubles after
// every further failure. Tests shorten it.
var backoffBase = 200 * time.Millisecond

// RetryableError marks a transient backend failure worth another attempt.
type RetryableError struct{ Err error }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err, or anything it wraps, is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff calls fn until it succeeds, returns a non-retryable
// error, or has failed retryAttempts times. Waiting between attempts stops
// early when ctx is done.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := backoffBase
	var err error
	for attempt := range retryAttempts {
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
		if attempt == retryAttempts-1 {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
	return err
}
