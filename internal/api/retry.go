package api

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"net/http"
	"time"
)

// doWithRetry wraps do with exponential backoff and jitter for transient
// failures. Schema violations and client-side HTTP errors are returned
// immediately; only the last error is reported when attempts run out.
func (c *Client) doWithRetry(ctx context.Context, method, path string, payload []byte, out any) error {
	var lastErr error

	for attempt := range c.config.Retry.MaxAttempts {
		err := c.do(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) {
			return err
		}
		if attempt == c.config.Retry.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.backoff(attempt)):
		}
	}

	return lastErr
}

// retryable determines if an error is worth another attempt.
func retryable(err error) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A malformed payload will be malformed again.
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		return false
	}

	// Server errors and throttling are transient; other statuses are the
	// caller's mistake.
	var status *ErrStatus
	if errors.As(err, &status) {
		return status.Code >= 500 || status.Code == http.StatusTooManyRequests
	}

	// Network failures are treated as transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func (c *Client) backoff(attempt int) time.Duration {
	cfg := c.config.Retry

	wait := float64(cfg.InitialWait) * math.Pow(cfg.Multiplier, float64(attempt))
	if wait > float64(cfg.MaxWait) {
		wait = float64(cfg.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
