package middleware

import (
	"context"
	"errors"
	"time"

	"google.golang.org/api/googleapi"
)

// DefaultMaxRetries is the default maximum number of attempts for rate-limited calls.
const DefaultMaxRetries = 3

// retryBaseDelay is the first backoff interval; tests shorten it.
var retryBaseDelay = time.Second

// WithRetry executes fn with exponential backoff while it fails with a rate
// limit error. Drive reports rate limits as 429 or as 403 with a
// rateLimitExceeded/userRateLimitExceeded reason. All other errors are
// returned immediately.
func WithRetry(ctx context.Context, maxAttempts int, fn func() error) error {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxRetries
	}

	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !isRateLimited(err) || attempt == maxAttempts-1 {
			return err
		}

		// Exponential backoff: 1s, 2s, 4s, 8s, ...
		backoff := retryBaseDelay << uint(attempt)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return err
}

func isRateLimited(err error) bool {
	var googleErr *googleapi.Error
	if !errors.As(err, &googleErr) {
		return false
	}
	if googleErr.Code == 429 {
		return true
	}
	if googleErr.Code != 403 {
		return false
	}
	for _, item := range googleErr.Errors {
		if item.Reason == "rateLimitExceeded" || item.Reason == "userRateLimitExceeded" {
			return true
		}
	}
	return false
}
