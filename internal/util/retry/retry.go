package retry

import (
	"context"
	"fmt"
	"time"
)

// maxDelay caps the wait between attempts.
const maxDelay = 30 * time.Second

// Config holds retry configuration.
type Config struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries int
	// InitialDelay is the wait before the first retry. It doubles after each
	// retry up to 30s.
	InitialDelay time.Duration
	// RetryIf reports whether an error is transient. A nil RetryIf retries
	// every error.
	RetryIf func(error) bool
}

// Option is a functional option for retry configuration.
type Option func(*Config)

// WithExponentialBackoff runs operation until it succeeds, returns an error
// RetryIf rejects, or runs out of retries. Context cancellation is respected
// while waiting.
func WithExponentialBackoff(ctx context.Context, operation func() error, opts ...Option) error {
	cfg := &Config{
		MaxRetries:   3,
		InitialDelay: time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	delay := cfg.InitialDelay
	for attempt := 0; ; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}
		if !cfg.retryable(err) {
			return err
		}
		if attempt >= cfg.MaxRetries {
			return fmt.Errorf("giving up after %d attempts: %w", attempt+1, err)
		}

		if err := wait(ctx, delay); err != nil {
			return fmt.Errorf("interrupted after %d attempts: %w", attempt+1, err)
		}
		delay = min(delay*2, maxDelay)
	}
}

func (c *Config) retryable(err error) bool {
	return c.RetryIf == nil || c.RetryIf(err)
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WithMaxRetries sets the number of retries after the first attempt.
func WithMaxRetries(n int) Option {
	return func(c *Config) {
		c.MaxRetries = n
	}
}

// WithInitialDelay sets the wait before the first retry.
func WithInitialDelay(d time.Duration) Option {
	return func(c *Config) {
		c.InitialDelay = d
	}
}

// WithRetryIf limits retries to errors for which fn returns true, such as
// API throttling. Other errors are returned unchanged after the first attempt.
func WithRetryIf(fn func(error) bool) Option {
	return func(c *Config) {
		c.RetryIf = fn
	}
}
