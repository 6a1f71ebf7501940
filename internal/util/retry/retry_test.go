package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errThrottled = errors.New("throttled")

func isThrottled(err error) bool { return errors.Is(err, errThrottled) }

func TestWithExponentialBackoff(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		failures     int
		err          error
		opts         []Option
		wantErr      bool
		wantAttempts int
	}{
		{name: "first attempt succeeds", failures: 0, wantAttempts: 1},
		{name: "succeeds after retries", failures: 2, err: errThrottled, wantAttempts: 3},
		{name: "exhausts retries", failures: 10, err: errThrottled, opts: []Option{WithMaxRetries(2)}, wantErr: true, wantAttempts: 3},
		{name: "no retries configured", failures: 10, err: errThrottled, opts: []Option{WithMaxRetries(0)}, wantErr: true, wantAttempts: 1},
		{
			name:         "non-throttling error surfaces immediately",
			failures:     10,
			err:          errors.New("access denied"),
			opts:         []Option{WithRetryIf(isThrottled)},
			wantErr:      true,
			wantAttempts: 1,
		},
		{
			name:         "throttling error is retried",
			failures:     1,
			err:          errThrottled,
			opts:         []Option{WithRetryIf(isThrottled)},
			wantAttempts: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			attempts := 0
			opts := append([]Option{WithInitialDelay(time.Millisecond)}, tt.opts...)
			err := WithExponentialBackoff(context.Background(), func() error {
				attempts++
				if attempts <= tt.failures {
					return tt.err
				}
				return nil
			}, opts...)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantAttempts, attempts)
		})
	}
}

func TestWithExponentialBackoff_RejectedErrorIsUnwrapped(t *testing.T) {
	t.Parallel()
	denied := errors.New("access denied")
	err := WithExponentialBackoff(context.Background(), func() error { return denied }, WithRetryIf(isThrottled))
	assert.Same(t, denied, err)
}

func TestWithExponentialBackoff_ContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	err := WithExponentialBackoff(ctx, func() error {
		attempts++
		cancel()
		return errThrottled
	}, WithInitialDelay(time.Second))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestOptions(t *testing.T) {
	t.Parallel()
	cfg := &Config{}
	for _, opt := range []Option{
		WithMaxRetries(4),
		WithInitialDelay(time.Second),
		WithRetryIf(isThrottled),
	} {
		opt(cfg)
	}
	assert.Equal(t, 4, cfg.MaxRetries)
	assert.Equal(t, time.Second, cfg.InitialDelay)
	assert.True(t, cfg.retryable(errThrottled))
	assert.False(t, cfg.retryable(errors.New("other")))
	assert.True(t, (&Config{}).retryable(errors.New("other")))
}
