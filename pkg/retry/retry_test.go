package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDo(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := Do(ctx, fastConfig(), func() error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := Do(ctx, fastConfig(), func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		calls := 0
		err := Do(ctx, fastConfig(), func() error {
			calls++
			return errors.New("still down")
		})

		assert.EqualError(t, err, "still down")
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on non-retryable error", func(t *testing.T) {
		cfg := fastConfig()
		cfg.RetryableErrors = []string{"connection refused"}

		calls := 0
		err := Do(ctx, cfg, func() error {
			calls++
			return errors.New("syntax error")
		})

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := Do(cancelled, fastConfig(), func() error {
			return errors.New("never succeeds")
		})

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("rejects zero attempts", func(t *testing.T) {
		err := Do(ctx, Config{}, func() error { return nil })
		assert.Error(t, err)
	})
}

func TestDoWithResult(t *testing.T) {
	ctx := context.Background()

	t.Run("returns result", func(t *testing.T) {
		result, err := DoWithResult(ctx, fastConfig(), func() (int, error) {
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, result)
	})
}

func TestIsRetryableError(t *testing.T) {
	cfg := PostgresConfig()

	assert.True(t, IsRetryableError(errors.New("dial tcp 127.0.0.1:5432: connection refused"), cfg))
	assert.False(t, IsRetryableError(errors.New("syntax error at or near"), cfg))
	assert.False(t, IsRetryableError(nil, cfg))
}

func TestDelayFor(t *testing.T) {
	cfg := Config{InitialDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2.0}

	assert.Equal(t, time.Second, delayFor(0, cfg))
	assert.Equal(t, 2*time.Second, delayFor(1, cfg))
	assert.Equal(t, 3*time.Second, delayFor(2, cfg), "capped at MaxDelay")
	assert.Equal(t, time.Second, delayFor(-1, cfg))
}
