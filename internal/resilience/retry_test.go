package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		Multiplier:     2.0,
	}
}

func TestDo_FirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RecoversAfterTransient(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), func(context.Context) error {
		calls++
		if calls < 3 {
			return Transient(errors.New("busy"))
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_Exhausted(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), func(context.Context) error {
		calls++
		return Transient(errors.New("always busy"))
	})
	require.Error(t, err)
	assert.Equal(t, "always busy", err.Error())
	assert.Equal(t, 3, calls)
}

func TestDo_PermanentNotRetried(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(5), func(context.Context) error {
		calls++
		return errors.New("bad dsn")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	_ = Do(context.Background(), RetryConfig{}, func(context.Context) error {
		calls++
		return Transient(errors.New("busy"))
	})
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := RetryConfig{MaxAttempts: 5, InitialBackoff: time.Hour}

	calls := 0
	err := Do(ctx, cfg, func(context.Context) error {
		calls++
		cancel()
		return Transient(errors.New("busy"))
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDo_OnRetry(t *testing.T) {
	var attempts []int
	cfg := fastConfig(3)
	cfg.OnRetry = func(attempt int, _ error, wait time.Duration) {
		attempts = append(attempts, attempt)
		assert.Positive(t, wait)
	}
	_ = Do(context.Background(), cfg, func(context.Context) error {
		return Transient(errors.New("busy"))
	})
	assert.Equal(t, []int{1, 2}, attempts)
}

func TestDoVal(t *testing.T) {
	calls := 0
	v, err := DoVal(context.Background(), fastConfig(3), func(context.Context) (int64, error) {
		calls++
		if calls == 1 {
			return 0, Transient(errors.New("busy"))
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

func TestBackoff_Capped(t *testing.T) {
	cfg := RetryConfig{InitialBackoff: 100 * time.Millisecond, MaxBackoff: 300 * time.Millisecond, Multiplier: 2}
	assert.GreaterOrEqual(t, backoff(cfg, 1), 100*time.Millisecond)
	assert.LessOrEqual(t, backoff(cfg, 1), 125*time.Millisecond)
	assert.LessOrEqual(t, backoff(cfg, 10), 375*time.Millisecond)
}

func TestPresetConfigs(t *testing.T) {
	assert.Equal(t, 4, ConnectConfig().MaxAttempts)
	assert.Equal(t, 5, BusyConfig().MaxAttempts)
}

func TestRetryLogger(t *testing.T) {
	fn := RetryLogger("store", "connect")
	assert.NotPanics(t, func() { fn(1, errors.New("x"), time.Millisecond) })
}
