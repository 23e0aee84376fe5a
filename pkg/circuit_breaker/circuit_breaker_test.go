package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/library-lending/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	errService := errors.New("service error")
	successfulService := func() error { return nil }
	failingService := func() error { return errService }

	const timeout = 20 * time.Millisecond

	t.Run("opens after failure ratio and recovers", func(t *testing.T) {
		cb := circuit_breaker.New(10, timeout, 0.30, 2)
		for i := 0; i < 10; i++ {
			require.NoError(t, cb.Call(successfulService))
		}
		require.Equal(t, circuit_breaker.Closed, cb.State())

		for i := 0; i < 3; i++ {
			require.ErrorIs(t, cb.Call(failingService), errService)
		}
		require.Equal(t, circuit_breaker.Open, cb.State())

		called := false
		err := cb.Call(func() error {
			called = true
			return nil
		})
		require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
		require.False(t, called)

		time.Sleep(2 * timeout)
		require.NoError(t, cb.Call(successfulService))
		require.Equal(t, circuit_breaker.HalfOpen, cb.State())
		require.NoError(t, cb.Call(successfulService))
		require.Equal(t, circuit_breaker.Closed, cb.State())
	})

	t.Run("half-open failure reopens", func(t *testing.T) {
		cb := circuit_breaker.New(1, timeout, 0.5, 3)
		require.Error(t, cb.Call(failingService))
		require.Equal(t, circuit_breaker.Open, cb.State())

		time.Sleep(2 * timeout)
		require.ErrorIs(t, cb.Call(failingService), errService)
		require.Equal(t, circuit_breaker.Open, cb.State())
		require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)
	})

	t.Run("reset", func(t *testing.T) {
		cb := circuit_breaker.New(1, time.Hour, 0.5, 1)
		require.Error(t, cb.Call(failingService))
		require.Equal(t, circuit_breaker.Open, cb.State())
		cb.Reset()
		require.Equal(t, circuit_breaker.Closed, cb.State())
		require.NoError(t, cb.Call(successfulService))
	})
}
