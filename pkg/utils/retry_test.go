package utils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sgurin/order-service/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	cfg := utils.RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
	}

	t.Run("succeeds after failure", func(t *testing.T) {
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			if calls < 2 {
				return errors.New("temporary")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		wantErr := errors.New("persistent")
		err := utils.Retry(cfg, func() error {
			calls++
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable error returned immediately", func(t *testing.T) {
		calls := 0
		sentinel := errors.New("not found")
		err := utils.Retry(cfg, func() error {
			calls++
			return sentinel
		}, sentinel)
		assert.ErrorIs(t, err, sentinel)
		assert.Equal(t, 1, calls)
	})
}
