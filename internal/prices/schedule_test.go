package prices

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSchedule(t *testing.T) {
	t.Run("invalid schedule", func(t *testing.T) {
		err := Schedule(context.Background(), zerolog.Nop(), "every day", func() error { return nil })
		require.ErrorContains(t, err, "invalid schedule")
	})

	t.Run("runs until cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		ran := make(chan struct{}, 10)
		done := make(chan error)
		go func() {
			done <- Schedule(ctx, zerolog.Nop(), "@every 1s", func() error {
				ran <- struct{}{}
				return errors.New("quote failed")
			})
		}()

		select {
		case <-ran:
		case <-time.After(5 * time.Second):
			t.Fatal("sync never ran")
		}
		cancel()
		require.NoError(t, <-done)
	})
}
