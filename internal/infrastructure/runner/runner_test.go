package runner_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arthurdotwork/chatroom/internal/infrastructure/runner"
	"github.com/stretchr/testify/require"
)

func TestRunner(t *testing.T) {
	t.Run("it should wait for all goroutines", func(t *testing.T) {
		r := runner.New(context.Background())

		done := make(chan struct{})
		r.Go(func() error {
			close(done)
			return nil
		})

		require.NoError(t, r.Wait())
		<-done
	})

	t.Run("it should cancel the context when a goroutine fails", func(t *testing.T) {
		r := runner.New(context.Background())

		boom := errors.New("boom")
		r.Go(func() error { return boom })
		r.Go(func() error {
			select {
			case <-r.Context().Done():
				return nil
			case <-time.After(time.Second):
				return errors.New("context was not canceled")
			}
		})

		require.ErrorIs(t, r.Wait(), boom)
	})

	t.Run("it should cancel the context when the parent is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		r := runner.New(ctx)

		r.Go(func() error {
			<-r.Context().Done()
			return r.Context().Err()
		})

		cancel()
		require.ErrorIs(t, r.Wait(), context.Canceled)
	})
}
