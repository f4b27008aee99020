package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	deliverycontext "tablescout/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackgroundWriter_OutlivesRequest(t *testing.T) {
	writer := NewBackgroundWriter(newTestConfig(), newDiscardLogger())

	ctx, cancel := context.WithCancel(deliverycontext.WithRequestID(context.Background(), "req-1"))
	cancel()

	var (
		ran       atomic.Bool
		requestID atomic.Value
	)
	writer.Go(ctx, "test", func(ctx context.Context) error {
		ran.Store(ctx.Err() == nil)
		requestID.Store(deliverycontext.GetRequestIDFromContext(ctx))

		return nil
	})
	writer.Wait()

	assert.True(t, ran.Load())
	assert.Equal(t, "req-1", requestID.Load())
}

func TestBackgroundWriter_FailureDoesNotPanic(t *testing.T) {
	writer := NewBackgroundWriter(nil, newDiscardLogger())

	writer.Go(context.Background(), "failing", func(context.Context) error { return assert.AnError })
	writer.Wait()
}

func TestBackgroundWriter_Drain(t *testing.T) {
	writer := NewBackgroundWriter(nil, newDiscardLogger())
	release := make(chan struct{})

	writer.Go(context.Background(), "blocked", func(context.Context) error {
		<-release

		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, writer.Drain(ctx), context.DeadlineExceeded)

	close(release)
	require.NoError(t, writer.Drain(context.Background()))
}
