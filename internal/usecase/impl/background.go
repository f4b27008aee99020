package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tablescout/config"
	deliverycontext "tablescout/internal/delivery/context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const defaultWriteTimeout = 10 * time.Second

// BackgroundWriter runs store writes that the caller does not wait for.
// Failures are logged and counted; in-flight writes are drained on shutdown.
type BackgroundWriter struct {
	logger  *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewBackgroundWriter creates a background writer
func NewBackgroundWriter(cfg *config.Config, logger *slog.Logger) *BackgroundWriter {
	timeout := defaultWriteTimeout
	if cfg != nil && cfg.Background != nil && cfg.Background.WriteTimeout > 0 {
		timeout = cfg.Background.WriteTimeout
	}

	return &BackgroundWriter{logger: logger, timeout: timeout}
}

// Go runs fn in its own goroutine. The write outlives the request: it keeps
// ctx values such as the request logger but not its cancellation.
func (w *BackgroundWriter) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, w.logger)
	detached := context.WithoutCancel(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		writeCtx, cancel := context.WithTimeout(detached, w.timeout)
		defer cancel()

		if err := fn(writeCtx); err != nil {
			backgroundWriteFailed.Add(writeCtx, 1, metric.WithAttributes(attribute.String("write", name)))
			logger.Warn("Background write failed", slog.String("write", name), slog.Any("error", err))
		}
	}()
}

// Wait blocks until every started write has finished.
func (w *BackgroundWriter) Wait() {
	w.wg.Wait()
}

// Drain waits for in-flight writes or until ctx is done.
func (w *BackgroundWriter) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
