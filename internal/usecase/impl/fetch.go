package impl

import (
	"context"
	"time"

	"tablescout/config"
	"tablescout/internal/domain/entity"
	domainerrors "tablescout/internal/domain/errors"
	"tablescout/internal/domain/service"
	"tablescout/internal/errors"
)

// fetchTimeoutFrom returns the per-fetch upstream deadline.
func fetchTimeoutFrom(cfg *config.Config) time.Duration {
	if cfg != nil && cfg.Enrichment != nil && cfg.Enrichment.FetchTimeout > 0 {
		return cfg.Enrichment.FetchTimeout
	}

	return defaultFetchTimeout
}

// fetchRichDetails asks the provider for the rich field set under its own
// deadline. A passed deadline surfaces as ErrUpstreamTimeout.
func fetchRichDetails(ctx context.Context, provider service.PlaceProvider, id string, timeout time.Duration) (*entity.Place, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	place, err := provider.GetDetails(fetchCtx, id, service.RichFields)
	if err != nil {
		if errors.Is(fetchCtx.Err(), context.DeadlineExceeded) && !errors.Is(err, domainerrors.ErrUpstreamTimeout) {
			return nil, domainerrors.ErrUpstreamTimeout.WithCause(err)
		}

		return nil, err
	}

	return place, nil
}
