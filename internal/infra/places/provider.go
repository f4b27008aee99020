package places

import (
	"tablescout/config"
	"tablescout/internal/domain/service"
)

// NewPlaceProvider builds the Places client from configuration.
func NewPlaceProvider(cfg *config.Config) service.PlaceProvider {
	return NewClient(cfg.Places.APIKey,
		WithBaseURL(cfg.Places.BaseURL),
		WithLanguageCode(cfg.Places.LanguageCode),
		WithRateLimit(cfg.Places.RequestsPerSecond, cfg.Places.Burst),
		WithEntityTTL(cfg.Cache.EntityTTL),
	)
}
