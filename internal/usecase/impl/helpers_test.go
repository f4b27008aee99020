package impl

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"tablescout/config"
	"tablescout/internal/domain/entity"
	"tablescout/internal/infra/persistence/sqlite"

	"github.com/stretchr/testify/require"
)

const testEntityTTL = 7 * 24 * time.Hour

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Cache: &config.CacheConfig{
			EntityTTL:         testEntityTTL,
			PartitionTTL:      testEntityTTL,
			ClaimedViewTTL:    5 * time.Minute,
			UnclaimedViewTTL:  24 * time.Hour,
			ViewCacheCapacity: 100,
		},
		Enrichment: &config.EnrichmentConfig{Concurrency: 4, FetchTimeout: time.Second},
		Quota:      &config.QuotaConfig{FreeLimit: 3, Window: 30 * 24 * time.Hour},
		Background: &config.BackgroundConfig{WriteTimeout: 5 * time.Second},
		Scoring:    &config.ScoringConfig{Timeout: time.Second},
	}
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func lightPlace(id string, lat, lng float64, fetchedAt time.Time) *entity.Place {
	return entity.NewUpstreamPlace(id, entity.Summary{
		Name:       "Restaurant " + id,
		Address:    "Bratislava",
		Location:   entity.Location{Lat: lat, Lng: lng},
		Categories: []string{"restaurant"},
		Rating:     4.3,
		PriceTier:  2,
		Photos:     []entity.Photo{{Ref: "places/" + id + "/photos/1"}},
	}, entity.Details{}, fetchedAt, testEntityTTL)
}

func richPlace(id string, lat, lng float64, fetchedAt time.Time) *entity.Place {
	place := lightPlace(id, lat, lng, fetchedAt)
	place.Details = entity.Details{
		Reviews:   []entity.Review{{Author: "Zuzana", Rating: 5, Text: "Excellent goulash"}},
		Editorial: "Traditional Slovak cooking.",
	}
	place.EnrichmentLevel = entity.EnrichmentRich

	return place
}
