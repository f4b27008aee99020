package config

import (
	"strings"
	"time"
)

const (
	defaultStoreProvider      = "sqlite"
	defaultSQLitePath         = "tablescout.db"
	defaultPlacesBaseURL      = "https://places.googleapis.com/v1"
	defaultPlacesLanguageCode = "en"
	defaultPlacesRPS          = 10
	defaultPlacesBurst        = 20
	defaultUpstreamTimeout    = 5 * time.Second
	defaultScoringModel       = "claude-sonnet-4-5"
	defaultScoringMaxTokens   = 512
	defaultScoringTimeout     = 20 * time.Second
	defaultEntityTTL          = 7 * 24 * time.Hour
	defaultPartitionTTL       = 7 * 24 * time.Hour
	defaultClaimedViewTTL     = 5 * time.Minute
	defaultUnclaimedViewTTL   = 24 * time.Hour
	defaultViewCacheCapacity  = 10_000
	defaultProximityZoom      = 13
	defaultConcurrency        = 8
	defaultFreeQuota          = 10
	defaultQuotaWindow        = 30 * 24 * time.Hour
	defaultWriteTimeout       = 10 * time.Second
)

// applyDefaults fills every section missing from the YAML file.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Provider == "" {
		cfg.Store.Provider = defaultStoreProvider
	}
	if cfg.Store.Firestore == nil {
		cfg.Store.Firestore = &FirestoreConfig{}
	}
	if cfg.Store.SQLite == nil {
		cfg.Store.SQLite = &SQLiteConfig{}
	}
	if cfg.Store.SQLite.Path == "" {
		cfg.Store.SQLite.Path = defaultSQLitePath
	}

	if cfg.Places == nil {
		cfg.Places = &PlacesConfig{}
	}
	if cfg.Places.BaseURL == "" {
		cfg.Places.BaseURL = defaultPlacesBaseURL
	}
	if cfg.Places.LanguageCode == "" {
		cfg.Places.LanguageCode = defaultPlacesLanguageCode
	}
	if cfg.Places.RequestsPerSecond <= 0 {
		cfg.Places.RequestsPerSecond = defaultPlacesRPS
	}
	if cfg.Places.Burst <= 0 {
		cfg.Places.Burst = defaultPlacesBurst
	}
	if cfg.Places.Timeout <= 0 {
		cfg.Places.Timeout = defaultUpstreamTimeout
	}

	if cfg.Scoring == nil {
		cfg.Scoring = &ScoringConfig{}
	}
	if cfg.Scoring.Model == "" {
		cfg.Scoring.Model = defaultScoringModel
	}
	if cfg.Scoring.MaxTokens <= 0 {
		cfg.Scoring.MaxTokens = defaultScoringMaxTokens
	}
	if cfg.Scoring.Timeout <= 0 {
		cfg.Scoring.Timeout = defaultScoringTimeout
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.EntityTTL <= 0 {
		cfg.Cache.EntityTTL = defaultEntityTTL
	}
	if cfg.Cache.PartitionTTL <= 0 {
		cfg.Cache.PartitionTTL = defaultPartitionTTL
	}
	if cfg.Cache.ClaimedViewTTL <= 0 {
		cfg.Cache.ClaimedViewTTL = defaultClaimedViewTTL
	}
	if cfg.Cache.UnclaimedViewTTL <= 0 {
		cfg.Cache.UnclaimedViewTTL = defaultUnclaimedViewTTL
	}
	if cfg.Cache.ViewCacheCapacity == 0 {
		cfg.Cache.ViewCacheCapacity = defaultViewCacheCapacity
	}

	// Zero values are filled by geo.NewDeriver.
	if cfg.Partition == nil {
		cfg.Partition = &PartitionConfig{}
	}

	if cfg.Spatial == nil {
		cfg.Spatial = &SpatialConfig{}
	}
	if cfg.Spatial.ProximityZoom <= 0 {
		cfg.Spatial.ProximityZoom = defaultProximityZoom
	}

	if cfg.Enrichment == nil {
		cfg.Enrichment = &EnrichmentConfig{}
	}
	if cfg.Enrichment.Concurrency <= 0 {
		cfg.Enrichment.Concurrency = defaultConcurrency
	}
	if cfg.Enrichment.FetchTimeout <= 0 {
		cfg.Enrichment.FetchTimeout = defaultUpstreamTimeout
	}

	if cfg.Quota == nil {
		cfg.Quota = &QuotaConfig{}
	}
	if cfg.Quota.FreeLimit <= 0 {
		cfg.Quota.FreeLimit = defaultFreeQuota
	}
	if cfg.Quota.Window <= 0 {
		cfg.Quota.Window = defaultQuotaWindow
	}

	if cfg.Background == nil {
		cfg.Background = &BackgroundConfig{}
	}
	if cfg.Background.WriteTimeout <= 0 {
		cfg.Background.WriteTimeout = defaultWriteTimeout
	}
}
