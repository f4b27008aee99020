package impl

import (
	"time"

	"tablescout/config"
	"tablescout/internal/domain/entity"

	"github.com/jellydator/ttlcache/v3"
)

const (
	defaultClaimedViewTTL    = 5 * time.Minute
	defaultUnclaimedViewTTL  = 24 * time.Hour
	defaultViewCacheCapacity = 10_000
)

// ViewCache holds resolved place views keyed by place ID.
type ViewCache = ttlcache.Cache[string, *entity.ResolvedView]

// NewViewCache creates the resolved view cache. The caller starts and stops
// its expiry loop.
func NewViewCache(cfg *config.Config) *ViewCache {
	capacity := uint64(defaultViewCacheCapacity)
	if cfg != nil && cfg.Cache != nil && cfg.Cache.ViewCacheCapacity > 0 {
		capacity = cfg.Cache.ViewCacheCapacity
	}

	return ttlcache.New(
		ttlcache.WithTTL[string, *entity.ResolvedView](defaultUnclaimedViewTTL),
		ttlcache.WithCapacity[string, *entity.ResolvedView](capacity),
		ttlcache.WithDisableTouchOnHit[string, *entity.ResolvedView](),
	)
}

func viewTTLs(cfg *config.Config) (claimed, unclaimed time.Duration) {
	claimed, unclaimed = defaultClaimedViewTTL, defaultUnclaimedViewTTL
	if cfg == nil || cfg.Cache == nil {
		return claimed, unclaimed
	}
	if cfg.Cache.ClaimedViewTTL > 0 {
		claimed = cfg.Cache.ClaimedViewTTL
	}
	if cfg.Cache.UnclaimedViewTTL > 0 {
		unclaimed = cfg.Cache.UnclaimedViewTTL
	}

	return claimed, unclaimed
}
