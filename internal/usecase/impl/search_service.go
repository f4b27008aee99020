package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"tablescout/config"
	deliverycontext "tablescout/internal/delivery/context"
	"tablescout/internal/domain/entity"
	domainerrors "tablescout/internal/domain/errors"
	"tablescout/internal/domain/repository"
	"tablescout/internal/domain/service"
	"tablescout/internal/errors"
	"tablescout/internal/geo"
	"tablescout/internal/usecase"

	"github.com/paulmach/orb/maptile"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPartitionTTL     = 7 * 24 * time.Hour
	upstreamMaxResults      = 20
	defaultProximityResults = 20
	maxProximityResults     = 100

	// Token order is not distance order, so each prefix scan reads past
	// maxResults before the merged set is sorted.
	proximityScanLimit = 200
)

type searchService struct {
	deriver       *geo.Deriver
	partitionRepo repository.PartitionRepository
	placeRepo     repository.PlaceRepository
	provider      service.PlaceProvider
	writer        *BackgroundWriter
	partitionTTL  time.Duration
	proximityZoom maptile.Zoom
	logger        *slog.Logger
	now           func() time.Time
}

// NewSearchService creates a new search service instance
func NewSearchService(
	deriver *geo.Deriver,
	partitionRepo repository.PartitionRepository,
	placeRepo repository.PlaceRepository,
	provider service.PlaceProvider,
	writer *BackgroundWriter,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SearchUsecase {
	s := &searchService{
		deriver:       deriver,
		partitionRepo: partitionRepo,
		placeRepo:     placeRepo,
		provider:      provider,
		writer:        writer,
		partitionTTL:  defaultPartitionTTL,
		proximityZoom: geo.DefaultProximityZoom,
		logger:        logger,
		now:           time.Now,
	}
	if cfg != nil && cfg.Cache != nil && cfg.Cache.PartitionTTL > 0 {
		s.partitionTTL = cfg.Cache.PartitionTTL
	}
	if cfg != nil && cfg.Spatial != nil && cfg.Spatial.ProximityZoom > 0 {
		s.proximityZoom = maptile.Zoom(cfg.Spatial.ProximityZoom)
	}

	return s
}

// SearchNearby answers a nearby search from the query's own partition, then a
// covering neighbor partition, then the upstream provider.
func (s *searchService) SearchNearby(ctx context.Context, input *usecase.SearchInput) (*usecase.SearchResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	keys, err := s.deriver.NeighborKeys(input.Lat, input.Lng, input.RadiusMeters)
	if err != nil {
		return nil, domainerrors.ErrInvalidQuery.WithCause(err)
	}

	params := entity.SearchParams{
		Lat:          input.Lat,
		Lng:          input.Lng,
		RadiusMeters: input.RadiusMeters,
		BucketMeters: s.deriver.BucketRadius(input.RadiusMeters),
		Category:     normalizeCategory(input.Category),
	}
	for i := range keys {
		keys[i] = partitionKey(keys[i], params.Category)
	}
	ownKey := keys[0]

	partitions, err := s.partitionRepo.FindPartitions(ctx, keys)
	if err != nil {
		logger.Warn("Failed to read cached partitions", slog.String("partition_key", ownKey), slog.Any("error", err))
		partitions = map[string]*entity.Partition{}
	}

	now := s.now()
	own := partitions[ownKey]
	if own != nil && !own.Freshness.IsStaleAt(now) {
		places, err := s.members(ctx, own.MemberIDs)
		if err == nil {
			logger.Debug("Partition cache hit", slog.String("partition_key", ownKey), slog.Int("places", len(places)))

			return &usecase.SearchResult{PartitionKey: ownKey, Places: places, Source: usecase.SourcePartition, CacheHit: true}, nil
		}
		logger.Warn("Failed to read partition members", slog.String("partition_key", ownKey), slog.Any("error", err))
	}

	for _, key := range keys[1:] {
		neighbor := partitions[key]
		if neighbor == nil || neighbor.Freshness.IsStaleAt(now) || !neighbor.Covers(params) {
			continue
		}

		places, err := s.members(ctx, neighbor.MemberIDs)
		if err != nil {
			logger.Warn("Failed to read partition members", slog.String("partition_key", key), slog.Any("error", err))

			continue
		}

		logger.Debug("Neighbor partition covers query", slog.String("partition_key", key))

		return &usecase.SearchResult{
			PartitionKey: key,
			Places:       withinRadius(places, params),
			Source:       usecase.SourceNeighbor,
			CacheHit:     true,
		}, nil
	}

	return s.searchUpstream(ctx, ownKey, params, own)
}

func (s *searchService) searchUpstream(ctx context.Context, key string, params entity.SearchParams, stale *entity.Partition) (*usecase.SearchResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	fetched, err := s.provider.SearchNearby(ctx, &service.SearchRequest{
		Lat:          params.Lat,
		Lng:          params.Lng,
		RadiusMeters: params.RadiusMeters,
		Category:     params.Category,
		MaxResults:   upstreamMaxResults,
	})
	if err != nil {
		if stale == nil {
			return nil, err
		}

		places, readErr := s.members(ctx, stale.MemberIDs)
		if readErr != nil {
			return nil, err
		}
		logger.Warn("Serving stale partition after failed search", slog.String("partition_key", key), slog.Any("error", err))

		return &usecase.SearchResult{PartitionKey: key, Places: places, Source: usecase.SourcePartition, CacheHit: true}, nil
	}

	incoming := make([]*entity.Place, 0, len(fetched))
	memberIDs := make([]string, 0, len(fetched))
	for _, place := range fetched {
		if place.ID == "" || !place.HasRequiredFields() || slices.Contains(memberIDs, place.ID) {
			continue
		}
		memberIDs = append(memberIDs, place.ID)
		incoming = append(incoming, place)
	}

	// Results carry the stored claim and rich details, matching what the
	// background write persists.
	existing, err := s.placeRepo.FindPlaces(ctx, memberIDs)
	if err != nil {
		logger.Warn("Failed to read stored places for upstream results",
			slog.String("partition_key", key),
			slog.Any("error", err),
		)
		existing = nil
	}
	places := make([]*entity.Place, 0, len(incoming))
	for _, place := range incoming {
		places = append(places, entity.MergeUpstream(existing[place.ID], place))
	}

	partition := &entity.Partition{
		Key:       key,
		MemberIDs: memberIDs,
		Freshness: entity.NewFreshness(s.now(), s.partitionTTL),
		Params:    params,
	}

	// Places land before the partition that references them.
	s.writer.Go(ctx, "partition.populate", func(ctx context.Context) error {
		var errs []error
		for _, place := range incoming {
			if _, err := s.placeRepo.SavePlace(ctx, place); err != nil {
				errs = append(errs, errors.Wrapf(err, "save place %s", place.ID))
			}
		}
		if err := s.partitionRepo.SavePartition(ctx, partition); err != nil {
			errs = append(errs, errors.Wrap(err, "save partition"))
		}

		return errors.Join(errs...)
	})

	logger.Info("Partition fetched from upstream",
		slog.String("partition_key", key),
		slog.Int("places", len(places)),
	)

	return &usecase.SearchResult{PartitionKey: key, Places: places, Source: usecase.SourceUpstream}, nil
}

// members loads partition members in partition order. Members missing from
// the store are skipped.
func (s *searchService) members(ctx context.Context, ids []string) ([]*entity.Place, error) {
	found, err := s.placeRepo.FindPlaces(ctx, ids)
	if err != nil {
		return nil, err
	}

	places := make([]*entity.Place, 0, len(ids))
	for _, id := range ids {
		if place, ok := found[id]; ok {
			places = append(places, place)
		}
	}

	return places, nil
}

// QueryByProximity returns cached places near a point, nearest first
func (s *searchService) QueryByProximity(ctx context.Context, lat, lng float64, maxResults int) ([]*entity.Place, error) {
	if !geo.ValidCoordinate(lat, lng) {
		return nil, domainerrors.ErrInvalidQuery.WithCause(geo.ErrInvalidCoordinate)
	}
	if maxResults <= 0 {
		maxResults = defaultProximityResults
	}
	maxResults = min(maxResults, maxProximityResults)
	scanLimit := max(maxResults, proximityScanLimit)

	var (
		mu     sync.Mutex
		seen   = make(map[string]struct{})
		places []*entity.Place
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, prefix := range geo.ProximityPrefixes(lat, lng, s.proximityZoom) {
		g.Go(func() error {
			found, err := s.placeRepo.FindPlacesByTokenPrefix(gctx, prefix, scanLimit)
			if err != nil {
				return errors.Wrapf(err, "query prefix %s", prefix)
			}

			mu.Lock()
			defer mu.Unlock()
			for _, place := range found {
				if _, ok := seen[place.ID]; ok {
					continue
				}
				seen[place.ID] = struct{}{}
				places = append(places, place)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(places, func(a, b *entity.Place) int {
		da := geo.DistanceMeters(lat, lng, a.Summary.Location.Lat, a.Summary.Location.Lng)
		db := geo.DistanceMeters(lat, lng, b.Summary.Location.Lat, b.Summary.Location.Lng)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return strings.Compare(a.ID, b.ID)
		}
	})

	if len(places) > maxResults {
		places = places[:maxResults]
	}

	return places, nil
}

// partitionKey scopes a grid key to a category so category searches never
// share a partition with unfiltered ones.
func partitionKey(key, category string) string {
	if category == "" {
		return key
	}

	return key + ":" + category
}

func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func withinRadius(places []*entity.Place, params entity.SearchParams) []*entity.Place {
	out := make([]*entity.Place, 0, len(places))
	for _, place := range places {
		distance := geo.DistanceMeters(params.Lat, params.Lng, place.Summary.Location.Lat, place.Summary.Location.Lng)
		if distance <= params.RadiusMeters {
			out = append(out, place)
		}
	}

	return out
}
