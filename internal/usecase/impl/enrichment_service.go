package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tablescout/config"
	deliverycontext "tablescout/internal/delivery/context"
	"tablescout/internal/domain/entity"
	domainerrors "tablescout/internal/domain/errors"
	"tablescout/internal/domain/repository"
	"tablescout/internal/domain/service"
	"tablescout/internal/errors"
	"tablescout/internal/usecase"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"
)

const (
	defaultEnrichConcurrency = 8
	defaultFetchTimeout      = 5 * time.Second
)

type enrichmentService struct {
	placeRepo    repository.PlaceRepository
	provider     service.PlaceProvider
	writer       *BackgroundWriter
	concurrency  int
	fetchTimeout time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewEnrichmentService creates a new enrichment service instance
func NewEnrichmentService(
	placeRepo repository.PlaceRepository,
	provider service.PlaceProvider,
	writer *BackgroundWriter,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.EnrichmentUsecase {
	s := &enrichmentService{
		placeRepo:    placeRepo,
		provider:     provider,
		writer:       writer,
		concurrency:  defaultEnrichConcurrency,
		fetchTimeout: fetchTimeoutFrom(cfg),
		logger:       logger,
		now:          time.Now,
	}
	if cfg != nil && cfg.Enrichment != nil && cfg.Enrichment.Concurrency > 0 {
		s.concurrency = cfg.Enrichment.Concurrency
	}

	return s
}

// Enrich returns rich records for ids in input order
func (s *enrichmentService) Enrich(ctx context.Context, ids []string) ([]*entity.Place, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []*entity.Place{}, nil
	}

	existing, err := s.placeRepo.FindPlaces(ctx, ids)
	if err != nil {
		// Without the cache every identity is fetched upstream.
		logger.Warn("Failed to read cached places, fetching all", slog.Int("count", len(ids)), slog.Any("error", err))
		existing = map[string]*entity.Place{}
	}

	now := s.now()
	var needsFetch []string
	for _, id := range ids {
		if place, ok := existing[id]; !ok || !place.IsSatisfied(now) {
			needsFetch = append(needsFetch, id)
		}
	}

	var (
		mu      sync.Mutex
		fetched = make(map[string]*entity.Place, len(needsFetch))
	)

	// Fetch errors are absorbed so one failure never cancels its siblings.
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, id := range needsFetch {
		g.Go(func() error {
			incoming, err := s.fetchRich(ctx, id)
			if err != nil {
				enrichmentFetchFailed.Add(ctx, 1, metric.WithAttributes(attribute.Bool("cached", existing[id] != nil)))
				logger.Warn("Failed to fetch place details", slog.String("place_id", id), slog.Any("error", err))

				return nil
			}

			merged := entity.MergeUpstream(existing[id], incoming)
			mu.Lock()
			fetched[id] = merged
			mu.Unlock()

			s.persist(ctx, incoming)

			return nil
		})
	}
	_ = g.Wait()

	places := make([]*entity.Place, 0, len(ids))
	for _, id := range ids {
		if place, ok := fetched[id]; ok {
			places = append(places, place)

			continue
		}
		if place, ok := existing[id]; ok {
			places = append(places, place)
		}
	}

	logger.Debug("Enriched places",
		slog.Int("requested", len(ids)),
		slog.Int("fetched", len(fetched)),
		slog.Int("returned", len(places)),
	)

	return places, nil
}

// GetOrFetchEntity returns the fresh cached record or fetches it upstream
func (s *enrichmentService) GetOrFetchEntity(ctx context.Context, id string) (*entity.Place, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	existing, err := s.placeRepo.FindPlace(ctx, id)
	switch {
	case errors.Is(err, domainerrors.ErrPlaceNotFound):
		existing = nil
	case err != nil:
		logger.Warn("Failed to read cached place", slog.String("place_id", id), slog.Any("error", err))
		existing = nil
	}

	if existing != nil && !existing.Freshness.IsStaleAt(s.now()) {
		return existing, nil
	}

	incoming, err := s.fetchRich(ctx, id)
	if err != nil {
		if existing != nil {
			logger.Warn("Serving stale place after failed fetch", slog.String("place_id", id), slog.Any("error", err))

			return existing, nil
		}

		return nil, err
	}

	s.persist(ctx, incoming)

	return entity.MergeUpstream(existing, incoming), nil
}

func (s *enrichmentService) fetchRich(ctx context.Context, id string) (*entity.Place, error) {
	return fetchRichDetails(ctx, s.provider, id, s.fetchTimeout)
}

func (s *enrichmentService) persist(ctx context.Context, place *entity.Place) {
	s.writer.Go(ctx, "place.enrich", func(ctx context.Context) error {
		_, err := s.placeRepo.SavePlace(ctx, place)

		return err
	})
}

// uniqueIDs drops empty and repeated IDs, keeping the first occurrence.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
