package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tablescout/config"
	deliverycontext "tablescout/internal/delivery/context"
	"tablescout/internal/domain/entity"
	domainerrors "tablescout/internal/domain/errors"
	"tablescout/internal/domain/repository"
	"tablescout/internal/domain/service"
	"tablescout/internal/errors"
	"tablescout/internal/usecase"

	"github.com/google/uuid"
)

type claimService struct {
	enrichment   usecase.EnrichmentUsecase
	placeRepo    repository.PlaceRepository
	provider     service.PlaceProvider
	publisher    service.EventPublisher
	views        *ViewCache
	claimedTTL   time.Duration
	unclaimedTTL time.Duration
	fetchTimeout time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewClaimService creates a new claim overlay service instance
func NewClaimService(
	enrichment usecase.EnrichmentUsecase,
	placeRepo repository.PlaceRepository,
	provider service.PlaceProvider,
	publisher service.EventPublisher,
	views *ViewCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ClaimUsecase {
	claimedTTL, unclaimedTTL := viewTTLs(cfg)

	return &claimService{
		enrichment:   enrichment,
		placeRepo:    placeRepo,
		provider:     provider,
		publisher:    publisher,
		views:        views,
		claimedTTL:   claimedTTL,
		unclaimedTTL: unclaimedTTL,
		fetchTimeout: fetchTimeoutFrom(cfg),
		logger:       logger,
		now:          time.Now,
	}
}

// ResolveClaimed returns the client view of a place
func (s *claimService) ResolveClaimed(ctx context.Context, id string) (*entity.ResolvedView, error) {
	if item := s.views.Get(id); item != nil {
		return item.Value(), nil
	}

	place, err := s.enrichment.GetOrFetchEntity(ctx, id)
	if err != nil {
		return nil, err
	}

	if place.IsClaimed() && !place.HasRequiredFields() {
		place, err = s.repair(ctx, place)
		if err != nil {
			return nil, err
		}
	}

	view := entity.Resolve(place, s.now())
	s.cacheView(view)

	return view, nil
}

// repair refetches the upstream portion of a claimed place whose base record
// is incomplete and waits for the merged record to be stored.
func (s *claimService) repair(ctx context.Context, place *entity.Place) (*entity.Place, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.Warn("Claimed place has an incomplete base record, repairing",
		slog.String("place_id", place.ID),
		slog.String("claimed_by", place.Claim.ClaimedBy),
	)

	incoming, err := fetchRichDetails(ctx, s.provider, place.ID, s.fetchTimeout)
	if err != nil {
		return nil, domainerrors.ErrInconsistentOverlay.WithCause(err)
	}

	repaired, err := s.placeRepo.SavePlace(ctx, incoming)
	if err != nil {
		return nil, domainerrors.ErrInconsistentOverlay.WithCause(err)
	}

	if !repaired.HasRequiredFields() {
		return nil, domainerrors.ErrInconsistentOverlay.WithCause(
			errors.Errorf("place %s still lacks a name or location after repair", place.ID))
	}

	logger.Info("Repaired claimed place", slog.String("place_id", place.ID))

	return repaired, nil
}

// UpdateClaim stores an operator's overlay for a place
func (s *claimService) UpdateClaim(ctx context.Context, id, operatorID string, input *usecase.ClaimInput) (*entity.ResolvedView, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	place, err := s.loadForClaim(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var claim *entity.Claim
	if input != nil {
		claim = newClaim(operatorID, input, now)
	}

	if err := s.placeRepo.SaveClaim(ctx, id, operatorID, claim); err != nil {
		if errors.Is(err, domainerrors.ErrClaimConflict) || errors.Is(err, domainerrors.ErrPlaceNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to save claim")
	}

	s.views.Delete(id)

	event := &service.ClaimEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.New().String(),
		PlaceID:   id,
		ClaimedBy: operatorID,
		Removed:   claim == nil,
		UpdatedAt: now,
	}
	if err := s.publisher.PublishClaimEvent(ctx, event); err != nil {
		logger.Error("Failed to publish claim event",
			slog.String("place_id", id),
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}

	logger.Info("Claim updated",
		slog.String("place_id", id),
		slog.String("claimed_by", operatorID),
		slog.Bool("removed", claim == nil),
	)

	place.Claim = claim

	return entity.Resolve(place, now), nil
}

// loadForClaim returns the stored place, fetching and storing it first when
// it was never cached so the overlay has a document to attach to.
func (s *claimService) loadForClaim(ctx context.Context, id string) (*entity.Place, error) {
	place, err := s.placeRepo.FindPlace(ctx, id)
	if err == nil {
		return place, nil
	}
	if !errors.Is(err, domainerrors.ErrPlaceNotFound) {
		return nil, errors.Wrap(err, "failed to find place")
	}

	incoming, err := fetchRichDetails(ctx, s.provider, id, s.fetchTimeout)
	if err != nil {
		return nil, err
	}

	return s.placeRepo.SavePlace(ctx, incoming)
}

func (s *claimService) cacheView(view *entity.ResolvedView) {
	ttl := s.unclaimedTTL
	if view.Claimed {
		ttl = s.claimedTTL
	}

	s.views.Set(view.ID, view, ttl)
}

func newClaim(operatorID string, input *usecase.ClaimInput, now time.Time) *entity.Claim {
	claim := &entity.Claim{
		ClaimedBy:    operatorID,
		Name:         strings.TrimSpace(input.Name),
		Address:      strings.TrimSpace(input.Address),
		AverageCheck: input.AverageCheck,
		OpeningHours: input.OpeningHours,
		MenuItems:    input.MenuItems,
		Tables:       input.Tables,
		CustomPhotos: input.CustomPhotos,
		UpdatedAt:    now,
	}
	for _, tag := range input.CuisineTags {
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
			claim.CuisineTags = append(claim.CuisineTags, tag)
		}
	}

	return claim
}
