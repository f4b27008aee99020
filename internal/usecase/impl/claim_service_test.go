package impl

import (
	"context"
	"testing"
	"time"

	"tablescout/internal/domain/entity"
	domainerrors "tablescout/internal/domain/errors"
	"tablescout/internal/domain/service"
	"tablescout/internal/infra/persistence/sqlite"
	mockRepo "tablescout/internal/mocks/repository"
	mockSvc "tablescout/internal/mocks/service"
	mockUsecase "tablescout/internal/mocks/usecase"
	"tablescout/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type claimServiceFixtures struct {
	service    *claimService
	enrichment *mockUsecase.MockEnrichmentUsecase
	placeRepo  *mockRepo.MockPlaceRepository
	provider   *mockSvc.MockPlaceProvider
	publisher  *mockSvc.MockEventPublisher
	views      *ViewCache
	now        time.Time
}

func createTestClaimService(t *testing.T) *claimServiceFixtures {
	enrichment := mockUsecase.NewMockEnrichmentUsecase(t)
	placeRepo := mockRepo.NewMockPlaceRepository(t)
	provider := mockSvc.NewMockPlaceProvider(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	cfg := newTestConfig()
	views := NewViewCache(cfg)
	now := time.Now().UTC()

	svc := NewClaimService(enrichment, placeRepo, provider, publisher, views, cfg, newDiscardLogger()).(*claimService)
	svc.now = func() time.Time { return now }

	return &claimServiceFixtures{
		service:    svc,
		enrichment: enrichment,
		placeRepo:  placeRepo,
		provider:   provider,
		publisher:  publisher,
		views:      views,
		now:        now,
	}
}

func TestClaimService_ResolveClaimed_OverlayAndCache(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()

	place := richPlace("k", 48.1436, 17.1097, fx.now)
	place.Claim = &entity.Claim{
		ClaimedBy:    "owner-1",
		Name:         "Koliba u Jána",
		CustomPhotos: []entity.Photo{{Ref: "owner/terrace.jpg"}},
	}
	fx.enrichment.EXPECT().GetOrFetchEntity(ctx, "k").Return(place, nil).Once()

	view, err := fx.service.ResolveClaimed(ctx, "k")
	require.NoError(t, err)

	assert.Equal(t, "Koliba u Jána", view.Name)
	assert.True(t, view.Claimed)
	require.Len(t, view.Photos, 2)
	assert.Equal(t, entity.PhotoSourceOwner, view.Photos[0].Source)

	item := fx.views.Get("k")
	require.NotNil(t, item)
	assert.Equal(t, 5*time.Minute, item.TTL())

	cached, err := fx.service.ResolveClaimed(ctx, "k")
	require.NoError(t, err)
	assert.Same(t, view, cached)
}

func TestClaimService_ResolveClaimed_UnclaimedTTL(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()

	fx.enrichment.EXPECT().GetOrFetchEntity(ctx, "u").Return(lightPlace("u", 48.14, 17.10, fx.now), nil)

	view, err := fx.service.ResolveClaimed(ctx, "u")
	require.NoError(t, err)

	assert.False(t, view.Claimed)
	assert.Equal(t, 24*time.Hour, fx.views.Get("u").TTL())
}

func TestClaimService_ResolveClaimed_SelfHealsOnce(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	placeRepo := sqlite.NewPlaceRepository(db)
	provider := mockSvc.NewMockPlaceProvider(t)
	cfg := newTestConfig()
	writer := NewBackgroundWriter(cfg, newDiscardLogger())
	enrichment := NewEnrichmentService(placeRepo, provider, writer, cfg, newDiscardLogger())
	views := NewViewCache(cfg)
	svc := NewClaimService(enrichment, placeRepo, provider, mockSvc.NewMockEventPublisher(t), views, cfg, newDiscardLogger())

	now := time.Now().UTC()

	// The base record lost its geometry but the overlay survived.
	corrupted := lightPlace("ChIJ-koliba", 48.1436, 17.1097, now)
	corrupted.Summary.Location = entity.Location{}
	_, err := placeRepo.SavePlace(ctx, corrupted)
	require.NoError(t, err)
	require.NoError(t, placeRepo.SaveClaim(ctx, "ChIJ-koliba", "owner-9", &entity.Claim{
		ClaimedBy:    "owner-9",
		Name:         "Koliba",
		CustomPhotos: []entity.Photo{{Ref: "owner/fireplace.jpg"}},
		UpdatedAt:    now,
	}))

	provider.EXPECT().
		GetDetails(mock.Anything, "ChIJ-koliba", service.RichFields).
		Return(richPlace("ChIJ-koliba", 48.1436, 17.1097, now), nil).
		Once()

	view, err := svc.ResolveClaimed(ctx, "ChIJ-koliba")
	require.NoError(t, err)

	assert.Equal(t, "Koliba", view.Name)
	assert.Equal(t, entity.Location{Lat: 48.1436, Lng: 17.1097}, view.Location)
	assert.Equal(t, entity.PhotoSourceOwner, view.Photos[0].Source)

	_, err = svc.ResolveClaimed(ctx, "ChIJ-koliba")
	require.NoError(t, err)

	// The repaired record is stored, so even without the view cache no
	// further fetch happens.
	views.DeleteAll()
	_, err = svc.ResolveClaimed(ctx, "ChIJ-koliba")
	require.NoError(t, err)

	stored, err := placeRepo.FindPlace(ctx, "ChIJ-koliba")
	require.NoError(t, err)
	assert.True(t, stored.HasRequiredFields())
	require.NotNil(t, stored.Claim)
	assert.Equal(t, []entity.Photo{{Ref: "owner/fireplace.jpg"}}, stored.Claim.CustomPhotos)

	writer.Wait()
}

func TestClaimService_ResolveClaimed_RepairFails(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()

	broken := lightPlace("b", 48.14, 17.10, fx.now)
	broken.Summary.Name = ""
	broken.Claim = &entity.Claim{ClaimedBy: "owner-1"}

	fx.enrichment.EXPECT().GetOrFetchEntity(ctx, "b").Return(broken, nil)
	fx.provider.EXPECT().GetDetails(mock.Anything, "b", service.RichFields).Return(nil, domainerrors.ErrUpstreamUnavailable)

	_, err := fx.service.ResolveClaimed(ctx, "b")

	assert.ErrorIs(t, err, domainerrors.ErrInconsistentOverlay)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
	assert.Nil(t, fx.views.Get("b"))
}

func TestClaimService_ResolveClaimed_RepairTimesOut(t *testing.T) {
	fx := createTestClaimService(t)
	fx.service.fetchTimeout = 20 * time.Millisecond
	ctx := context.Background()

	broken := lightPlace("stalled", 48.14, 17.10, fx.now)
	broken.Summary.Location = entity.Location{}
	broken.Claim = &entity.Claim{ClaimedBy: "owner-1"}

	fx.enrichment.EXPECT().GetOrFetchEntity(ctx, "stalled").Return(broken, nil)
	fx.provider.EXPECT().
		GetDetails(mock.Anything, "stalled", service.RichFields).
		RunAndReturn(func(ctx context.Context, _ string, _ []string) (*entity.Place, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		})

	_, err := fx.service.ResolveClaimed(ctx, "stalled")

	assert.ErrorIs(t, err, domainerrors.ErrInconsistentOverlay)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClaimService_ResolveClaimed_NotFound(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()

	fx.enrichment.EXPECT().GetOrFetchEntity(ctx, "x").Return(nil, domainerrors.ErrPlaceNotFound)

	_, err := fx.service.ResolveClaimed(ctx, "x")

	assert.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
}

func TestClaimService_UpdateClaim(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()

	place := richPlace("p", 48.14, 17.10, fx.now)
	fx.views.Set("p", &entity.ResolvedView{ID: "p", Name: "old"}, time.Hour)

	check := 42.0
	input := &usecase.ClaimInput{
		Name:         " U Jána ",
		AverageCheck: &check,
		CuisineTags:  []string{"Slovak", " "},
		CustomPhotos: []entity.Photo{{Ref: "owner/front.jpg"}},
	}

	fx.placeRepo.EXPECT().FindPlace(ctx, "p").Return(place, nil)
	fx.placeRepo.EXPECT().
		SaveClaim(ctx, "p", "op-1", mock.MatchedBy(func(claim *entity.Claim) bool {
			return claim.ClaimedBy == "op-1" && claim.Name == "U Jána" &&
				assert.ObjectsAreEqual([]string{"slovak"}, claim.CuisineTags) && claim.UpdatedAt.Equal(fx.now)
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishClaimEvent(ctx, mock.MatchedBy(func(event *service.ClaimEvent) bool {
			return event.PlaceID == "p" && event.ClaimedBy == "op-1" && !event.Removed && event.EventID != ""
		})).
		Return(nil)

	view, err := fx.service.UpdateClaim(ctx, "p", "op-1", input)
	require.NoError(t, err)

	assert.Equal(t, "U Jána", view.Name)
	assert.Equal(t, entity.PriceTier(3), view.PriceTier)
	assert.Equal(t, []string{"slovak"}, view.CuisineTags)
	assert.Nil(t, fx.views.Get("p"))
}

func TestClaimService_UpdateClaim_Withdraw(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()

	place := richPlace("w", 48.14, 17.10, fx.now)
	place.Claim = &entity.Claim{ClaimedBy: "op-1", Name: "Owner Name"}

	fx.placeRepo.EXPECT().FindPlace(ctx, "w").Return(place, nil)
	fx.placeRepo.EXPECT().SaveClaim(ctx, "w", "op-1", (*entity.Claim)(nil)).Return(nil)
	fx.publisher.EXPECT().
		PublishClaimEvent(ctx, mock.MatchedBy(func(event *service.ClaimEvent) bool { return event.Removed })).
		Return(assert.AnError)

	view, err := fx.service.UpdateClaim(ctx, "w", "op-1", nil)
	require.NoError(t, err)

	assert.False(t, view.Claimed)
	assert.Equal(t, place.Summary.Name, view.Name)
}

func TestClaimService_UpdateClaim_Conflict(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()

	place := richPlace("c", 48.14, 17.10, fx.now)
	fx.placeRepo.EXPECT().FindPlace(ctx, "c").Return(place, nil)
	fx.placeRepo.EXPECT().SaveClaim(ctx, "c", "op-2", mock.Anything).Return(domainerrors.ErrClaimConflict)
	fx.views.Set("c", &entity.ResolvedView{ID: "c", Name: "kept"}, time.Hour)

	_, err := fx.service.UpdateClaim(ctx, "c", "op-2", &usecase.ClaimInput{Name: "Hijack"})

	assert.ErrorIs(t, err, domainerrors.ErrClaimConflict)
	assert.NotNil(t, fx.views.Get("c"))
	fx.publisher.AssertNotCalled(t, "PublishClaimEvent", mock.Anything, mock.Anything)
}

func TestClaimService_UpdateClaim_FetchesUncachedPlace(t *testing.T) {
	fx := createTestClaimService(t)
	ctx := context.Background()

	fetched := richPlace("new", 48.14, 17.10, fx.now)
	fx.placeRepo.EXPECT().FindPlace(ctx, "new").Return(nil, domainerrors.ErrPlaceNotFound)
	fx.provider.EXPECT().GetDetails(mock.Anything, "new", service.RichFields).Return(fetched, nil)
	fx.placeRepo.EXPECT().SavePlace(ctx, fetched).Return(fetched, nil)
	fx.placeRepo.EXPECT().SaveClaim(ctx, "new", "op-1", mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishClaimEvent(ctx, mock.Anything).Return(nil)

	view, err := fx.service.UpdateClaim(ctx, "new", "op-1", &usecase.ClaimInput{Name: "Brand New"})
	require.NoError(t, err)

	assert.Equal(t, "Brand New", view.Name)
	assert.Equal(t, "op-1", view.ClaimedBy)
}

func TestClaimService_UpdateClaim_UncachedFetchTimesOut(t *testing.T) {
	fx := createTestClaimService(t)
	fx.service.fetchTimeout = 20 * time.Millisecond
	ctx := context.Background()

	fx.placeRepo.EXPECT().FindPlace(ctx, "slow").Return(nil, domainerrors.ErrPlaceNotFound)
	fx.provider.EXPECT().
		GetDetails(mock.Anything, "slow", service.RichFields).
		RunAndReturn(func(ctx context.Context, _ string, _ []string) (*entity.Place, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		})

	_, err := fx.service.UpdateClaim(ctx, "slow", "op-1", &usecase.ClaimInput{Name: "Slow"})

	assert.ErrorIs(t, err, domainerrors.ErrUpstreamTimeout)
}
