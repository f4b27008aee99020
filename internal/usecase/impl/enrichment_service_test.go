package impl

import (
	"context"
	"testing"
	"time"

	"tablescout/internal/domain/entity"
	domainerrors "tablescout/internal/domain/errors"
	"tablescout/internal/domain/service"
	mockRepo "tablescout/internal/mocks/repository"
	mockSvc "tablescout/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type enrichmentServiceFixtures struct {
	service   *enrichmentService
	placeRepo *mockRepo.MockPlaceRepository
	provider  *mockSvc.MockPlaceProvider
	writer    *BackgroundWriter
	now       time.Time
}

func createTestEnrichmentService(t *testing.T) *enrichmentServiceFixtures {
	placeRepo := mockRepo.NewMockPlaceRepository(t)
	provider := mockSvc.NewMockPlaceProvider(t)
	cfg := newTestConfig()
	writer := NewBackgroundWriter(cfg, newDiscardLogger())
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	svc := NewEnrichmentService(placeRepo, provider, writer, cfg, newDiscardLogger()).(*enrichmentService)
	svc.now = func() time.Time { return now }

	return &enrichmentServiceFixtures{
		service:   svc,
		placeRepo: placeRepo,
		provider:  provider,
		writer:    writer,
		now:       now,
	}
}

func placeIDs(places []*entity.Place) []string {
	ids := make([]string, 0, len(places))
	for _, place := range places {
		ids = append(ids, place.ID)
	}

	return ids
}

func TestEnrichmentService_Enrich(t *testing.T) {
	fx := createTestEnrichmentService(t)
	ctx := context.Background()

	satisfied := richPlace("a", 48.14, 17.10, fx.now.Add(-time.Hour))
	light := lightPlace("b", 48.15, 17.11, fx.now.Add(-time.Hour))
	stale := richPlace("c", 48.16, 17.12, fx.now.Add(-8*24*time.Hour))
	fetchedB := richPlace("b", 48.15, 17.11, fx.now)

	ids := []string{"a", "b", "c", "d"}
	fx.placeRepo.EXPECT().
		FindPlaces(ctx, ids).
		Return(map[string]*entity.Place{"a": satisfied, "b": light, "c": stale}, nil)

	fx.provider.EXPECT().GetDetails(mock.Anything, "b", service.RichFields).Return(fetchedB, nil).Once()
	fx.provider.EXPECT().GetDetails(mock.Anything, "c", service.RichFields).Return(nil, domainerrors.ErrUpstreamUnavailable).Once()
	fx.provider.EXPECT().GetDetails(mock.Anything, "d", service.RichFields).Return(nil, domainerrors.ErrPlaceNotFound).Once()
	fx.placeRepo.EXPECT().SavePlace(mock.Anything, fetchedB).Return(fetchedB, nil).Once()

	places, err := fx.service.Enrich(ctx, ids)
	require.NoError(t, err)
	fx.writer.Wait()

	// Input order is kept, the failed fetch falls back to the stale record and
	// the identity with nothing cached is dropped.
	assert.Equal(t, []string{"a", "b", "c"}, placeIDs(places))
	assert.Same(t, satisfied, places[0])
	assert.Equal(t, entity.EnrichmentRich, places[1].EnrichmentLevel)
	assert.Equal(t, "Traditional Slovak cooking.", places[1].Details.Editorial)
	assert.Same(t, stale, places[2])
}

func TestEnrichmentService_Enrich_NeverDowngrades(t *testing.T) {
	fx := createTestEnrichmentService(t)
	ctx := context.Background()

	existing := richPlace("r", 48.14, 17.10, fx.now.Add(-8*24*time.Hour))
	existing.Claim = &entity.Claim{ClaimedBy: "owner-1", CustomPhotos: []entity.Photo{{Ref: "owner/1.jpg"}}}
	incoming := lightPlace("r", 48.14, 17.10, fx.now)

	fx.placeRepo.EXPECT().FindPlaces(ctx, []string{"r"}).Return(map[string]*entity.Place{"r": existing}, nil)
	fx.provider.EXPECT().GetDetails(mock.Anything, "r", service.RichFields).Return(incoming, nil)
	fx.placeRepo.EXPECT().SavePlace(mock.Anything, incoming).Return(existing, nil)

	places, err := fx.service.Enrich(ctx, []string{"r"})
	require.NoError(t, err)
	fx.writer.Wait()

	require.Len(t, places, 1)
	assert.Equal(t, entity.EnrichmentRich, places[0].EnrichmentLevel)
	require.NotNil(t, places[0].Claim)
	assert.Equal(t, existing.Claim.CustomPhotos, places[0].Claim.CustomPhotos)
}

func TestEnrichmentService_Enrich_DeduplicatesInput(t *testing.T) {
	fx := createTestEnrichmentService(t)
	ctx := context.Background()

	a := richPlace("a", 48.14, 17.10, fx.now)
	fx.placeRepo.EXPECT().FindPlaces(ctx, []string{"a"}).Return(map[string]*entity.Place{"a": a}, nil).Once()

	places, err := fx.service.Enrich(ctx, []string{"a", "", "a"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, placeIDs(places))

	empty, err := fx.service.Enrich(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEnrichmentService_Enrich_StoreUnavailable(t *testing.T) {
	fx := createTestEnrichmentService(t)
	ctx := context.Background()

	fetched := richPlace("x", 48.14, 17.10, fx.now)
	fx.placeRepo.EXPECT().FindPlaces(ctx, []string{"x"}).Return(nil, assert.AnError)
	fx.provider.EXPECT().GetDetails(mock.Anything, "x", service.RichFields).Return(fetched, nil)
	fx.placeRepo.EXPECT().SavePlace(mock.Anything, fetched).Return(nil, assert.AnError)

	places, err := fx.service.Enrich(ctx, []string{"x"})
	require.NoError(t, err)
	fx.writer.Wait()

	assert.Equal(t, []string{"x"}, placeIDs(places))
}

func TestEnrichmentService_GetOrFetchEntity_Fresh(t *testing.T) {
	fx := createTestEnrichmentService(t)
	ctx := context.Background()

	cached := lightPlace("f", 48.14, 17.10, fx.now.Add(-time.Hour))
	fx.placeRepo.EXPECT().FindPlace(ctx, "f").Return(cached, nil)

	place, err := fx.service.GetOrFetchEntity(ctx, "f")
	require.NoError(t, err)

	assert.Same(t, cached, place)
}

func TestEnrichmentService_GetOrFetchEntity_Fetches(t *testing.T) {
	fx := createTestEnrichmentService(t)
	ctx := context.Background()

	fetched := richPlace("n", 48.14, 17.10, fx.now)
	fx.placeRepo.EXPECT().FindPlace(ctx, "n").Return(nil, domainerrors.ErrPlaceNotFound)
	fx.provider.EXPECT().GetDetails(mock.Anything, "n", service.RichFields).Return(fetched, nil)
	fx.placeRepo.EXPECT().SavePlace(mock.Anything, fetched).Return(fetched, nil)

	place, err := fx.service.GetOrFetchEntity(ctx, "n")
	require.NoError(t, err)
	fx.writer.Wait()

	assert.Equal(t, "n", place.ID)
	assert.NotEmpty(t, place.SpatialToken)
}

func TestEnrichmentService_GetOrFetchEntity_StaleFallback(t *testing.T) {
	fx := createTestEnrichmentService(t)
	ctx := context.Background()

	stale := lightPlace("s", 48.14, 17.10, fx.now.Add(-30*24*time.Hour))
	fx.placeRepo.EXPECT().FindPlace(ctx, "s").Return(stale, nil)
	fx.provider.EXPECT().GetDetails(mock.Anything, "s", service.RichFields).Return(nil, domainerrors.ErrUpstreamUnavailable)

	place, err := fx.service.GetOrFetchEntity(ctx, "s")
	require.NoError(t, err)

	assert.Same(t, stale, place)
}

func TestEnrichmentService_GetOrFetchEntity_NotFound(t *testing.T) {
	fx := createTestEnrichmentService(t)
	ctx := context.Background()

	fx.placeRepo.EXPECT().FindPlace(ctx, "ghost").Return(nil, domainerrors.ErrPlaceNotFound)
	fx.provider.EXPECT().GetDetails(mock.Anything, "ghost", service.RichFields).Return(nil, domainerrors.ErrPlaceNotFound)

	_, err := fx.service.GetOrFetchEntity(ctx, "ghost")

	assert.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
}

func TestEnrichmentService_GetOrFetchEntity_Timeout(t *testing.T) {
	fx := createTestEnrichmentService(t)
	fx.service.fetchTimeout = 20 * time.Millisecond
	ctx := context.Background()

	fx.placeRepo.EXPECT().FindPlace(ctx, "slow").Return(nil, domainerrors.ErrPlaceNotFound)
	fx.provider.EXPECT().
		GetDetails(mock.Anything, "slow", service.RichFields).
		RunAndReturn(func(ctx context.Context, _ string, _ []string) (*entity.Place, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		})

	_, err := fx.service.GetOrFetchEntity(ctx, "slow")

	assert.ErrorIs(t, err, domainerrors.ErrUpstreamTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
