package impl

import (
	"context"
	"testing"
	"time"

	"tablescout/internal/domain/entity"
	domainerrors "tablescout/internal/domain/errors"
	"tablescout/internal/domain/service"
	"tablescout/internal/geo"
	"tablescout/internal/infra/persistence/sqlite"
	mockRepo "tablescout/internal/mocks/repository"
	mockSvc "tablescout/internal/mocks/service"
	"tablescout/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type searchServiceFixtures struct {
	service       *searchService
	partitionRepo *mockRepo.MockPartitionRepository
	placeRepo     *mockRepo.MockPlaceRepository
	provider      *mockSvc.MockPlaceProvider
	writer        *BackgroundWriter
}

func createTestSearchService(t *testing.T) *searchServiceFixtures {
	partitionRepo := mockRepo.NewMockPartitionRepository(t)
	placeRepo := mockRepo.NewMockPlaceRepository(t)
	provider := mockSvc.NewMockPlaceProvider(t)
	cfg := newTestConfig()
	writer := NewBackgroundWriter(cfg, newDiscardLogger())

	svc := NewSearchService(geo.NewDeriver(geo.PartitionConfig{}), partitionRepo, placeRepo, provider, writer, cfg, newDiscardLogger())

	return &searchServiceFixtures{
		service:       svc.(*searchService),
		partitionRepo: partitionRepo,
		placeRepo:     placeRepo,
		provider:      provider,
		writer:        writer,
	}
}

func TestSearchService_SearchNearby_BratislavaScenario(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	placeRepo := sqlite.NewPlaceRepository(db)
	partitionRepo := sqlite.NewPartitionRepository(db)
	provider := mockSvc.NewMockPlaceProvider(t)
	cfg := newTestConfig()
	writer := NewBackgroundWriter(cfg, newDiscardLogger())
	svc := NewSearchService(geo.NewDeriver(geo.PartitionConfig{}), partitionRepo, placeRepo, provider, writer, cfg, newDiscardLogger())

	now := time.Now().UTC()
	upstream := []*entity.Place{
		lightPlace("ChIJ-old-town", 48.1436, 17.1097, now),
		lightPlace("ChIJ-eurovea", 48.1403, 17.1223, now),
		lightPlace("ChIJ-palisady", 48.1502, 17.1040, now),
	}

	provider.EXPECT().
		SearchNearby(mock.Anything, mock.MatchedBy(func(req *service.SearchRequest) bool {
			return req.Lat == 48.1486 && req.Lng == 17.1077 && req.RadiusMeters == 5000
		})).
		Return(upstream, nil).
		Once()

	input := &usecase.SearchInput{Lat: 48.1486, Lng: 17.1077, RadiusMeters: 5000}

	first, err := svc.SearchNearby(ctx, input)
	require.NoError(t, err)
	assert.False(t, first.CacheHit)
	assert.Equal(t, usecase.SourceUpstream, first.Source)
	assert.Equal(t, "p500:962:342:5000", first.PartitionKey)
	require.Len(t, first.Places, 3)

	writer.Wait()

	stored, err := placeRepo.FindPlaces(ctx, []string{"ChIJ-old-town", "ChIJ-eurovea", "ChIJ-palisady"})
	require.NoError(t, err)
	require.Len(t, stored, 3)
	for id, place := range stored {
		assert.Equal(t, entity.EnrichmentLight, place.EnrichmentLevel, id)
	}

	partition, err := partitionRepo.FindPartition(ctx, first.PartitionKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"ChIJ-old-town", "ChIJ-eurovea", "ChIJ-palisady"}, partition.MemberIDs)

	second, err := svc.SearchNearby(ctx, input)
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, usecase.SourcePartition, second.Source)
	assert.Equal(t, first.PartitionKey, second.PartitionKey)

	ids := make([]string, 0, len(second.Places))
	for _, place := range second.Places {
		ids = append(ids, place.ID)
	}
	assert.Equal(t, []string{"ChIJ-old-town", "ChIJ-eurovea", "ChIJ-palisady"}, ids)
}

func TestSearchService_SearchNearby_UpstreamResultsKeepStoredOverlay(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	placeRepo := sqlite.NewPlaceRepository(db)
	partitionRepo := sqlite.NewPartitionRepository(db)
	provider := mockSvc.NewMockPlaceProvider(t)
	cfg := newTestConfig()
	writer := NewBackgroundWriter(cfg, newDiscardLogger())
	svc := NewSearchService(geo.NewDeriver(geo.PartitionConfig{}), partitionRepo, placeRepo, provider, writer, cfg, newDiscardLogger())

	now := time.Now().UTC()
	_, err := placeRepo.SavePlace(ctx, richPlace("ChIJ-claimed", 48.1436, 17.1097, now))
	require.NoError(t, err)
	require.NoError(t, placeRepo.SaveClaim(ctx, "ChIJ-claimed", "owner-3", &entity.Claim{ClaimedBy: "owner-3", Name: "Owner Name"}))

	provider.EXPECT().
		SearchNearby(mock.Anything, mock.Anything).
		Return([]*entity.Place{
			lightPlace("ChIJ-claimed", 48.1436, 17.1097, now),
			lightPlace("ChIJ-fresh", 48.1403, 17.1223, now),
		}, nil).
		Once()

	result, err := svc.SearchNearby(ctx, &usecase.SearchInput{Lat: 48.1486, Lng: 17.1077, RadiusMeters: 5000})
	require.NoError(t, err)
	writer.Wait()

	require.Len(t, result.Places, 2)
	claimed := result.Places[0]
	assert.Equal(t, "ChIJ-claimed", claimed.ID)
	require.NotNil(t, claimed.Claim)
	assert.Equal(t, "owner-3", claimed.Claim.ClaimedBy)
	assert.Equal(t, entity.EnrichmentRich, claimed.EnrichmentLevel)
	assert.NotEmpty(t, claimed.Details.Reviews)
	assert.Nil(t, result.Places[1].Claim)

	stored, err := placeRepo.FindPlace(ctx, "ChIJ-claimed")
	require.NoError(t, err)
	assert.Equal(t, stored.Claim, claimed.Claim)
	assert.Equal(t, stored.EnrichmentLevel, claimed.EnrichmentLevel)
}

func TestSearchService_SearchNearby_InvalidQuery(t *testing.T) {
	fx := createTestSearchService(t)

	_, err := fx.service.SearchNearby(context.Background(), &usecase.SearchInput{Lat: 91, Lng: 17, RadiusMeters: 1000})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuery)
}

func TestSearchService_SearchNearby_NeighborCovers(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// A wide search fetched from the neighboring cell still covers a small
	// query near the cell edge.
	input := &usecase.SearchInput{Lat: 48.1486, Lng: 17.1077, RadiusMeters: 4600}
	keys, err := fx.service.deriver.NeighborKeys(input.Lat, input.Lng, input.RadiusMeters)
	require.NoError(t, err)

	neighbor := &entity.Partition{
		Key:       keys[1],
		MemberIDs: []string{"near", "far"},
		Freshness: entity.NewFreshness(now, time.Hour),
		Params:    entity.SearchParams{Lat: 48.1500, Lng: 17.1080, RadiusMeters: 5400, BucketMeters: 5000},
	}

	fx.partitionRepo.EXPECT().
		FindPartitions(ctx, keys).
		Return(map[string]*entity.Partition{keys[1]: neighbor}, nil)
	fx.placeRepo.EXPECT().
		FindPlaces(ctx, []string{"near", "far"}).
		Return(map[string]*entity.Place{
			"near": lightPlace("near", 48.1490, 17.1080, now),
			"far":  lightPlace("far", 48.1950, 17.1080, now),
		}, nil)

	result, err := fx.service.SearchNearby(ctx, input)
	require.NoError(t, err)

	assert.True(t, result.CacheHit)
	assert.Equal(t, usecase.SourceNeighbor, result.Source)
	assert.Equal(t, keys[1], result.PartitionKey)
	require.Len(t, result.Places, 1)
	assert.Equal(t, "near", result.Places[0].ID)
}

func TestSearchService_SearchNearby_StalePartitionFallback(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	input := &usecase.SearchInput{Lat: 48.1486, Lng: 17.1077, RadiusMeters: 5000}
	keys, err := fx.service.deriver.NeighborKeys(input.Lat, input.Lng, input.RadiusMeters)
	require.NoError(t, err)

	stale := &entity.Partition{
		Key:       keys[0],
		MemberIDs: []string{"a"},
		Freshness: entity.NewFreshness(now.Add(-2*time.Hour), time.Hour),
		Params:    entity.SearchParams{Lat: 48.1486, Lng: 17.1077, RadiusMeters: 5000, BucketMeters: 5000},
	}

	fx.partitionRepo.EXPECT().FindPartitions(ctx, keys).Return(map[string]*entity.Partition{keys[0]: stale}, nil)
	fx.provider.EXPECT().SearchNearby(ctx, mock.Anything).Return(nil, domainerrors.ErrUpstreamUnavailable)
	fx.placeRepo.EXPECT().
		FindPlaces(ctx, []string{"a"}).
		Return(map[string]*entity.Place{"a": lightPlace("a", 48.1486, 17.1077, now)}, nil)

	result, err := fx.service.SearchNearby(ctx, input)
	require.NoError(t, err)

	assert.True(t, result.CacheHit)
	require.Len(t, result.Places, 1)
	assert.Equal(t, "a", result.Places[0].ID)
}

func TestSearchService_SearchNearby_UpstreamFailure(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	fx.partitionRepo.EXPECT().FindPartitions(ctx, mock.Anything).Return(map[string]*entity.Partition{}, nil)
	fx.provider.EXPECT().SearchNearby(ctx, mock.Anything).Return(nil, domainerrors.ErrUpstreamTimeout)

	_, err := fx.service.SearchNearby(ctx, &usecase.SearchInput{Lat: 48.1486, Lng: 17.1077, RadiusMeters: 5000})

	assert.ErrorIs(t, err, domainerrors.ErrUpstreamTimeout)
}

func TestSearchService_SearchNearby_CategoryScopesKey(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	fx.partitionRepo.EXPECT().
		FindPartitions(ctx, mock.MatchedBy(func(keys []string) bool {
			return len(keys) == 9 && keys[0] == "p500:962:342:5000:cafe"
		})).
		Return(map[string]*entity.Partition{}, nil)
	fx.provider.EXPECT().
		SearchNearby(ctx, mock.MatchedBy(func(req *service.SearchRequest) bool { return req.Category == "cafe" })).
		Return([]*entity.Place{lightPlace("c1", 48.1486, 17.1077, now)}, nil)
	fx.placeRepo.EXPECT().FindPlaces(ctx, []string{"c1"}).Return(map[string]*entity.Place{}, nil)
	fx.placeRepo.EXPECT().SavePlace(mock.Anything, mock.Anything).Return(&entity.Place{}, nil)
	fx.partitionRepo.EXPECT().
		SavePartition(mock.Anything, mock.MatchedBy(func(p *entity.Partition) bool {
			return p.Key == "p500:962:342:5000:cafe" && p.Params.Category == "cafe"
		})).
		Return(nil)

	result, err := fx.service.SearchNearby(ctx, &usecase.SearchInput{Lat: 48.1486, Lng: 17.1077, RadiusMeters: 5000, Category: " Cafe "})
	require.NoError(t, err)
	fx.writer.Wait()

	assert.Equal(t, "p500:962:342:5000:cafe", result.PartitionKey)
}

func TestSearchService_QueryByProximity(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	placeRepo := sqlite.NewPlaceRepository(db)
	cfg := newTestConfig()
	svc := NewSearchService(geo.NewDeriver(geo.PartitionConfig{}), sqlite.NewPartitionRepository(db), placeRepo,
		mockSvc.NewMockPlaceProvider(t), NewBackgroundWriter(cfg, newDiscardLogger()), cfg, newDiscardLogger())

	now := time.Now().UTC()
	for _, place := range []*entity.Place{
		lightPlace("far", 48.1590, 17.1300, now),
		lightPlace("near", 48.1488, 17.1079, now),
		lightPlace("mid", 48.1436, 17.1097, now),
		lightPlace("vienna", 48.2082, 16.3738, now),
	} {
		_, err := placeRepo.SavePlace(ctx, place)
		require.NoError(t, err)
	}

	places, err := svc.QueryByProximity(ctx, 48.1486, 17.1077, 2)
	require.NoError(t, err)

	require.Len(t, places, 2)
	assert.Equal(t, "near", places[0].ID)
	assert.Equal(t, "mid", places[1].ID)

	_, err = svc.QueryByProximity(ctx, 120, 17, 5)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuery)
}
