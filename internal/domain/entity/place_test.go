package entity

import (
	"testing"
	"time"

	"tablescout/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

const testTTL = 7 * 24 * time.Hour

func lightPlace(id string, fetchedAt time.Time) *Place {
	return NewUpstreamPlace(id, Summary{
		Name:       "Bistro " + id,
		Address:    "Hlavné námestie 1, Bratislava",
		Location:   Location{Lat: 48.1436, Lng: 17.1097},
		Categories: []string{"restaurant"},
		Rating:     4.4,
		PriceTier:  2,
		Photos:     []Photo{{Ref: "places/" + id + "/photos/upstream-1"}},
	}, Details{}, fetchedAt, testTTL)
}

func richPlace(id string, fetchedAt time.Time) *Place {
	place := lightPlace(id, fetchedAt)
	place.Details = Details{
		Reviews:   []Review{{Author: "Jana", Rating: 5, Text: "Great halušky"}},
		Editorial: "Slovak classics in the old town.",
		Website:   "https://bistro.example.sk",
	}
	place.EnrichmentLevel = EnrichmentRich

	return place
}

func TestIsStale_Boundary(t *testing.T) {
	now := testNow

	assert.True(t, IsStale(now.Add(-time.Millisecond), now))
	assert.False(t, IsStale(now.Add(time.Millisecond), now))
	assert.False(t, IsStale(now, now))
}

func TestFreshness_IsStaleAt(t *testing.T) {
	freshness := NewFreshness(testNow, time.Hour)

	assert.Equal(t, testNow.Add(time.Hour), freshness.ExpiresAt)
	assert.False(t, freshness.IsStaleAt(testNow.Add(30*time.Minute)))
	assert.True(t, freshness.IsStaleAt(testNow.Add(time.Hour+time.Millisecond)))
}

func TestNewUpstreamPlace_Level(t *testing.T) {
	light := NewUpstreamPlace("a", Summary{Name: "A"}, Details{Website: "https://a.example"}, testNow, testTTL)
	assert.Equal(t, EnrichmentLight, light.EnrichmentLevel)

	rich := NewUpstreamPlace("b", Summary{Name: "B"}, Details{Editorial: "cozy"}, testNow, testTTL)
	assert.Equal(t, EnrichmentRich, rich.EnrichmentLevel)
}

func TestPlace_IsSatisfied(t *testing.T) {
	rich := richPlace("r", testNow)
	assert.True(t, rich.IsSatisfied(testNow.Add(time.Hour)))
	assert.False(t, rich.IsSatisfied(testNow.Add(testTTL+time.Second)))

	light := lightPlace("l", testNow)
	assert.False(t, light.IsSatisfied(testNow))
}

func TestPlace_HasRequiredFields(t *testing.T) {
	place := lightPlace("x", testNow)
	assert.True(t, place.HasRequiredFields())

	place.Summary.Name = ""
	assert.False(t, place.HasRequiredFields())

	place = lightPlace("y", testNow)
	place.Summary.Location = Location{}
	assert.False(t, place.HasRequiredFields())
}

func TestPlace_Clone(t *testing.T) {
	place := richPlace("c", testNow)
	place.Claim = &Claim{ClaimedBy: "owner-1", CuisineTags: []string{"slovak"}}

	clone := place.Clone()
	clone.Summary.Categories[0] = "bar"
	clone.Claim.CuisineTags[0] = "italian"
	clone.Details.Reviews[0].Text = "changed"

	assert.Equal(t, "restaurant", place.Summary.Categories[0])
	assert.Equal(t, "slovak", place.Claim.CuisineTags[0])
	assert.Equal(t, "Great halušky", place.Details.Reviews[0].Text)
	assert.Nil(t, (*Place)(nil).Clone())
}

func TestMergeUpstream_NewRecord(t *testing.T) {
	incoming := lightPlace("n", testNow)

	merged := MergeUpstream(nil, incoming)

	require.NotNil(t, merged)
	assert.Equal(t, geo.SpatialToken(48.1436, 17.1097), merged.SpatialToken)
	assert.Equal(t, EnrichmentLight, merged.EnrichmentLevel)
}

func TestMergeUpstream_NeverDowngrades(t *testing.T) {
	existing := richPlace("m", testNow)
	later := testNow.Add(48 * time.Hour)
	incoming := lightPlace("m", later)
	incoming.Summary.Rating = 4.7

	merged := MergeUpstream(existing, incoming)

	assert.Equal(t, EnrichmentRich, merged.EnrichmentLevel)
	assert.Equal(t, existing.Details.Editorial, merged.Details.Editorial)
	assert.Len(t, merged.Details.Reviews, 1)
	assert.Equal(t, existing.Freshness, merged.Freshness)
	assert.InDelta(t, 4.7, merged.Summary.Rating, 1e-9)
}

func TestMergeUpstream_Upgrades(t *testing.T) {
	existing := lightPlace("u", testNow)
	later := testNow.Add(time.Hour)
	incoming := richPlace("u", later)

	merged := MergeUpstream(existing, incoming)

	assert.Equal(t, EnrichmentRich, merged.EnrichmentLevel)
	assert.Equal(t, later.Add(testTTL), merged.Freshness.ExpiresAt)
}

func TestMergeUpstream_PreservesClaim(t *testing.T) {
	existing := richPlace("p", testNow)
	existing.Claim = &Claim{
		ClaimedBy:    "owner-1",
		CustomPhotos: []Photo{{Ref: "owner/terrace.jpg"}, {Ref: "owner/menu.jpg"}},
	}

	incoming := richPlace("p", testNow.Add(24*time.Hour))
	incoming.Summary.Photos = []Photo{{Ref: "places/p/photos/new"}}
	incoming.Claim = nil

	merged := MergeUpstream(existing, incoming)

	require.NotNil(t, merged.Claim)
	assert.Equal(t, existing.Claim.CustomPhotos, merged.Claim.CustomPhotos)
	assert.Equal(t, []Photo{{Ref: "places/p/photos/new"}}, merged.Summary.Photos)

	// The merged record does not alias the stored overlay.
	merged.Claim.CustomPhotos[0].Ref = "changed"
	assert.Equal(t, "owner/terrace.jpg", existing.Claim.CustomPhotos[0].Ref)
}

func TestMergeUpstream_RecomputesSpatialToken(t *testing.T) {
	existing := lightPlace("s", testNow)
	existing.SpatialToken = "stale-token"

	incoming := lightPlace("s", testNow.Add(time.Hour))
	incoming.Summary.Location = Location{Lat: 48.1590, Lng: 17.0640}

	merged := MergeUpstream(existing, incoming)

	assert.Equal(t, geo.SpatialToken(48.1590, 17.0640), merged.SpatialToken)
}

func TestMergeUpstream_KeepsSummaryMediaMissingFromPayload(t *testing.T) {
	existing := richPlace("k", testNow)
	existing.Summary.OpeningHours = &OpeningHours{WeekdayText: []string{"Monday: 11:00 – 22:00"}}

	incoming := lightPlace("k", testNow.Add(time.Hour))
	incoming.Summary.Photos = nil

	merged := MergeUpstream(existing, incoming)

	assert.Equal(t, existing.Summary.Photos, merged.Summary.Photos)
	assert.Equal(t, existing.Summary.OpeningHours, merged.Summary.OpeningHours)
}

func TestMaxLevel(t *testing.T) {
	assert.Equal(t, EnrichmentRich, MaxLevel(EnrichmentLight, EnrichmentRich))
	assert.Equal(t, EnrichmentRich, MaxLevel(EnrichmentRich, EnrichmentLight))
	assert.Equal(t, EnrichmentLight, MaxLevel("", EnrichmentLight))
}
