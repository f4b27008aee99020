package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestResolve_Unclaimed(t *testing.T) {
	place := richPlace("v", testNow)

	view := Resolve(place, testNow)

	assert.False(t, view.Claimed)
	assert.Equal(t, place.Summary.Name, view.Name)
	assert.Equal(t, place.Summary.PriceTier, view.PriceTier)
	assert.Equal(t, []string{"restaurant"}, view.CuisineTags)
	require.Len(t, view.Photos, 1)
	assert.Equal(t, PhotoSourceUpstream, view.Photos[0].Source)
	assert.Empty(t, view.Overridden)
	assert.False(t, view.Stale)
}

func TestResolve_OverlayWins(t *testing.T) {
	place := richPlace("w", testNow)
	place.Claim = &Claim{
		ClaimedBy:    "owner-1",
		Name:         "U Jána",
		AverageCheck: ptr(50.0),
		CuisineTags:  []string{"slovak", "grill"},
		OpeningHours: &OpeningHours{WeekdayText: []string{"Daily: 10:00 – 23:00"}},
		MenuItems:    []MenuItem{{Name: "Bryndzové halušky", Price: 11.5, Currency: "EUR"}},
		Tables:       &TableConfig{Tables: []Table{{Label: "T1", Capacity: 4}}, TotalCapacity: 4},
		CustomPhotos: []Photo{{Ref: "owner/front.jpg"}},
	}

	view := Resolve(place, testNow)

	assert.True(t, view.Claimed)
	assert.Equal(t, "owner-1", view.ClaimedBy)
	assert.Equal(t, "U Jána", view.Name)
	assert.Equal(t, place.Summary.Address, view.Address)
	assert.Equal(t, PriceTier(3), view.PriceTier)
	assert.Equal(t, []string{"slovak", "grill"}, view.CuisineTags)
	assert.Equal(t, []string{"Daily: 10:00 – 23:00"}, view.OpeningHours.WeekdayText)
	assert.Len(t, view.MenuItems, 1)
	require.NotNil(t, view.Tables)
	assert.Equal(t, 4, view.Tables.TotalCapacity)

	require.Len(t, view.Photos, 2)
	assert.Equal(t, ViewPhoto{Photo: Photo{Ref: "owner/front.jpg"}, Source: PhotoSourceOwner}, view.Photos[0])
	assert.Equal(t, PhotoSourceUpstream, view.Photos[1].Source)

	assert.Equal(t, []string{"name", "price_tier", "cuisine_tags", "opening_hours", "photos", "menu_items", "tables"}, view.Overridden)
}

func TestResolve_ClearedOverlayRevertsToUpstream(t *testing.T) {
	place := lightPlace("r", testNow)
	place.Claim = &Claim{ClaimedBy: "owner-1", Name: "Owner Name"}

	assert.Equal(t, "Owner Name", Resolve(place, testNow).Name)

	place.Claim.Name = ""
	view := Resolve(place, testNow)

	assert.Equal(t, place.Summary.Name, view.Name)
	assert.NotContains(t, view.Overridden, "name")
}

func TestResolve_PrefersRichSchedule(t *testing.T) {
	place := richPlace("h", testNow)
	place.Summary.OpeningHours = &OpeningHours{WeekdayText: []string{"summary"}}
	place.Details.Schedule = &OpeningHours{WeekdayText: []string{"full"}}

	view := Resolve(place, testNow)

	assert.Equal(t, []string{"full"}, view.OpeningHours.WeekdayText)
}

func TestResolve_Stale(t *testing.T) {
	place := lightPlace("s", testNow)

	view := Resolve(place, testNow.Add(testTTL+time.Minute))

	assert.True(t, view.Stale)
}

func TestPriceTierFromAverageCheck(t *testing.T) {
	tests := []struct {
		check float64
		want  PriceTier
	}{
		{check: 0, want: 0},
		{check: 9.9, want: 1},
		{check: 15, want: 2},
		{check: 34.99, want: 2},
		{check: 35, want: 3},
		{check: 70, want: 4},
		{check: 250, want: 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PriceTierFromAverageCheck(tt.check), "check %v", tt.check)
	}
}
