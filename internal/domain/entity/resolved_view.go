package entity

import (
	"slices"
	"time"
)

// PhotoSource tells where a photo in a resolved view came from.
type PhotoSource string

const (
	PhotoSourceOwner    PhotoSource = "owner"
	PhotoSourceUpstream PhotoSource = "upstream"
)

// ViewPhoto is a photo with its origin.
type ViewPhoto struct {
	Photo
	Source PhotoSource `json:"source"`
}

// ResolvedView is a place as presented to clients: upstream data with the
// operator overlay applied field by field.
type ResolvedView struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Address         string          `json:"address"`
	Location        Location        `json:"location"`
	CuisineTags     []string        `json:"cuisine_tags,omitempty"`
	Rating          float64         `json:"rating"`
	RatingCount     int             `json:"rating_count"`
	PriceTier       PriceTier       `json:"price_tier"`
	OpeningHours    *OpeningHours   `json:"opening_hours,omitempty"`
	Photos          []ViewPhoto     `json:"photos,omitempty"`
	MenuItems       []MenuItem      `json:"menu_items,omitempty"`
	Tables          *TableConfig    `json:"tables,omitempty"`
	Details         Details         `json:"details"`
	EnrichmentLevel EnrichmentLevel `json:"enrichment_level"`
	Claimed         bool            `json:"claimed"`
	ClaimedBy       string          `json:"claimed_by,omitempty"`
	Stale           bool            `json:"stale"`
	Overridden      []string        `json:"overridden,omitempty"` // Fields taken from the overlay.
	ResolvedAt      time.Time       `json:"resolved_at"`
}

// overlayRule applies one overlay field. It reports whether the overlay won.
type overlayRule struct {
	field string
	apply func(view *ResolvedView, claim *Claim) bool
}

// overlayRules is the field priority table. A non-empty overlay value always
// beats upstream; an empty one leaves the upstream value in place, so
// clearing an overlay field reverts to upstream on the next resolve.
var overlayRules = []overlayRule{
	{field: "name", apply: func(view *ResolvedView, claim *Claim) bool {
		if claim.Name == "" {
			return false
		}
		view.Name = claim.Name

		return true
	}},
	{field: "address", apply: func(view *ResolvedView, claim *Claim) bool {
		if claim.Address == "" {
			return false
		}
		view.Address = claim.Address

		return true
	}},
	{field: "price_tier", apply: func(view *ResolvedView, claim *Claim) bool {
		if claim.AverageCheck == nil {
			return false
		}
		view.PriceTier = PriceTierFromAverageCheck(*claim.AverageCheck)

		return true
	}},
	{field: "cuisine_tags", apply: func(view *ResolvedView, claim *Claim) bool {
		if len(claim.CuisineTags) == 0 {
			return false
		}
		view.CuisineTags = slices.Clone(claim.CuisineTags)

		return true
	}},
	{field: "opening_hours", apply: func(view *ResolvedView, claim *Claim) bool {
		if claim.OpeningHours.IsEmpty() {
			return false
		}
		view.OpeningHours = claim.OpeningHours.clone()

		return true
	}},
	{field: "photos", apply: func(view *ResolvedView, claim *Claim) bool {
		if len(claim.CustomPhotos) == 0 {
			return false
		}
		photos := make([]ViewPhoto, 0, len(claim.CustomPhotos)+len(view.Photos))
		for _, photo := range claim.CustomPhotos {
			photos = append(photos, ViewPhoto{Photo: photo, Source: PhotoSourceOwner})
		}
		view.Photos = append(photos, view.Photos...)

		return true
	}},
	{field: "menu_items", apply: func(view *ResolvedView, claim *Claim) bool {
		if len(claim.MenuItems) == 0 {
			return false
		}
		view.MenuItems = slices.Clone(claim.MenuItems)

		return true
	}},
	{field: "tables", apply: func(view *ResolvedView, claim *Claim) bool {
		if claim.Tables == nil {
			return false
		}
		tables := *claim.Tables
		tables.Tables = slices.Clone(claim.Tables.Tables)
		view.Tables = &tables

		return true
	}},
}

// Resolve composes the client view of a place. Upstream fields form the base
// and the overlay rules are applied in table order.
func Resolve(place *Place, now time.Time) *ResolvedView {
	view := &ResolvedView{
		ID:              place.ID,
		Name:            place.Summary.Name,
		Address:         place.Summary.Address,
		Location:        place.Summary.Location,
		CuisineTags:     slices.Clone(place.Summary.Categories),
		Rating:          place.Summary.Rating,
		RatingCount:     place.Summary.RatingCount,
		PriceTier:       place.Summary.PriceTier,
		OpeningHours:    upstreamHours(place),
		Details:         place.Clone().Details,
		EnrichmentLevel: place.EnrichmentLevel,
		Stale:           place.Freshness.IsStaleAt(now),
		ResolvedAt:      now,
	}

	for _, photo := range place.Summary.Photos {
		view.Photos = append(view.Photos, ViewPhoto{Photo: photo, Source: PhotoSourceUpstream})
	}

	if place.Claim == nil {
		return view
	}

	view.Claimed = true
	view.ClaimedBy = place.Claim.ClaimedBy
	for _, rule := range overlayRules {
		if rule.apply(view, place.Claim) {
			view.Overridden = append(view.Overridden, rule.field)
		}
	}

	return view
}

// upstreamHours prefers the full rich schedule over the summary hours.
func upstreamHours(place *Place) *OpeningHours {
	if !place.Details.Schedule.IsEmpty() {
		return place.Details.Schedule.clone()
	}

	return place.Summary.OpeningHours.clone()
}
