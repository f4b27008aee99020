// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"
)

// EnrichmentLevel describes how much of an upstream place record is held.
type EnrichmentLevel string

const (
	// EnrichmentLight is the summary returned by a nearby search.
	EnrichmentLight EnrichmentLevel = "light"
	// EnrichmentRich includes reviews, the full schedule and editorial content.
	EnrichmentRich EnrichmentLevel = "rich"
)

// Rank orders levels so that rich outranks light. Unknown levels rank lowest.
func (l EnrichmentLevel) Rank() int {
	switch l {
	case EnrichmentRich:
		return 2
	case EnrichmentLight:
		return 1
	default:
		return 0
	}
}

// MaxLevel returns the higher of two levels.
func MaxLevel(a, b EnrichmentLevel) EnrichmentLevel {
	if b.Rank() > a.Rank() {
		return b
	}

	return a
}

// PriceTier is the 0-4 price bucket used by the places provider (0 = unknown/free).
type PriceTier int

// Location is a WGS84 coordinate.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero reports whether the location was never set.
func (l Location) IsZero() bool {
	return l.Lat == 0 && l.Lng == 0
}

// TimeOfWeek is a point in the weekly schedule. Day 0 is Sunday.
type TimeOfWeek struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// OpeningPeriod is one open interval of the weekly schedule.
type OpeningPeriod struct {
	Open  TimeOfWeek  `json:"open"`
	Close *TimeOfWeek `json:"close,omitempty"` // nil means open around the clock
}

// OpeningHours is a weekly schedule.
type OpeningHours struct {
	Periods     []OpeningPeriod `json:"periods,omitempty"`
	WeekdayText []string        `json:"weekday_text,omitempty"`
}

// IsEmpty reports whether the schedule carries no information.
func (h *OpeningHours) IsEmpty() bool {
	return h == nil || (len(h.Periods) == 0 && len(h.WeekdayText) == 0)
}

// Photo is an opaque photo reference.
type Photo struct {
	Ref         string `json:"ref"`
	WidthPx     int    `json:"width_px,omitempty"`
	HeightPx    int    `json:"height_px,omitempty"`
	Attribution string `json:"attribution,omitempty"`
}

// Review is one upstream user review.
type Review struct {
	Author      string    `json:"author"`
	Rating      float64   `json:"rating"`
	Text        string    `json:"text"`
	Language    string    `json:"language,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// Summary is the light part of a place, returned by nearby searches.
type Summary struct {
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	Location     Location      `json:"location"`
	Categories   []string      `json:"categories,omitempty"`
	Rating       float64       `json:"rating"`
	RatingCount  int           `json:"rating_count"`
	PriceTier    PriceTier     `json:"price_tier"`
	OpeningHours *OpeningHours `json:"opening_hours,omitempty"`
	Photos       []Photo       `json:"photos,omitempty"`
}

// Details is the rich part of a place, fetched on demand.
type Details struct {
	Reviews   []Review      `json:"reviews,omitempty"`
	Schedule  *OpeningHours `json:"schedule,omitempty"`
	Editorial string        `json:"editorial,omitempty"`
	Website   string        `json:"website,omitempty"`
	Phone     string        `json:"phone,omitempty"`
}

// IsRich reports whether the details carry any rich content.
func (d Details) IsRich() bool {
	return len(d.Reviews) > 0 || !d.Schedule.IsEmpty() || d.Editorial != ""
}

// Place is the cached record of one upstream place, optionally overlaid by
// operator-submitted claim data.
type Place struct {
	ID              string          `json:"id"`               // Opaque upstream identity.
	Summary         Summary         `json:"summary"`          // Light upstream fields.
	Details         Details         `json:"details"`          // Rich upstream fields.
	EnrichmentLevel EnrichmentLevel `json:"enrichment_level"` // Never decreases for one ID.
	Freshness       Freshness       `json:"freshness"`        // Validity window of the upstream portion.
	SpatialToken    string          `json:"spatial_token"`    // Quadkey of Summary.Location.
	Claim           *Claim          `json:"claim,omitempty"`  // Operator overlay, nil when unclaimed.
}

// NewUpstreamPlace builds a place record from an upstream payload fetched at
// fetchedAt. The level is derived from the content.
func NewUpstreamPlace(id string, summary Summary, details Details, fetchedAt time.Time, ttl time.Duration) *Place {
	level := EnrichmentLight
	if details.IsRich() {
		level = EnrichmentRich
	}

	return &Place{
		ID:              id,
		Summary:         summary,
		Details:         details,
		EnrichmentLevel: level,
		Freshness:       NewFreshness(fetchedAt, ttl),
	}
}

// IsClaimed reports whether an operator overlay exists.
func (p *Place) IsClaimed() bool {
	return p.Claim != nil
}

// HasRequiredFields reports whether the upstream portion can anchor a view.
func (p *Place) HasRequiredFields() bool {
	return p.Summary.Name != "" && !p.Summary.Location.IsZero()
}

// IsSatisfied reports whether the record is rich and still fresh at now.
func (p *Place) IsSatisfied(now time.Time) bool {
	return p.EnrichmentLevel == EnrichmentRich && !p.Freshness.IsStaleAt(now)
}

// Clone returns a deep copy.
func (p *Place) Clone() *Place {
	if p == nil {
		return nil
	}

	clone := *p
	clone.Summary.Categories = slices.Clone(p.Summary.Categories)
	clone.Summary.Photos = slices.Clone(p.Summary.Photos)
	clone.Summary.OpeningHours = p.Summary.OpeningHours.clone()
	clone.Details.Reviews = slices.Clone(p.Details.Reviews)
	clone.Details.Schedule = p.Details.Schedule.clone()
	clone.Claim = p.Claim.Clone()

	return &clone
}

func (h *OpeningHours) clone() *OpeningHours {
	if h == nil {
		return nil
	}

	return &OpeningHours{
		Periods:     slices.Clone(h.Periods),
		WeekdayText: slices.Clone(h.WeekdayText),
	}
}
