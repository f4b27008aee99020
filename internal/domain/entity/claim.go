package entity

import (
	"slices"
	"time"
)

// Claim is the overlay an operator submits for a place they own. Nil or empty
// fields fall back to upstream data when the view is resolved.
type Claim struct {
	ClaimedBy    string        `json:"claimed_by"`              // Operator account that owns the place.
	Name         string        `json:"name,omitempty"`          // Display name override.
	Address      string        `json:"address,omitempty"`       // Address override.
	AverageCheck *float64      `json:"average_check,omitempty"` // Average spend per guest, maps to a price tier.
	CuisineTags  []string      `json:"cuisine_tags,omitempty"`  // Replaces upstream categories when set.
	OpeningHours *OpeningHours `json:"opening_hours,omitempty"` // Replaces the upstream schedule when set.
	MenuItems    []MenuItem    `json:"menu_items,omitempty"`    // Overlay only, upstream has no menu.
	Tables       *TableConfig  `json:"tables,omitempty"`        // Overlay only.
	CustomPhotos []Photo       `json:"custom_photos,omitempty"` // Shown before upstream photos.
	UpdatedAt    time.Time     `json:"updated_at"`              // Last operator edit.
}

// MenuItem is one dish on an operator-maintained menu.
type MenuItem struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price" validate:"gte=0"`
	Currency    string   `json:"currency,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Table is one seating unit.
type Table struct {
	Label    string `json:"label"`
	Capacity int    `json:"capacity" validate:"gte=1"`
}

// TableConfig describes the seating layout.
type TableConfig struct {
	Tables        []Table `json:"tables,omitempty"`
	TotalCapacity int     `json:"total_capacity"`
}

// PriceTierFromAverageCheck maps an average spend per guest to a price tier.
func PriceTierFromAverageCheck(averageCheck float64) PriceTier {
	switch {
	case averageCheck <= 0:
		return 0
	case averageCheck < 15:
		return 1
	case averageCheck < 35:
		return 2
	case averageCheck < 70:
		return 3
	default:
		return 4
	}
}

// Clone returns a deep copy.
func (c *Claim) Clone() *Claim {
	if c == nil {
		return nil
	}

	clone := *c
	if c.AverageCheck != nil {
		averageCheck := *c.AverageCheck
		clone.AverageCheck = &averageCheck
	}
	clone.CuisineTags = slices.Clone(c.CuisineTags)
	clone.OpeningHours = c.OpeningHours.clone()
	clone.MenuItems = slices.Clone(c.MenuItems)
	clone.CustomPhotos = slices.Clone(c.CustomPhotos)
	if c.Tables != nil {
		tables := *c.Tables
		tables.Tables = slices.Clone(c.Tables.Tables)
		clone.Tables = &tables
	}

	return &clone
}
