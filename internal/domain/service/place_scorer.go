package service

import (
	"context"

	"tablescout/internal/domain/entity"
)

// PlaceScore is an AI assessment of a place for a user's preferences.
type PlaceScore struct {
	Score     int    `json:"score"` // 0-100
	Rationale string `json:"rationale"`
	Model     string `json:"model"`
}

// PlaceScorer defines the interface for the AI scoring provider.
type PlaceScorer interface {
	// Score rates a resolved place against free-form user preferences.
	Score(ctx context.Context, view *entity.ResolvedView, preferences string) (*PlaceScore, error)
}
