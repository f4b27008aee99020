package usecase

import (
	"context"
	"time"

	"tablescout/internal/domain/entity"
	"tablescout/internal/domain/service"
)

// QuotaStatus is a read-only view of a user's allowance.
type QuotaStatus struct {
	UserID    string      `json:"user_id"`
	Tier      entity.Tier `json:"tier"`
	Remaining int         `json:"remaining"`
	Used      int         `json:"used"`
	Limit     int         `json:"limit"`
	ResetAt   time.Time   `json:"reset_at"`
	NextReset time.Time   `json:"next_reset"`
}

// ReserveResult is the outcome of a reservation.
type ReserveResult struct {
	Authorized bool        `json:"authorized"`
	Tier       entity.Tier `json:"tier"`
	Remaining  int         `json:"remaining"`
}

// RefundResult is the outcome of a refund.
type RefundResult struct {
	Refunded  bool `json:"refunded"`
	Remaining int  `json:"remaining"`
}

// QuotaUsecase defines the AI scoring quota use cases
type QuotaUsecase interface {
	// CheckQuota reports the user's allowance without consuming it.
	CheckQuota(ctx context.Context, userID string) (*QuotaStatus, error)

	// ReserveQuota atomically consumes one scoring call.
	ReserveQuota(ctx context.Context, userID string) (*ReserveResult, error)

	// RefundQuota atomically returns one scoring call after a failed score.
	RefundQuota(ctx context.Context, userID string) (*RefundResult, error)
}

// ScoreResult is an AI score of one place for one user.
type ScoreResult struct {
	PlaceID   string              `json:"place_id"`
	Score     *service.PlaceScore `json:"score"`
	Remaining int                 `json:"remaining"`
}

// ScoringUsecase defines the gated AI scoring use case
type ScoringUsecase interface {
	// ScorePlace reserves quota, scores the place and refunds the reservation
	// if scoring fails.
	ScorePlace(ctx context.Context, userID, placeID, preferences string) (*ScoreResult, error)
}
