package impl

import (
	"context"
	"log/slog"
	"time"

	"tablescout/config"
	deliverycontext "tablescout/internal/delivery/context"
	domainerrors "tablescout/internal/domain/errors"
	"tablescout/internal/domain/service"
	"tablescout/internal/errors"
	"tablescout/internal/usecase"
)

const defaultScoreTimeout = 20 * time.Second

type scoringService struct {
	claims  usecase.ClaimUsecase
	quotas  usecase.QuotaUsecase
	scorer  service.PlaceScorer
	timeout time.Duration
	logger  *slog.Logger
}

// NewScoringService creates a new scoring service instance
func NewScoringService(
	claims usecase.ClaimUsecase,
	quotas usecase.QuotaUsecase,
	scorer service.PlaceScorer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ScoringUsecase {
	timeout := defaultScoreTimeout
	if cfg != nil && cfg.Scoring != nil && cfg.Scoring.Timeout > 0 {
		timeout = cfg.Scoring.Timeout
	}

	return &scoringService{
		claims:  claims,
		quotas:  quotas,
		scorer:  scorer,
		timeout: timeout,
		logger:  logger,
	}
}

// ScorePlace reserves quota, scores the place and refunds on failure
func (s *scoringService) ScorePlace(ctx context.Context, userID, placeID, preferences string) (*usecase.ScoreResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	// Resolve first so an unknown place never costs a reservation.
	view, err := s.claims.ResolveClaimed(ctx, placeID)
	if err != nil {
		return nil, err
	}

	reservation, err := s.quotas.ReserveQuota(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !reservation.Authorized {
		return nil, domainerrors.ErrQuotaExhausted
	}

	scoreCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	score, err := s.scorer.Score(scoreCtx, view, preferences)
	if err != nil {
		if errors.Is(scoreCtx.Err(), context.DeadlineExceeded) && !errors.Is(err, domainerrors.ErrUpstreamTimeout) {
			err = domainerrors.ErrUpstreamTimeout.WithCause(err)
		}

		// The refund must land even when the caller has gone away.
		if _, refundErr := s.quotas.RefundQuota(context.WithoutCancel(ctx), userID); refundErr != nil {
			logger.Error("Failed to refund quota after scoring failure",
				slog.String("user_id", userID),
				slog.String("place_id", placeID),
				slog.Any("error", refundErr),
			)
		}

		logger.Warn("Scoring failed", slog.String("place_id", placeID), slog.Any("error", err))

		return nil, err
	}

	return &usecase.ScoreResult{
		PlaceID:   placeID,
		Score:     score,
		Remaining: reservation.Remaining,
	}, nil
}
