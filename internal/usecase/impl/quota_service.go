package impl

import (
	"context"
	"log/slog"
	"time"

	"tablescout/config"
	deliverycontext "tablescout/internal/delivery/context"
	"tablescout/internal/domain/entity"
	"tablescout/internal/domain/repository"
	"tablescout/internal/errors"
	"tablescout/internal/usecase"
)

const (
	defaultFreeLimit   = 10
	defaultQuotaWindow = 30 * 24 * time.Hour
)

type quotaService struct {
	quotaRepo repository.QuotaRepository
	txManager repository.TransactionManager
	writer    *BackgroundWriter
	freeLimit int
	window    time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewQuotaService creates a new quota ledger service instance
func NewQuotaService(
	quotaRepo repository.QuotaRepository,
	txManager repository.TransactionManager,
	writer *BackgroundWriter,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.QuotaUsecase {
	s := &quotaService{
		quotaRepo: quotaRepo,
		txManager: txManager,
		writer:    writer,
		freeLimit: defaultFreeLimit,
		window:    defaultQuotaWindow,
		logger:    logger,
		now:       time.Now,
	}
	if cfg != nil && cfg.Quota != nil {
		if cfg.Quota.FreeLimit > 0 {
			s.freeLimit = cfg.Quota.FreeLimit
		}
		if cfg.Quota.Window > 0 {
			s.window = cfg.Quota.Window
		}
	}

	return s
}

// CheckQuota reports the user's allowance without consuming it. A missing
// record or an elapsed window is reported as already reset, and the reset is
// stored in the background.
func (s *quotaService) CheckQuota(ctx context.Context, userID string) (*usecase.QuotaStatus, error) {
	now := s.now()

	quota, err := s.quotaRepo.FindQuota(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrQuotaNotFound):
		quota = entity.NewQuota(userID, s.freeLimit, now)
		s.persistReset(ctx, userID, now)
	case err != nil:
		return nil, errors.Wrap(err, "failed to find quota")
	case quota.ResetDue(now, s.window):
		quota.Reset(now)
		s.persistReset(ctx, userID, now)
	}

	return s.status(quota), nil
}

// persistReset stores a lazily created or reset quota. The state is re-read
// inside the transaction so a concurrent reservation is never overwritten.
func (s *quotaService) persistReset(ctx context.Context, userID string, now time.Time) {
	s.writer.Go(ctx, "quota.reset", func(ctx context.Context) error {
		return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			repo := factory.NewQuotaRepository()

			quota, err := repo.FindQuota(ctx, userID)
			switch {
			case errors.Is(err, repository.ErrQuotaNotFound):
				return repo.SaveQuota(ctx, entity.NewQuota(userID, s.freeLimit, now))
			case err != nil:
				return err
			case quota.ResetDue(now, s.window):
				quota.Reset(now)

				return repo.SaveQuota(ctx, quota)
			default:
				return nil
			}
		})
	})
}

// ReserveQuota atomically consumes one scoring call
func (s *quotaService) ReserveQuota(ctx context.Context, userID string) (*usecase.ReserveResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	var result *usecase.ReserveResult
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewQuotaRepository()
		now := s.now()

		quota, err := s.loadForUpdate(ctx, repo, userID, now)
		if err != nil {
			return err
		}

		authorized := quota.Reserve(now)
		result = &usecase.ReserveResult{
			Authorized: authorized,
			Tier:       quota.Tier,
			Remaining:  quota.Remaining,
		}

		return repo.SaveQuota(ctx, quota)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to reserve quota")
	}

	logger.Debug("Quota reserved",
		slog.String("user_id", userID),
		slog.Bool("authorized", result.Authorized),
		slog.Int("remaining", result.Remaining),
	)

	return result, nil
}

// RefundQuota atomically returns one scoring call
func (s *quotaService) RefundQuota(ctx context.Context, userID string) (*usecase.RefundResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	var result *usecase.RefundResult
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewQuotaRepository()
		now := s.now()

		quota, err := s.loadForUpdate(ctx, repo, userID, now)
		if err != nil {
			return err
		}

		refunded := quota.Refund(now)
		result = &usecase.RefundResult{Refunded: refunded, Remaining: quota.Remaining}
		if !refunded {
			return nil
		}

		return repo.SaveQuota(ctx, quota)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to refund quota")
	}

	logger.Debug("Quota refunded",
		slog.String("user_id", userID),
		slog.Bool("refunded", result.Refunded),
		slog.Int("remaining", result.Remaining),
	)

	return result, nil
}

// loadForUpdate reads the quota inside a transaction, creating it or starting
// a new window as needed.
func (s *quotaService) loadForUpdate(ctx context.Context, repo repository.QuotaRepository, userID string, now time.Time) (*entity.Quota, error) {
	quota, err := repo.FindQuota(ctx, userID)
	if errors.Is(err, repository.ErrQuotaNotFound) {
		return entity.NewQuota(userID, s.freeLimit, now), nil
	}
	if err != nil {
		return nil, err
	}

	if quota.ResetDue(now, s.window) {
		quota.Reset(now)
	}

	return quota, nil
}

func (s *quotaService) status(quota *entity.Quota) *usecase.QuotaStatus {
	return &usecase.QuotaStatus{
		UserID:    quota.UserID,
		Tier:      quota.Tier,
		Remaining: quota.Remaining,
		Used:      quota.Used,
		Limit:     quota.Limit,
		ResetAt:   quota.ResetAt,
		NextReset: quota.ResetAt.Add(s.window),
	}
}
