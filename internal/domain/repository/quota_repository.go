package repository

import (
	"context"

	"tablescout/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrQuotaNotFound is returned when a user has no quota record yet.
var ErrQuotaNotFound = errors.New("quota not found")

// QuotaRepository defines the interface for per-user scoring quotas.
// Mutations must go through a repository obtained from TransactionManager.
type QuotaRepository interface {
	// FindQuota retrieves the quota of a user.
	FindQuota(ctx context.Context, userID string) (*entity.Quota, error)

	// SaveQuota stores the quota of a user.
	SaveQuota(ctx context.Context, quota *entity.Quota) error
}
