package repository

import (
	"context"

	"tablescout/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPartitionNotFound is returned when no partition is stored under a key.
var ErrPartitionNotFound = errors.New("partition not found")

// PartitionRepository defines the interface for cached search partitions.
type PartitionRepository interface {
	// FindPartition retrieves one partition by key.
	FindPartition(ctx context.Context, key string) (*entity.Partition, error)

	// FindPartitions retrieves many partitions in a single round-trip. Missing
	// keys are absent from the result.
	FindPartitions(ctx context.Context, keys []string) (map[string]*entity.Partition, error)

	// SavePartition stores a partition, replacing any previous one under its key.
	SavePartition(ctx context.Context, partition *entity.Partition) error
}
