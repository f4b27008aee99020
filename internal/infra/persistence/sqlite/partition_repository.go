package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"tablescout/internal/domain/constants"
	"tablescout/internal/domain/entity"
	"tablescout/internal/domain/repository"
	"tablescout/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

// partitionRepository implements the repository.PartitionRepository interface.
type partitionRepository struct {
	db *sql.DB
}

// NewPartitionRepository is the constructor for partitionRepository.
func NewPartitionRepository(db *sql.DB) repository.PartitionRepository {
	return &partitionRepository{db: db}
}

// FindPartition retrieves one partition by key.
func (repo *partitionRepository) FindPartition(ctx context.Context, key string) (*entity.Partition, error) {
	var doc model.PartitionDocument

	found, err := getDocument(ctx, repo.db, constants.CollectionPartitions, key, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrPartitionNotFound
	}

	return model.ToPartitionDomain(&doc), nil
}

// FindPartitions retrieves many partitions with a single query.
func (repo *partitionRepository) FindPartitions(ctx context.Context, keys []string) (map[string]*entity.Partition, error) {
	bodies, err := getDocuments(ctx, repo.db, constants.CollectionPartitions, keys)
	if err != nil {
		return nil, err
	}

	partitions := make(map[string]*entity.Partition, len(bodies))
	for key, body := range bodies {
		var doc model.PartitionDocument
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, errors.Wrapf(err, "decode partition %s", key)
		}
		partitions[key] = model.ToPartitionDomain(&doc)
	}

	return partitions, nil
}

// SavePartition stores a partition under its key.
func (repo *partitionRepository) SavePartition(ctx context.Context, partition *entity.Partition) error {
	return putDocument(ctx, repo.db, constants.CollectionPartitions, partition.Key, "",
		model.FromPartitionDomain(partition), time.Now().UTC())
}
