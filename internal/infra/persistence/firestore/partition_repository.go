package firestore

import (
	"context"

	"tablescout/internal/domain/entity"
	domainerrors "tablescout/internal/domain/errors"
	"tablescout/internal/domain/repository"
	"tablescout/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// partitionRepository implements the repository.PartitionRepository interface.
type partitionRepository struct {
	client     *fs.Client
	collection string
}

// NewPartitionRepository is the constructor for partitionRepository.
func NewPartitionRepository(client *fs.Client, collections Collections) repository.PartitionRepository {
	return &partitionRepository{client: client, collection: collections.Partitions}
}

func (repo *partitionRepository) partitions() *fs.CollectionRef {
	return repo.client.Collection(repo.collection)
}

// FindPartition retrieves one partition by key.
func (repo *partitionRepository) FindPartition(ctx context.Context, key string) (*entity.Partition, error) {
	snap, err := repo.partitions().Doc(key).Get(ctx)
	if isNotFound(err) {
		return nil, repository.ErrPartitionNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get partition")
	}

	var doc model.PartitionDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "decode partition %s", key)
	}

	return model.ToPartitionDomain(&doc), nil
}

// FindPartitions retrieves many partitions with a single GetAll round-trip.
func (repo *partitionRepository) FindPartitions(ctx context.Context, keys []string) (map[string]*entity.Partition, error) {
	docRefs := refs(repo.partitions(), keys)
	partitions := make(map[string]*entity.Partition, len(docRefs))
	if len(docRefs) == 0 {
		return partitions, nil
	}

	snaps, err := repo.client.GetAll(ctx, docRefs)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get partitions")
	}

	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}

		var doc model.PartitionDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "decode partition %s", snap.Ref.ID)
		}
		partitions[snap.Ref.ID] = model.ToPartitionDomain(&doc)
	}

	return partitions, nil
}

// SavePartition stores a partition under its key.
func (repo *partitionRepository) SavePartition(ctx context.Context, partition *entity.Partition) error {
	_, err := repo.partitions().Doc(partition.Key).Set(ctx, model.FromPartitionDomain(partition))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save partition")
	}

	return nil
}
