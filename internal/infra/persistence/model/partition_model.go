package model

import (
	"time"

	"tablescout/internal/domain/entity"
)

// PartitionDocument is the stored shape of a search partition in the 'partitions' collection.
type PartitionDocument struct {
	Key       string              `json:"key"       firestore:"key"`
	MemberIDs []string            `json:"memberIds" firestore:"memberIds"`
	FetchedAt time.Time           `json:"fetchedAt" firestore:"fetchedAt"`
	ExpiresAt time.Time           `json:"expiresAt" firestore:"expiresAt"`
	Params    entity.SearchParams `json:"params"    firestore:"params"`
}

// ToPartitionDomain converts a stored document to the domain entity.
func ToPartitionDomain(data *PartitionDocument) *entity.Partition {
	if data == nil {
		return nil
	}

	return &entity.Partition{
		Key:       data.Key,
		MemberIDs: data.MemberIDs,
		Freshness: entity.Freshness{
			FetchedAt: data.FetchedAt,
			ExpiresAt: data.ExpiresAt,
		},
		Params: data.Params,
	}
}

// FromPartitionDomain converts a domain partition to its stored document.
func FromPartitionDomain(data *entity.Partition) *PartitionDocument {
	if data == nil {
		return nil
	}

	return &PartitionDocument{
		Key:       data.Key,
		MemberIDs: data.MemberIDs,
		FetchedAt: data.Freshness.FetchedAt,
		ExpiresAt: data.Freshness.ExpiresAt,
		Params:    data.Params,
	}
}
