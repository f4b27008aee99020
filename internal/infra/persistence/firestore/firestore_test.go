package firestore

import (
	"testing"

	"tablescout/config"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNewCollections(t *testing.T) {
	defaults := NewCollections(&config.Config{})
	assert.Equal(t, Collections{Places: "places", Partitions: "partitions", Quotas: "quotas"}, defaults)

	cfg := &config.Config{Store: &config.StoreConfig{Firestore: &config.FirestoreConfig{}}}
	cfg.Store.Firestore.Collections.Places = "staging_places"

	overridden := NewCollections(cfg)
	assert.Equal(t, "staging_places", overridden.Places)
	assert.Equal(t, "partitions", overridden.Partitions)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(status.Error(codes.NotFound, "missing")))
	assert.False(t, isNotFound(status.Error(codes.Unavailable, "down")))
	assert.False(t, isNotFound(nil))
}
