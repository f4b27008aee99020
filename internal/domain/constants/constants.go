// Package constants holds identifiers shared across layers.
package constants

// PubSub providers.
const (
	PubSubProviderNone   = "none"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Store providers.
const (
	StoreProviderFirestore = "firestore"
	StoreProviderSQLite    = "sqlite"
)

// Document collections.
const (
	CollectionPlaces     = "places"
	CollectionPartitions = "partitions"
	CollectionQuotas     = "quotas"
)

// HTTP headers.
const (
	HeaderRequestID = "X-Request-Id"
	HeaderUserID    = "X-User-Id"
)
