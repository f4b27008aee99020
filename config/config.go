package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store selects and configures the document store backend
	Store *StoreConfig `json:"store" yaml:"store"`

	// Places configures the upstream places provider
	Places *PlacesConfig `json:"places" yaml:"places"`

	// Scoring configures the AI scoring provider
	Scoring *ScoringConfig `json:"scoring" yaml:"scoring"`

	// Cache configures freshness windows and the in-process view cache
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Partition configures the partition key grid
	Partition *PartitionConfig `json:"partition" yaml:"partition"`

	// Spatial configures proximity lookups
	Spatial *SpatialConfig `json:"spatial" yaml:"spatial"`

	// Enrichment configures detail fetching
	Enrichment *EnrichmentConfig `json:"enrichment" yaml:"enrichment"`

	// Quota configures the AI scoring allowance
	Quota *QuotaConfig `json:"quota" yaml:"quota"`

	// Background configures fire-and-forget store writes
	Background *BackgroundConfig `json:"background" yaml:"background"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines the document store backend
type StoreConfig struct {
	// Provider type: "firestore" or "sqlite"
	Provider string `json:"provider" yaml:"provider"`

	Firestore *FirestoreConfig `json:"firestore" yaml:"firestore"`
	SQLite    *SQLiteConfig    `json:"sqlite" yaml:"sqlite"`
}

// FirestoreConfig defines the Firebase project backing the store
type FirestoreConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Collection name overrides
	Collections struct {
		Places     string `json:"places" yaml:"places"`
		Partitions string `json:"partitions" yaml:"partitions"`
		Quotas     string `json:"quotas" yaml:"quotas"`
	} `json:"collections" yaml:"collections"`
}

// SQLiteConfig defines the local SQLite store
type SQLiteConfig struct {
	// Path to the database file, ":memory:" for an ephemeral store
	Path string `json:"path" yaml:"path"`
}

// PlacesConfig defines the upstream places API client
type PlacesConfig struct {
	APIKey            string        `json:"apiKey" yaml:"apiKey"`
	BaseURL           string        `json:"baseURL" yaml:"baseURL"`
	LanguageCode      string        `json:"languageCode" yaml:"languageCode"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
}

// ScoringConfig defines the AI scoring client
type ScoringConfig struct {
	APIKey    string        `json:"apiKey" yaml:"apiKey"`
	BaseURL   string        `json:"baseURL" yaml:"baseURL"`
	Model     string        `json:"model" yaml:"model"`
	MaxTokens int64         `json:"maxTokens" yaml:"maxTokens"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// CacheConfig defines freshness windows
type CacheConfig struct {
	// How long fetched place data stays fresh
	EntityTTL time.Duration `json:"entityTTL" yaml:"entityTTL"`

	// How long a search partition stays fresh
	PartitionTTL time.Duration `json:"partitionTTL" yaml:"partitionTTL"`

	// Resolved view lifetime for claimed places
	ClaimedViewTTL time.Duration `json:"claimedViewTTL" yaml:"claimedViewTTL"`

	// Resolved view lifetime for unclaimed places
	UnclaimedViewTTL time.Duration `json:"unclaimedViewTTL" yaml:"unclaimedViewTTL"`

	// Maximum number of cached resolved views
	ViewCacheCapacity uint64 `json:"viewCacheCapacity" yaml:"viewCacheCapacity"`
}

// PartitionConfig defines the partition key grid
type PartitionConfig struct {
	MinCellDegrees     float64 `json:"minCellDegrees" yaml:"minCellDegrees"`
	CellScale          float64 `json:"cellScale" yaml:"cellScale"`
	RadiusBucketMeters int     `json:"radiusBucketMeters" yaml:"radiusBucketMeters"`
}

// SpatialConfig defines proximity lookups
type SpatialConfig struct {
	// Quadkey prefix length used by proximity queries
	ProximityZoom int `json:"proximityZoom" yaml:"proximityZoom"`
}

// EnrichmentConfig defines detail fetching
type EnrichmentConfig struct {
	// Maximum concurrent upstream detail fetches per request
	Concurrency int `json:"concurrency" yaml:"concurrency"`

	// Timeout of a single upstream detail fetch
	FetchTimeout time.Duration `json:"fetchTimeout" yaml:"fetchTimeout"`
}

// QuotaConfig defines the AI scoring allowance
type QuotaConfig struct {
	// Scoring calls per window for free users
	FreeLimit int `json:"freeLimit" yaml:"freeLimit"`

	// Rolling window length
	Window time.Duration `json:"window" yaml:"window"`
}

// BackgroundConfig defines fire-and-forget store writes
type BackgroundConfig struct {
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "none", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: CACHE_CLAIMEDVIEWTTL -> cache.claimedViewTTL (not cache.claimedviewttl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
