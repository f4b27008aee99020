// Package firestore implements the document store on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"tablescout/config"
	"tablescout/internal/domain/constants"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collections names the Firestore collections used by the repositories.
type Collections struct {
	Places     string
	Partitions string
	Quotas     string
}

// ClientParams holds dependencies for the Firestore client, injected by Fx
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewClient initializes the Firebase app and returns its Firestore client.
func NewClient(params ClientParams) (*fs.Client, error) {
	cfg := params.Config.Store.Firestore

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(params.Ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Logger.Info("Firestore store initialized", slog.String("project_id", cfg.ProjectID))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// NewCollections resolves collection names, falling back to the defaults.
func NewCollections(cfg *config.Config) Collections {
	collections := Collections{
		Places:     constants.CollectionPlaces,
		Partitions: constants.CollectionPartitions,
		Quotas:     constants.CollectionQuotas,
	}

	if cfg.Store == nil || cfg.Store.Firestore == nil {
		return collections
	}

	overrides := cfg.Store.Firestore.Collections
	if overrides.Places != "" {
		collections.Places = overrides.Places
	}
	if overrides.Partitions != "" {
		collections.Partitions = overrides.Partitions
	}
	if overrides.Quotas != "" {
		collections.Quotas = overrides.Quotas
	}

	return collections
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// refs builds document references for ids, skipping duplicates.
func refs(collection *fs.CollectionRef, ids []string) []*fs.DocumentRef {
	seen := make(map[string]struct{}, len(ids))
	docRefs := make([]*fs.DocumentRef, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		docRefs = append(docRefs, collection.Doc(id))
	}

	return docRefs
}
