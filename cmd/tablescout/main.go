package main

import (
	"context"
	"log/slog"
	"os"

	"tablescout/config"
	"tablescout/internal/delivery"
	"tablescout/internal/delivery/http"
	"tablescout/internal/delivery/http/router/handler"
	"tablescout/internal/delivery/middleware"
	"tablescout/internal/domain/constants"
	"tablescout/internal/domain/repository"
	"tablescout/internal/geo"
	logs "tablescout/internal/infra/log"
	"tablescout/internal/infra/persistence/firestore"
	"tablescout/internal/infra/persistence/sqlite"
	"tablescout/internal/infra/places"
	"tablescout/internal/infra/pubsub"
	"tablescout/internal/infra/scoring"
	"tablescout/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		pubsub.Module,
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newDeriver,
		newBackgroundWriter,
		newViewCache,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			places.NewPlaceProvider,
			scoring.NewPlaceScorer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEnrichmentService,
			impl.NewSearchService,
			impl.NewClaimService,
			impl.NewQuotaService,
			impl.NewScoringService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewCallerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPlaceHandler,
			handler.NewQuotaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type storeParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type storeResult struct {
	fx.Out

	PlaceRepo     repository.PlaceRepository
	PartitionRepo repository.PartitionRepository
	QuotaRepo     repository.QuotaRepository
	TxManager     repository.TransactionManager
}

// newStore opens the configured document store backend.
func newStore(params storeParams) (storeResult, error) {
	switch params.Config.Store.Provider {
	case constants.StoreProviderSQLite:
		db, err := sqlite.NewDB(sqlite.DBParams{Lc: params.Lc, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return storeResult{}, err
		}

		return storeResult{
			PlaceRepo:     sqlite.NewPlaceRepository(db),
			PartitionRepo: sqlite.NewPartitionRepository(db),
			QuotaRepo:     sqlite.NewQuotaRepository(db),
			TxManager:     sqlite.NewTransactionManager(db),
		}, nil

	case constants.StoreProviderFirestore:
		client, err := firestore.NewClient(firestore.ClientParams{
			Lc:     params.Lc,
			Ctx:    params.Ctx,
			Config: params.Config,
			Logger: params.Logger,
		})
		if err != nil {
			return storeResult{}, err
		}
		collections := firestore.NewCollections(params.Config)

		return storeResult{
			PlaceRepo:     firestore.NewPlaceRepository(client, collections),
			PartitionRepo: firestore.NewPartitionRepository(client, collections),
			QuotaRepo:     firestore.NewQuotaRepository(client, collections),
			TxManager:     firestore.NewTransactionManager(client, collections),
		}, nil

	default:
		return storeResult{}, errors.Errorf("unsupported store provider %q", params.Config.Store.Provider)
	}
}

func newDeriver(cfg *config.Config) *geo.Deriver {
	return geo.NewDeriver(geo.PartitionConfig{
		MinCellDegrees:     cfg.Partition.MinCellDegrees,
		CellScale:          cfg.Partition.CellScale,
		RadiusBucketMeters: cfg.Partition.RadiusBucketMeters,
	})
}

type backgroundWriterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger

	// Requiring the store orders its close hook after the drain.
	TxManager repository.TransactionManager
}

// newBackgroundWriter drains pending store writes on shutdown.
func newBackgroundWriter(params backgroundWriterParams) *impl.BackgroundWriter {
	writer := impl.NewBackgroundWriter(params.Config, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Draining background writes")

			return writer.Drain(ctx)
		},
	})

	return writer
}

// newViewCache runs the resolved-view expiry loop for the process lifetime.
func newViewCache(lc fx.Lifecycle, cfg *config.Config) *impl.ViewCache {
	cache := impl.NewViewCache(cfg)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go cache.Start()

			return nil
		},
		OnStop: func(context.Context) error {
			cache.Stop()

			return nil
		},
	})

	return cache
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
