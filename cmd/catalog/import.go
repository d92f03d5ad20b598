package main

import (
	"context"
	"log/slog"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/lifecycle"
	"nearby/internal/domain/repository"
	"nearby/internal/errors"
	logs "nearby/internal/infra/log"
	"nearby/internal/infra/persistence/postgres"
	"nearby/internal/infra/places"

	"go.uber.org/fx"
)

const (
	targetPostgres = "postgres"
	targetElastic  = "elastic"
	targetAll      = "all"
)

func runImport(ctx context.Context, path, target string) error {
	if target != targetPostgres && target != targetElastic && target != targetAll {
		return errors.Errorf("unknown target %q, want postgres, elastic or all", target)
	}

	catalog, err := loadCatalog(path)
	if err != nil {
		return err
	}

	if target == targetPostgres || target == targetAll {
		if err := importToPostgres(ctx, catalog); err != nil {
			return err
		}
	}

	if target == targetElastic || target == targetAll {
		if err := importToElastic(ctx, catalog); err != nil {
			return err
		}
	}

	return nil
}

// importToPostgres starts only the database part of the service graph and upserts every place.
func importToPostgres(ctx context.Context, catalog []*entity.Place) error {
	var (
		repo   repository.PlaceRepository
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewPlaceRepository,
		),
		fx.Populate(&repo, &logger),
	)

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start database")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			logger.Error("Failed to stop database", slog.Any("error", err))
		}
	}()

	return upsertPlaces(ctx, repo, catalog, logger)
}

func upsertPlaces(ctx context.Context, repo repository.PlaceRepository, catalog []*entity.Place, logger *slog.Logger) error {
	var created, updated int
	for _, place := range catalog {
		_, err := repo.FindPlaceByPlaceID(ctx, place.PlaceID)
		switch {
		case err == nil:
			updated++
		case errors.Is(err, repository.ErrPlaceNotFound):
			created++
		default:
			return errors.Wrapf(err, "failed to look up %s", place.PlaceID)
		}

		if err := repo.UpsertPlace(ctx, place); err != nil {
			return errors.Wrapf(err, "failed to upsert %s", place.PlaceID)
		}
	}

	logger.Info("Imported places into Postgres",
		slog.Int("created", created),
		slog.Int("updated", updated),
	)

	return nil
}

func importToElastic(ctx context.Context, catalog []*entity.Place) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	var elasticCfg *config.ElasticConfig
	if cfg.Places != nil {
		elasticCfg = cfg.Places.Elastic
	}
	client, err := places.NewElasticClient(elasticCfg)
	if err != nil {
		return err
	}
	defer client.Stop()

	source := places.NewElasticSource(client, elasticCfg.Index, logger)

	createdIndex, err := source.EnsureIndex(ctx)
	if err != nil {
		return err
	}
	if createdIndex {
		logger.Info("Created place index", slog.String("index", source.Index()))
	}

	if err := source.IndexPlaces(ctx, catalog); err != nil {
		return err
	}

	logger.Info("Indexed places into Elasticsearch",
		slog.String("index", source.Index()),
		slog.Int("count", len(catalog)),
	)

	return nil
}
