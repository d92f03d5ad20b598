package places

import (
	"context"
	"log/slog"

	"nearby/config"
	"nearby/internal/domain/repository"
	"nearby/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SourceParams holds dependencies for PlaceSource, injected by Fx
type SourceParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	PlaceRepo repository.PlaceRepository
}

// NewPlaceSource picks the nearby search source named by places.provider.
func NewPlaceSource(params SourceParams) (service.PlaceSource, error) {
	logger := params.Logger

	provider := config.PlacesProviderMock
	if params.Config.Places != nil && params.Config.Places.Provider != "" {
		provider = params.Config.Places.Provider
	}

	switch provider {
	case config.PlacesProviderMock:
		logger.Info("Using mock place source")

		return NewMockSource(), nil

	case config.PlacesProviderPostgres:
		logger.Info("Using Postgres place catalog")

		return NewPostgresSource(params.PlaceRepo), nil

	case config.PlacesProviderElastic:
		cfg := params.Config.Places.Elastic
		client, err := NewElasticClient(cfg)
		if err != nil {
			return nil, err
		}
		source := NewElasticSource(client, cfg.Index, logger)
		logger.Info("Using Elasticsearch place index",
			slog.String("url", cfg.URL),
			slog.String("index", source.Index()),
		)

		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				logger.Info("Stopping Elasticsearch client")
				client.Stop()

				return nil
			},
		})

		return source, nil

	default:
		return nil, errors.Errorf("unknown places provider: %s", provider)
	}
}

// Module provides the place source FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPlaceSource),
)
