package reviews

import (
	"log/slog"

	"nearby/config"
	"nearby/internal/domain/service"

	"go.uber.org/fx"
)

// ProviderParams holds dependencies for ReviewProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewReviewProvider returns the Google client, or nil when no real API key is configured.
// The review usecase treats a nil provider as "serve mock reviews".
func NewReviewProvider(params ProviderParams) service.ReviewProvider {
	cfg := params.Config.Reviews
	if !cfg.HasCredential() {
		params.Logger.Info("Review provider not configured, serving mock reviews")

		return nil
	}

	client := NewGoogleClient(cfg, params.Logger)
	params.Logger.Info("Using Google place details for reviews",
		slog.String("base_url", client.baseURL),
		slog.Duration("timeout", client.httpClient.Timeout),
	)

	return client
}

// Module provides the review provider FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewReviewProvider),
)
