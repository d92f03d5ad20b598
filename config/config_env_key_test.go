package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"reviews": map[string]any{
			"apiKey":           "",
			"placeDetailsPath": "/details/json",
			"breaker": map[string]any{
				"failureThreshold": 5,
			},
		},
		"places": map[string]any{
			"elastic": map[string]any{
				"url": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REVIEWS_APIKEY", want: "reviews.apiKey"},
		{envKey: "REVIEWS_PLACEDETAILSPATH", want: "reviews.placeDetailsPath"},
		{envKey: "REVIEWS_BREAKER_FAILURETHRESHOLD", want: "reviews.breaker.failureThreshold"},
		{envKey: "PLACES_ELASTIC_URL", want: "places.elastic.url"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestReviewsConfig_HasCredential(t *testing.T) {
	tests := []struct {
		name string
		cfg  *ReviewsConfig
		want bool
	}{
		{name: "nil config", cfg: nil, want: false},
		{name: "empty key", cfg: &ReviewsConfig{}, want: false},
		{name: "whitespace key", cfg: &ReviewsConfig{APIKey: "   "}, want: false},
		{name: "placeholder key", cfg: &ReviewsConfig{APIKey: PlaceholderAPIKey}, want: false},
		{name: "real key", cfg: &ReviewsConfig{APIKey: "AIza-test"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.HasCredential())
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Metrics: &MetricsConfig{Enabled: true}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, PlacesProviderMock, cfg.Places.Provider)
	assert.Equal(t, 10*time.Second, cfg.Reviews.Timeout)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Places:  &PlacesConfig{Provider: PlacesProviderElastic},
		Reviews: &ReviewsConfig{Timeout: 3 * time.Second},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, PlacesProviderElastic, cfg.Places.Provider)
	assert.Equal(t, 3*time.Second, cfg.Reviews.Timeout)
	assert.Nil(t, cfg.Metrics)
}
