// Package reviews talks to the external place-details provider.
package reviews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

const (
	defaultBaseURL          = "https://maps.googleapis.com"
	defaultPlaceDetailsPath = "/maps/api/place/details/json"
	defaultFailureThreshold = 5
	defaultTimeout          = 10 * time.Second
	maxResponseBodyBytes    = 1 << 20
	statusOK                = "OK"
	statusZeroResults       = "ZERO_RESULTS"
	breakerName             = "place-reviews"
)

// ErrUnexpectedStatus is returned for non-2xx responses or a non-OK provider status.
var ErrUnexpectedStatus = errors.New("unexpected provider status")

type placeDetailsResponse struct {
	Status       string              `json:"status"`
	ErrorMessage string              `json:"error_message"`
	Result       *placeDetailsResult `json:"result"`
}

type placeDetailsResult struct {
	Reviews []placeReview `json:"reviews"`
}

// placeReview mirrors one provider review; every field is optional.
type placeReview struct {
	AuthorName              *string      `json:"author_name"`
	Rating                  *json.Number `json:"rating"`
	RelativeTimeDescription *string      `json:"relative_time_description"`
	Text                    *string      `json:"text"`
}

// GoogleClient fetches reviews from the Google Places details endpoint behind a circuit breaker.
type GoogleClient struct {
	httpClient  *http.Client
	breaker     *gobreaker.CircuitBreaker
	apiKey      string
	baseURL     string
	detailsPath string
	logger      *slog.Logger
}

// NewGoogleClient builds a client from cfg. Missing base URL or path fall back to the public endpoint.
func NewGoogleClient(cfg *config.ReviewsConfig, logger *slog.Logger) *GoogleClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	detailsPath := cfg.PlaceDetailsPath
	if detailsPath == "" {
		detailsPath = defaultPlaceDetailsPath
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &GoogleClient{
		httpClient:  &http.Client{Timeout: timeout},
		breaker:     newBreaker(cfg.Breaker, logger),
		apiKey:      cfg.APIKey,
		baseURL:     baseURL,
		detailsPath: detailsPath,
		logger:      logger,
	}
}

func newBreaker(cfg config.BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = defaultFailureThreshold
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
		// a caller that went away says nothing about the provider
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
}

// FetchReviews returns the provider's reviews for placeID. An open breaker fails fast with gobreaker.ErrOpenState.
func (c *GoogleClient) FetchReviews(ctx context.Context, placeID string) ([]*entity.Review, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		return c.fetch(ctx, placeID)
	})
	if err != nil {
		return nil, err
	}

	return result.([]*entity.Review), nil
}

func (c *GoogleClient) fetch(ctx context.Context, placeID string) ([]*entity.Review, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.detailsURL(placeID), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build place details request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error would echo the key back through the query string
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}

		return nil, errors.Wrap(err, "place details request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Wrapf(ErrUnexpectedStatus, "http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read place details response")
	}

	return parseReviews(body)
}

// detailsURL keeps the provider's documented parameter order: place_id, fields, key.
func (c *GoogleClient) detailsURL(placeID string) string {
	return fmt.Sprintf("%s%s?place_id=%s&fields=reviews&key=%s",
		c.baseURL, c.detailsPath, url.QueryEscape(placeID), url.QueryEscape(c.apiKey))
}

// parseReviews reads result.reviews. A payload without reviews yields an empty slice.
func parseReviews(body []byte) ([]*entity.Review, error) {
	var payload placeDetailsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode place details response")
	}

	switch payload.Status {
	case "", statusOK, statusZeroResults:
	default:
		return nil, errors.Wrapf(ErrUnexpectedStatus, "%s %s", payload.Status, payload.ErrorMessage)
	}

	if payload.Result == nil {
		return []*entity.Review{}, nil
	}

	reviews := make([]*entity.Review, 0, len(payload.Result.Reviews))
	for _, r := range payload.Result.Reviews {
		review := &entity.Review{}
		if r.AuthorName != nil {
			review.AuthorName = *r.AuthorName
		}
		if r.Rating != nil {
			rating, err := decimal.NewFromString(r.Rating.String())
			if err != nil {
				return nil, errors.Wrapf(err, "invalid review rating %q", r.Rating.String())
			}
			review.Rating = decimal.NewNullDecimal(rating)
		}
		if r.RelativeTimeDescription != nil {
			review.RelativeTimeDescription = *r.RelativeTimeDescription
		}
		if r.Text != nil {
			review.Text = *r.Text
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}
