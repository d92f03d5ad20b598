package places

import (
	"context"
	"encoding/json"
	"log/slog"

	"nearby/config"
	"nearby/internal/domain/entity"

	"github.com/olivere/elastic/v7"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// maxElasticResults caps a single nearby search against the index.
const maxElasticResults = 100

const defaultElasticIndex = "places"

const placeIndexMapping = `{
  "mappings": {
    "properties": {
      "place_id": { "type": "keyword" },
      "name":     { "type": "text", "fields": { "keyword": { "type": "keyword" } } },
      "address":  { "type": "text" },
      "location": { "type": "geo_point" },
      "rating":   { "type": "float" },
      "types":    { "type": "keyword" }
    }
  }
}`

// placeDocument is the indexed form of a catalog place.
type placeDocument struct {
	PlaceID  string           `json:"place_id"`
	Name     string           `json:"name"`
	Address  string           `json:"address"`
	Location elastic.GeoPoint `json:"location"`
	Rating   *float64         `json:"rating,omitempty"`
	Types    []string         `json:"types"`
}

// ElasticSource serves nearby search from an Elasticsearch index with a geo_point "location" field.
type ElasticSource struct {
	client *elastic.Client
	index  string
	logger *slog.Logger
}

// NewElasticClient connects to the cluster described by cfg.
func NewElasticClient(cfg *config.ElasticConfig) (*elastic.Client, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("elastic url is required for elastic provider")
	}

	client, err := elastic.NewClient(
		elastic.SetURL(cfg.URL),
		elastic.SetSniff(cfg.Sniff),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create elastic client for %s", cfg.URL)
	}

	return client, nil
}

// NewElasticSource creates a source over index. An empty index name means "places".
func NewElasticSource(client *elastic.Client, index string, logger *slog.Logger) *ElasticSource {
	if index == "" {
		index = defaultElasticIndex
	}

	return &ElasticSource{
		client: client,
		index:  index,
		logger: logger,
	}
}

func (s *ElasticSource) Name() string {
	return config.PlacesProviderElastic
}

// Index returns the index name the source reads and writes.
func (s *ElasticSource) Index() string {
	return s.index
}

// FindNearby filters by geo_distance and sorts by arc distance, nearest first.
func (s *ElasticSource) FindNearby(ctx context.Context, query entity.PlaceQuery) ([]*entity.Place, error) {
	lat, _ := query.Latitude.Float64()
	lon, _ := query.Longitude.Float64()

	result, err := s.client.Search().
		Index(s.index).
		Query(elastic.NewBoolQuery().Filter(
			elastic.NewGeoDistanceQuery("location").
				Lat(lat).
				Lon(lon).
				Distance(query.RadiusKm.String() + "km"),
		)).
		SortBy(elastic.NewGeoDistanceSort("location").
			Point(lat, lon).
			Asc().
			Unit("km").
			DistanceType("arc")).
		Size(maxElasticResults).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search index %s", s.index)
	}

	places := make([]*entity.Place, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		var doc placeDocument
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			s.logger.Warn("Skipping malformed place document",
				slog.String("index", s.index),
				slog.String("id", hit.Id),
				slog.Any("error", err),
			)

			continue
		}
		places = append(places, doc.toPlace())
	}

	return places, nil
}

// EnsureIndex creates the index with the place mapping when it does not exist yet.
func (s *ElasticSource) EnsureIndex(ctx context.Context) (bool, error) {
	exists, err := s.client.IndexExists(s.index).Do(ctx)
	if err != nil {
		return false, errors.Wrapf(err, "failed to check index %s", s.index)
	}
	if exists {
		return false, nil
	}

	created, err := s.client.CreateIndex(s.index).BodyString(placeIndexMapping).Do(ctx)
	if err != nil {
		return false, errors.Wrapf(err, "failed to create index %s", s.index)
	}
	if !created.Acknowledged {
		s.logger.Warn("Index creation was not acknowledged", slog.String("index", s.index))
	}

	return true, nil
}

// IndexPlaces writes places in one bulk request, keyed by their external identifier.
func (s *ElasticSource) IndexPlaces(ctx context.Context, places []*entity.Place) error {
	if len(places) == 0 {
		return nil
	}

	bulk := s.client.Bulk()
	for _, place := range places {
		bulk.Add(elastic.NewBulkIndexRequest().
			Index(s.index).
			Id(place.PlaceID).
			Doc(newPlaceDocument(place)))
	}

	resp, err := bulk.Do(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to bulk index into %s", s.index)
	}

	if failed := resp.Failed(); len(failed) > 0 {
		for _, item := range failed {
			reason := ""
			if item.Error != nil {
				reason = item.Error.Reason
			}
			s.logger.Error("Failed to index place", slog.String("id", item.Id), slog.String("reason", reason))
		}

		return errors.Errorf("%d of %d places failed to index", len(failed), len(places))
	}

	return nil
}

func newPlaceDocument(place *entity.Place) placeDocument {
	lat, _ := place.Latitude.Float64()
	lon, _ := place.Longitude.Float64()

	doc := placeDocument{
		PlaceID:  place.PlaceID,
		Name:     place.Name,
		Address:  place.Address,
		Location: elastic.GeoPoint{Lat: lat, Lon: lon},
		Types:    place.Types,
	}
	if place.Rating.Valid {
		rating, _ := place.Rating.Decimal.Float64()
		doc.Rating = &rating
	}

	return doc
}

func (doc *placeDocument) toPlace() *entity.Place {
	place := &entity.Place{
		Name:      doc.Name,
		Address:   doc.Address,
		Latitude:  decimal.NewFromFloat(doc.Location.Lat),
		Longitude: decimal.NewFromFloat(doc.Location.Lon),
		PlaceID:   doc.PlaceID,
		Types:     doc.Types,
	}
	if doc.Rating != nil {
		place.Rating = decimal.NewNullDecimal(decimal.NewFromFloat(*doc.Rating))
	}
	if place.Types == nil {
		place.Types = []string{}
	}

	return place
}
