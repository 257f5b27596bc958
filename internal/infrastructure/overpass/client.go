package overpass

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/serjvanilla/go-overpass"
	"github.com/smartcity-dashboard/internal/config"
	"github.com/smartcity-dashboard/internal/domain"
	"github.com/smartcity-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

const queryTimeoutSeconds = 25

type placesRepository struct {
	client      *overpass.Client
	defaultCity string
	logger      *zap.Logger
}

// NewPlacesRepository создает репозиторий объектов карты поверх Overpass API
func NewPlacesRepository(cfg *config.OverpassConfig, logger *zap.Logger) repository.PlacesRepository {
	maxParallel := cfg.MaxParallel
	if maxParallel <= 0 {
		maxParallel = 1
	}
	httpClient := &http.Client{
		Timeout: cfg.RequestTimeout,
	}
	client := overpass.NewWithSettings(cfg.Endpoint, maxParallel, httpClient)

	return &placesRepository{
		client:      &client,
		defaultCity: cfg.DefaultCity,
		logger:      logger,
	}
}

func (r *placesRepository) FetchPlaces(ctx context.Context, query domain.PlaceQuery) ([]domain.Place, error) {
	if query.BBox == nil && query.City == "" {
		query.City = r.defaultCity
	}

	q := BuildQuery(query)

	r.logger.Debug("Executing Overpass query",
		zap.String("type", string(query.Type)),
		zap.String("city", query.City),
		zap.Bool("bbox", query.BBox != nil))

	result, err := r.executeQuery(ctx, q)
	if err != nil {
		r.logger.Error("Overpass query failed", zap.Error(err))
		return nil, err
	}

	places := convertToPlaces(result, query.Type)

	r.logger.Debug("Overpass query completed", zap.Int("places", len(places)))
	return places, nil
}

// BuildQuery собирает Overpass QL: по bbox (south,west,north,east) или по области города
func BuildQuery(query domain.PlaceQuery) string {
	tag := query.Type.OSMTag()

	if query.BBox != nil {
		b := query.BBox
		bbox := fmt.Sprintf("%g,%g,%g,%g", b.MinLat, b.MinLon, b.MaxLat, b.MaxLon)
		return fmt.Sprintf(`
		[out:json][timeout:%d];
		(
		  node[%s](%s);
		  way[%s](%s);
		  relation[%s](%s);
		);
		out bb;
		`, queryTimeoutSeconds, tag, bbox, tag, bbox, tag, bbox)
	}

	return fmt.Sprintf(`
		[out:json][timeout:%d];
		area[name=%q]->.searchArea;
		(
		  node[%s](area.searchArea);
		  way[%s](area.searchArea);
		  relation[%s](area.searchArea);
		);
		out bb;
		`, queryTimeoutSeconds, query.City, tag, tag, tag)
}

// executeQuery - go-overpass не принимает context, поэтому отмену отслеживаем сами
func (r *placesRepository) executeQuery(ctx context.Context, query string) (*overpass.Result, error) {
	type queryResult struct {
		result overpass.Result
		err    error
	}

	done := make(chan queryResult, 1)
	go func() {
		res, err := r.client.Query(query)
		done <- queryResult{result: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("overpass query canceled: %w", ctx.Err())
	case qr := <-done:
		if qr.err != nil {
			return nil, fmt.Errorf("overpass query failed: %w", qr.err)
		}
		return &qr.result, nil
	}
}

// convertToPlaces оставляет только элементы с тегами: узлы-вершины путей приходят заглушками
func convertToPlaces(result *overpass.Result, placeType domain.PlaceType) []domain.Place {
	places := make([]domain.Place, 0, len(result.Nodes))

	for _, node := range result.Nodes {
		if len(node.Tags) == 0 {
			continue
		}
		places = append(places, newPlace(node.ID, node.Tags, placeType, node.Lat, node.Lon))
	}

	for _, way := range result.Ways {
		if len(way.Tags) == 0 {
			continue
		}
		lat, lon, ok := wayCenter(way)
		if !ok {
			continue
		}
		places = append(places, newPlace(way.ID, way.Tags, placeType, lat, lon))
	}

	for _, rel := range result.Relations {
		if len(rel.Tags) == 0 || rel.Bounds == nil {
			continue
		}
		lat := (rel.Bounds.Min.Lat + rel.Bounds.Max.Lat) / 2
		lon := (rel.Bounds.Min.Lon + rel.Bounds.Max.Lon) / 2
		places = append(places, newPlace(rel.ID, rel.Tags, placeType, lat, lon))
	}

	sort.Slice(places, func(i, j int) bool {
		return places[i].ID < places[j].ID
	})

	return places
}

func wayCenter(way *overpass.Way) (float64, float64, bool) {
	if way.Bounds != nil {
		return (way.Bounds.Min.Lat + way.Bounds.Max.Lat) / 2,
			(way.Bounds.Min.Lon + way.Bounds.Max.Lon) / 2, true
	}

	var lat, lon float64
	count := 0
	for _, node := range way.Nodes {
		if node.Lat == 0 && node.Lon == 0 {
			continue
		}
		lat += node.Lat
		lon += node.Lon
		count++
	}
	if count == 0 {
		return 0, 0, false
	}
	return lat / float64(count), lon / float64(count), true
}

func newPlace(id int64, tags map[string]string, placeType domain.PlaceType, lat, lon float64) domain.Place {
	name := tags["name"]
	if name == "" {
		name = "Unknown"
	}
	return domain.Place{
		ID:   id,
		Name: name,
		Type: placeType,
		Lat:  lat,
		Lon:  lon,
		Tags: tags,
	}
}
