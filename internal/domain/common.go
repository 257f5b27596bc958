package domain

import (
	"errors"

	"github.com/paulmach/orb"
)

// ErrDatasetNotFound - файл датасета отсутствует на диске
var ErrDatasetNotFound = errors.New("dataset not found")

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeoCoordinate - координата в формате {lat, lng}, как в station_coordinates.json
type GeoCoordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Bound переводит bbox в orb.Bound (X = долгота, Y = широта)
func (b BoundingBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLon, b.MinLat},
		Max: orb.Point{b.MaxLon, b.MaxLat},
	}
}

// Contains - попадание точки в bbox, границы включительно
func (b BoundingBox) Contains(lat, lon float64) bool {
	return b.Bound().Contains(orb.Point{lon, lat})
}

func (b BoundingBox) Valid() bool {
	return b.MinLat <= b.MaxLat && b.MinLon <= b.MaxLon &&
		b.MinLat >= -90 && b.MaxLat <= 90 && b.MinLon >= -180 && b.MaxLon <= 180
}

// ContainsOrAll - nil bbox означает отсутствие фильтра
func ContainsOrAll(b *BoundingBox, lat, lon float64) bool {
	return b == nil || b.Contains(lat, lon)
}
