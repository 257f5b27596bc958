package repository

import (
	"context"

	"github.com/smartcity-dashboard/internal/domain"
)

// PlacesRepository - объекты карты из OpenStreetMap (Overpass API)
type PlacesRepository interface {
	FetchPlaces(ctx context.Context, query domain.PlaceQuery) ([]domain.Place, error)
}
