package domain

// PlaceType - категория объекта карты, которую можно запросить у Overpass
type PlaceType string

const (
	PlaceTypeHospital    PlaceType = "hospital"
	PlaceTypePolice      PlaceType = "police"
	PlaceTypeFireStation PlaceType = "fire_station"
	PlaceTypePark        PlaceType = "park"
)

var placeTypeTags = map[PlaceType]string{
	PlaceTypeHospital:    `"amenity"="hospital"`,
	PlaceTypePolice:      `"amenity"="police"`,
	PlaceTypeFireStation: `"amenity"="fire_station"`,
	PlaceTypePark:        `"leisure"="park"`,
}

func (t PlaceType) Valid() bool {
	_, ok := placeTypeTags[t]
	return ok
}

// OSMTag - фильтр тега для Overpass QL; неизвестный тип трактуется как больница
func (t PlaceType) OSMTag() string {
	if tag, ok := placeTypeTags[t]; ok {
		return tag
	}
	return placeTypeTags[PlaceTypeHospital]
}

// Place - объект OSM, приведенный к точке
type Place struct {
	ID   int64             `json:"id"`
	Name string            `json:"name"`
	Type PlaceType         `json:"type"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags,omitempty"`
}

// PlaceQuery - либо bbox, либо название города
type PlaceQuery struct {
	Type PlaceType
	BBox *BoundingBox
	City string
}
