package utils

import "math"

const earthRadiusKm = 6371.0

// Смещения сида для декорреляции метрик, выводимых из одной координаты
const (
	SeedOffsetTraffic  = 0
	SeedOffsetAQI      = 55
	SeedOffsetWater    = 99
	SeedOffsetCrime    = 123
	SeedOffsetRegional = 300
)

// HaversineDistance вычисляет расстояние между двумя точками в километрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// IsFiniteCoordinate - координата без NaN и бесконечностей; диапазон не проверяется
func IsFiniteCoordinate(lat, lng float64) bool {
	return !math.IsNaN(lat) && !math.IsInf(lat, 0) && !math.IsNaN(lng) && !math.IsInf(lng, 0)
}

// DeterministicScore - стабильная псевдо-метрика [0,100) для координаты и смещения сида
func DeterministicScore(lat, lng float64, seedOffset int) float64 {
	raw := lat*1000 + lng*1000 + float64(seedOffset)
	return math.Abs(FloorMod(raw, 100))
}

// FloorMod - остаток с округлением вниз: знак результата совпадает со знаком делителя
func FloorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	if r == m {
		return 0
	}
	return r
}

// FloorModInt - целочисленный вариант FloorMod
func FloorModInt(x, m int) int {
	r := x % m
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}
