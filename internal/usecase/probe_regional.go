package usecase

import (
	"math"

	"github.com/smartcity-dashboard/internal/domain"
	"github.com/smartcity-dashboard/internal/pkg/utils"
)

const (
	districtDowntown   = "Downtown"
	districtWestside   = "Westside"
	districtNorthHills = "North Hills"
	districtIndustrial = "Industrial"
)

var districts = [...]string{districtDowntown, districtWestside, districtNorthHills, districtIndustrial}

// compareRegions сравнивает точку с четырьмя условными районами
func compareRegions(lat, lng float64, baseAQI int, safety float64) []domain.RegionalEntry {
	entries := make([]domain.RegionalEntry, 0, len(districts))

	for idx, name := range districts {
		var aqi, districtSafety float64
		switch name {
		case districtIndustrial:
			aqi = float64(baseAQI + 40)
			districtSafety = math.Max(10, safety-20)
		case districtNorthHills:
			aqi = math.Max(20, float64(baseAQI-30))
			districtSafety = math.Min(100, safety+10)
		default:
			variance := utils.FloorMod(utils.DeterministicScore(lat, lng, utils.SeedOffsetRegional+idx), 40) - 20
			aqi = math.Max(20, float64(baseAQI)+variance)
			districtSafety = safety
		}

		entries = append(entries, domain.RegionalEntry{
			Name:   name,
			AQI:    int(aqi),
			Safety: safetyBucket(districtSafety),
		})
	}

	return entries
}

func safetyBucket(safety float64) string {
	switch {
	case safety > 70:
		return "Safe"
	case safety > 50:
		return "Good"
	default:
		return "Risk"
	}
}
