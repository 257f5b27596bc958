package dto

import "github.com/smartcity-dashboard/internal/domain"

// Report - отчет по точке; форма ответа фиксирована контрактом фронтенда
type Report struct {
	Location    LocationBlock          `json:"location"`
	Verdict     domain.Verdict         `json:"verdict"`
	Traffic     domain.TrafficSample   `json:"traffic"`
	Environment EnvironmentBlock       `json:"environment"`
	Safety      SafetyBlock            `json:"safety"`
	Nearby      NearbyBlock            `json:"nearby"`
	Analytics   domain.TrendSeries     `json:"analytics"`
	Regional    []domain.RegionalEntry `json:"regional"`
}

type LocationBlock struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type EnvironmentBlock struct {
	AQI     IndicatorInt    `json:"aqi"`
	Water   IndicatorInt    `json:"water"`
	Weather WeatherBlock    `json:"weather"`
	Noise   IndicatorString `json:"noise"`
}

type IndicatorInt struct {
	Value  int    `json:"value"`
	Status string `json:"status"`
}

type IndicatorString struct {
	Value  string `json:"value"`
	Status string `json:"status"`
}

type WeatherBlock struct {
	Condition string `json:"condition"`
	Temp      string `json:"temp"`
}

type SafetyBlock struct {
	Score     int    `json:"score"`
	CrimeRate string `json:"crime_rate"`
	Rating    string `json:"rating"`
	Reviews   int    `json:"reviews"`
}

type NearbyBlock struct {
	Hospitals      int `json:"hospitals"`
	Parks          int `json:"parks"`
	Malls          int `json:"malls"`
	ParkingScore   int `json:"parking_score"`
	TransportScore int `json:"transport_score"`
}
