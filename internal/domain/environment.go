package domain

// AirQualityStation - строка aqi_delhi.csv
type AirQualityStation struct {
	StationID   string  `csv:"StationId"`
	StationName string  `csv:"StationName"`
	City        string  `csv:"City"`
	Date        string  `csv:"Date"`
	AQI         float64 `csv:"AQI"`
	PM25        float64 `csv:"PM2.5"`
	PM10        float64 `csv:"PM10"`
	NO2         float64 `csv:"NO2"`
	Latitude    float64 `csv:"Latitude"`
	Longitude   float64 `csv:"Longitude"`
}

// WaterQualityStation - строка water_delhi.csv
type WaterQualityStation struct {
	StationCode string  `csv:"StationCode"`
	Location    string  `csv:"Location"`
	State       string  `csv:"State"`
	WQI         float64 `csv:"WQI"`
	PH          float64 `csv:"pH"`
	DO          float64 `csv:"DO"`
	BOD         float64 `csv:"BOD"`
	Latitude    float64 `csv:"Latitude"`
	Longitude   float64 `csv:"Longitude"`
}

// IndiaAQIReading - последнее измерение станции из aqi_india/<city>_*.csv
type IndiaAQIReading struct {
	City      string
	Location  string
	Timestamp string
	PM25      *float64
	PM10      *float64
	NO2       *float64
	SO2       *float64
	CO        *float64
	O3        *float64
	// AQI - колонка AQI, а при ее отсутствии PM2.5
	AQI *float64
	Lat float64
	Lon float64
}

// ReservoirLevel - уровень водохранилища Ченнаи на последнюю дату
type ReservoirLevel struct {
	Name      string
	LevelMcft float64
	Date      string
	Lat       float64
	Lon       float64
}
