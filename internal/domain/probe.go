package domain

// ProbeMetrics - базовые метрики точки, из которых собирается отчет
type ProbeMetrics struct {
	CrimeIndex  float64
	SafetyScore float64
	AQI         float64
	WQI         float64
	Weather     string
	NoiseIdx    int
	Hospitals   int
	Parks       int
	Malls       int
}

// TrendSeries - синтетические временные ряды; длина каждого ряда равна len(Labels)
type TrendSeries struct {
	Labels   []string  `json:"days"`
	AQI      []int     `json:"aqi"`
	Traffic  []int     `json:"traffic"`
	Humidity []int     `json:"humidity"`
	Water    []int     `json:"water"`
	Crime    []float64 `json:"crime"`
}

// Len - число точек; -1, если ряды разной длины
func (t TrendSeries) Len() int {
	n := len(t.Labels)
	if len(t.AQI) != n || len(t.Traffic) != n || len(t.Humidity) != n ||
		len(t.Water) != n || len(t.Crime) != n {
		return -1
	}
	return n
}

type RegionalEntry struct {
	Name   string `json:"name"`
	AQI    int    `json:"aqi"`
	Safety string `json:"safety"`
}

type Verdict struct {
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}
