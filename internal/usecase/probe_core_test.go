package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcity-dashboard/internal/domain"
)

// seqJitter отдает значения по очереди
type seqJitter struct {
	values []int
	next   int
}

func (j *seqJitter) IntRange(lo, hi int) int {
	v := j.values[j.next%len(j.values)]
	j.next++
	return v
}

// 28.5*1000 + 77.25*1000 = 105750 без ошибок округления
const (
	testLat = 28.5
	testLng = 77.25
)

func TestDeriveMetrics(t *testing.T) {
	m := deriveMetrics(testLat, testLng, 35, &seqJitter{values: []int{0, 40}})

	assert.Equal(t, 73.0, m.CrimeIndex)
	assert.Equal(t, 27.0, m.SafetyScore)
	assert.Equal(t, 60.0, m.AQI)
	assert.Equal(t, 49.0, m.WQI)
	assert.Equal(t, "Cloudy", m.Weather)
	assert.Equal(t, 68, m.NoiseIdx)
	assert.Equal(t, 1, m.Hospitals)
	assert.Equal(t, 1, m.Parks)
	assert.Equal(t, 2, m.Malls)
}

func TestDeriveMetrics_NoiseCapped(t *testing.T) {
	m := deriveMetrics(testLat, testLng, 90, &seqJitter{values: []int{5, 50}})

	assert.Equal(t, 32.0, m.SafetyScore)
	assert.Equal(t, 100, m.NoiseIdx)
}

func TestSeededJitterSource(t *testing.T) {
	a := NewSeededJitterSource(42)()
	b := NewSeededJitterSource(42)()

	for i := 0; i < 100; i++ {
		va, vb := a.IntRange(-5, 5), b.IntRange(-5, 5)
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, -5)
		assert.LessOrEqual(t, va, 5)
	}
}

func TestTrendLabels(t *testing.T) {
	t.Run("hourly", func(t *testing.T) {
		labels := trendLabels(1, time.Now())
		require.Len(t, labels, 24)
		assert.Equal(t, "00:00", labels[0])
		assert.Equal(t, "09:00", labels[9])
		assert.Equal(t, "23:00", labels[23])
	})

	t.Run("weekdays end today", func(t *testing.T) {
		sunday := time.Date(2024, 1, 7, 15, 0, 0, 0, time.UTC)
		assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, trendLabels(7, sunday))
		assert.Equal(t, []string{"Sat", "Sun"}, trendLabels(2, sunday))
	})

	t.Run("day and month", func(t *testing.T) {
		labels := trendLabels(14, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC))
		require.Len(t, labels, 14)
		assert.Equal(t, "01 Jan", labels[0])
		assert.Equal(t, "14 Jan", labels[13])
	})

	t.Run("months", func(t *testing.T) {
		labels := trendLabels(60, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
		require.Len(t, labels, 60)
		assert.Equal(t, "Jan", labels[0])
		assert.Equal(t, "Feb", labels[1+29])
		assert.Equal(t, "Mar", labels[59])
	})

	t.Run("year is fixed", func(t *testing.T) {
		labels := trendLabels(365, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}, labels)
	})
}

func TestSynthesizeTrends_Hourly(t *testing.T) {
	base := trendBase{AQI: 60, Traffic: 35, Crime: 73, WQI: 49}
	series := synthesizeTrends(testLat, testLng, 1, base, time.Now())

	require.Equal(t, 24, series.Len())

	// ночь: factor 0.2, crime factor 1.5
	assert.Equal(t, 20, series.AQI[0])
	assert.Equal(t, 7, series.Traffic[0])
	assert.Equal(t, 55, series.Humidity[0])
	assert.Equal(t, 47, series.Water[0])
	assert.Equal(t, 10.0, series.Crime[0])

	// час пик
	assert.Equal(t, 92, series.AQI[8])
	assert.Equal(t, 57, series.Traffic[8])
	assert.Equal(t, 63, series.Humidity[8])
	assert.Equal(t, 50, series.Water[8])
	assert.InDelta(t, 7.3, series.Crime[8], 1e-9)

	assert.Equal(t, 52, series.AQI[12])
	assert.Equal(t, 27, series.Traffic[12])
}

func TestSynthesizeTrends_WeekendDampening(t *testing.T) {
	base := trendBase{AQI: 60, Traffic: 35, Crime: 73, WQI: 49}
	series := synthesizeTrends(testLat, testLng, 7, base, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))

	require.Equal(t, 7, series.Len())
	assert.Equal(t, 60, series.AQI[0])
	assert.Equal(t, 53, series.AQI[5])
	assert.Equal(t, 70, series.Humidity[5])
	assert.InDelta(t, 7.3, series.Crime[0], 1e-9)
	assert.InDelta(t, 8.8, series.Crime[5], 1e-9)
}

func TestSynthesizeTrends_CrimeRounding(t *testing.T) {
	tests := []struct {
		name  string
		lat   float64
		lng   float64
		days  int
		crime float64
		index int
		want  float64
	}{
		{"hourly night below half", 28.6, 77.2, 1, 23, 0, 3.4},
		{"daily base below half", 0.0025, 0, 7, 25.5, 0, 2.5},
		{"weekend factor", testLat, testLng, 7, 73, 5, 8.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := synthesizeTrends(tt.lat, tt.lng, tt.days, trendBase{AQI: 60, Traffic: 35, Crime: tt.crime, WQI: 49}, time.Now())
			assert.Equal(t, tt.want, series.Crime[tt.index])
		})
	}
}

func TestRoundTenths(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{3.4499999999999997, 3.4},
		{2.55, 2.5},
		{0.35, 0.3},
		{0.25, 0.2},
		{0.75, 0.8},
		{7.3, 7.3},
		{10, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roundTenths(tt.in), "in=%v", tt.in)
	}
}

func TestSynthesizeTrends_InvariantsAndClamping(t *testing.T) {
	today := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	coords := [][2]float64{{28.6, 77.2}, {13.0827, 80.2707}, {-33.87, -151.21}, {0, 0}}
	bases := []trendBase{
		{AQI: 50, Traffic: 0, Crime: 0, WQI: 0},
		{AQI: 249, Traffic: 100, Crime: 99.9, WQI: 99},
	}

	for _, c := range coords {
		for _, base := range bases {
			for _, days := range []int{1, 2, 7, 8, 30, 31, 90, 365, 400} {
				s := synthesizeTrends(c[0], c[1], days, base, today)

				expected := days
				switch days {
				case 1:
					expected = 24
				case 365:
					expected = 12
				}
				require.Equal(t, expected, s.Len(), "days=%d", days)

				for i := 0; i < s.Len(); i++ {
					assert.True(t, s.AQI[i] >= 20 && s.AQI[i] <= 300)
					assert.True(t, s.Traffic[i] >= 0 && s.Traffic[i] <= 100)
					assert.True(t, s.Humidity[i] >= 40 && s.Humidity[i] <= 95)
					assert.True(t, s.Water[i] >= 0 && s.Water[i] <= 100)
					assert.True(t, s.Crime[i] >= 0 && s.Crime[i] <= 10)
				}
			}
		}
	}
}

func TestCompareRegions(t *testing.T) {
	tests := []struct {
		name     string
		safety   float64
		expected []domain.RegionalEntry
	}{
		{
			name:   "low safety",
			safety: 27,
			expected: []domain.RegionalEntry{
				{Name: "Downtown", AQI: 50, Safety: "Risk"},
				{Name: "Westside", AQI: 51, Safety: "Risk"},
				{Name: "North Hills", AQI: 30, Safety: "Risk"},
				{Name: "Industrial", AQI: 100, Safety: "Risk"},
			},
		},
		{
			name:   "high safety",
			safety: 85,
			expected: []domain.RegionalEntry{
				{Name: "Downtown", AQI: 50, Safety: "Safe"},
				{Name: "Westside", AQI: 51, Safety: "Safe"},
				{Name: "North Hills", AQI: 30, Safety: "Safe"},
				{Name: "Industrial", AQI: 100, Safety: "Good"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, compareRegions(testLat, testLng, 60, tt.safety))
		})
	}
}

func TestCompareRegions_Floors(t *testing.T) {
	entries := compareRegions(testLat, testLng, 25, 100)

	assert.Equal(t, 20, entries[0].AQI) // 25 - 10
	assert.Equal(t, 20, entries[2].AQI) // max(20, -5)
	assert.Equal(t, "Safe", entries[2].Safety)
	assert.Equal(t, "Safe", entries[3].Safety) // 80
}

func TestBuildVerdict(t *testing.T) {
	tests := []struct {
		name       string
		metrics    domain.ProbeMetrics
		congestion float64
		pros       []string
		cons       []string
	}{
		{
			name:       "all positive",
			metrics:    domain.ProbeMetrics{SafetyScore: 90, AQI: 40, WQI: 85, NoiseIdx: 50, Hospitals: 4, Parks: 6, Malls: 0},
			congestion: 20,
			pros: []string{"High Safety Rating", "Excellent Air Quality", "Clean Water Supply",
				"Low Traffic Zone", "Good Medical Access", "Green Spaces Nearby"},
			cons: []string{"No Major Issues"},
		},
		{
			name:       "all negative",
			metrics:    domain.ProbeMetrics{SafetyScore: 30, AQI: 200, WQI: 10, NoiseIdx: 90, Hospitals: 1, Parks: 1, Malls: 1},
			congestion: 75,
			pros:       []string{"Developing Area"},
			cons: []string{"Safety Concerns Detected", "Poor Air Quality", "High Noise Levels",
				"Heavy Traffic Congestion"},
		},
		{
			name:       "moderate pollution boundary",
			metrics:    domain.ProbeMetrics{SafetyScore: 60, AQI: 150, WQI: 80, NoiseIdx: 70},
			congestion: 45,
			pros:       []string{"Developing Area"},
			cons:       []string{"Moderate Pollution"},
		},
		{
			name:       "neutral",
			metrics:    domain.ProbeMetrics{SafetyScore: 80, AQI: 100, WQI: 50, NoiseIdx: 60},
			congestion: 30,
			pros:       []string{"Developing Area"},
			cons:       []string{"No Major Issues"},
		},
		{
			name:       "shopping",
			metrics:    domain.ProbeMetrics{SafetyScore: 27, AQI: 60, WQI: 49, NoiseIdx: 68, Hospitals: 1, Parks: 1, Malls: 2},
			congestion: 35,
			pros:       []string{"Shopping Options Available"},
			cons:       []string{"Safety Concerns Detected"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := buildVerdict(tt.metrics, tt.congestion)
			assert.Equal(t, tt.pros, v.Pros)
			assert.Equal(t, tt.cons, v.Cons)
		})
	}
}

func TestShortenAddress(t *testing.T) {
	assert.Equal(t, "Connaught Place, Block A, New Delhi",
		shortenAddress("Connaught Place, Block A, New Delhi, Delhi, 110001, India"))
	assert.Equal(t, "Chennai, India", shortenAddress("Chennai, India"))
	assert.Equal(t, "Unknown Area", shortenAddress("Unknown Area"))
}
