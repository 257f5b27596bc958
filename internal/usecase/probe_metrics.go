package usecase

import (
	"math/rand/v2"

	"github.com/jonboulle/clockwork"
	"github.com/smartcity-dashboard/internal/domain"
	"github.com/smartcity-dashboard/internal/pkg/utils"
)

var weatherConditions = [...]string{"Sunny", "Cloudy", "Rainy", "Haze"}

// Jitter - источник случайного шума метрик, равномерное целое в [lo, hi]
type Jitter interface {
	IntRange(lo, hi int) int
}

// JitterSource создает новый Jitter на каждый запрос
type JitterSource func() Jitter

type pcgJitter struct {
	rnd *rand.Rand
}

func (j *pcgJitter) IntRange(lo, hi int) int {
	return lo + j.rnd.IntN(hi-lo+1)
}

// NewClockJitterSource - генератор PCG на запрос, зерно берется из часов
func NewClockJitterSource(clock clockwork.Clock) JitterSource {
	return func() Jitter {
		seed := uint64(clock.Now().UnixNano())
		return &pcgJitter{rnd: rand.New(rand.NewPCG(seed, seed>>32|seed<<32))}
	}
}

// NewSeededJitterSource - воспроизводимая последовательность для заданного зерна
func NewSeededJitterSource(seed uint64) JitterSource {
	return func() Jitter {
		return &pcgJitter{rnd: rand.New(rand.NewPCG(seed, seed))}
	}
}

// deriveMetrics считает базовые метрики точки.
// Шум безопасности и шума улиц берется из jitter в указанном порядке.
func deriveMetrics(lat, lng, congestion float64, jitter Jitter) domain.ProbeMetrics {
	crime := utils.DeterministicScore(lat, lng, utils.SeedOffsetCrime)
	safety := 100 - crime + float64(jitter.IntRange(-5, 5))
	aqi := utils.DeterministicScore(lat, lng, utils.SeedOffsetAQI)*2 + 50
	wqi := utils.DeterministicScore(lat, lng, utils.SeedOffsetWater)

	noiseLevel := int(congestion*0.8 + float64(jitter.IntRange(30, 50)))

	return domain.ProbeMetrics{
		CrimeIndex:  crime,
		SafetyScore: safety,
		AQI:         aqi,
		WQI:         wqi,
		Weather:     weatherConditions[int(crime)%len(weatherConditions)],
		NoiseIdx:    min(100, noiseLevel),
		Hospitals:   int(safety / 20),
		Parks:       int(safety / 15),
		Malls:       int(crime / 30),
	}
}
