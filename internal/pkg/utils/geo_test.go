package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Connaught Place -> India Gate, ~2.4 km
	d := HaversineDistance(28.6315, 77.2167, 28.6129, 77.2295)
	assert.InDelta(t, 2.4, d, 0.2)

	assert.Equal(t, 0.0, HaversineDistance(10, 10, 10, 10))
}

func TestIsFiniteCoordinate(t *testing.T) {
	assert.True(t, IsFiniteCoordinate(28.6, 77.2))
	assert.True(t, IsFiniteCoordinate(95, -200))
	assert.False(t, IsFiniteCoordinate(math.NaN(), 0))
	assert.False(t, IsFiniteCoordinate(0, math.Inf(-1)))
}

func TestDeterministicScore(t *testing.T) {
	t.Run("known value", func(t *testing.T) {
		// 28600 + 77200 + 55 = 105855
		assert.InDelta(t, 55.0, DeterministicScore(28.6, 77.2, SeedOffsetAQI), 1e-6)
		assert.InDelta(t, 23.0, DeterministicScore(28.6, 77.2, SeedOffsetCrime), 1e-6)
	})

	t.Run("negative coordinates use floored modulo", func(t *testing.T) {
		// -33500 + -151250 = -184750 -> 50
		assert.InDelta(t, 50.0, DeterministicScore(-33.5, -151.25, 0), 1e-9)
		// -184750 + 99 = -184651 -> 49
		assert.InDelta(t, 49.0, DeterministicScore(-33.5, -151.25, SeedOffsetWater), 1e-9)
	})

	t.Run("deterministic and in range", func(t *testing.T) {
		coords := [][2]float64{
			{28.6139, 77.2090}, {13.0827, 80.2707}, {-33.8688, 151.2093},
			{51.5074, -0.1278}, {0, 0}, {-89.999, -179.999}, {1e-9, -1e-9},
		}
		offsets := []int{0, SeedOffsetAQI, SeedOffsetWater, SeedOffsetCrime, SeedOffsetRegional + 3}

		for _, c := range coords {
			for _, off := range offsets {
				first := DeterministicScore(c[0], c[1], off)
				second := DeterministicScore(c[0], c[1], off)
				assert.Equal(t, first, second)
				assert.GreaterOrEqual(t, first, 0.0)
				assert.Less(t, first, 100.0)
			}
		}
	})
}

func TestFloorMod(t *testing.T) {
	assert.Equal(t, 95.0, FloorMod(-5, 100))
	assert.Equal(t, 5.0, FloorMod(105, 100))
	assert.Equal(t, 0.0, FloorMod(-200, 100))

	assert.Equal(t, 15, FloorModInt(-5, 20))
	assert.Equal(t, 3, FloorModInt(23, 20))
	assert.Equal(t, 0, FloorModInt(-40, 20))
}
