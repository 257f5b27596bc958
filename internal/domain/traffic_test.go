package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrafficSnapshot_Latest(t *testing.T) {
	readings := []TrafficReading{
		{Timestamp: "2024-03-01 08:00:00", IntersectionID: "A", Congestion: 10},
		{Timestamp: "2024-03-01T09:00:00Z", IntersectionID: "B", Congestion: 20},
		{Timestamp: "2024-03-01 09:00:00", IntersectionID: "C", Congestion: 30},
	}
	snap := NewTrafficSnapshot(readings, time.Now())

	latest, err := snap.Latest()
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "B", latest[0].IntersectionID)
	assert.Equal(t, "C", latest[1].IntersectionID)
	assert.Equal(t, "2024-03-01 09:00:00", latest[0].Timestamp)

	// исходный слайс не связан со снимком
	readings[0].IntersectionID = "mutated"
	assert.Equal(t, "A", snap.At(0).IntersectionID)
}

func TestTrafficSnapshot_LatestBadTimestamp(t *testing.T) {
	snap := NewTrafficSnapshot([]TrafficReading{{Timestamp: "yesterday"}}, time.Now())

	_, err := snap.Latest()
	assert.Error(t, err)
}

func TestNewTrafficSample(t *testing.T) {
	assert.Equal(t, TrafficSample{Congestion: 41, Speed: 22, Status: TrafficStatusHigh},
		NewTrafficSample(TrafficReading{Congestion: 41, AvgSpeedKmh: 22}))
	assert.Equal(t, TrafficStatusModerate, NewTrafficSample(TrafficReading{Congestion: 40}).Status)
	assert.Equal(t, TrafficSample{Status: "Unknown"}, UnknownTrafficSample())
}

func TestBoundingBox(t *testing.T) {
	bbox := BoundingBox{MinLat: 28.4, MinLon: 76.8, MaxLat: 28.9, MaxLon: 77.4}

	assert.True(t, bbox.Valid())
	assert.True(t, bbox.Contains(28.6, 77.2))
	assert.True(t, bbox.Contains(28.4, 76.8))
	assert.False(t, bbox.Contains(13.08, 80.27))

	assert.True(t, ContainsOrAll(nil, 13.08, 80.27))
	assert.False(t, BoundingBox{MinLat: 30, MaxLat: 20}.Valid())
}

func TestPlaceType(t *testing.T) {
	assert.True(t, PlaceTypePark.Valid())
	assert.False(t, PlaceType("school").Valid())
	assert.Equal(t, `"leisure"="park"`, PlaceTypePark.OSMTag())
	assert.Equal(t, `"amenity"="hospital"`, PlaceType("school").OSMTag())
}
