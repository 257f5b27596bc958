package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	TrafficStatusHigh     = "High Traffic"
	TrafficStatusModerate = "Moderate"
	TrafficStatusUnknown  = "Unknown"

	trafficTimestampLayout = "2006-01-02 15:04:05"
)

var trafficTimestampLayouts = []string{
	trafficTimestampLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// TrafficReading - строка traffic_flow.csv
type TrafficReading struct {
	Timestamp      string  `csv:"timestamp"`
	IntersectionID string  `csv:"intersection_id"`
	Lat            float64 `csv:"lat"`
	Lon            float64 `csv:"lon"`
	Congestion     float64 `csv:"congestion"`
	FlowVPM        float64 `csv:"flow_vpm"`
	AvgSpeedKmh    float64 `csv:"avg_speed_kmh"`
	Incidents      float64 `csv:"incidents"`
}

// TrafficSample - срез трафика для отчета по точке
type TrafficSample struct {
	Congestion float64 `json:"congestion"`
	Speed      float64 `json:"speed"`
	Status     string  `json:"status"`
}

// UnknownTrafficSample - значение по умолчанию, когда данных о трафике нет
func UnknownTrafficSample() TrafficSample {
	return TrafficSample{Status: TrafficStatusUnknown}
}

// NewTrafficSample строит срез из строки; статус зависит от загруженности
func NewTrafficSample(r TrafficReading) TrafficSample {
	status := TrafficStatusModerate
	if r.Congestion > 40 {
		status = TrafficStatusHigh
	}
	return TrafficSample{
		Congestion: r.Congestion,
		Speed:      r.AvgSpeedKmh,
		Status:     status,
	}
}

// TrafficSnapshot - неизменяемый снимок traffic_flow.csv.
// После создания не модифицируется, поэтому безопасен для конкурентного чтения.
type TrafficSnapshot struct {
	readings []TrafficReading
	loadedAt time.Time
}

func NewTrafficSnapshot(readings []TrafficReading, loadedAt time.Time) *TrafficSnapshot {
	cp := make([]TrafficReading, len(readings))
	copy(cp, readings)
	return &TrafficSnapshot{readings: cp, loadedAt: loadedAt}
}

func (s *TrafficSnapshot) Len() int {
	return len(s.readings)
}

func (s *TrafficSnapshot) At(i int) TrafficReading {
	return s.readings[i]
}

func (s *TrafficSnapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Latest возвращает строки с максимальным timestamp; timestamp приводится к единому формату
func (s *TrafficSnapshot) Latest() ([]TrafficReading, error) {
	if len(s.readings) == 0 {
		return nil, nil
	}

	parsed := make([]time.Time, len(s.readings))
	var latest time.Time
	for i, r := range s.readings {
		ts, err := ParseTrafficTimestamp(r.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		parsed[i] = ts
		if i == 0 || ts.After(latest) {
			latest = ts
		}
	}

	result := make([]TrafficReading, 0)
	for i, r := range s.readings {
		if parsed[i].Equal(latest) {
			r.Timestamp = parsed[i].Format(trafficTimestampLayout)
			result = append(result, r)
		}
	}

	return result, nil
}

func ParseTrafficTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range trafficTimestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}
