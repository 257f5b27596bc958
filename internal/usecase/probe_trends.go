package usecase

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/smartcity-dashboard/internal/domain"
	"github.com/smartcity-dashboard/internal/pkg/utils"
)

const yearDays = 365

var (
	weekdayLabels = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	monthLabels   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// trendBase - опорные значения, от которых строятся ряды
type trendBase struct {
	AQI     int
	Traffic int
	Crime   float64
	WQI     int
}

// trendLabels строит подписи оси времени, заканчивающиеся сегодняшним днем
func trendLabels(days int, today time.Time) []string {
	if days == yearDays {
		labels := make([]string, len(monthLabels))
		copy(labels, monthLabels)
		return labels
	}

	if days == 1 {
		labels := make([]string, 24)
		for h := range labels {
			labels[h] = fmt.Sprintf("%02d:00", h)
		}
		return labels
	}

	labels := make([]string, days)
	for d := range labels {
		date := today.AddDate(0, 0, -(days - 1 - d))
		switch {
		case days <= 7:
			labels[d] = weekdayLabels[(int(date.Weekday())+6)%7]
		case days <= 30:
			labels[d] = date.Format("02 Jan")
		default:
			labels[d] = date.Format("Jan")
		}
	}
	return labels
}

// synthesizeTrends генерирует ряды; длина каждого ряда равна числу подписей
func synthesizeTrends(lat, lng float64, days int, base trendBase, today time.Time) domain.TrendSeries {
	hourly := days == 1
	labels := trendLabels(days, today)
	n := len(labels)

	series := domain.TrendSeries{
		Labels:   labels,
		AQI:      make([]int, n),
		Traffic:  make([]int, n),
		Humidity: make([]int, n),
		Water:    make([]int, n),
		Crime:    make([]float64, n),
	}

	for i := 0; i < n; i++ {
		seed := int(lat*1000 + lng*1000 + float64(i))

		factor := 1.0
		if !hourly && days < 30 && i%7 > 4 {
			factor = 0.8
		}
		if hourly {
			switch {
			case (i >= 8 && i <= 10) || (i >= 17 && i <= 19):
				factor = 1.4
			case i <= 5:
				factor = 0.2
			}
		}

		noise := float64(utils.FloorModInt(seed, 20) - 10)

		humidity := 60 + utils.FloorModInt(seed, 10) - 5
		if !hourly {
			humidity += 10
		}

		crimeFactor := 1.0
		if hourly {
			if i >= 22 || i <= 4 {
				crimeFactor = 1.5
			}
		} else if i%7 > 4 {
			crimeFactor = 1.2
		}
		crime := clampFloat(base.Crime/10*crimeFactor, 0, 10)

		series.AQI[i] = clampInt(int(float64(base.AQI)*factor+noise), 20, 300)
		series.Traffic[i] = clampInt(int(float64(base.Traffic)*factor+noise), 0, 100)
		series.Humidity[i] = clampInt(humidity, 40, 95)
		series.Water[i] = clampInt(base.WQI+utils.FloorModInt(seed, 5)-2, 0, 100)
		series.Crime[i] = roundTenths(crime)
	}

	return series
}

// roundTenths округляет точное двоичное значение до десятых, ничья к четному
func roundTenths(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
