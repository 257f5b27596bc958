package usecase

import "github.com/smartcity-dashboard/internal/domain"

const (
	verdictDevelopingArea = "Developing Area"
	verdictNoMajorIssues  = "No Major Issues"
)

// buildVerdict применяет правила по порядку; каждое правило дает не более одной строки
func buildVerdict(m domain.ProbeMetrics, congestion float64) domain.Verdict {
	pros := make([]string, 0)
	cons := make([]string, 0)

	if m.SafetyScore > 80 {
		pros = append(pros, "High Safety Rating")
	} else if m.SafetyScore < 50 {
		cons = append(cons, "Safety Concerns Detected")
	}

	switch {
	case m.AQI < 50:
		pros = append(pros, "Excellent Air Quality")
	case m.AQI > 150:
		cons = append(cons, "Poor Air Quality")
	case m.AQI > 100:
		cons = append(cons, "Moderate Pollution")
	}

	if m.WQI > 80 {
		pros = append(pros, "Clean Water Supply")
	}

	if m.NoiseIdx > 70 {
		cons = append(cons, "High Noise Levels")
	}

	if congestion > 60 {
		cons = append(cons, "Heavy Traffic Congestion")
	} else if congestion < 30 {
		pros = append(pros, "Low Traffic Zone")
	}

	if m.Hospitals > 1 {
		pros = append(pros, "Good Medical Access")
	}
	if m.Parks > 1 {
		pros = append(pros, "Green Spaces Nearby")
	}
	if m.Malls > 1 {
		pros = append(pros, "Shopping Options Available")
	}

	if len(pros) == 0 {
		pros = append(pros, verdictDevelopingArea)
	}
	if len(cons) == 0 {
		cons = append(cons, verdictNoMajorIssues)
	}

	return domain.Verdict{Pros: pros, Cons: cons}
}

// defaultVerdict - вердикт, если правила не удалось применить
func defaultVerdict() domain.Verdict {
	return domain.Verdict{
		Pros: []string{verdictDevelopingArea},
		Cons: []string{verdictNoMajorIssues},
	}
}
