package services

import (
	"logistics/internal/core/domain/model/signal"
)

// weatherRecommendations is the fixed action set issued whenever any reading
// in a batch is high impact.
var weatherRecommendations = []string{
	"Reschedule non-urgent deliveries",
	"Use weather-appropriate packaging",
	"Notify customers of potential delays",
	"Deploy vehicles with appropriate equipment",
}

// delayHoursPerAffectedLocation scales the estimated delay with the number of
// high-impact locations.
const delayHoursPerAffectedLocation = 2

// WeatherAnalyzer derives an impact verdict from a batch of weather readings.
// It is a pure function of its inputs: the stochastic generation of readings
// belongs to the signal source, never to the analyzer.
//
// A reading is high impact when its classified level is high, when it rains
// on electronics, or when it snows below freezing. The overall risk is high
// only when high-impact readings exceed half the batch.
type WeatherAnalyzer struct{}

// NewWeatherAnalyzer creates a WeatherAnalyzer.
func NewWeatherAnalyzer() WeatherAnalyzer {
	return WeatherAnalyzer{}
}

// Analyze produces the weather verdict for a batch of readings given the
// package sensitivity of the affected shipments.
func (WeatherAnalyzer) Analyze(readings []signal.WeatherReading, packageSensitivity string) signal.WeatherVerdict {
	affected := make([]string, 0, len(readings))
	for _, r := range readings {
		if r.IsHighImpact(packageSensitivity) {
			affected = append(affected, r.Location)
		}
	}

	risk := signal.RiskMedium
	if 2*len(affected) > len(readings) {
		risk = signal.RiskHigh
	}

	verdict := signal.WeatherVerdict{
		HasHighImpact:       len(affected) > 0,
		AffectedLocations:   affected,
		OverallRisk:         risk,
		EstimatedDelayHours: delayHoursPerAffectedLocation * len(affected),
	}

	if verdict.HasHighImpact {
		verdict.Recommendations = append([]string(nil), weatherRecommendations...)
	}

	return verdict
}

// Degraded produces the verdict for a cycle where the weather source was
// unavailable. It carries no impact data and never requires action.
func (WeatherAnalyzer) Degraded() signal.WeatherVerdict {
	return signal.WeatherVerdict{
		OverallRisk: signal.RiskMedium,
		Degraded:    true,
	}
}
