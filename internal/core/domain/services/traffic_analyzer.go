package services

import (
	"sort"

	"logistics/internal/core/domain/model/signal"
)

// DelayThresholdMinutes is the summed delay beyond which a route requires
// optimization.
const DelayThresholdMinutes = 30

// maxHighCongestionWaypoints is the number of highly congested waypoints a
// route tolerates before requiring optimization.
const maxHighCongestionWaypoints = 1

// trafficRecommendations is the advisory set attached to every traffic verdict.
var trafficRecommendations = []string{
	"Consider alternative routes",
	"Adjust departure times",
	"Group nearby deliveries",
	"Use real-time navigation updates",
}

// TrafficAnalyzer derives a route verdict from a batch of traffic readings.
// Like WeatherAnalyzer it is deterministic: same batch, same verdict.
//
// A route requires optimization when the summed estimated delay exceeds
// DelayThresholdMinutes or more than one waypoint is highly congested. The
// optimized route visits waypoints in ascending congestion order; the sort is
// stable, so waypoints of equal severity keep their original relative order.
type TrafficAnalyzer struct{}

// NewTrafficAnalyzer creates a TrafficAnalyzer.
func NewTrafficAnalyzer() TrafficAnalyzer {
	return TrafficAnalyzer{}
}

// Analyze produces the traffic verdict for a batch of waypoint readings.
func (TrafficAnalyzer) Analyze(readings []signal.TrafficReading) signal.TrafficVerdict {
	total := 0
	highCongestion := 0
	delays := make([]signal.WaypointDelay, 0, len(readings))

	for _, r := range readings {
		total += r.EstimatedDelayMinutes
		if r.CongestionLevel == signal.SeverityHigh {
			highCongestion++
		}
		delays = append(delays, signal.WaypointDelay{
			Location:     r.Waypoint,
			DelayMinutes: r.EstimatedDelayMinutes,
			Severity:     r.CongestionLevel,
		})
	}

	verdict := signal.TrafficVerdict{
		RequiresOptimization: total > DelayThresholdMinutes || highCongestion > maxHighCongestionWaypoints,
		TotalDelayMinutes:    total,
		Delays:               delays,
		Recommendations:      append([]string(nil), trafficRecommendations...),
	}

	if verdict.RequiresOptimization {
		verdict.OptimizedRoute = optimizeRoute(readings)
	}

	return verdict
}

// Degraded produces the verdict for a cycle where the traffic source was
// unavailable. It carries no route data and never requires action.
func (TrafficAnalyzer) Degraded() signal.TrafficVerdict {
	return signal.TrafficVerdict{Degraded: true}
}

// optimizeRoute re-orders waypoints by ascending congestion severity,
// preserving original order within equal severities.
func optimizeRoute(readings []signal.TrafficReading) []string {
	ordered := make([]signal.TrafficReading, len(readings))
	copy(ordered, readings)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CongestionLevel.Rank() < ordered[j].CongestionLevel.Rank()
	})

	route := make([]string, 0, len(ordered))
	for _, r := range ordered {
		route = append(route, r.Waypoint)
	}
	return route
}
