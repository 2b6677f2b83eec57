package signal

// RiskLevel is the overall risk classification of a weather verdict.
type RiskLevel string

const (
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// WeatherVerdict is the output of the weather impact pipeline. It is
// deterministic over its input batch and carries everything the action
// dispatcher needs to react autonomously.
type WeatherVerdict struct {
	// HasHighImpact is true when at least one reading endangers a delivery.
	HasHighImpact bool

	// AffectedLocations lists the locations of high-impact readings, in batch order.
	AffectedLocations []string

	// OverallRisk is high when high-impact readings exceed half the batch,
	// medium otherwise.
	OverallRisk RiskLevel

	// Recommendations is the fixed action set issued when any reading is
	// high impact; empty otherwise.
	Recommendations []string

	// EstimatedDelayHours grows with the number of high-impact locations.
	EstimatedDelayHours int

	// Degraded marks a verdict produced without signal data because the
	// weather source was unavailable. Degraded verdicts never require action.
	Degraded bool
}

// RequiresAction reports whether the dispatcher should mutate affected orders.
func (v WeatherVerdict) RequiresAction() bool {
	return v.HasHighImpact && !v.Degraded
}

// WaypointDelay is the per-waypoint delay breakdown inside a traffic verdict.
type WaypointDelay struct {
	Location     string
	DelayMinutes int
	Severity     Severity
}

// TrafficVerdict is the output of the traffic impact pipeline.
type TrafficVerdict struct {
	// RequiresOptimization is true when the summed delay exceeds the
	// threshold or more than one waypoint is highly congested.
	RequiresOptimization bool

	// TotalDelayMinutes is the sum of per-waypoint estimated delays.
	TotalDelayMinutes int

	// Delays itemizes every waypoint's delay and congestion severity.
	Delays []WaypointDelay

	// OptimizedRoute is the waypoint sequence re-ordered by ascending
	// congestion severity; nil when no optimization is required.
	OptimizedRoute []string

	// Recommendations is the advisory set for drivers and planners.
	Recommendations []string

	// Degraded marks a verdict produced without signal data because the
	// traffic source was unavailable. Degraded verdicts never require action.
	Degraded bool
}

// RequiresAction reports whether the dispatcher should react to the verdict.
func (v TrafficVerdict) RequiresAction() bool {
	return v.RequiresOptimization && !v.Degraded
}
