package signal

import "time"

// TrafficReading is one observation for a route waypoint. Readings are
// ephemeral inputs to the traffic impact analyzer.
type TrafficReading struct {
	Waypoint                   string
	CongestionLevel            Severity
	AverageSpeedMph            int
	IncidentCount              int
	EstimatedDelayMinutes      int
	AlternativeRoutesAvailable bool
	BestDepartureTime          time.Time
}
