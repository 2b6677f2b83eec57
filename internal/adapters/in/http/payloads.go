package http

import (
	"strconv"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/signal"
)

// envelope is the uniform response wrapper. Success responses carry data,
// error responses carry the error string.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type listEnvelope struct {
	Success    bool                  `json:"success"`
	Data       []orderSummaryPayload `json:"data"`
	Pagination paginationPayload     `json:"pagination"`
}

type paginationPayload struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type timelineEventPayload struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location"`
}

type orderPayload struct {
	OrderID             string                 `json:"orderId"`
	TrackingID          string                 `json:"trackingId"`
	CustomerID          string                 `json:"customerId"`
	CustomerName        string                 `json:"customerName"`
	PickupAddress       string                 `json:"pickupAddress"`
	DeliveryAddress     string                 `json:"deliveryAddress"`
	PackageType         string                 `json:"packageType"`
	Priority            string                 `json:"priority"`
	SpecialInstructions string                 `json:"specialInstructions,omitempty"`
	Status              string                 `json:"status"`
	DelayReason         string                 `json:"delayReason,omitempty"`
	Timeline            []timelineEventPayload `json:"timeline"`
	CreatedAt           time.Time              `json:"createdAt"`
	EstimatedDelivery   time.Time              `json:"estimatedDelivery"`
	UpdatedAt           time.Time              `json:"updatedAt"`
}

type orderSummaryPayload struct {
	OrderID         string    `json:"orderId"`
	CustomerName    string    `json:"customerName"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Priority        string    `json:"priority"`
}

type statusUpdatePayload struct {
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	Location  string    `json:"location,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type coordinatesPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type currentLocationPayload struct {
	Address     string              `json:"address"`
	Coordinates *coordinatesPayload `json:"coordinates,omitempty"`
}

type trackingPayload struct {
	TrackingID        string                 `json:"trackingId"`
	OrderID           string                 `json:"orderId"`
	Status            string                 `json:"status"`
	CurrentLocation   currentLocationPayload `json:"currentLocation"`
	EstimatedDelivery time.Time              `json:"estimatedDelivery"`
	Timeline          []timelineEventPayload `json:"timeline"`
}

type weatherReadingPayload struct {
	Location            string `json:"location"`
	Condition           string `json:"condition"`
	Temperature         int    `json:"temperature"`
	PrecipitationChance int    `json:"precipitation_chance"`
	WindSpeed           int    `json:"wind_speed"`
	Visibility          int    `json:"visibility"`
	ImpactLevel         string `json:"impact_level"`
	Recommendation      string `json:"recommendation"`
}

type weatherVerdictPayload struct {
	HasHighImpact       bool     `json:"hasHighImpact"`
	AffectedDeliveries  []string `json:"affectedDeliveries"`
	OverallRisk         string   `json:"overallRisk"`
	Recommendations     []string `json:"recommendations"`
	EstimatedDelayHours int      `json:"estimated_delay_hours"`
	Degraded            bool     `json:"degraded,omitempty"`
}

type weatherAnalysisPayload struct {
	WeatherConditions      []weatherReadingPayload `json:"weather_conditions"`
	ImpactAnalysis         weatherVerdictPayload   `json:"impact_analysis"`
	RecommendedActions     []string                `json:"recommended_actions"`
	AutonomousActionsTaken []string                `json:"autonomous_actions_taken"`
	UpdatedOrders          []string                `json:"updated_orders,omitempty"`
	NotifiedOrders         []string                `json:"notified_orders,omitempty"`
}

type trafficReadingPayload struct {
	Waypoint                   string    `json:"waypoint"`
	CongestionLevel            string    `json:"congestion_level"`
	AverageSpeed               int       `json:"average_speed"`
	IncidentCount              int       `json:"incident_count"`
	EstimatedDelayMinutes      int       `json:"estimated_delay_minutes"`
	AlternativeRoutesAvailable bool      `json:"alternative_routes_available"`
	BestDepartureTime          time.Time `json:"best_departure_time"`
}

type waypointDelayPayload struct {
	Location     string `json:"location"`
	DelayMinutes int    `json:"delayMinutes"`
	Severity     string `json:"severity"`
}

type trafficVerdictPayload struct {
	RequiresOptimization bool     `json:"requiresOptimization"`
	TotalDelayMinutes    int      `json:"totalDelayMinutes"`
	Recommendations      []string `json:"recommendations"`
	Degraded             bool     `json:"degraded,omitempty"`
}

type trafficAnalysisPayload struct {
	TrafficConditions      []trafficReadingPayload `json:"traffic_conditions"`
	RouteAnalysis          trafficVerdictPayload   `json:"route_analysis"`
	OptimizedRoute         []string                `json:"optimized_route,omitempty"`
	EstimatedDelays        []waypointDelayPayload  `json:"estimated_delays"`
	AutonomousActionsTaken []string                `json:"autonomous_actions_taken"`
}

type channelFailurePayload struct {
	Channel string `json:"channel"`
	Error   string `json:"error"`
}

type notificationResultPayload struct {
	OrderID          string                  `json:"orderId"`
	NotificationType string                  `json:"notificationType"`
	Sent             []string                `json:"sent"`
	Failed           []channelFailurePayload `json:"failed"`
}

func toOrderPayload(o queries.OrderResponse) orderPayload {
	return orderPayload{
		OrderID:             o.ID,
		TrackingID:          o.TrackingID,
		CustomerID:          o.CustomerID,
		CustomerName:        o.CustomerName,
		PickupAddress:       o.PickupAddress,
		DeliveryAddress:     o.DeliveryAddress,
		PackageType:         o.PackageType,
		Priority:            o.Priority,
		SpecialInstructions: o.SpecialInstructions,
		Status:              o.Status,
		DelayReason:         o.DelayReason,
		Timeline:            toTimelinePayloads(o.Timeline),
		CreatedAt:           o.CreatedAt,
		EstimatedDelivery:   o.EstimatedDelivery,
		UpdatedAt:           o.UpdatedAt,
	}
}

func toTrackingPayload(t queries.GetTrackingQueryResponse) trackingPayload {
	location := currentLocationPayload{Address: t.CurrentLocation}
	if t.Coordinates != nil {
		location.Coordinates = &coordinatesPayload{Lat: t.Coordinates.Lat, Lng: t.Coordinates.Lng}
	}

	return trackingPayload{
		TrackingID:        t.TrackingID,
		OrderID:           t.OrderID,
		Status:            t.Status,
		CurrentLocation:   location,
		EstimatedDelivery: t.EstimatedDelivery,
		Timeline:          toTimelinePayloads(t.Timeline),
	}
}

func toTimelinePayloads(events []queries.TimelineEventResponse) []timelineEventPayload {
	payloads := make([]timelineEventPayload, 0, len(events))
	for _, e := range events {
		payloads = append(payloads, timelineEventPayload{
			Status:    e.Status,
			Timestamp: e.Timestamp,
			Location:  e.Location,
		})
	}
	return payloads
}

func toWeatherReadingPayloads(readings []signal.WeatherReading) []weatherReadingPayload {
	payloads := make([]weatherReadingPayload, 0, len(readings))
	for _, r := range readings {
		payloads = append(payloads, weatherReadingPayload{
			Location:            r.Location,
			Condition:           string(r.Condition),
			Temperature:         r.TemperatureF,
			PrecipitationChance: r.PrecipitationChance,
			WindSpeed:           r.WindSpeedMph,
			Visibility:          r.VisibilityMiles,
			ImpactLevel:         r.ImpactLevel.String(),
			Recommendation:      r.Recommendation,
		})
	}
	return payloads
}

func toWeatherVerdictPayload(v signal.WeatherVerdict) weatherVerdictPayload {
	return weatherVerdictPayload{
		HasHighImpact:       v.HasHighImpact,
		AffectedDeliveries:  v.AffectedLocations,
		OverallRisk:         string(v.OverallRisk),
		Recommendations:     v.Recommendations,
		EstimatedDelayHours: v.EstimatedDelayHours,
		Degraded:            v.Degraded,
	}
}

func toTrafficReadingPayloads(readings []signal.TrafficReading) []trafficReadingPayload {
	payloads := make([]trafficReadingPayload, 0, len(readings))
	for _, r := range readings {
		payloads = append(payloads, trafficReadingPayload{
			Waypoint:                   r.Waypoint,
			CongestionLevel:            r.CongestionLevel.String(),
			AverageSpeed:               r.AverageSpeedMph,
			IncidentCount:              r.IncidentCount,
			EstimatedDelayMinutes:      r.EstimatedDelayMinutes,
			AlternativeRoutesAvailable: r.AlternativeRoutesAvailable,
			BestDepartureTime:          r.BestDepartureTime,
		})
	}
	return payloads
}

func toTrafficVerdictPayload(v signal.TrafficVerdict) trafficVerdictPayload {
	return trafficVerdictPayload{
		RequiresOptimization: v.RequiresOptimization,
		TotalDelayMinutes:    v.TotalDelayMinutes,
		Recommendations:      v.Recommendations,
		Degraded:             v.Degraded,
	}
}

func toWaypointDelayPayloads(delays []signal.WaypointDelay) []waypointDelayPayload {
	payloads := make([]waypointDelayPayload, 0, len(delays))
	for _, d := range delays {
		payloads = append(payloads, waypointDelayPayload{
			Location:     d.Location,
			DelayMinutes: d.DelayMinutes,
			Severity:     d.Severity.String(),
		})
	}
	return payloads
}

func orderIDStrings(ids []kernel.OrderID) []string {
	if len(ids) == 0 {
		return nil
	}
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}
	return values
}

// intParam parses a positive integer query parameter, falling back to a
// default when absent.
func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
