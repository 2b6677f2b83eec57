package ports

import (
	"context"

	"logistics/internal/core/domain/model/signal"
)

// SignalSource provides external weather and traffic readings. Implementations
// wrap third-party feeds and are expected to be slow and fallible; callers
// bound every fetch with a context deadline and treat an error as a degraded
// signal rather than a hard failure.
type SignalSource interface {
	// WeatherConditions fetches the current weather reading for each
	// location. The result preserves the order of the input slice.
	WeatherConditions(ctx context.Context, locations []string) ([]signal.WeatherReading, error)

	// TrafficConditions fetches the current traffic reading for each route
	// waypoint. The result preserves the order of the input slice.
	TrafficConditions(ctx context.Context, waypoints []string) ([]signal.TrafficReading, error)
}
