// Package signals provides a simulated environmental signal source. It stands
// in for real weather and traffic providers (weather.gov, Google Maps) during
// development and demonstrations, producing readings in the same shape and
// value ranges the real integrations would.
package signals

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/signal"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v6"
)

var _ ports.SignalSource = &SimulatedSignalSource{}

// conditions cycle deterministically over the requested locations so a batch
// of readings always covers a spread of weather rather than clustering on one
// condition.
var conditions = []signal.Condition{
	signal.ConditionClear,
	signal.ConditionRain,
	signal.ConditionSnow,
	signal.ConditionStorm,
	signal.ConditionFog,
}

var severities = []signal.Severity{
	signal.SeverityLow,
	signal.SeverityMedium,
	signal.SeverityHigh,
}

// SimulatedSignalSource fabricates weather and traffic readings.
type SimulatedSignalSource struct {
	faker *gofakeit.Faker
	clock func() time.Time
}

// NewSimulatedSignalSource creates a signal source with randomized readings.
func NewSimulatedSignalSource() *SimulatedSignalSource {
	return &SimulatedSignalSource{
		faker: gofakeit.New(0),
		clock: time.Now,
	}
}

// NewSeededSignalSource creates a signal source whose readings are
// reproducible for the given seed.
func NewSeededSignalSource(seed int64) *SimulatedSignalSource {
	return &SimulatedSignalSource{
		faker: gofakeit.New(seed),
		clock: time.Now,
	}
}

// WeatherConditions returns one reading per requested location, in request
// order. Temperatures span 20-60°F, wind up to 20 mph, visibility 1-10 miles.
func (s *SimulatedSignalSource) WeatherConditions(
	ctx context.Context,
	locations []string,
) ([]signal.WeatherReading, error) {
	if len(locations) == 0 {
		return nil, errs.NewValueIsRequiredError("locations")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.NewCollaboratorUnavailableErrorWithCause("weather api", err)
	}

	readings := make([]signal.WeatherReading, 0, len(locations))
	for i, location := range locations {
		condition := conditions[i%len(conditions)]
		readings = append(readings, signal.WeatherReading{
			Location:            location,
			Condition:           condition,
			TemperatureF:        s.faker.Number(20, 60),
			PrecipitationChance: s.faker.Number(0, 99),
			WindSpeedMph:        s.faker.Number(0, 19),
			VisibilityMiles:     s.faker.Number(1, 10),
			ImpactLevel:         severities[s.faker.Number(0, len(severities)-1)],
			Recommendation:      condition.Recommendation(),
		})
	}
	return readings, nil
}

// TrafficConditions returns one reading per requested waypoint, in request
// order. Average speeds span 15-55 mph, delays up to 44 minutes; departure
// times stagger from 09:00 in two-hour steps.
func (s *SimulatedSignalSource) TrafficConditions(
	ctx context.Context,
	waypoints []string,
) ([]signal.TrafficReading, error) {
	if len(waypoints) == 0 {
		return nil, errs.NewValueIsRequiredError("waypoints")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.NewCollaboratorUnavailableErrorWithCause("traffic api", err)
	}

	now := s.clock()
	readings := make([]signal.TrafficReading, 0, len(waypoints))
	for i, waypoint := range waypoints {
		readings = append(readings, signal.TrafficReading{
			Waypoint:                   waypoint,
			CongestionLevel:            severities[s.faker.Number(0, len(severities)-1)],
			AverageSpeedMph:            s.faker.Number(15, 55),
			IncidentCount:              s.faker.Number(0, 2),
			EstimatedDelayMinutes:      s.faker.Number(0, 44),
			AlternativeRoutesAvailable: s.faker.Bool(),
			BestDepartureTime:          staggeredDeparture(now, i),
		})
	}
	return readings, nil
}

// staggeredDeparture spreads suggested departure slots across the day so that
// consecutive waypoints never compete for the same window.
func staggeredDeparture(now time.Time, index int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(),
		9+index*2, 0, 0, 0, now.Location())
}
