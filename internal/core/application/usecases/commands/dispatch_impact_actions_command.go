package commands

import (
	"errors"

	"logistics/internal/core/domain/model/signal"
	"logistics/internal/pkg/guard"
)

var ErrDispatchImpactActionsCommandIsNotConstructed = errors.New(
	"DispatchImpactActionsCommand must be created via a NewDispatch*ImpactCommand constructor",
)

// DispatchImpactActionsCommand carries one impact verdict, weather or traffic,
// into the autonomous action dispatcher. Exactly one verdict is set.
type DispatchImpactActionsCommand struct {
	weather *signal.WeatherVerdict
	traffic *signal.TrafficVerdict

	guard guard.ConstructorGuard
}

// NewDispatchWeatherImpactCommand creates a command from a weather verdict.
func NewDispatchWeatherImpactCommand(verdict signal.WeatherVerdict) (DispatchImpactActionsCommand, error) {
	return DispatchImpactActionsCommand{
		weather: &verdict,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewDispatchTrafficImpactCommand creates a command from a traffic verdict.
func NewDispatchTrafficImpactCommand(verdict signal.TrafficVerdict) (DispatchImpactActionsCommand, error) {
	return DispatchImpactActionsCommand{
		traffic: &verdict,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
// Returns ErrDispatchImpactActionsCommandIsNotConstructed if validation fails.
func (c DispatchImpactActionsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchImpactActionsCommandIsNotConstructed)
}

// WeatherVerdict returns the weather verdict, or nil for traffic commands.
func (c DispatchImpactActionsCommand) WeatherVerdict() *signal.WeatherVerdict {
	return c.weather
}

// TrafficVerdict returns the traffic verdict, or nil for weather commands.
func (c DispatchImpactActionsCommand) TrafficVerdict() *signal.TrafficVerdict {
	return c.traffic
}
