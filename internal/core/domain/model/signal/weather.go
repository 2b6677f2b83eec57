package signal

// Condition is the observed weather condition at a delivery location.
type Condition string

const (
	ConditionClear Condition = "clear"
	ConditionRain  Condition = "rain"
	ConditionSnow  Condition = "snow"
	ConditionStorm Condition = "storm"
	ConditionFog   Condition = "fog"
)

// FreezingPointF is the temperature below which snow readings are treated as
// high impact regardless of their classified level.
const FreezingPointF = 32

// SensitivityElectronics marks packages that must not be exposed to rain.
const SensitivityElectronics = "electronics"

// Recommendation returns the handling advice for the condition, mirroring the
// guidance dispatched to drivers.
func (c Condition) Recommendation() string {
	switch c {
	case ConditionClear:
		return "Optimal delivery conditions"
	case ConditionRain:
		return "Use waterproof packaging, allow extra time"
	case ConditionSnow:
		return "Consider delays, use appropriate vehicles"
	case ConditionStorm:
		return "Delay non-urgent deliveries"
	case ConditionFog:
		return "Reduce speed, use GPS navigation"
	default:
		return "Monitor conditions closely"
	}
}

// WeatherReading is one observation for a delivery location. Readings are
// ephemeral: they flow through the impact analyzer and are never persisted.
type WeatherReading struct {
	Location            string
	Condition           Condition
	TemperatureF        int
	PrecipitationChance int
	WindSpeedMph        int
	VisibilityMiles     int
	ImpactLevel         Severity
	Recommendation      string
}

// IsHighImpact reports whether the reading endangers a delivery, given the
// package sensitivity of the affected shipments:
//   - the classified impact level is high, or
//   - it is raining and the packages are electronics, or
//   - it is snowing below freezing.
func (w WeatherReading) IsHighImpact(packageSensitivity string) bool {
	if w.ImpactLevel == SeverityHigh {
		return true
	}
	if w.Condition == ConditionRain && packageSensitivity == SensitivityElectronics {
		return true
	}
	if w.Condition == ConditionSnow && w.TemperatureF < FreezingPointF {
		return true
	}
	return false
}
