package kernel

import (
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation or
// NewLocationWithCoordinates to ensure validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or NewLocationWithCoordinates constructors")

// Coordinates is a geographic point attached to a location when the upstream
// source provides one. Latitude and longitude are in decimal degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Location represents a named place in the delivery network: a pickup address,
// a delivery address, a route waypoint or the current position of a package.
// Location is an immutable value object; the zero value is invalid and fails
// validation; use constructors to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation("Distribution Center - Manhattan")
//	if err != nil {
//	    // Handle validation error
//	}
type Location struct { //nolint:recvcheck //using for validation
	address     string
	coordinates *Coordinates
	guard       guard.ConstructorGuard
}

// NewLocation creates a Location from a street address or place name.
// The address must be non-empty.
func NewLocation(address string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := loc.setAddress(address); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// NewLocationWithCoordinates creates a Location carrying a geographic point.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewLocationWithCoordinates(address string, lat float64, lng float64) (Location, error) {
	loc, err := NewLocation(address)
	if err != nil {
		return Location{}, err
	}

	if lat < -90 || lat > 90 {
		return Location{}, errs.NewValueIsOutOfRangeError("latitude", lat, -90, 90)
	}
	if lng < -180 || lng > 180 {
		return Location{}, errs.NewValueIsOutOfRangeError("longitude", lng, -180, 180)
	}

	loc.coordinates = &Coordinates{Lat: lat, Lng: lng}
	return loc, nil
}

// Address returns the street address or place name.
func (l Location) Address() string {
	return l.address
}

// Coordinates returns the geographic point and whether one is attached.
func (l Location) Coordinates() (Coordinates, bool) {
	if l.coordinates == nil {
		return Coordinates{}, false
	}
	return *l.coordinates, true
}

// IsEqual compares two locations by address.
func (l Location) IsEqual(other Location) bool {
	return l.address == other.address
}

// String returns the address for display and logging.
func (l Location) String() string {
	return l.address
}

// Validate checks that the Location was created through a constructor.
// Returns ErrLocationIsNotConstructed for the zero value.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	l.address = address
	return nil
}
