package domain

import "fmt"

// InvalidCoordinateError is returned when a latitude or longitude is outside
// the valid geographic range. It is raised before any distance or cost work.
type InvalidCoordinateError struct {
	Lat float64
	Lon float64
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf(
		"invalid coordinate: lat=%v lon=%v (latitude must be in [-90, 90], longitude in [-180, 180])",
		e.Lat, e.Lon,
	)
}

// CapacityExceededError is returned when the demand of a single delivery leg
// exceeds the vehicle's capacity. Capacity is checked before any distance work.
type CapacityExceededError struct {
	Demand   int
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded: demand %d exceeds vehicle capacity %d", e.Demand, e.Capacity)
}

// UnknownModeError is returned when an optimization mode is outside the
// recognized set (fastest, cheapest, greenest, balanced).
type UnknownModeError struct {
	Mode string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown optimization mode %q", e.Mode)
}
