// Package geo computes road-approximated geodesic distances, alpine
// classification, and headings from raw coordinates. It is the lowest layer
// of the costing engine: pure math, no I/O, no state between calls.
package geo

import (
	"math"

	"delivery-cost-engine/internal/domain"
)

const (
	earthRadiusKm = 6371.0

	// Fixed multiplier converting great-circle distance to an approximate
	// road distance.
	roadFactor = 1.20

	// Both endpoints must sit strictly above this elevation (meters) for a
	// leg to count as alpine.
	alpineElevationMeters = 800.0
)

// compassSectors in clockwise order starting at north; sector i covers
// headings within 22.5 degrees of i*45.
var compassSectors = [8]domain.CompassDirection{
	domain.DirectionN,
	domain.DirectionNE,
	domain.DirectionE,
	domain.DirectionSE,
	domain.DirectionS,
	domain.DirectionSW,
	domain.DirectionW,
	domain.DirectionNW,
}

// ValidateCoordinate checks that latitude and longitude are inside the valid
// geographic range. Every distance or bearing computation validates its
// inputs through this before doing any math.
func ValidateCoordinate(c domain.Coordinate) error {
	if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
		return &domain.InvalidCoordinateError{Lat: c.Lat, Lon: c.Lon}
	}
	return nil
}

// Distance returns the approximate road distance in kilometers between two
// coordinates: great-circle (haversine) distance scaled by the road factor.
// Symmetric in its arguments; zero for identical coordinates.
func Distance(a, b domain.Coordinate) (float64, error) {
	if err := ValidateCoordinate(a); err != nil {
		return 0, err
	}
	if err := ValidateCoordinate(b); err != nil {
		return 0, err
	}

	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	deltaLat := toRadians(b.Lat - a.Lat)
	deltaLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c * roadFactor, nil
}

// IsAlpineRoute reports whether a leg between the two coordinates qualifies
// for the alpine fuel penalty: both endpoints strictly above 800 m. Unknown
// elevations are zero and therefore never alpine.
func IsAlpineRoute(a, b domain.Coordinate) bool {
	return a.Elevation > alpineElevationMeters && b.Elevation > alpineElevationMeters
}

// Bearing returns the initial forward azimuth from a to b in degrees [0, 360)
// together with its 8-way compass direction.
func Bearing(a, b domain.Coordinate) (float64, domain.CompassDirection, error) {
	if err := ValidateCoordinate(a); err != nil {
		return 0, "", err
	}
	if err := ValidateCoordinate(b); err != nil {
		return 0, "", err
	}

	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	deltaLon := toRadians(b.Lon - a.Lon)

	y := math.Sin(deltaLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLon)

	degrees := math.Mod(toDegrees(math.Atan2(y, x))+360, 360)
	sector := int(math.Round(degrees/45)) % 8

	return degrees, compassSectors[sector], nil
}

func toRadians(degrees float64) float64 { return degrees * math.Pi / 180 }

func toDegrees(radians float64) float64 { return radians * 180 / math.Pi }
