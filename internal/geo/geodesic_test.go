package geo

import (
	"errors"
	"math"
	"testing"

	"delivery-cost-engine/internal/domain"
)

var (
	vienna   = domain.Coordinate{Lat: 48.2082, Lon: 16.3738}
	salzburg = domain.Coordinate{Lat: 47.8095, Lon: 13.0550}
)

func TestDistanceViennaSalzburg(t *testing.T) {
	d, err := Distance(vienna, salzburg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Great-circle 250.82 km, road factor 1.20.
	if math.Abs(d-300.98) > 0.05 {
		t.Fatalf("distance = %.3f km, want ~300.98 km", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	ab, err := Distance(vienna, salzburg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := Distance(salzburg, vienna)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance not symmetric: a->b = %v, b->a = %v", ab, ba)
	}
}

func TestDistanceIdenticalCoordinates(t *testing.T) {
	d, err := Distance(vienna, vienna)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Fatalf("distance between identical coordinates = %v, want 0", d)
	}
}

func TestDistanceInvalidCoordinate(t *testing.T) {
	cases := []domain.Coordinate{
		{Lat: 91, Lon: 0},
		{Lat: -90.5, Lon: 0},
		{Lat: 0, Lon: 181},
		{Lat: 0, Lon: -180.01},
	}

	for _, c := range cases {
		_, err := Distance(c, vienna)
		var invalid *domain.InvalidCoordinateError
		if !errors.As(err, &invalid) {
			t.Fatalf("Distance(%+v, vienna) error = %v, want InvalidCoordinateError", c, err)
		}
		if invalid.Lat != c.Lat || invalid.Lon != c.Lon {
			t.Fatalf("error carries lat=%v lon=%v, want lat=%v lon=%v", invalid.Lat, invalid.Lon, c.Lat, c.Lon)
		}

		// Second argument is validated too.
		if _, err := Distance(vienna, c); !errors.As(err, &invalid) {
			t.Fatalf("Distance(vienna, %+v) error = %v, want InvalidCoordinateError", c, err)
		}
	}
}

func TestIsAlpineRoute(t *testing.T) {
	high := domain.Coordinate{Lat: 47.0, Lon: 11.0, Elevation: 1200}
	border := domain.Coordinate{Lat: 47.1, Lon: 11.1, Elevation: 800}
	justAbove := domain.Coordinate{Lat: 47.2, Lon: 11.2, Elevation: 800.1}
	lowland := domain.Coordinate{Lat: 48.0, Lon: 16.0}

	if !IsAlpineRoute(high, justAbove) {
		t.Fatal("both endpoints above 800m should be alpine")
	}
	if IsAlpineRoute(high, border) {
		t.Fatal("exactly 800m is not alpine (strict inequality)")
	}
	if IsAlpineRoute(high, lowland) {
		t.Fatal("missing elevation defaults to 0 and is never alpine")
	}
	if IsAlpineRoute(lowland, lowland) {
		t.Fatal("two lowland endpoints should not be alpine")
	}
}

func TestBearing(t *testing.T) {
	cases := []struct {
		name      string
		from, to  domain.Coordinate
		degrees   float64
		direction domain.CompassDirection
	}{
		{
			name: "due east on the equator",
			from: domain.Coordinate{Lat: 0, Lon: 0},
			to:   domain.Coordinate{Lat: 0, Lon: 10},
			degrees: 90, direction: domain.DirectionE,
		},
		{
			name: "north wraparound",
			from: domain.Coordinate{Lat: 48, Lon: 16},
			to:   domain.Coordinate{Lat: 50, Lon: 15.9},
			degrees: 358.16, direction: domain.DirectionN,
		},
		{
			name: "southwest",
			from: domain.Coordinate{Lat: 10, Lon: 10},
			to:   domain.Coordinate{Lat: 9, Lon: 9},
			degrees: 224.69, direction: domain.DirectionSW,
		},
		{
			name: "vienna to salzburg",
			from: vienna, to: salzburg,
			degrees: 261.06, direction: domain.DirectionW,
		},
	}

	for _, tc := range cases {
		deg, dir, err := Bearing(tc.from, tc.to)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if deg < 0 || deg >= 360 {
			t.Fatalf("%s: bearing %v outside [0, 360)", tc.name, deg)
		}
		if math.Abs(deg-tc.degrees) > 0.05 {
			t.Fatalf("%s: bearing = %.2f, want %.2f", tc.name, deg, tc.degrees)
		}
		if dir != tc.direction {
			t.Fatalf("%s: direction = %q, want %q", tc.name, dir, tc.direction)
		}
	}
}

func TestBearingInvalidCoordinate(t *testing.T) {
	bad := domain.Coordinate{Lat: 0, Lon: 200}

	var invalid *domain.InvalidCoordinateError
	if _, _, err := Bearing(bad, vienna); !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidCoordinateError", err)
	}
	if _, _, err := Bearing(vienna, bad); !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidCoordinateError", err)
	}
}
