package planner

import (
	"reflect"
	"testing"
)

func TestSuggestVehiclesLargerTiers(t *testing.T) {
	// van-sized vehicle, demand fits a truck or heavy_truck in one trip.
	got := SuggestVehicles(80, 100)
	want := []string{"truck", "heavy_truck"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SuggestVehicles(80, 100) = %v, want %v", got, want)
	}
}

func TestSuggestVehiclesSkipsInsufficientTiers(t *testing.T) {
	// Demand 300 does not fit a truck (160); only heavy_truck qualifies.
	got := SuggestVehicles(80, 300)
	want := []string{"heavy_truck"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SuggestVehicles(80, 300) = %v, want %v", got, want)
	}
}

func TestSuggestVehiclesMultiTrip(t *testing.T) {
	// Largest tier already assigned: advise trip count instead.
	got := SuggestVehicles(320, 800)
	want := []string{"3 trips with current vehicle"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SuggestVehicles(320, 800) = %v, want %v", got, want)
	}

	// No tier can carry the demand in one trip either.
	got = SuggestVehicles(40, 500)
	want = []string{"13 trips with current vehicle"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SuggestVehicles(40, 500) = %v, want %v", got, want)
	}
}
