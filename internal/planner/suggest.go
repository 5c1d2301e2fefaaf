package planner

import "fmt"

// VehicleTier is one entry of the fixed fleet catalog, ordered by capacity.
type VehicleTier struct {
	Name     string
	Capacity int
}

// fleetTiers mirrors the vehicle types the fleet operates, ascending by
// capacity in delivery units.
var fleetTiers = []VehicleTier{
	{Name: "small_van", Capacity: 40},
	{Name: "van", Capacity: 80},
	{Name: "truck", Capacity: 160},
	{Name: "heavy_truck", Capacity: 320},
}

// SuggestVehicles produces the advisory shown when total demand exceeds the
// assigned vehicle's capacity: the larger fleet tiers able to carry the full
// demand in one trip, or a multi-trip count when no tier can.
func SuggestVehicles(vehicleCapacity, totalDemand int) []string {
	var out []string
	for _, tier := range fleetTiers {
		if tier.Capacity > vehicleCapacity && tier.Capacity >= totalDemand {
			out = append(out, tier.Name)
		}
	}

	if len(out) == 0 {
		trips := (totalDemand + vehicleCapacity - 1) / vehicleCapacity
		out = append(out, fmt.Sprintf("%d trips with current vehicle", trips))
	}

	return out
}
