// Package costing turns a distance/duration/vehicle triple into an itemized
// monetary and emissions breakdown. All pricing constants are fixed at
// compile time; callers cannot vary them per request.
package costing

import (
	"fmt"

	"delivery-cost-engine/internal/domain"
	"delivery-cost-engine/internal/geo"
)

const (
	// FuelPricePerLiter is the diesel price in EUR applied to every leg.
	FuelPricePerLiter = 1.45

	// CarbonPricePerTon is the offset price in EUR per metric ton of CO2.
	CarbonPricePerTon = 25.0

	// AverageSpeedKmh converts road distance into travel duration.
	AverageSpeedKmh = 60.0

	// AlpineFuelFactor inflates fuel consumption on alpine legs.
	AlpineFuelFactor = 1.15

	// OvertimeThresholdHours is the leg duration beyond which labor accrues
	// at the overtime rate.
	OvertimeThresholdHours = 8.0

	// OvertimeRateFactor multiplies the hourly rate for overtime hours.
	OvertimeRateFactor = 1.5
)

// Request describes a single delivery leg to be costed.
type Request struct {
	Origin      domain.Coordinate
	Destination domain.Coordinate
	Vehicle     domain.Vehicle
	Demand      int
}

// FuelCost prices the fuel burned over distanceKm, with the alpine penalty
// applied to consumption when the leg is alpine.
func FuelCost(v domain.Vehicle, distanceKm float64, alpine bool) float64 {
	consumption := v.FuelConsumptionRate * distanceKm
	if alpine {
		consumption *= AlpineFuelFactor
	}
	return consumption * FuelPricePerLiter
}

// LaborCost prices driver time for a leg. Hours beyond the overtime
// threshold accrue at the overtime rate.
func LaborCost(v domain.Vehicle, durationHours float64) float64 {
	if durationHours <= OvertimeThresholdHours {
		return durationHours * v.HourlyLaborCost
	}
	overtime := durationHours - OvertimeThresholdHours
	return OvertimeThresholdHours*v.HourlyLaborCost + overtime*v.HourlyLaborCost*OvertimeRateFactor
}

// CarbonCost prices the offset for the CO2 emitted over distanceKm.
func CarbonCost(v domain.Vehicle, distanceKm float64) float64 {
	return v.CO2EmissionRate * distanceKm / 1000 * CarbonPricePerTon
}

// ComputeCost produces the full itemized breakdown for one delivery leg.
//
// The capacity check runs before any distance work: a leg whose demand does
// not fit the vehicle fails with CapacityExceededError and nothing is
// computed. There is no partial result.
func ComputeCost(req Request) (domain.CostBreakdown, error) {
	if req.Demand > req.Vehicle.Capacity {
		return domain.CostBreakdown{}, &domain.CapacityExceededError{
			Demand:   req.Demand,
			Capacity: req.Vehicle.Capacity,
		}
	}

	distance, err := geo.Distance(req.Origin, req.Destination)
	if err != nil {
		return domain.CostBreakdown{}, fmt.Errorf("compute cost: %w", err)
	}

	alpine := geo.IsAlpineRoute(req.Origin, req.Destination)
	duration := distance / AverageSpeedKmh

	fuelCost := FuelCost(req.Vehicle, distance, alpine)
	laborCost := LaborCost(req.Vehicle, duration)
	vehicleCost := req.Vehicle.FixedCostPerDelivery
	co2 := req.Vehicle.CO2EmissionRate * distance
	carbonCost := CarbonCost(req.Vehicle, distance)

	return domain.CostBreakdown{
		FuelCost:     fuelCost,
		LaborCost:    laborCost,
		VehicleCost:  vehicleCost,
		CarbonCost:   carbonCost,
		TotalCost:    fuelCost + laborCost + vehicleCost + carbonCost,
		Distance:     distance,
		Duration:     duration,
		CO2Emissions: co2,
		IsAlpine:     alpine,
		HasOvertime:  duration > OvertimeThresholdHours,
	}, nil
}
