package domain

import "fmt"

// Vehicle is immutable reference data describing the truck assigned to a
// delivery. Rates are per kilometer; labor is per hour.
type Vehicle struct {
	Capacity             int
	FuelConsumptionRate  float64 // liters per km
	CO2EmissionRate      float64 // kg per km
	HourlyLaborCost      float64
	FixedCostPerDelivery float64
}

// Validate checks the reference-data invariants the engine relies on.
// Callers are expected to run this once when loading vehicle records.
func (v Vehicle) Validate() error {
	if v.Capacity <= 0 {
		return fmt.Errorf("validate vehicle: capacity must be positive, got %d", v.Capacity)
	}
	if v.FuelConsumptionRate <= 0 {
		return fmt.Errorf("validate vehicle: fuel consumption rate must be positive, got %v", v.FuelConsumptionRate)
	}
	if v.CO2EmissionRate <= 0 {
		return fmt.Errorf("validate vehicle: co2 emission rate must be positive, got %v", v.CO2EmissionRate)
	}
	if v.HourlyLaborCost <= 0 {
		return fmt.Errorf("validate vehicle: hourly labor cost must be positive, got %v", v.HourlyLaborCost)
	}
	if v.FixedCostPerDelivery <= 0 {
		return fmt.Errorf("validate vehicle: fixed cost per delivery must be positive, got %v", v.FixedCostPerDelivery)
	}
	return nil
}
