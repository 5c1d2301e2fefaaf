package domain

// CostBreakdown is the itemized result of costing a single delivery leg.
// Distance is road kilometers, Duration is hours, CO2Emissions is kilograms.
// TotalCost always equals the sum of the four cost items.
type CostBreakdown struct {
	FuelCost     float64
	LaborCost    float64
	VehicleCost  float64
	CarbonCost   float64
	TotalCost    float64
	Distance     float64
	Duration     float64
	CO2Emissions float64
	IsAlpine     bool
	HasOvertime  bool
}
