package domain

import "testing"

func TestVehicleValidate(t *testing.T) {
	valid := Vehicle{
		Capacity:             80,
		FuelConsumptionRate:  0.12,
		CO2EmissionRate:      0.28,
		HourlyLaborCost:      25,
		FixedCostPerDelivery: 15,
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error for valid vehicle: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Vehicle)
	}{
		{"zero capacity", func(v *Vehicle) { v.Capacity = 0 }},
		{"negative capacity", func(v *Vehicle) { v.Capacity = -1 }},
		{"zero fuel rate", func(v *Vehicle) { v.FuelConsumptionRate = 0 }},
		{"zero co2 rate", func(v *Vehicle) { v.CO2EmissionRate = 0 }},
		{"zero labor cost", func(v *Vehicle) { v.HourlyLaborCost = 0 }},
		{"zero fixed cost", func(v *Vehicle) { v.FixedCostPerDelivery = 0 }},
	}

	for _, tc := range cases {
		v := valid
		tc.mutate(&v)
		if err := v.Validate(); err == nil {
			t.Fatalf("%s: expected validation error, got nil", tc.name)
		}
	}
}
