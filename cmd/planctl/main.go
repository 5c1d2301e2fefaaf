package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"delivery-cost-engine/internal/config"
	"delivery-cost-engine/internal/costing"
	"delivery-cost-engine/internal/domain"
	"delivery-cost-engine/internal/planner"
	"delivery-cost-engine/internal/platform/obs"

	"github.com/joho/godotenv"
)

// planctl is a sample consumer of the costing engine: it loads a request
// from a JSON file, invokes the in-process engine, and prints the result as
// JSON on stdout. Validation and serialization live here, on the caller's
// side of the engine boundary.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if len(os.Args) < 2 {
		log.Fatal("usage: planctl <plan|estimate> [request.json]")
	}

	command := os.Args[1]
	path := config.Get("REQUEST_PATH", "data/request.json")
	if len(os.Args) > 2 {
		path = os.Args[2]
	}

	switch command {
	case "plan":
		if err := runPlan(path); err != nil {
			log.Fatal(err)
		}
	case "estimate":
		if err := runEstimate(path); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown command %q (expected plan or estimate)", command)
	}
}

type coordinateInput struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Elevation float64 `json:"elevation,omitempty"`
}

func (c coordinateInput) toDomain() domain.Coordinate {
	return domain.Coordinate{Lat: c.Lat, Lon: c.Lon, Elevation: c.Elevation}
}

type vehicleInput struct {
	Capacity             int     `json:"capacity"`
	FuelConsumptionRate  float64 `json:"fuel_consumption_rate"`
	CO2EmissionRate      float64 `json:"co2_emission_rate"`
	HourlyLaborCost      float64 `json:"hourly_labor_cost"`
	FixedCostPerDelivery float64 `json:"fixed_cost_per_delivery"`
}

func (v vehicleInput) toDomain() domain.Vehicle {
	return domain.Vehicle{
		Capacity:             v.Capacity,
		FuelConsumptionRate:  v.FuelConsumptionRate,
		CO2EmissionRate:      v.CO2EmissionRate,
		HourlyLaborCost:      v.HourlyLaborCost,
		FixedCostPerDelivery: v.FixedCostPerDelivery,
	}
}

type stopInput struct {
	ID        string  `json:"id"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Elevation float64 `json:"elevation,omitempty"`
	Demand    int     `json:"demand"`
}

type planRequest struct {
	Depot   coordinateInput `json:"depot"`
	Vehicle vehicleInput    `json:"vehicle"`
	Mode    string          `json:"mode"`
	Stops   []stopInput     `json:"stops"`
}

type estimateRequest struct {
	Origin      coordinateInput `json:"origin"`
	Destination coordinateInput `json:"destination"`
	Vehicle     vehicleInput    `json:"vehicle"`
	Demand      int             `json:"demand"`
}

type breakdownOutput struct {
	FuelCost      float64 `json:"fuel_cost"`
	LaborCost     float64 `json:"labor_cost"`
	VehicleCost   float64 `json:"vehicle_cost"`
	CarbonCost    float64 `json:"carbon_cost"`
	TotalCost     float64 `json:"total_cost"`
	DistanceKm    float64 `json:"distance_km"`
	DurationHours float64 `json:"duration_hours"`
	CO2Kg         float64 `json:"co2_kg"`
	IsAlpine      bool    `json:"is_alpine"`
	HasOvertime   bool    `json:"has_overtime"`
}

func toBreakdownOutput(b domain.CostBreakdown) breakdownOutput {
	return breakdownOutput{
		FuelCost:      b.FuelCost,
		LaborCost:     b.LaborCost,
		VehicleCost:   b.VehicleCost,
		CarbonCost:    b.CarbonCost,
		TotalCost:     b.TotalCost,
		DistanceKm:    b.Distance,
		DurationHours: b.Duration,
		CO2Kg:         b.CO2Emissions,
		IsAlpine:      b.IsAlpine,
		HasOvertime:   b.HasOvertime,
	}
}

type segmentOutput struct {
	From string `json:"from"`
	To   string `json:"to"`
	breakdownOutput
	BearingDegrees float64 `json:"bearing_degrees"`
	Direction      string  `json:"direction"`
}

type totalsOutput struct {
	DistanceKm    float64 `json:"distance_km"`
	Cost          float64 `json:"cost"`
	DurationHours float64 `json:"duration_hours"`
	CO2Kg         float64 `json:"co2_kg"`
}

type planOutput struct {
	Sequence          []string        `json:"sequence"`
	Segments          []segmentOutput `json:"segments"`
	Totals            totalsOutput    `json:"totals"`
	CapacityExceeded  bool            `json:"capacity_exceeded"`
	SuggestedVehicles []string        `json:"suggested_vehicles,omitempty"`
}

func runPlan(path string) (err error) {
	defer obs.Time("planctl.plan")(&err)

	var req planRequest
	if err := decodeFile(path, &req); err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	vehicle := req.Vehicle.toDomain()
	if err := vehicle.Validate(); err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	mode := strings.TrimSpace(req.Mode)
	if mode == "" {
		mode = config.Get("DEFAULT_MODE", string(planner.ModeBalanced))
	}

	depot := domain.Stop{ID: "depot", Coord: req.Depot.toDomain()}

	stops := make([]domain.Stop, 0, len(req.Stops))
	totalDemand := 0
	for _, s := range req.Stops {
		if strings.TrimSpace(s.ID) == "" {
			return fmt.Errorf("plan: stop with empty id")
		}
		stops = append(stops, domain.Stop{
			ID:     s.ID,
			Coord:  domain.Coordinate{Lat: s.Lat, Lon: s.Lon, Elevation: s.Elevation},
			Demand: s.Demand,
		})
		totalDemand += s.Demand
	}

	result, err := planner.OptimizeRoute(planner.Request{
		Depot:       depot,
		Stops:       stops,
		Vehicle:     vehicle,
		Mode:        planner.Mode(mode),
		TotalDemand: totalDemand,
	})
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	out := planOutput{
		Sequence: make([]string, 0, len(result.Sequence)),
		Segments: make([]segmentOutput, 0, len(result.Segments)),
		Totals: totalsOutput{
			DistanceKm:    result.Totals.Distance,
			Cost:          result.Totals.Cost,
			DurationHours: result.Totals.Duration,
			CO2Kg:         result.Totals.CO2,
		},
		CapacityExceeded:  result.CapacityExceeded,
		SuggestedVehicles: result.SuggestedVehicles,
	}
	for _, s := range result.Sequence {
		out.Sequence = append(out.Sequence, s.ID)
	}
	for _, seg := range result.Segments {
		out.Segments = append(out.Segments, segmentOutput{
			From:            seg.From,
			To:              seg.To,
			breakdownOutput: toBreakdownOutput(seg.CostBreakdown),
			BearingDegrees:  seg.BearingDegrees,
			Direction:       string(seg.Direction),
		})
	}

	return printJSON(out)
}

func runEstimate(path string) (err error) {
	defer obs.Time("planctl.estimate")(&err)

	var req estimateRequest
	if err := decodeFile(path, &req); err != nil {
		return fmt.Errorf("estimate: %w", err)
	}

	vehicle := req.Vehicle.toDomain()
	if err := vehicle.Validate(); err != nil {
		return fmt.Errorf("estimate: %w", err)
	}

	breakdown, err := costing.ComputeCost(costing.Request{
		Origin:      req.Origin.toDomain(),
		Destination: req.Destination.toDomain(),
		Vehicle:     vehicle,
		Demand:      req.Demand,
	})
	if err != nil {
		return fmt.Errorf("estimate: %w", err)
	}

	return printJSON(toBreakdownOutput(breakdown))
}

func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open request file %q: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request file %q: %w", path, err)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
