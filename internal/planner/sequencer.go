// Package planner orders a set of delivery stops into a single depot-to-depot
// round trip using a greedy nearest-neighbor heuristic, scoring candidate
// next-stops under a selectable objective.
package planner

import (
	"fmt"

	"delivery-cost-engine/internal/costing"
	"delivery-cost-engine/internal/domain"
	"delivery-cost-engine/internal/geo"
)

// Mode selects the objective the sequencer minimizes at each greedy step.
type Mode string

const (
	ModeFastest  Mode = "fastest"
	ModeCheapest Mode = "cheapest"
	ModeGreenest Mode = "greenest"
	ModeBalanced Mode = "balanced"
)

// Balanced-mode calibration. The divisors are fixed "typical magnitude"
// constants, not values derived from any data set; they are tunables, not
// domain law.
const (
	balancedTimeWeight = 0.33
	balancedCostWeight = 0.33
	balancedCO2Weight  = 0.34

	typicalDurationHours = 10.0
	typicalSegmentCost   = 500.0
	typicalSegmentCO2Kg  = 100.0
)

// Request describes one sequencing problem. TotalDemand is supplied by the
// caller (the sum of stop demands as it counts them) and drives only the
// advisory capacity diagnostic.
type Request struct {
	Depot       domain.Stop
	Stops       []domain.Stop
	Vehicle     domain.Vehicle
	Mode        Mode
	TotalDemand int
}

// segmentMeasure holds the per-candidate quantities the mode scorers rank on.
type segmentMeasure struct {
	durationHours float64
	cost          float64
	co2Kg         float64
}

// OptimizeRoute plans a round trip over all stops.
//
// The heuristic minimizes the mode's immediate metric at each step; it does
// not attempt a globally optimal tour. Ties are broken by stable input order
// (the first-seen stop wins). Stops are treated as a set keyed by position;
// duplicate identifiers are the caller's validation problem, not detected
// here. Runs in O(n^2) over the number of stops.
//
// A total demand above the vehicle's capacity never blocks sequencing: it
// sets CapacityExceeded and fills SuggestedVehicles, and planning proceeds.
func OptimizeRoute(req Request) (*domain.RouteResult, error) {
	score, err := scorerForMode(req.Mode)
	if err != nil {
		return nil, err
	}

	capacityExceeded := req.TotalDemand > req.Vehicle.Capacity
	var suggested []string
	if capacityExceeded {
		suggested = SuggestVehicles(req.Vehicle.Capacity, req.TotalDemand)
	}

	// No stops means no travel: the route degenerates to [depot, depot] with
	// no segments and zero totals.
	if len(req.Stops) == 0 {
		return &domain.RouteResult{
			Sequence:          domain.Route{req.Depot, req.Depot},
			Segments:          []domain.RouteSegment{},
			Totals:            domain.RouteTotals{},
			CapacityExceeded:  capacityExceeded,
			SuggestedVehicles: suggested,
		}, nil
	}

	sequence := make(domain.Route, 0, len(req.Stops)+2)
	sequence = append(sequence, req.Depot)

	current := req.Depot
	visited := make([]bool, len(req.Stops))

	for range req.Stops {
		bestIdx := -1
		var bestScore float64

		// Strict less-than keeps the first-seen candidate on ties.
		for i, stop := range req.Stops {
			if visited[i] {
				continue
			}

			m, err := measureSegment(current.Coord, stop.Coord, req.Vehicle)
			if err != nil {
				return nil, fmt.Errorf("optimize route: candidate %q: %w", stop.ID, err)
			}

			s := score(m)
			if bestIdx == -1 || s < bestScore {
				bestIdx = i
				bestScore = s
			}
		}

		visited[bestIdx] = true
		sequence = append(sequence, req.Stops[bestIdx])
		current = req.Stops[bestIdx]
	}

	sequence = append(sequence, req.Depot)

	segments, totals, err := walkSequence(sequence, req.Vehicle)
	if err != nil {
		return nil, fmt.Errorf("optimize route: %w", err)
	}

	return &domain.RouteResult{
		Sequence:          sequence,
		Segments:          segments,
		Totals:            totals,
		CapacityExceeded:  capacityExceeded,
		SuggestedVehicles: suggested,
	}, nil
}

// walkSequence re-walks the final sequence and costs each leg through the
// cost model. Totals are the exact sums of the segment values, never
// re-derived from scratch.
func walkSequence(sequence domain.Route, vehicle domain.Vehicle) ([]domain.RouteSegment, domain.RouteTotals, error) {
	segments := make([]domain.RouteSegment, 0, len(sequence)-1)
	var totals domain.RouteTotals

	for i := 0; i+1 < len(sequence); i++ {
		from, to := sequence[i], sequence[i+1]

		// Segment breakdowns carry no demand; the capacity diagnostic is
		// advisory and must not fail the walk.
		breakdown, err := costing.ComputeCost(costing.Request{
			Origin:      from.Coord,
			Destination: to.Coord,
			Vehicle:     vehicle,
		})
		if err != nil {
			return nil, domain.RouteTotals{}, fmt.Errorf("cost leg %q -> %q: %w", from.ID, to.ID, err)
		}

		degrees, direction, err := geo.Bearing(from.Coord, to.Coord)
		if err != nil {
			return nil, domain.RouteTotals{}, fmt.Errorf("bearing leg %q -> %q: %w", from.ID, to.ID, err)
		}

		segments = append(segments, domain.RouteSegment{
			From:           from.ID,
			To:             to.ID,
			CostBreakdown:  breakdown,
			BearingDegrees: degrees,
			Direction:      direction,
		})

		totals.Distance += breakdown.Distance
		totals.Cost += breakdown.TotalCost
		totals.Duration += breakdown.Duration
		totals.CO2 += breakdown.CO2Emissions
	}

	return segments, totals, nil
}

// measureSegment computes the quantities a greedy step ranks candidates on,
// reusing the cost model's sub-functions without building a full breakdown.
func measureSegment(from, to domain.Coordinate, vehicle domain.Vehicle) (segmentMeasure, error) {
	distance, err := geo.Distance(from, to)
	if err != nil {
		return segmentMeasure{}, err
	}

	alpine := geo.IsAlpineRoute(from, to)
	duration := distance / costing.AverageSpeedKmh

	cost := costing.FuelCost(vehicle, distance, alpine) +
		costing.LaborCost(vehicle, duration) +
		vehicle.FixedCostPerDelivery +
		costing.CarbonCost(vehicle, distance)

	return segmentMeasure{
		durationHours: duration,
		cost:          cost,
		co2Kg:         vehicle.CO2EmissionRate * distance,
	}, nil
}

func scorerForMode(mode Mode) (func(segmentMeasure) float64, error) {
	switch mode {
	case ModeFastest:
		return func(m segmentMeasure) float64 { return m.durationHours }, nil
	case ModeCheapest:
		return func(m segmentMeasure) float64 { return m.cost }, nil
	case ModeGreenest:
		return func(m segmentMeasure) float64 { return m.co2Kg }, nil
	case ModeBalanced:
		return func(m segmentMeasure) float64 {
			return balancedTimeWeight*(m.durationHours/typicalDurationHours) +
				balancedCostWeight*(m.cost/typicalSegmentCost) +
				balancedCO2Weight*(m.co2Kg/typicalSegmentCO2Kg)
		}, nil
	default:
		return nil, &domain.UnknownModeError{Mode: string(mode)}
	}
}
