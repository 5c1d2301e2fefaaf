package domain

// Route is an ordered visiting sequence. A planned route always begins and
// ends at the depot, so it holds n+2 entries for n delivery stops.
type Route []Stop

// RouteSegment is one leg of a planned route: the cost breakdown for the
// travel between two consecutive sequence entries plus the leg's heading.
type RouteSegment struct {
	From           string
	To             string
	CostBreakdown
	BearingDegrees float64
	Direction      CompassDirection
}

// RouteTotals aggregates the per-segment values of a planned route.
// Each field is the exact sum of the corresponding segment values.
type RouteTotals struct {
	Distance float64
	Cost     float64
	Duration float64
	CO2      float64
}

// RouteResult is the output of the route sequencer. It is immutable planning
// data and contains no side effects. SuggestedVehicles is only populated when
// the capacity diagnostic fires; the sequence is produced regardless.
type RouteResult struct {
	Sequence          Route
	Segments          []RouteSegment
	Totals            RouteTotals
	CapacityExceeded  bool
	SuggestedVehicles []string
}
