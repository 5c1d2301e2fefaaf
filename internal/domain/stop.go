package domain

// Stop is a single delivery location with the number of units to drop there.
// The depot is represented as a Stop with zero demand.
type Stop struct {
	ID     string
	Coord  Coordinate
	Demand int
}
