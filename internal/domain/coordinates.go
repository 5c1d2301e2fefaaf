package domain

// Immutable geographic position (latitude, longitude, optional elevation).
// Elevation is meters above sea level; zero means the caller has no
// elevation data for the location.
type Coordinate struct {
	Lat       float64
	Lon       float64
	Elevation float64
}

// One of the eight compass sectors, each spanning 45 degrees centered on
// its cardinal heading (N covers [337.5, 360) and [0, 22.5)).
type CompassDirection string

const (
	DirectionN  CompassDirection = "N"
	DirectionNE CompassDirection = "NE"
	DirectionE  CompassDirection = "E"
	DirectionSE CompassDirection = "SE"
	DirectionS  CompassDirection = "S"
	DirectionSW CompassDirection = "SW"
	DirectionW  CompassDirection = "W"
	DirectionNW CompassDirection = "NW"
)
