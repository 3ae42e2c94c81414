package domain

import "fmt"

// Immutable geographic coordinates (latitude, longitude).
// Two Coordinates are the same location when their values are equal.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Report whether the pair lies within WGS84 bounds.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Return coordinates as [lon, lat] for GeoJSON-style API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

func (c Coordinates) String() string {
	return fmt.Sprintf("(%g, %g)", c.Lat, c.Lon)
}
