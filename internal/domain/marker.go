package domain

// Pin dropped on the map for a resolved search.
// Label carries the raw query text the user typed.
type SearchMarker struct {
	Coordinates Coordinates
	Label       string
}

// Map deltas used whenever the focus moves to a coordinate.
const (
	DefaultLatitudeDelta  = 0.0922
	DefaultLongitudeDelta = 0.0421
)

// Visible map area the presentation layer should animate to.
type Region struct {
	Center         Coordinates
	LatitudeDelta  float64
	LongitudeDelta float64
}

func NewRegion(center Coordinates) Region {
	return Region{
		Center:         center,
		LatitudeDelta:  DefaultLatitudeDelta,
		LongitudeDelta: DefaultLongitudeDelta,
	}
}
