package domain

import "time"

// Current conditions at a location as reported by the weather service.
// A snapshot is never mutated; a newer fetch replaces it wholesale.
type WeatherSnapshot struct {
	// Coordinate the snapshot was fetched for.
	Location Coordinates

	Temperature float64 // °C
	FeelsLike   float64 // °C
	Humidity    int     // %
	Pressure    int     // hPa
	WindSpeed   float64 // m/s
	Description string
	Sunrise     time.Time
	Sunset      time.Time
}
