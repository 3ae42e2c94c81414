package dto

import (
	"location-weather-service/internal/domain"
	"time"
)

type CoordinatesResponse struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

type MarkerResponse struct {
	Coordinate CoordinatesResponse `json:"coordinate" yaml:"coordinate"`
	Title      string              `json:"title" yaml:"title"`
}

type RegionResponse struct {
	Latitude       float64 `json:"latitude" yaml:"latitude"`
	Longitude      float64 `json:"longitude" yaml:"longitude"`
	LatitudeDelta  float64 `json:"latitude_delta" yaml:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta" yaml:"longitude_delta"`
}

type WeatherResponse struct {
	Coordinate  CoordinatesResponse `json:"coordinate" yaml:"coordinate"`
	Temperature float64             `json:"temperature" yaml:"temperature"`
	FeelsLike   float64             `json:"feels_like" yaml:"feels_like"`
	Humidity    int                 `json:"humidity" yaml:"humidity"`
	Pressure    int                 `json:"pressure" yaml:"pressure"`
	WindSpeed   float64             `json:"wind_speed" yaml:"wind_speed"`
	Description string              `json:"description" yaml:"description"`
	Sunrise     time.Time           `json:"sunrise" yaml:"sunrise"`
	Sunset      time.Time           `json:"sunset" yaml:"sunset"`
}

type StateResponse struct {
	Status         string           `json:"status" yaml:"status"`
	Message        string           `json:"message,omitempty" yaml:"message,omitempty"`
	DeviceLocation *MarkerResponse  `json:"device_location" yaml:"device_location"`
	SearchMarkers  []MarkerResponse `json:"search_markers" yaml:"search_markers"`
	Weather        *WeatherResponse `json:"weather" yaml:"weather"`
	Focus          *RegionResponse  `json:"focus" yaml:"focus"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

type SearchResponse struct {
	Outcome string        `json:"outcome" yaml:"outcome"`
	State   StateResponse `json:"state" yaml:"state"`
}

type StartupResponse struct {
	Outcome string        `json:"outcome" yaml:"outcome"`
	State   StateResponse `json:"state" yaml:"state"`
}

// FromState maps the workflow state onto its wire representation.
func FromState(s domain.WorkflowState) StateResponse {
	res := StateResponse{
		Status:        string(s.Status()),
		Message:       s.Message(),
		SearchMarkers: make([]MarkerResponse, 0, len(s.SearchMarkers)),
	}

	if s.DeviceLocation != nil {
		res.DeviceLocation = &MarkerResponse{
			Coordinate: fromCoordinates(*s.DeviceLocation),
			Title:      domain.DeviceMarkerTitle,
		}
	}

	for _, m := range s.SearchMarkers {
		res.SearchMarkers = append(res.SearchMarkers, MarkerResponse{
			Coordinate: fromCoordinates(m.Coordinates),
			Title:      m.Label,
		})
	}

	if w := s.Weather; w != nil {
		res.Weather = &WeatherResponse{
			Coordinate:  fromCoordinates(w.Location),
			Temperature: w.Temperature,
			FeelsLike:   w.FeelsLike,
			Humidity:    w.Humidity,
			Pressure:    w.Pressure,
			WindSpeed:   w.WindSpeed,
			Description: w.Description,
			Sunrise:     w.Sunrise,
			Sunset:      w.Sunset,
		}
	}

	if f := s.Focus; f != nil {
		res.Focus = &RegionResponse{
			Latitude:       f.Center.Lat,
			Longitude:      f.Center.Lon,
			LatitudeDelta:  f.LatitudeDelta,
			LongitudeDelta: f.LongitudeDelta,
		}
	}

	return res
}

func fromCoordinates(c domain.Coordinates) CoordinatesResponse {
	return CoordinatesResponse{Latitude: c.Lat, Longitude: c.Lon}
}
