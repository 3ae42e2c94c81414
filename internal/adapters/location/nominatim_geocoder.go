package location

import (
	"context"
	"encoding/json"
	"fmt"
	"location-weather-service/internal/domain"
	"location-weather-service/internal/platform/obs"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org/search"

// NominatimGeocoder implements Geocoder using OSM Nominatim.
type NominatimGeocoder struct {
	session *http.Client
	baseURL string
	limit   int
}

// Nominatim encodes coordinates as strings; some mirrors send numbers.
type coordinate float64

func (c *coordinate) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return fmt.Errorf("parse coordinate %q: %w", text, err)
		}
		*c = coordinate(value)
		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err == nil {
		*c = coordinate(value)
		return nil
	}

	return fmt.Errorf("coordinate must be a string or number")
}

type nominatimResult struct {
	Lat coordinate `json:"lat"`
	Lon coordinate `json:"lon"`
}

func NewNominatimGeocoder(baseURL string, limit int, timeout time.Duration) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}
	if limit <= 0 {
		limit = 5
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &NominatimGeocoder{
		session: &http.Client{Timeout: timeout},
		baseURL: baseURL,
		limit:   limit,
	}
}

func (n *NominatimGeocoder) Geocode(ctx context.Context, query string) (_ []domain.Coordinates, err error) {
	ctx, done := obs.Time(ctx, "nominatim.Geocode")
	defer done(&err)

	norm := normalize(query)
	if norm == "" {
		return nil, domain.ErrEmptyQuery
	}

	q := url.Values{}
	q.Set("q", norm)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(n.limit))

	header := http.Header{}
	header.Set("User-Agent", "location-weather-service/1.0")

	var payload []nominatimResult
	if err := getJSON(ctx, n.session, n.baseURL+"?"+q.Encode(), header, &payload); err != nil {
		return nil, fmt.Errorf("%w: nominatim geocode %q: %w", domain.ErrGeocodeService, norm, err)
	}

	out := make([]domain.Coordinates, 0, len(payload))
	for _, r := range payload {
		out = append(out, domain.Coordinates{Lat: float64(r.Lat), Lon: float64(r.Lon)})
	}

	return out, nil
}
