package location

import (
	"context"
	"errors"
	"fmt"
	"location-weather-service/internal/domain"
	"location-weather-service/internal/platform/obs"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ORSGeocoder implements Geocoder using OpenRouteService (/geocode/search).
type ORSGeocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
	size    int
}

type orsGeocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

func NewORSGeocoder(apiKey, baseURL string, size int, timeout time.Duration) (*ORSGeocoder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://api.openrouteservice.org"
	}
	if size <= 0 {
		size = 5
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ORSGeocoder{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		size:    size,
	}, nil
}

// Geocode resolves a place name to every match ORS returns, in provider order.
// GeoJSON coordinates arrive as [lon, lat].
func (o *ORSGeocoder) Geocode(ctx context.Context, query string) (_ []domain.Coordinates, err error) {
	ctx, done := obs.Time(ctx, "ors.Geocode")
	defer done(&err)

	norm := normalize(query)
	if norm == "" {
		return nil, domain.ErrEmptyQuery
	}

	q := url.Values{}
	q.Set("text", norm)
	q.Set("size", strconv.Itoa(o.size))
	endpoint := o.baseURL + "/geocode/search?" + q.Encode()

	header := http.Header{}
	header.Set("Authorization", o.apiKey)

	var decoded orsGeocodeResponse
	if err := getJSON(ctx, o.session, endpoint, header, &decoded); err != nil {
		return nil, fmt.Errorf("%w: ors geocode %q: %w", domain.ErrGeocodeService, norm, err)
	}

	out := make([]domain.Coordinates, 0, len(decoded.Features))
	for i, f := range decoded.Features {
		coords := f.Geometry.Coordinates
		if len(coords) != 2 {
			return nil, fmt.Errorf("%w: invalid coordinate format for %q at feature %d", domain.ErrGeocodeService, norm, i)
		}
		out = append(out, domain.Coordinates{Lon: coords[0], Lat: coords[1]})
	}

	return out, nil
}
