package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"location-weather-service/internal/domain"
	"location-weather-service/internal/platform/obs"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Fixed request settings; the service supports a single display locale.
const (
	Lang  = "pt_br"
	Units = "metric"
)

const currentWeatherPath = "/data/2.5/weather"

// OWMProvider implements WeatherProvider using the OpenWeatherMap current weather API.
//
// Each FetchCurrent is exactly one GET; there is no retry and no caching.
// The provider is safe for concurrent use.
type OWMProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewOWMProvider(apiKey, baseURL string, timeout time.Duration) (*OWMProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("OWM api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &OWMProvider{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

type currentResponse struct {
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Sys *struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
}

// FetchCurrent returns the current conditions at coord.
// Every failure (transport, non-2xx, malformed payload) wraps domain.ErrWeatherService.
func (o *OWMProvider) FetchCurrent(
	ctx context.Context,
	coord domain.Coordinates,
) (_ domain.WeatherSnapshot, err error) {
	ctx, done := obs.Time(ctx, "owm.FetchCurrent")
	defer done(&err)

	if !coord.Valid() {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: invalid coordinate %v", domain.ErrWeatherService, coord)
	}

	req, err := o.newRequest(ctx, o.baseURL+currentWeatherPath)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: %v", domain.ErrWeatherService, err)
	}

	q := req.URL.Query()
	q.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	q.Set("appid", o.apiKey)
	q.Set("lang", Lang)
	q.Set("units", Units)
	req.URL.RawQuery = q.Encode()

	resp, err := o.do(req)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: execute request: %w", domain.ErrWeatherService, err)
	}
	defer resp.Body.Close()

	var decoded currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: decode response: %v", domain.ErrWeatherService, err)
	}

	switch {
	case decoded.Main == nil:
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: response missing main", domain.ErrWeatherService)
	case decoded.Wind == nil:
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: response missing wind", domain.ErrWeatherService)
	case decoded.Sys == nil:
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: response missing sys", domain.ErrWeatherService)
	case len(decoded.Weather) == 0:
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: response missing weather conditions", domain.ErrWeatherService)
	}

	return domain.WeatherSnapshot{
		Location:    coord,
		Temperature: decoded.Main.Temp,
		FeelsLike:   decoded.Main.FeelsLike,
		Humidity:    decoded.Main.Humidity,
		Pressure:    decoded.Main.Pressure,
		WindSpeed:   decoded.Wind.Speed,
		Description: decoded.Weather[0].Description,
		Sunrise:     time.Unix(decoded.Sys.Sunrise, 0).UTC(),
		Sunset:      time.Unix(decoded.Sys.Sunset, 0).UTC(),
	}, nil
}
