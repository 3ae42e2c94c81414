package location

import (
	"context"
	"fmt"
	"location-weather-service/internal/domain"
	"location-weather-service/internal/platform/obs"
	"location-weather-service/internal/ports"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"
)

const defaultIPGeoURL = "http://ip-api.com/json/"

// Device stands in for the host's location services.
//
// Permission is a fixed policy decided by the operator. The position is either
// a static fix or, when none is configured, the host's IP geolocation.
type Device struct {
	policy  ports.PermissionStatus
	fixed   *domain.Coordinates
	session *http.Client
	ipGeo   string

	granted atomic.Bool
}

type DeviceOptions struct {
	Permission ports.PermissionStatus
	// Static fix; nil selects IP geolocation.
	Fixed    *domain.Coordinates
	IPGeoURL string
	Timeout  time.Duration
}

func NewDevice(opts DeviceOptions) *Device {
	policy := opts.Permission
	if policy == "" {
		policy = ports.PermissionGranted
	}
	ipGeo := opts.IPGeoURL
	if ipGeo == "" {
		ipGeo = defaultIPGeoURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	var fixed *domain.Coordinates
	if opts.Fixed != nil {
		c := *opts.Fixed
		fixed = &c
	}

	return &Device{
		policy:  policy,
		fixed:   fixed,
		session: &http.Client{Timeout: timeout},
		ipGeo:   ipGeo,
	}
}

func (d *Device) RequestPermission(ctx context.Context) (ports.PermissionStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	d.granted.Store(d.policy == ports.PermissionGranted)
	return d.policy, nil
}

type ipGeoResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// CurrentPosition requires a granted RequestPermission first.
func (d *Device) CurrentPosition(ctx context.Context) (_ domain.Coordinates, err error) {
	ctx, done := obs.Time(ctx, "device.CurrentPosition")
	defer done(&err)

	if !d.granted.Load() {
		return domain.Coordinates{}, fmt.Errorf("current position: %w", domain.ErrPermissionDenied)
	}

	if d.fixed != nil {
		return *d.fixed, nil
	}

	q := url.Values{}
	q.Set("fields", "status,message,lat,lon")

	var decoded ipGeoResponse
	if err := getJSON(ctx, d.session, d.ipGeo+"?"+q.Encode(), nil, &decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: ip geolocation: %w", domain.ErrLocationUnavailable, err)
	}
	if decoded.Status != "success" {
		return domain.Coordinates{}, fmt.Errorf("%w: ip geolocation status=%q message=%q",
			domain.ErrLocationUnavailable, decoded.Status, decoded.Message)
	}

	c := domain.Coordinates{Lat: decoded.Lat, Lon: decoded.Lon}
	if !c.Valid() {
		return domain.Coordinates{}, fmt.Errorf("%w: ip geolocation returned %v", domain.ErrLocationUnavailable, c)
	}

	return c, nil
}
