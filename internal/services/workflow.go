package services

import (
	"context"
	"fmt"
	"location-weather-service/internal/domain"
	"location-weather-service/internal/platform/obs"
	"location-weather-service/internal/ports"
	"log"
	"strings"
	"sync"
	"sync/atomic"
)

type StartupOutcome string

const (
	StartupReady               StartupOutcome = "ready"
	StartupDenied              StartupOutcome = "denied"
	StartupPermissionFailed    StartupOutcome = "permission_failed"
	StartupLocationUnavailable StartupOutcome = "location_unavailable"
	StartupWeatherFailed       StartupOutcome = "weather_failed"
	StartupSuperseded          StartupOutcome = "superseded"
	StartupAlreadyRan          StartupOutcome = "already_ran"
)

type SearchOutcome string

const (
	SearchResolved      SearchOutcome = "resolved"
	SearchIgnored       SearchOutcome = "ignored"
	SearchNoResults     SearchOutcome = "no_results"
	SearchFailed        SearchOutcome = "failed"
	SearchWeatherFailed SearchOutcome = "weather_failed"
	SearchSuperseded    SearchOutcome = "superseded"
)

// ErrorSink receives every failure the workflow swallows.
type ErrorSink interface {
	Report(ctx context.Context, err error)
}

type ErrorSinkFunc func(ctx context.Context, err error)

func (f ErrorSinkFunc) Report(ctx context.Context, err error) { f(ctx, err) }

// LogErrorSink logs and otherwise drops the error.
var LogErrorSink = ErrorSinkFunc(func(ctx context.Context, err error) {
	log.Printf("req_id=%s workflow error kind=%s err=%v", obs.RequestID(ctx), domain.ErrorKind(err), err)
})

type Option func(*WorkflowController)

func WithErrorSink(sink ErrorSink) Option {
	return func(c *WorkflowController) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// WorkflowController sequences the startup and search lookups and owns the WorkflowState.
//
// State is published as an immutable value; readers never observe a partial update.
// Startup and every search take a number from one increasing sequence. A request
// whose coordinate resolves becomes the current one only if its number is higher
// than the current one's, and weather is applied only for the current request.
// A slow request finishing after a newer one is therefore discarded, while a newer
// request that fails before resolving leaves the older one's results in place.
type WorkflowController struct {
	resolver ports.LocationResolver
	weather  ports.WeatherProvider
	sink     ErrorSink

	startOnce sync.Once

	mu       sync.Mutex // serializes commits, guards issued and resolved
	issued   uint64
	resolved uint64
	state    atomic.Pointer[domain.WorkflowState]
}

func NewWorkflowController(
	resolver ports.LocationResolver,
	weather ports.WeatherProvider,
	opts ...Option,
) *WorkflowController {
	c := &WorkflowController{
		resolver: resolver,
		weather:  weather,
		sink:     LogErrorSink,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state.Store(&domain.WorkflowState{})
	return c
}

// State returns the latest published state.
func (c *WorkflowController) State() domain.WorkflowState {
	return *c.state.Load()
}

// Startup runs permission -> device position -> weather once per controller.
// Later calls return StartupAlreadyRan without touching state.
func (c *WorkflowController) Startup(ctx context.Context) StartupOutcome {
	outcome := StartupAlreadyRan
	c.startOnce.Do(func() {
		outcome = c.startup(ctx)
		obs.CountWorkflowRun("startup", string(outcome))
	})
	return outcome
}

func (c *WorkflowController) startup(ctx context.Context) StartupOutcome {
	seq := c.issue()

	status, err := c.resolver.RequestPermission(ctx)
	if err != nil {
		c.report(ctx, fmt.Errorf("startup: request permission: %w", err))
		return StartupPermissionFailed
	}
	if status != ports.PermissionGranted {
		c.commitAlways(func(s domain.WorkflowState) domain.WorkflowState {
			return s.WithError(domain.PermissionDeniedMessage)
		})
		c.report(ctx, fmt.Errorf("startup: %w", domain.ErrPermissionDenied))
		return StartupDenied
	}

	here, err := c.resolver.CurrentPosition(ctx)
	if err != nil {
		c.report(ctx, fmt.Errorf("startup: current position: %w", err))
		return StartupLocationUnavailable
	}
	c.commitDevice(seq, here)

	snap, err := c.weather.FetchCurrent(ctx, here)
	if err != nil {
		c.report(ctx, fmt.Errorf("startup: fetch weather at %v: %w", here, err))
		return StartupWeatherFailed
	}
	if !c.commit(seq, func(s domain.WorkflowState) domain.WorkflowState {
		return s.WithWeather(snap)
	}) {
		return StartupSuperseded
	}

	return StartupReady
}

// Search geocodes query and, on a match, pins the first result and fetches its weather.
// No error escapes; failures are reported to the sink and leave state unchanged.
func (c *WorkflowController) Search(ctx context.Context, query string) SearchOutcome {
	outcome := c.search(ctx, query)
	obs.CountWorkflowRun("search", string(outcome))
	return outcome
}

func (c *WorkflowController) search(ctx context.Context, query string) SearchOutcome {
	if strings.TrimSpace(query) == "" {
		return SearchIgnored
	}

	seq := c.issue()

	results, err := c.resolver.Geocode(ctx, query)
	if err != nil {
		c.report(ctx, fmt.Errorf("search %q: %w", query, err))
		return SearchFailed
	}
	if len(results) == 0 {
		c.report(ctx, fmt.Errorf("search %q: %w", query, domain.ErrGeocodeEmpty))
		return SearchNoResults
	}

	marker := domain.SearchMarker{Coordinates: results[0], Label: query}
	if !c.resolve(seq, func(s domain.WorkflowState) domain.WorkflowState {
		return s.WithSearchMarker(marker)
	}) {
		return SearchSuperseded
	}

	snap, err := c.weather.FetchCurrent(ctx, marker.Coordinates)
	if err != nil {
		c.report(ctx, fmt.Errorf("search %q: fetch weather at %v: %w", query, marker.Coordinates, err))
		return SearchWeatherFailed
	}
	if !c.commit(seq, func(s domain.WorkflowState) domain.WorkflowState {
		return s.WithWeather(snap)
	}) {
		return SearchSuperseded
	}

	return SearchResolved
}

func (c *WorkflowController) issue() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued++
	return c.issued
}

// resolve makes seq the current request and applies fn, unless a newer request
// has already resolved.
func (c *WorkflowController) resolve(seq uint64, fn func(domain.WorkflowState) domain.WorkflowState) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq <= c.resolved {
		return false
	}
	c.resolved = seq
	c.store(fn(*c.state.Load()))
	return true
}

// commit applies fn only while seq is the current request.
func (c *WorkflowController) commit(seq uint64, fn func(domain.WorkflowState) domain.WorkflowState) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.resolved {
		return false
	}
	c.store(fn(*c.state.Load()))
	return true
}

// commitDevice always records the device fix; no later request replaces it.
func (c *WorkflowController) commitDevice(seq uint64, here domain.Coordinates) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq > c.resolved {
		c.resolved = seq
	}
	c.store(c.state.Load().WithDeviceLocation(here))
}

func (c *WorkflowController) commitAlways(fn func(domain.WorkflowState) domain.WorkflowState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store(fn(*c.state.Load()))
}

func (c *WorkflowController) store(next domain.WorkflowState) {
	c.state.Store(&next)
}

func (c *WorkflowController) report(ctx context.Context, err error) {
	obs.CountWorkflowError(domain.ErrorKind(err))
	c.sink.Report(ctx, err)
}
