package domain

// User-facing texts of the single supported locale (pt_br).
const (
	PermissionDeniedMessage = "Permissão para acessar a localização foi negada"
	LoadingMessage          = "Carregando..."
	DeviceMarkerTitle       = "Minha localização"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusDenied  Status = "denied"
)

// Aggregate read by the presentation layer.
//
// A WorkflowState is a value: the With* methods return an updated copy and
// never share the SearchMarkers backing array with the receiver. The controller
// publishes a new value after each step instead of mutating fields in place.
type WorkflowState struct {
	DeviceLocation *Coordinates
	SearchMarkers  []SearchMarker
	Weather        *WeatherSnapshot
	Error          string
	Focus          *Region
}

func (s WorkflowState) Status() Status {
	switch {
	case s.Error != "":
		return StatusDenied
	case s.DeviceLocation != nil:
		return StatusReady
	default:
		return StatusLoading
	}
}

// Return the text shown in place of the map, empty once a location is known.
func (s WorkflowState) Message() string {
	switch s.Status() {
	case StatusDenied:
		return s.Error
	case StatusLoading:
		return LoadingMessage
	default:
		return ""
	}
}

func (s WorkflowState) WithDeviceLocation(c Coordinates) WorkflowState {
	next := s.clone()
	next.DeviceLocation = &c
	next.Error = ""
	if next.Focus == nil {
		r := NewRegion(c)
		next.Focus = &r
	}
	return next
}

func (s WorkflowState) WithError(msg string) WorkflowState {
	next := s.clone()
	next.Error = msg
	next.DeviceLocation = nil
	return next
}

// Replace all markers with the given one and move the focus onto it.
func (s WorkflowState) WithSearchMarker(m SearchMarker) WorkflowState {
	next := s.clone()
	next.SearchMarkers = []SearchMarker{m}
	r := NewRegion(m.Coordinates)
	next.Focus = &r
	return next
}

func (s WorkflowState) WithWeather(w WeatherSnapshot) WorkflowState {
	next := s.clone()
	next.Weather = &w
	return next
}

func (s WorkflowState) clone() WorkflowState {
	next := s
	if s.SearchMarkers != nil {
		next.SearchMarkers = make([]SearchMarker, len(s.SearchMarkers))
		copy(next.SearchMarkers, s.SearchMarkers)
	}
	return next
}
