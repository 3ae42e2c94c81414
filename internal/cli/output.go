package cli

import (
	"encoding/json"
	"fmt"
	"location-weather-service/internal/domain"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Format represents command output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates format values.
func ParseFormat(v string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(v))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q", v)
	}
}

func writeResult(cmd *cobra.Command, format Format, payload any, state domain.WorkflowState) error {
	text, err := Render(format, payload, state)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Render encodes payload for json and yaml; the table format draws state directly.
func Render(format Format, payload any, state domain.WorkflowState) (string, error) {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal json: %w", err)
		}
		return string(b), nil
	case FormatYAML:
		b, err := yaml.Marshal(payload)
		if err != nil {
			return "", fmt.Errorf("marshal yaml: %w", err)
		}
		return strings.TrimRight(string(b), "\n"), nil
	default:
		return renderTable(state), nil
	}
}

// renderTable prints the panel the mobile screen showed, with its pt_br labels.
func renderTable(s domain.WorkflowState) string {
	if s.Status() == domain.StatusDenied {
		return s.Error
	}
	if s.DeviceLocation == nil && len(s.SearchMarkers) == 0 {
		return domain.LoadingMessage
	}

	var b strings.Builder
	if s.DeviceLocation != nil {
		fmt.Fprintf(&b, "%s: %.4f, %.4f\n", domain.DeviceMarkerTitle, s.DeviceLocation.Lat, s.DeviceLocation.Lon)
	}
	for _, m := range s.SearchMarkers {
		fmt.Fprintf(&b, "%s: %.4f, %.4f\n", m.Label, m.Coordinates.Lat, m.Coordinates.Lon)
	}

	if w := s.Weather; w != nil {
		fmt.Fprintf(&b, "Temperatura: %g °C\n", w.Temperature)
		fmt.Fprintf(&b, "Umidade: %d%%\n", w.Humidity)
		fmt.Fprintf(&b, "Velocidade do vento: %g m/s\n", w.WindSpeed)
		fmt.Fprintf(&b, "Nascer do sol: %s\n", clock(w.Sunrise))
		fmt.Fprintf(&b, "Pôr do sol: %s\n", clock(w.Sunset))
		fmt.Fprintf(&b, "Pressão: %d hPa\n", w.Pressure)
		fmt.Fprintf(&b, "Sensação térmica: %g °C\n", w.FeelsLike)
		fmt.Fprintf(&b, "Descrição: %s\n", w.Description)
	}

	return strings.TrimRight(b.String(), "\n")
}

func clock(t time.Time) string {
	return t.Local().Format("15:04:05")
}
