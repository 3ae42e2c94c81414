package cli

import (
	"fmt"
	"location-weather-service/internal/api/dto"
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the complete command tree.
func NewRootCommand(deps Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:           "weather",
		Short:         "Look up current weather for this device or a searched place.",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.PersistentFlags().String("format", string(FormatTable), "Output format: table, json or yaml.")

	root.AddCommand(newCurrentCommand(deps))
	root.AddCommand(newSearchCommand(deps))

	return root
}

func newCurrentCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Resolve this device's location and show its current weather.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			wf, err := deps.NewWorkflow()
			if err != nil {
				return err
			}

			outcome := wf.Startup(cmd.Context())
			state := wf.State()

			return writeResult(cmd, format, dto.StartupResponse{Outcome: string(outcome), State: dto.FromState(state)}, state)
		},
	}
}

func newSearchCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY...",
		Short: "Geocode a place name and show the current weather there.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			wf, err := deps.NewWorkflow()
			if err != nil {
				return err
			}

			outcome := wf.Search(cmd.Context(), query)
			state := wf.State()

			return writeResult(cmd, format, dto.SearchResponse{Outcome: string(outcome), State: dto.FromState(state)}, state)
		},
	}
}

func formatFlag(cmd *cobra.Command) (Format, error) {
	raw, _ := cmd.Flags().GetString("format")
	format, err := ParseFormat(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errUsage, err)
	}
	return format, nil
}
