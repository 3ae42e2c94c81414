package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"location-weather-service/internal/domain"
	"location-weather-service/internal/services"
)

// Workflow is the controller surface the CLI drives.
type Workflow interface {
	Startup(ctx context.Context) services.StartupOutcome
	Search(ctx context.Context, query string) services.SearchOutcome
	State() domain.WorkflowState
}

// Dependencies wires runtime services.
// NewWorkflow is called only by commands that need it, so help works without credentials.
type Dependencies struct {
	NewWorkflow func() (Workflow, error)
}

var errUsage = errors.New("usage error")

// Execute runs the CLI with injected dependencies and returns the process exit code.
func Execute(ctx context.Context, args []string, deps Dependencies, stdout io.Writer, stderr io.Writer) int {
	cmd := NewRootCommand(deps)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	_, _ = fmt.Fprintln(stderr, err.Error())
	if errors.Is(err, errUsage) {
		return 2
	}
	return 1
}
