package main

import (
	"context"
	"location-weather-service/internal/app"
	"location-weather-service/internal/cli"
	"location-weather-service/internal/config"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	deps := cli.Dependencies{
		NewWorkflow: func() (cli.Workflow, error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, err
			}
			ctrl, err := app.NewWorkflow(cfg)
			if err != nil {
				return nil, err
			}
			return ctrl, nil
		},
	}

	code := cli.Execute(ctx, os.Args[1:], deps, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
