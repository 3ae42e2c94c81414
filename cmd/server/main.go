package main

import (
	"context"
	"errors"
	"location-weather-service/internal/api"
	"location-weather-service/internal/app"
	"location-weather-service/internal/config"
	"location-weather-service/internal/platform/obs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

const serviceName = "location-weather-service"

// main is the application composition root.
// It wires concrete adapters (device, geocoder, OpenWeatherMap) behind ports,
// runs the startup sequence and serves the workflow state over HTTP.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := obs.SetupTracing(serviceName, cfg.ZipkinURL)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Printf("tracing shutdown err=%v", err)
		}
	}()

	ctrl, err := app.NewWorkflow(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(ctrl, cfg.CORSOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server listening addr=:%s geocoder=%s", cfg.Port, cfg.Geocoder)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		outcome := ctrl.Startup(gctx)
		log.Printf("startup sequence outcome=%s", outcome)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Printf("Server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
