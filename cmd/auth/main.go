package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/acadcopilot/copilot/internal/auth/app"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("auth service: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := app.LoadConfig()

	shutdownTelemetry := app.SetupTelemetry(ctx, cfg, app.ServiceName)
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			log.Printf("telemetry shutdown error: %v", err)
		}
	}()

	application, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	return application.Run(ctx)
}
