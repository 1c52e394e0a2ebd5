package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	zone "github.com/lrstanley/bubblezone"

	"hearsay/internal/config"
	"hearsay/internal/eventbus"
	"hearsay/internal/logging"
	"hearsay/internal/ui/coordinator"
)

// Minimal entrypoint: default config location, no flags. The root command
// carries the full flag surface.
func main() {
	logging.Init(logging.DefaultFile, "info")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	zone.NewGlobal()

	bus := eventbus.New()

	configSvc := config.NewServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	co, err := coordinator.New(cfg, configSvc, bus)
	if err != nil {
		fmt.Printf("Error starting services: %v\n", err)
		os.Exit(1)
	}

	if err := co.Start(ctx); err != nil {
		fmt.Printf("Error starting inbox watch: %v\n", err)
		os.Exit(1)
	}

	if err := co.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
