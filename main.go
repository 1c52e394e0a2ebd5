package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	zone "github.com/lrstanley/bubblezone"

	"hearsay/internal/config"
	"hearsay/internal/eventbus"
	"hearsay/internal/logging"
	"hearsay/internal/ui/coordinator"
)

// version is stamped by the release build.
var version = "dev"

func main() {
	// Parse command line arguments
	var (
		configPath  string
		inboxDir    string
		logLevel    string
		noMouse     bool
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Config file (default: user config dir)")
	flag.StringVar(&inboxDir, "inbox", "", "Inbox directory to watch for audio files")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&noMouse, "no-mouse", false, "Disable mouse reporting for this run")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("hearsay", version)
		return
	}

	// Set up logging; the alternate screen owns stdout from here on
	logging.Init("hearsay.log", logLevel)

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

	// The zone manager backs mouse hit testing in the UI
	zone.NewGlobal()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	var configSvc config.Service
	if configPath != "" {
		configSvc = config.NewServiceAtPath(configPath, bus)
	} else {
		configSvc = config.NewServiceWithBus(bus)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Apply command line overrides
	if inboxDir != "" {
		abs, err := filepath.Abs(inboxDir)
		if err != nil {
			fmt.Printf("Error resolving inbox path: %v\n", err)
			os.Exit(1)
		}
		cfg.InboxDir = abs
	}
	if noMouse {
		cfg.UI.Mouse = false
	}

	// Wire services and UI
	co, err := coordinator.New(cfg, configSvc, bus)
	if err != nil {
		fmt.Printf("Error starting services: %v\n", err)
		os.Exit(1)
	}

	if err := co.Start(ctx); err != nil {
		fmt.Printf("Error starting inbox watch: %v\n", err)
		os.Exit(1)
	}

	// Run the UI
	if err := co.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
