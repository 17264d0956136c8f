package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

// run executes the CLI and returns the process exit code
func run() int {
	// Define command-line flags
	configPath := flag.String("config", "", "Path to TOML configuration file (default: config.toml if present)")
	flagNoColor := flag.Bool("no-color", false, "Disable color output")
	exportDir := flag.String("export-dir", "", "Directory for HTML exports (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error (overrides config)")
	once := flag.Bool("once", false, "Run a single search and exit")
	flag.Parse()

	if *flagNoColor {
		color.NoColor = true // disables colorized output globally
	}

	cfg, err := LoadWithFallback(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}
	if *exportDir != "" {
		cfg.Export.Dir = *exportDir
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	log, err := NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	ref, err := LoadReferenceData(cfg.Data, log)
	if err != nil {
		log.Error("Failed to load reference data", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	informer := NewInformer(
		ref,
		NewFlightClient(cfg.Flights, cfg.Timeout(), log),
		NewWeatherClient(cfg.Weather, cfg.Timeout(), log),
		NewConsolePrompter(os.Stdin, os.Stdout),
		NewHTMLExporter(cfg.Export.Dir, log),
		os.Stdout,
		os.Stderr,
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		select {
		case <-done:
		case <-ctx.Done():
			// Prompts block on stdin and cannot observe ctx
			select {
			case <-done:
			case <-time.After(time.Second):
				fmt.Fprintln(os.Stdout)
				_ = log.Sync()
				os.Exit(130)
			}
		}
	}()

	runErr := informer.Run(ctx, joinQuery(flag.Args()), *once)
	close(done)

	if runErr != nil {
		log.Error("Session ended with error", zap.Error(runErr))
		return 1
	}
	return 0
}
