package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/quantmind-br/pylaunch/internal/cmd"
	"github.com/quantmind-br/pylaunch/internal/config"
	"github.com/quantmind-br/pylaunch/internal/launch"
	"github.com/quantmind-br/pylaunch/internal/logging"
	"github.com/quantmind-br/pylaunch/internal/ui"
)

var version = "dev"

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: cfg.Paths.LogFile,
		NoColor: cfg.Logging.Color == "never",
	})

	ui.InitColors()

	// Snapshot the environment once; everything downstream works from
	// this, never from os.Getenv.
	env := config.CaptureEnvironment()

	// Execute root command
	rootCmd := cmd.NewRootCmd(cfg, env, afero.NewOsFs(), launch.NewOSExecer(), log, version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Debug().Err(err).Msg("launch failed")
		os.Exit(1)
	}
}
