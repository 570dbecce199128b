package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lazyvibe/ratcycle/internal/cycler"
	"github.com/lazyvibe/ratcycle/internal/logging"
	"github.com/lazyvibe/ratcycle/internal/notify"
	"github.com/lazyvibe/ratcycle/internal/ratbag"
	"github.com/lazyvibe/ratcycle/pkg/utils"
	"github.com/rs/zerolog"
)

// Options carries the process environment into Run.
type Options struct {
	Getenv func(string) string
	Stdout io.Writer
	Stderr io.Writer
}

// Run loads configuration, checks required tools and performs one profile
// cycle. It returns the process exit code.
func Run(ctx context.Context, opts Options) int {
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	config, err := LoadConfig(opts.Getenv)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "Error loading config: %v\n", err)
		return cycler.ExitFailure
	}

	logger := logging.Init(logging.Config{
		Format:    config.LogFormat,
		Level:     config.LogLevel,
		Component: "ratcycle",
		Output:    opts.Stderr,
	})
	logger, _ = logging.WithRunID(logger, "")

	preflight := CheckTools(config.RequiredTools()...)
	if !preflight.OK() {
		preflight.Report(opts.Stdout)
		logger.Error().Err(preflight.Err()).Strs("missing", preflight.Missing()).Msg("Required tools not found")
		return cycler.ExitFailure
	}
	for _, tool := range preflight.Tools {
		logger.Debug().Str("tool", tool.Name).Str("path", tool.Path).Msg("Resolved tool")
	}

	c, err := NewCycler(config, opts.Stdout, logger)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "Error initializing: %v\n", err)
		return cycler.ExitFailure
	}
	return c.Execute(ctx)
}

// NewCycler wires the device tool client and notifier described by config.
func NewCycler(config *Config, out io.Writer, logger zerolog.Logger) (*cycler.Cycler, error) {
	run := utils.NewCommandRunner(config.ToolEnv)
	if len(config.ToolEnv) > 0 {
		logger.Debug().Strs("env", config.ToolEnv).Msg("Extra tool environment")
	}

	tool, err := ratbag.New(config.RatbagCommand, run)
	if err != nil {
		return nil, err
	}

	var notifier notify.Notifier
	switch config.Notifier {
	case notify.BackendDesktop:
		notifier = notify.NewDesktopNotifier()
	default:
		notifier, err = notify.NewCommandNotifier(config.NotifyCommand, run)
		if err != nil {
			return nil, err
		}
	}

	return cycler.New(cycler.Config{
		Tool:     tool,
		Notifier: notifier,
		Output:   out,
		Logger:   logger,
	})
}
