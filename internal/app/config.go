// Package app provides application-level configuration and startup wiring.
package app

import (
	"fmt"
	"strings"

	"github.com/lazyvibe/ratcycle/internal/notify"
	"github.com/lazyvibe/ratcycle/internal/ratbag"
	"github.com/lazyvibe/ratcycle/pkg/utils"
)

// Environment variables read by LoadConfig.
const (
	EnvRatbagctl  = "RATCYCLE_RATBAGCTL"
	EnvNotifySend = "RATCYCLE_NOTIFY_SEND"
	EnvNotifier   = "RATCYCLE_NOTIFIER"
	EnvToolEnv    = "RATCYCLE_TOOL_ENV"
	EnvLogLevel   = "RATCYCLE_LOG_LEVEL"
	EnvLogFormat  = "RATCYCLE_LOG_FORMAT"
)

// Config holds the application configuration.
type Config struct {
	// RatbagCommand is the device tool command line, executable first.
	RatbagCommand []string
	// NotifyCommand is the notify-send command line, executable first.
	NotifyCommand []string
	// Notifier selects the notification backend.
	Notifier notify.Backend
	// ToolEnv holds extra KEY=VALUE entries for tool subprocesses.
	ToolEnv []string
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogFormat is "auto", "console" or "json".
	LogFormat string
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		RatbagCommand: []string{ratbag.DefaultCommand},
		NotifyCommand: []string{notify.DefaultCommand},
		Notifier:      notify.BackendNotifySend,
		LogLevel:      "info",
		LogFormat:     "auto",
	}
}

// LoadConfig builds the configuration from environment variables. getenv is
// usually os.Getenv.
func LoadConfig(getenv func(string) string) (*Config, error) {
	config := DefaultConfig()
	get := func(key string) string {
		return strings.TrimSpace(getenv(key))
	}

	var err error
	if config.RatbagCommand, err = utils.ParseCommand(get(EnvRatbagctl), ratbag.DefaultCommand); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvRatbagctl, err)
	}
	if config.NotifyCommand, err = utils.ParseCommand(get(EnvNotifySend), notify.DefaultCommand); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvNotifySend, err)
	}
	if config.Notifier, err = notify.ParseBackend(get(EnvNotifier)); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvNotifier, err)
	}
	if config.ToolEnv, err = utils.ParseEnvAssignments(getenv(EnvToolEnv)); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvToolEnv, err)
	}
	if v := get(EnvLogLevel); v != "" {
		config.LogLevel = v
	}
	if v := get(EnvLogFormat); v != "" {
		config.LogFormat = v
	}

	return config, nil
}

// RequiredTools returns the executables that must be present before a cycle
// can run.
func (c *Config) RequiredTools() []string {
	tools := []string{c.RatbagCommand[0]}
	if c.Notifier == notify.BackendNotifySend {
		tools = append(tools, c.NotifyCommand[0])
	}
	return tools
}
