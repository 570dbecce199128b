// Package ratbag drives the ratbagctl command line tool.
package ratbag

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/lazyvibe/ratcycle/internal/model"
	"github.com/lazyvibe/ratcycle/pkg/utils"
)

// DefaultCommand is the executable used when no override is configured.
const DefaultCommand = "ratbagctl"

const (
	profileLinePrefix = "Profile"
	disabledMarker    = "(disabled)"
)

// Client issues ratbagctl subcommands through a CommandRunner.
type Client struct {
	command []string
	run     utils.CommandRunner
}

// New creates a Client. command is the tool's command line (executable first);
// an empty command falls back to DefaultCommand.
func New(command []string, run utils.CommandRunner) (*Client, error) {
	if len(command) == 0 {
		command = []string{DefaultCommand}
	}
	if command[0] == "" {
		return nil, errors.New("ratbag: empty executable")
	}
	if run == nil {
		return nil, errors.New("ratbag: nil command runner")
	}
	return &Client{
		command: append([]string(nil), command...),
		run:     run,
	}, nil
}

// Executable returns the configured executable name or path.
func (c *Client) Executable() string {
	return c.command[0]
}

// ListDevices returns every device reported by "ratbagctl list".
func (c *Client) ListDevices(ctx context.Context) ([]model.Device, error) {
	out, err := c.exec(ctx, "list")
	if err != nil {
		return nil, err
	}
	return ParseDevices(out), nil
}

// Info returns the raw "ratbagctl <device> info" text.
func (c *Client) Info(ctx context.Context, dev model.Device) (string, error) {
	return c.exec(ctx, dev.ID, "info")
}

// EnabledProfiles counts the profiles the device reports as enabled.
func (c *Client) EnabledProfiles(ctx context.Context, dev model.Device) (int, error) {
	info, err := c.Info(ctx, dev)
	if err != nil {
		return 0, err
	}
	return CountEnabledProfiles(info), nil
}

// ActiveProfile returns the active profile index as trimmed text. The value
// is not validated here.
func (c *Client) ActiveProfile(ctx context.Context, dev model.Device) (string, error) {
	out, err := c.exec(ctx, dev.ID, "profile", "active", "get")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// SetActiveProfile switches the device to the given profile index. A non-zero
// exit from the tool is returned as a *utils.CommandError.
func (c *Client) SetActiveProfile(ctx context.Context, dev model.Device, index int) error {
	_, err := c.exec(ctx, dev.ID, "profile", "active", "set", strconv.Itoa(index))
	return err
}

func (c *Client) exec(ctx context.Context, args ...string) (string, error) {
	full := make([]string, 0, len(c.command)-1+len(args))
	full = append(full, c.command[1:]...)
	full = append(full, args...)

	out, err := c.run(ctx, c.command[0], full...)
	if err != nil {
		return "", err
	}
	return cleanOutput(out), nil
}

// cleanOutput drops colour sequences and carriage returns from tool output.
func cleanOutput(out []byte) string {
	s := ansi.Strip(string(out))
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// ParseDevices parses "ratbagctl list" output, one "<id>:<description>" per
// line. Blank lines and lines without a handle are ignored.
func ParseDevices(output string) []model.Device {
	var devices []model.Device
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if dev, ok := model.ParseDevice(line); ok {
			devices = append(devices, dev)
		}
	}
	return devices
}

// CountEnabledProfiles counts lines of "ratbagctl <device> info" output that
// start with "Profile" and are not marked "(disabled)".
func CountEnabledProfiles(info string) int {
	count := 0
	for _, line := range strings.Split(info, "\n") {
		if strings.HasPrefix(line, profileLinePrefix) && !strings.Contains(line, disabledMarker) {
			count++
		}
	}
	return count
}
