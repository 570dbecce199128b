// Package cycler advances a mouse to its next enabled firmware profile.
package cycler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lazyvibe/ratcycle/internal/model"
	"github.com/lazyvibe/ratcycle/internal/notify"
	"github.com/lazyvibe/ratcycle/internal/ui/styles"
	"github.com/rs/zerolog"
)

// Process exit codes returned by Execute.
const (
	ExitOK      = 0
	ExitFailure = 1
)

const maxDescriptionLen = 48

// DeviceTool is the subset of the device-control tool the cycler needs.
type DeviceTool interface {
	ListDevices(ctx context.Context) ([]model.Device, error)
	EnabledProfiles(ctx context.Context, dev model.Device) (int, error)
	ActiveProfile(ctx context.Context, dev model.Device) (string, error)
	SetActiveProfile(ctx context.Context, dev model.Device, index int) error
}

// Config wires the cycler's collaborators.
type Config struct {
	Tool     DeviceTool
	Notifier notify.Notifier
	// Output receives the informational progress lines. Defaults to os.Stdout.
	Output io.Writer
	Logger zerolog.Logger
}

// Cycler runs one profile cycle against a single device.
type Cycler struct {
	tool     DeviceTool
	notifier notify.Notifier
	out      io.Writer
	log      zerolog.Logger
}

// Result describes a completed cycle.
type Result struct {
	Device    model.Device
	Count     int
	Current   int
	Next      int
	Name      string
	KnownName bool
	State     State
}

// New creates a Cycler.
func New(cfg Config) (*Cycler, error) {
	if cfg.Tool == nil {
		return nil, errors.New("nil Tool is invalid")
	}
	if cfg.Notifier == nil {
		return nil, errors.New("nil Notifier is invalid")
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	return &Cycler{
		tool:     cfg.Tool,
		notifier: cfg.Notifier,
		out:      out,
		log:      cfg.Logger,
	}, nil
}

// Execute runs a full cycle, reports the outcome to the user and returns the
// process exit code. It is the only place where failures become notifications.
func (c *Cycler) Execute(ctx context.Context) int {
	res, err := c.Cycle(ctx)
	if err != nil {
		return c.Fail(ctx, err)
	}

	message := fmt.Sprintf("%s profile activated", res.Name)
	if err := c.send(ctx, notify.NewNotification(notify.TitleSuccess, message), res.Device, StateActivated); err != nil {
		return c.Fail(ctx, err)
	}
	fmt.Fprintln(c.out, styles.SuccessText.Render(message))

	c.log.Info().
		Str("device", res.Device.ID).
		Int("profile", res.Next).
		Str("name", res.Name).
		Str("state", string(StateReported)).
		Msg("Profile cycled")
	return ExitOK
}

// Fail reports err to the user and returns ExitFailure. Notification delivery
// failures are only logged since the notifier is the channel that broke.
func (c *Cycler) Fail(ctx context.Context, err error) int {
	var cerr *Error
	if !errors.As(err, &cerr) {
		cerr = newError(KindOf(err), StateFailed, "", err)
	}

	c.log.Error().
		Err(err).
		Str("kind", string(cerr.Kind)).
		Str("state", string(cerr.State)).
		Str("device", cerr.Device).
		Msg("Profile cycle failed")

	if cerr.Kind == KindNotificationDelivery {
		return ExitFailure
	}

	if nerr := c.notifier.Notify(ctx, cerr.Notice()); nerr != nil {
		c.log.Error().
			Err(nerr).
			Str("kind", string(KindNotificationDelivery)).
			Msg("Could not deliver failure notification")
	}
	return ExitFailure
}

// Cycle discovers the device, computes the next profile, activates it and
// maps it to a display name. Every failure is returned as *Error.
func (c *Cycler) Cycle(ctx context.Context) (Result, error) {
	res := Result{State: StateStart}

	dev, err := c.discover(ctx)
	if err != nil {
		return res, err
	}
	res.Device = dev
	res.State = StateDeviceDiscovered

	count, err := c.countProfiles(ctx, dev)
	if err != nil {
		return res, err
	}
	res.Count = count
	res.State = StateProfileCountKnown

	current, err := c.tool.ActiveProfile(ctx, dev)
	if err != nil {
		return res, c.deviceError(KindInvalidCurrentProfile, res.State, dev,
			"Could not read the current profile", err)
	}
	res.State = StateCurrentProfileKnown

	sel, err := NextProfile(current, count)
	if err != nil {
		return res, c.deviceError(KindInvalidCurrentProfile, res.State, dev,
			"Current profile is not valid", err)
	}
	res.Current = sel.Profiles[sel.Position]
	res.Next = sel.Next
	res.State = StateNextProfileComputed

	c.printf("Profiles: %v", sel.Profiles)
	c.printf("Current index: %s, next index: %s, next profile: %s",
		styles.Value.Render(fmt.Sprint(sel.Position)),
		styles.Value.Render(fmt.Sprint((sel.Position+1)%len(sel.Profiles))),
		styles.Value.Render(fmt.Sprint(sel.Next)))
	c.log.Debug().
		Str("device", dev.ID).
		Int("current", res.Current).
		Int("next", res.Next).
		Msg("Computed next profile")

	if err := c.tool.SetActiveProfile(ctx, dev, sel.Next); err != nil {
		c.printf("%s", styles.WarningText.Render("Profile activation failed"))
		return res, c.deviceError(KindActivation, res.State, dev,
			fmt.Sprintf("Failed to activate profile: %d", sel.Next), err)
	}
	res.State = StateActivated

	name, known, err := c.profileName(ctx, dev, sel.Next)
	if err != nil {
		return res, err
	}
	res.Name = name
	res.KnownName = known

	return res, nil
}

func (c *Cycler) discover(ctx context.Context) (model.Device, error) {
	devices, err := c.tool.ListDevices(ctx)
	if err != nil {
		return model.Device{}, newError(KindDeviceDiscovery, StateStart, "Failed to list mice", err)
	}

	switch len(devices) {
	case 1:
	case 0:
		return model.Device{}, newError(KindDeviceDiscovery, StateStart, "No mouse detected, exiting", nil)
	default:
		return model.Device{}, newError(KindDeviceDiscovery, StateStart,
			fmt.Sprintf("More than 1 mouse detected (%d), exiting", len(devices)), nil)
	}

	dev := devices[0]
	c.log.Debug().Str("device", dev.ID).Str("description", dev.Description).Msg("Discovered device")
	if dev.Description != "" {
		c.printf("Device: %s (%s)", dev.ID, styles.TruncateWithEllipsis(dev.Description, maxDescriptionLen))
	}
	return dev, nil
}

func (c *Cycler) countProfiles(ctx context.Context, dev model.Device) (int, error) {
	count, err := c.tool.EnabledProfiles(ctx, dev)
	if err != nil {
		return 0, c.deviceError(KindProfileCount, StateDeviceDiscovered, dev,
			"Something went wrong acquiring profiles", err)
	}
	if count < 1 {
		return 0, c.deviceError(KindProfileCount, StateDeviceDiscovered, dev,
			"Something went wrong acquiring profiles", fmt.Errorf("%d enabled profiles reported", count))
	}

	c.printf("Number of active profiles detected: %s", styles.Value.Render(fmt.Sprint(count)))
	c.log.Debug().Str("device", dev.ID).Int("profiles", count).Msg("Counted enabled profiles")
	return count, nil
}

// profileName maps index to its label and warns the user about unmapped
// indices. The warning does not undo the activation.
func (c *Cycler) profileName(ctx context.Context, dev model.Device, index int) (string, bool, error) {
	name, known := model.ProfileName(index)
	if known {
		return name, true, nil
	}

	c.log.Warn().Str("device", dev.ID).Int("profile", index).Msg("No display name for profile")
	warning := notify.NewNotification(notify.TitleWarning, "UNDEFINED profile detected, please fix mapping")
	if err := c.send(ctx, warning, dev, StateActivated); err != nil {
		return name, false, err
	}
	return name, false, nil
}

func (c *Cycler) send(ctx context.Context, n notify.Notification, dev model.Device, state State) error {
	if err := c.notifier.Notify(ctx, n); err != nil {
		return c.deviceError(KindNotificationDelivery, state, dev, "", err)
	}
	return nil
}

func (c *Cycler) deviceError(kind ErrorKind, state State, dev model.Device, detail string, err error) *Error {
	e := newError(kind, state, detail, err)
	e.Device = dev.ID
	return e
}

func (c *Cycler) printf(format string, args ...any) {
	fmt.Fprintln(c.out, styles.Diagnostic.Render(fmt.Sprintf(format, args...)))
}
