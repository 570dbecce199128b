// Package notify delivers user-facing desktop notifications.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/lazyvibe/ratcycle/pkg/utils"
)

// Urgency is the notify-send urgency level.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyNormal   Urgency = "normal"
	UrgencyCritical Urgency = "critical"
)

// Notification titles used by the cycler.
const (
	TitleError   = "ERROR"
	TitleWarning = "WARNING"
	TitleSuccess = "SUCCESS"
)

const (
	// DefaultCommand is the notifier executable for BackendNotifySend.
	DefaultCommand = "notify-send"
	// DefaultTimeout is how long a notification stays on screen.
	DefaultTimeout = 3000 * time.Millisecond

	defaultTitle  = "ratcycle"
	maxMessageLen = 800
)

// Backend selects how notifications are delivered.
type Backend string

const (
	// BackendNotifySend shells out to notify-send.
	BackendNotifySend Backend = "notify-send"
	// BackendDesktop talks to the desktop notification service directly.
	BackendDesktop Backend = "desktop"
)

// ParseBackend validates a backend name; empty selects BackendNotifySend.
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case "", BackendNotifySend:
		return BackendNotifySend, nil
	case BackendDesktop:
		return BackendDesktop, nil
	default:
		return "", fmt.Errorf("unknown notifier backend %q (want %q or %q)", s, BackendNotifySend, BackendDesktop)
	}
}

// Notification is a single message shown to the user.
type Notification struct {
	Title   string
	Message string
	Urgency Urgency
	Timeout time.Duration
}

// NewNotification builds a Notification with normal urgency and the default timeout.
func NewNotification(title, message string) Notification {
	return Notification{
		Title:   title,
		Message: message,
		Urgency: UrgencyNormal,
		Timeout: DefaultTimeout,
	}
}

// Notifier delivers notifications. A returned error means the user did not
// get the message.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

func normalize(n Notification) Notification {
	n.Title = strings.TrimSpace(n.Title)
	if n.Title == "" {
		n.Title = defaultTitle
	}
	n.Message = strings.TrimSpace(n.Message)
	if len(n.Message) > maxMessageLen {
		n.Message = n.Message[:maxMessageLen] + "..."
	}
	if n.Urgency == "" {
		n.Urgency = UrgencyNormal
	}
	if n.Timeout <= 0 {
		n.Timeout = DefaultTimeout
	}
	return n
}

// CommandNotifier sends notifications through notify-send.
type CommandNotifier struct {
	command []string
	run     utils.CommandRunner
}

// NewCommandNotifier creates a CommandNotifier for the given command line;
// an empty command falls back to DefaultCommand.
func NewCommandNotifier(command []string, run utils.CommandRunner) (*CommandNotifier, error) {
	if len(command) == 0 {
		command = []string{DefaultCommand}
	}
	if command[0] == "" {
		return nil, errors.New("notify: empty executable")
	}
	if run == nil {
		return nil, errors.New("notify: nil command runner")
	}
	return &CommandNotifier{
		command: append([]string(nil), command...),
		run:     run,
	}, nil
}

// Executable returns the configured executable name or path.
func (c *CommandNotifier) Executable() string {
	return c.command[0]
}

// Notify runs "notify-send -u <urgency> -t <ms> <title> <message>".
func (c *CommandNotifier) Notify(ctx context.Context, n Notification) error {
	n = normalize(n)

	args := make([]string, 0, len(c.command)+5)
	args = append(args, c.command[1:]...)
	args = append(args,
		"-u", string(n.Urgency),
		"-t", strconv.FormatInt(n.Timeout.Milliseconds(), 10),
		n.Title, n.Message,
	)

	if _, err := c.run(ctx, c.command[0], args...); err != nil {
		return fmt.Errorf("send notification %q: %w", n.Title, err)
	}
	return nil
}

// DesktopNotifier sends notifications through beeep. Urgency and timeout are
// left to the notification service.
type DesktopNotifier struct {
	send func(title, message string) error
}

// NewDesktopNotifier creates a DesktopNotifier.
func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Notify satisfies Notifier.
func (d *DesktopNotifier) Notify(_ context.Context, n Notification) error {
	n = normalize(n)
	if err := d.send(n.Title, n.Message); err != nil {
		return fmt.Errorf("send desktop notification %q: %w", n.Title, err)
	}
	return nil
}
