package cycler

import (
	"errors"
	"strings"

	"github.com/lazyvibe/ratcycle/internal/notify"
)

// Base error kinds, matched with errors.Is against *Error.
var (
	ErrToolMissing           = errors.New("required tool missing")
	ErrDeviceDiscovery       = errors.New("device discovery failed")
	ErrProfileCount          = errors.New("profile count invalid")
	ErrInvalidCurrentProfile = errors.New("current profile invalid")
	ErrActivation            = errors.New("profile activation failed")
	ErrNotificationDelivery  = errors.New("notification delivery failed")
)

// ErrorKind is the category of a cycle failure.
type ErrorKind string

const (
	KindToolMissing           ErrorKind = "tool_missing"
	KindDeviceDiscovery       ErrorKind = "device_discovery"
	KindProfileCount          ErrorKind = "profile_count"
	KindInvalidCurrentProfile ErrorKind = "invalid_current_profile"
	KindActivation            ErrorKind = "activation"
	KindNotificationDelivery  ErrorKind = "notification_delivery"
)

var kindSentinels = map[ErrorKind]error{
	KindToolMissing:           ErrToolMissing,
	KindDeviceDiscovery:       ErrDeviceDiscovery,
	KindProfileCount:          ErrProfileCount,
	KindInvalidCurrentProfile: ErrInvalidCurrentProfile,
	KindActivation:            ErrActivation,
	KindNotificationDelivery:  ErrNotificationDelivery,
}

// Error is a terminal failure of one cycle step.
type Error struct {
	Kind   ErrorKind
	State  State  // last state reached before the failure
	Device string // device handle, if one was discovered
	Detail string // message shown to the user
	Err    error  // underlying error, may be nil
}

func newError(kind ErrorKind, state State, detail string, err error) *Error {
	return &Error{Kind: kind, State: state, Detail: detail, Err: err}
}

func (e *Error) Error() string {
	head := string(e.Kind)
	if base, ok := kindSentinels[e.Kind]; ok {
		head = base.Error()
	}
	if e.Device != "" {
		head += " on " + e.Device
	}

	parts := make([]string, 0, 3)
	if head != "" {
		parts = append(parts, head)
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is interface
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if base, ok := kindSentinels[e.Kind]; ok && base == target {
		return true
	}
	return errors.Is(e.Err, target)
}

// Notice returns the notification that reports this error to the user.
func (e *Error) Notice() notify.Notification {
	detail := e.Detail
	if detail == "" {
		detail = e.Error()
	}
	return notify.NewNotification(notify.TitleError, detail)
}

// MissingToolsError reports required executables that could not be found.
func MissingToolsError(names []string) *Error {
	return newError(KindToolMissing, StateStart,
		"missing required commands: "+strings.Join(names, ", "), nil)
}

// KindOf returns the ErrorKind of err, or "" when err is not a cycle error.
func KindOf(err error) ErrorKind {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Kind
	}
	return ""
}
