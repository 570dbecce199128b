package ratbag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lazyvibe/ratcycle/internal/model"
	"github.com/lazyvibe/ratcycle/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const g502Info = `mouse0 - Logitech G502 HERO Gaming Mouse
             Model: usb:046d:c08b:0
 Number of Buttons: 11
    Number of Leds: 2
Number of Profiles: 3
Profile 0: (active)
  Name: n/a
  Report Rate: 1000Hz
Profile 1:
  Name: n/a
  Report Rate: 1000Hz
Profile 2: (disabled)
  Name: n/a
`

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls   []call
	outputs map[string]string
	errs    map[string]error
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	key := strings.Join(args, " ")
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	return []byte(f.outputs[key]), nil
}

func newTestClient(t *testing.T, command []string, f *fakeRunner) *Client {
	t.Helper()
	c, err := New(command, f.run)
	require.NoError(t, err)
	return c
}

func TestCountEnabledProfiles(t *testing.T) {
	tests := []struct {
		name string
		info string
		want int
	}{
		{name: "real info output", info: g502Info, want: 2},
		{
			name: "three profiles one disabled",
			info: "Profile 0: (active)\nProfile 1:\nProfile 2: (disabled)\n",
			want: 2,
		},
		{name: "no profile lines", info: "mouse0 - Unknown\nNumber of Profiles: 0\n", want: 0},
		{name: "indented profile lines do not count", info: "  Profile 0:\n\tProfile 1:\n", want: 0},
		{name: "all disabled", info: "Profile 0: (disabled)\nProfile 1: (disabled)\n", want: 0},
		{name: "empty", info: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountEnabledProfiles(tt.info))
		})
	}
}

func TestParseDevices(t *testing.T) {
	assert.Equal(t,
		[]model.Device{{ID: "mouse0", Description: "Logitech G502"}},
		ParseDevices("mouse0:Logitech G502\n"),
	)
	assert.Len(t, ParseDevices("mouse0:Logitech G502\nmouse1:Razer Viper\n"), 2)
	assert.Empty(t, ParseDevices(""))
	assert.Empty(t, ParseDevices("\n  \n"))
}

func TestClientCommands(t *testing.T) {
	dev := model.Device{ID: "mouse0"}
	f := &fakeRunner{outputs: map[string]string{
		"list":                      "\x1b[1mmouse0\x1b[0m:Logitech G502\r\n",
		"mouse0 info":               g502Info,
		"mouse0 profile active get": "1 \n",
	}}
	c := newTestClient(t, nil, f)
	ctx := context.Background()

	assert.Equal(t, "ratbagctl", c.Executable())

	devices, err := c.ListDevices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Device{{ID: "mouse0", Description: "Logitech G502"}}, devices)

	count, err := c.EnabledProfiles(ctx, dev)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	current, err := c.ActiveProfile(ctx, dev)
	require.NoError(t, err)
	assert.Equal(t, "1", current)

	require.NoError(t, c.SetActiveProfile(ctx, dev, 0))

	require.Len(t, f.calls, 4)
	assert.Equal(t, call{name: "ratbagctl", args: []string{"list"}}, f.calls[0])
	assert.Equal(t, call{name: "ratbagctl", args: []string{"mouse0", "profile", "active", "set", "0"}}, f.calls[3])
}

func TestClientCommandPrefix(t *testing.T) {
	f := &fakeRunner{outputs: map[string]string{}}
	c := newTestClient(t, []string{"sudo", "-n", "ratbagctl"}, f)

	require.NoError(t, c.SetActiveProfile(context.Background(), model.Device{ID: "mouse0"}, 2))
	require.Len(t, f.calls, 1)
	assert.Equal(t, "sudo", f.calls[0].name)
	assert.Equal(t, []string{"-n", "ratbagctl", "mouse0", "profile", "active", "set", "2"}, f.calls[0].args)
}

func TestClientPropagatesErrors(t *testing.T) {
	setErr := &utils.CommandError{Name: "ratbagctl", ExitCode: 1, Err: errors.New("exit status 1")}
	f := &fakeRunner{errs: map[string]error{
		"list":                        errors.New("dbus unavailable"),
		"mouse0 profile active set 1": setErr,
	}}
	c := newTestClient(t, nil, f)
	ctx := context.Background()

	_, err := c.ListDevices(ctx)
	assert.EqualError(t, err, "dbus unavailable")

	err = c.SetActiveProfile(ctx, model.Device{ID: "mouse0"}, 1)
	var cerr *utils.CommandError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 1, cerr.ExitCode)
}

func TestNewValidates(t *testing.T) {
	_, err := New([]string{""}, func(context.Context, string, ...string) ([]byte, error) { return nil, nil })
	assert.Error(t, err)

	_, err = New(nil, nil)
	assert.Error(t, err)
}
