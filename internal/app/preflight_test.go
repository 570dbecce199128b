package app

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/lazyvibe/ratcycle/internal/cycler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubResolver(t *testing.T, present ...string) {
	t.Helper()
	prev := resolveExecutable
	t.Cleanup(func() { resolveExecutable = prev })

	known := make(map[string]bool, len(present))
	for _, name := range present {
		known[name] = true
	}
	resolveExecutable = func(name string) (string, bool) {
		if known[name] {
			return "/usr/bin/" + name, true
		}
		return "", false
	}
}

func TestCheckToolsAllPresent(t *testing.T) {
	stubResolver(t, "ratbagctl", "notify-send")

	p := CheckTools("ratbagctl", "notify-send")
	assert.True(t, p.OK())
	assert.Empty(t, p.Missing())
	assert.NoError(t, p.Err())
	assert.Equal(t, "/usr/bin/ratbagctl", p.Tools[0].Path)

	var out bytes.Buffer
	p.Report(&out)
	assert.Empty(t, out.String())
}

func TestCheckToolsReportsEveryMissingToolOnce(t *testing.T) {
	stubResolver(t)

	p := CheckTools("ratbagctl", "notify-send", "ratbagctl")
	require.False(t, p.OK())
	assert.Equal(t, []string{"ratbagctl", "notify-send"}, p.Missing())
	assert.ErrorIs(t, p.Err(), cycler.ErrToolMissing)

	var out bytes.Buffer
	p.Report(&out)
	printed := ansi.Strip(out.String())

	assert.Contains(t, printed, "The following required system commands are missing:")
	assert.Contains(t, printed, "ratbagctl")
	assert.Contains(t, printed, "notify-send")
	assert.Equal(t, 1, bytes.Count([]byte(printed), []byte("Exiting")), "exit line printed once")
}

func TestCheckToolsPartial(t *testing.T) {
	stubResolver(t, "ratbagctl")

	p := CheckTools("ratbagctl", "notify-send")
	assert.Equal(t, []string{"notify-send"}, p.Missing())
}
