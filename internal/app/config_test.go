package app

import (
	"testing"

	"github.com/lazyvibe/ratcycle/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), config)
	assert.Equal(t, []string{"ratbagctl", "notify-send"}, config.RequiredTools())
}

func TestLoadConfigOverrides(t *testing.T) {
	config, err := LoadConfig(envFrom(map[string]string{
		EnvRatbagctl:  "sudo -n ratbagctl",
		EnvNotifySend: "/usr/local/bin/notify-send -a ratcycle",
		EnvToolEnv:    "LANG=C; NO_COLOR=1",
		EnvLogLevel:   " debug ",
		EnvLogFormat:  "json",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"sudo", "-n", "ratbagctl"}, config.RatbagCommand)
	assert.Equal(t, []string{"/usr/local/bin/notify-send", "-a", "ratcycle"}, config.NotifyCommand)
	assert.Equal(t, []string{"LANG=C", "NO_COLOR=1"}, config.ToolEnv)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, []string{"sudo", "/usr/local/bin/notify-send"}, config.RequiredTools())
}

func TestLoadConfigDesktopNotifierDropsNotifySend(t *testing.T) {
	config, err := LoadConfig(envFrom(map[string]string{EnvNotifier: "desktop"}))
	require.NoError(t, err)

	assert.Equal(t, notify.BackendDesktop, config.Notifier)
	assert.Equal(t, []string{"ratbagctl"}, config.RequiredTools())
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]map[string]string{
		"bad notifier":     {EnvNotifier: "growl"},
		"bad tool env":     {EnvToolEnv: "LANG"},
		"unterminated cmd": {EnvRatbagctl: `"ratbagctl`},
		"bad notify cmd":   {EnvNotifySend: `notify-send \`},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(envFrom(env))
			assert.Error(t, err)
		})
	}
}
