package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/ghost-esp-control/internal/uart"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.App.Port)
	assert.Equal(t, uart.DefaultBaud, cfg.App.Baud)
	assert.Equal(t, DefaultDataDir, cfg.App.DataDir)
	assert.NotEmpty(t, cfg.App.SettingsPath)
	assert.False(t, cfg.App.ShowFooter)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Trace)
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{
		"--port", "tcp://10.0.0.2:4000",
		"-b", "9600",
		"--data-dir", "/tmp/captures",
		"--width", "80",
		"--height", "24",
		"--footer",
		"--verbose",
		"--trace",
		"--log-file", "esp.log",
		"--log-level", "debug",
		"extra",
	}
	cfg, err := LoadArgs(args, nil)
	require.NoError(t, err)
	assert.Equal(t, "tcp://10.0.0.2:4000", cfg.App.Port)
	assert.Equal(t, 9600, cfg.App.Baud)
	assert.Equal(t, "/tmp/captures", cfg.App.DataDir)
	assert.Equal(t, 80, cfg.App.Width)
	assert.Equal(t, 24, cfg.App.Height)
	assert.True(t, cfg.App.ShowFooter)
	assert.True(t, cfg.App.Verbose)
	assert.True(t, cfg.Features.Verbose)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, "esp.log", cfg.Logging.FilePath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"extra"}, cfg.Args)
	assert.Equal(t, "9600", cfg.Flags["baud"])
}

func TestLoadArgsEnvironment(t *testing.T) {
	env := []string{
		"GHOST_ESP_PORT=/dev/ttyACM0",
		"GHOST_ESP_BAUD=230400",
		"GHOST_ESP_FOOTER=true",
		"GHOST_ESP_SETTINGS=/etc/ghost.yaml",
		"GHOST_ESP_WIDTH=not-a-number",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, env)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyACM0", cfg.App.Port)
	assert.Equal(t, 230400, cfg.App.Baud)
	assert.True(t, cfg.App.ShowFooter)
	assert.Equal(t, "/etc/ghost.yaml", cfg.App.SettingsPath)
	assert.Equal(t, 0, cfg.App.Width)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"--port", "COM4"}, []string{"GHOST_ESP_PORT=COM3"})
	require.NoError(t, err)
	assert.Equal(t, "COM4", cfg.App.Port)
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	cases := [][]string{
		{"--width", "-1"},
		{"--height", "-5"},
		{"--baud", "0"},
		{"--data-dir", " "},
		{"--log-level", "loud"},
		{"--unknown"},
	}
	for _, args := range cases {
		_, err := LoadArgs(args, nil)
		assert.Error(t, err, "%v", args)
	}
}

func TestBindOnSharedFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("root", pflag.ContinueOnError)
	b := Bind(fs, []string{"GHOST_ESP_VERBOSE=1"})
	require.NoError(t, fs.Parse([]string{"--footer"}))
	cfg := b.Config(fs.Args())
	assert.True(t, cfg.App.ShowFooter)
	assert.True(t, cfg.App.Verbose)
	assert.Empty(t, cfg.Args)
}
