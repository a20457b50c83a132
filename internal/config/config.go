package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/atomicstack/ghost-esp-control/internal/app"
	"github.com/atomicstack/ghost-esp-control/internal/settings"
	"github.com/atomicstack/ghost-esp-control/internal/uart"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Level    string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envPort       = "GHOST_ESP_PORT"
	envBaud       = "GHOST_ESP_BAUD"
	envDataDir    = "GHOST_ESP_DATA_DIR"
	envSettings   = "GHOST_ESP_SETTINGS"
	envWidth      = "GHOST_ESP_WIDTH"
	envHeight     = "GHOST_ESP_HEIGHT"
	envShowFooter = "GHOST_ESP_FOOTER"
	envVerbose    = "GHOST_ESP_VERBOSE"
	envTrace      = "GHOST_ESP_TRACE"
	envLogFile    = "GHOST_ESP_LOG_FILE"
	envLogLevel   = "GHOST_ESP_LOG_LEVEL"
)

// DefaultDataDir is the capture root used when none is configured.
const DefaultDataDir = "ghost_esp"

// Binder holds the flag values registered on a flag set until they are
// turned into a Config.
type Binder struct {
	port     *string
	baud     *int
	dataDir  *string
	settings *string
	width    *int
	height   *int
	footer   *bool
	trace    *bool
	verbose  *bool
	logFile  *string
	logLevel *string
}

// Bind registers every option on fs, each defaulting from its environment
// variable in environ.
func Bind(fs *pflag.FlagSet, environ []string) *Binder {
	env := parseEnv(environ)
	return &Binder{
		port:     fs.StringP("port", "p", envOrDefault(env, envPort, ""), "serial device, tcp://host:port or ws://host/path (empty picks the first serial port)"),
		baud:     fs.IntP("baud", "b", envOrInt(env, envBaud, uart.DefaultBaud), "serial baud rate"),
		dataDir:  fs.String("data-dir", envOrDefault(env, envDataDir, DefaultDataDir), "root directory for capture files"),
		settings: fs.String("settings", envOrDefault(env, envSettings, settings.DefaultPath()), "path to the settings file"),
		width:    fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:   fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		footer:   fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)"),
		trace:    fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		verbose:  fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for sent commands"),
		logFile:  fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		logLevel: fs.String("log-level", envOrDefault(env, envLogLevel, "info"), "minimum log level (debug, info, warn, error)"),
	}
}

// Config assembles the parsed values. args are the positional arguments
// left after flag parsing.
func (b *Binder) Config(args []string) Config {
	return Config{
		App: app.Config{
			Port:         strings.TrimSpace(*b.port),
			Baud:         *b.baud,
			DataDir:      *b.dataDir,
			SettingsPath: *b.settings,
			Width:        *b.width,
			Height:       *b.height,
			ShowFooter:   *b.footer,
			Verbose:      *b.verbose,
		},
		Logging: Logging{
			FilePath: *b.logFile,
			Level:    *b.logLevel,
			Trace:    *b.trace,
		},
		Features: Features{
			Verbose: *b.verbose,
		},
		Flags: map[string]string{
			"port":     *b.port,
			"baud":     strconv.Itoa(*b.baud),
			"dataDir":  *b.dataDir,
			"settings": *b.settings,
			"width":    strconv.Itoa(*b.width),
			"height":   strconv.Itoa(*b.height),
			"footer":   strconv.FormatBool(*b.footer),
			"trace":    strconv.FormatBool(*b.trace),
			"verbose":  strconv.FormatBool(*b.verbose),
			"logFile":  *b.logFile,
			"logLevel": *b.logLevel,
		},
		Args: append([]string(nil), args...),
	}
}

// LoadArgs parses args and environ without a command tree. Tests use it.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("ghost-esp-control", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	b := Bind(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg := b.Config(fs.Args())
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects values the application cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.Baud <= 0 {
		return fmt.Errorf("baud must be > 0 (got %d)", cfg.App.Baud)
	}
	if strings.TrimSpace(cfg.App.DataDir) == "" {
		return errors.New("data dir must not be empty")
	}
	if cfg.Logging.Level != "" {
		if _, err := zapcore.ParseLevel(cfg.Logging.Level); err != nil {
			return fmt.Errorf("log level: %w", err)
		}
	}
	return nil
}
