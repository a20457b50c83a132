// Ghost-esp-control is a terminal companion for ESP32 boards running the
// Ghost ESP firmware.
//
// Running without a subcommand opens the interactive menu over the configured
// serial, TCP or WebSocket endpoint. See 'ghost-esp-control --help'.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/ghost-esp-control/internal/app"
	"github.com/atomicstack/ghost-esp-control/internal/config"
	"github.com/atomicstack/ghost-esp-control/internal/logging"
	"github.com/atomicstack/ghost-esp-control/internal/logging/events"
	"github.com/atomicstack/ghost-esp-control/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd(os.Environ()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cli carries the bound flags between the cobra commands.
type cli struct {
	binder *config.Binder
}

func newRootCmd(environ []string) *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "ghost-esp-control",
		Short: "Menu-driven controller for Ghost ESP boards",
		Long: `Drives a Ghost ESP board over UART with the handheld menu: WiFi, BLE
and GPS command pages, captures written to the data directory, and a live
terminal of the board's output.

Without a subcommand the interactive menu starts.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.setup(args)
			if err != nil {
				return err
			}
			defer logging.Sync()
			if err := app.Run(cfg.App); err != nil {
				logging.Error(err)
				return err
			}
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	c.binder = config.Bind(root.PersistentFlags(), environ)

	root.AddCommand(
		newSendCmd(c),
		newCatalogCmd(),
		newPortsCmd(),
		newVersionCmd(),
	)
	return root
}

// setup validates the configuration and starts logging.
func (c *cli) setup(args []string) (config.Config, error) {
	cfg := c.binder.Config(args)
	cfg.App.Version = version.Version
	if err := config.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("configuration: %w", err)
	}
	if err := logging.Configure(logging.Options{Path: cfg.Logging.FilePath, Level: cfg.Logging.Level}); err != nil {
		return cfg, err
	}
	logging.SetTraceEnabled(cfg.Logging.Trace)
	traceStartup(cfg)
	return cfg, nil
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"version": version.Full(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
