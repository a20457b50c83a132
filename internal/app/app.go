package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/ghost-esp-control/internal/backend"
	"github.com/atomicstack/ghost-esp-control/internal/logging"
	"github.com/atomicstack/ghost-esp-control/internal/logging/events"
	"github.com/atomicstack/ghost-esp-control/internal/settings"
	"github.com/atomicstack/ghost-esp-control/internal/uart"
	"github.com/atomicstack/ghost-esp-control/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	openTimeout  = 5 * time.Second
	linkInterval = 500 * time.Millisecond
)

// Config describes user-provided application options.
type Config struct {
	Port         string
	Baud         int
	DataDir      string
	SettingsPath string
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	Version      string
}

var listPorts = uart.ListPorts

// ResolveEndpoint parses the configured port. Without one, the first serial
// device on the host is used.
func ResolveEndpoint(port string, baud int) (uart.Endpoint, error) {
	if port == "" {
		ports, err := listPorts()
		if err != nil {
			return uart.Endpoint{}, err
		}
		if len(ports) == 0 {
			return uart.Endpoint{}, uart.ErrNoPort
		}
		port = ports[0]
	}
	return uart.ParseEndpoint(port, baud)
}

// Dial opens a session with the ESP described by cfg.
func Dial(ctx context.Context, cfg Config) (*uart.Client, error) {
	ep, err := ResolveEndpoint(cfg.Port, cfg.Baud)
	if err != nil {
		return nil, fmt.Errorf("resolve port: %w", err)
	}
	client := uart.NewClient(ep, cfg.DataDir)
	ctx, cancel := context.WithTimeout(ctx, openTimeout)
	defer cancel()
	if err := client.Open(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("open %s: %w", ep, err)
	}
	return client, nil
}

// Run bootstraps and executes the Bubble Tea program. A port that cannot be
// opened is logged and the menu starts offline, where the connection check
// reports it.
func Run(cfg Config) error {
	store, err := settings.Open(cfg.SettingsPath)
	if err != nil {
		if !errors.Is(err, settings.ErrInvalid) {
			return fmt.Errorf("load settings: %w", err)
		}
		logging.Error(err)
	}

	opts := ui.Options{
		Settings:   store,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Version:    cfg.Version,
	}
	client, err := Dial(context.Background(), cfg)
	if err != nil {
		logging.Error(err)
	} else {
		defer client.Close()
		watcher := backend.NewWatcher(client, linkInterval)
		defer watcher.Stop()
		opts.Transport = client
		opts.Watcher = watcher
	}

	model := ui.NewModel(opts)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Stop("killed")
		return nil
	}
	events.App.Stop("exit")
	return err
}
