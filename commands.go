package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/atomicstack/ghost-esp-control/internal/app"
	"github.com/atomicstack/ghost-esp-control/internal/format/table"
	"github.com/atomicstack/ghost-esp-control/internal/logging"
	"github.com/atomicstack/ghost-esp-control/internal/menu"
	"github.com/atomicstack/ghost-esp-control/internal/uart"
	"github.com/atomicstack/ghost-esp-control/internal/version"
)

var (
	errNoMatch   = errors.New("no command matches")
	errNeedsText = errors.New("command needs text")
	errNoText    = errors.New("command takes no text")
)

func newSendCmd(c *cli) *cobra.Command {
	var (
		wait    time.Duration
		payload string
	)
	cmd := &cobra.Command{
		Use:   "send <command> [text...]",
		Short: "Send one catalog command and print the board's reply",
		Long: `Looks up a command by its menu label (fuzzy matched) and sends it once.
Commands that prompt for text in the menu take it as extra arguments; the
WiFi connect command takes an SSID and a password. --payload appends the raw
contents of a file after the command line.`,
		Example: `  ghost-esp-control send "scan wifi aps"
  ghost-esp-control send "select ap" 0,2
  ghost-esp-control send connect MyNet secret`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.setup(nil)
			if err != nil {
				return err
			}
			defer logging.Sync()

			match, ok := menu.BuildRegistry().Best(args[0])
			if !ok {
				return fmt.Errorf("%w %q", errNoMatch, args[0])
			}
			line, err := sendLine(match.Descriptor, args[1:])
			if err != nil {
				return fmt.Errorf("%s: %w", match.Descriptor.Label, err)
			}
			var raw []byte
			if payload != "" {
				if raw, err = os.ReadFile(payload); err != nil {
					return fmt.Errorf("read payload: %w", err)
				}
			}

			client, err := app.Dial(cmd.Context(), cfg.App)
			if err != nil {
				return err
			}
			defer client.Close()
			if d := match.Descriptor; d.HasCapture() {
				if err := client.OpenCaptureSink(d.Capture.Prefix, d.Capture.Extension, d.Capture.Folder); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "capturing to %s\n", client.CapturePath())
			}
			if err := client.SendBytes(line, raw); err != nil {
				return err
			}
			return relay(cmd, client.Events(), wait)
		},
	}
	cmd.Flags().DurationVarP(&wait, "wait", "w", 2*time.Second, "how long to print output after sending")
	cmd.Flags().StringVar(&payload, "payload", "", "file whose bytes are written after the command")
	return cmd
}

// sendLine builds the outbound line for d from the extra arguments.
func sendLine(d menu.Descriptor, args []string) (string, error) {
	switch {
	case d.IsConnect():
		if len(args) != 2 {
			return "", fmt.Errorf("%w: want SSID and password", errNeedsText)
		}
		return menu.FormatConnect(args[0], args[1]), nil
	case d.NeedsInput:
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return "", fmt.Errorf("%w: %s", errNeedsText, d.InputPrompt)
		}
		return menu.FormatCommand(strings.TrimSpace(d.Command), text), nil
	case len(args) > 0:
		return "", errNoText
	default:
		return d.Command, nil
	}
}

// relay copies received output to stdout until wait elapses, the session
// ends or the command is cancelled.
func relay(cmd *cobra.Command, in <-chan uart.Event, wait time.Duration) error {
	timer := time.NewTimer(wait)
	defer timer.Stop()
	out := cmd.OutOrStdout()
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case <-timer.C:
			return nil
		case evt, ok := <-in:
			if !ok {
				return nil
			}
			if evt.Err != nil {
				return evt.Err
			}
			if _, err := io.WriteString(out, ansi.Strip(string(evt.Data))); err != nil {
				return err
			}
		}
	}
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List every menu command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), renderCatalog(menu.BuildRegistry()))
			return err
		},
	}
}

func renderCatalog(r *menu.Registry) string {
	matches := r.Commands()
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		d := m.Descriptor
		var flags []string
		if d.NeedsInput {
			flags = append(flags, "input")
		}
		if d.NeedsConfirmation {
			flags = append(flags, "confirm")
		}
		if d.HasCapture() {
			flags = append(flags, d.Capture.Folder+"/"+d.Capture.Prefix)
		}
		rows = append(rows, []string{
			m.View.String(),
			strconv.Itoa(m.Row),
			d.Label,
			strings.TrimSpace(d.Command),
			strings.Join(flags, ","),
		})
	}
	return table.Render(
		[]string{"VIEW", "ROW", "LABEL", "COMMAND", "FLAGS"},
		rows,
		[]table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft, table.AlignLeft, table.AlignLeft},
	)
}

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List serial ports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ports, err := uart.ListPorts()
			if err != nil {
				return err
			}
			if len(ports) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no serial ports found")
				return nil
			}
			for _, p := range ports {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ghost-esp-control %s\n", version.Full())
		},
	}
}
