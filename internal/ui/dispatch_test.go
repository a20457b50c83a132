package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/ghost-esp-control/internal/backend"
	"github.com/atomicstack/ghost-esp-control/internal/menu"
	"github.com/atomicstack/ghost-esp-control/internal/settings"
	"github.com/atomicstack/ghost-esp-control/internal/testutil"
	"github.com/atomicstack/ghost-esp-control/internal/ui/state"
)

func TestSniffCaptureScenario(t *testing.T) {
	f := defaultFixture(t)
	f.open(0)
	if f.model().PreviousView() != menu.ViewWiFi {
		t.Fatalf("expected previous view wifi, got %s", f.model().PreviousView())
	}

	f.open(1, 0)
	f.expectView(t, menu.ViewTerminal)
	f.expectSent(t, "capture -wps\n")
	caps := f.tr.Captures()
	if len(caps) != 1 || caps[0].Prefix != "wps_capture" || caps[0].Extension != "pcap" || caps[0].Folder != menu.FolderPcaps {
		t.Fatalf("expected wps capture sink, got %+v", caps)
	}
	if !strings.Contains(f.h.View(), "pcaps/wps_capture_0.pcap") {
		t.Fatalf("expected capture path in terminal, got:\n%s", f.h.View())
	}

	f.h.Press("esc")
	f.expectView(t, menu.ViewWiFiCapture)
	if f.tr.ClosedCaptures() != 1 {
		t.Fatalf("expected capture closed on back, got %d", f.tr.ClosedCaptures())
	}

	f.h.Press("right")
	if got := f.rowLabel(t, 0); got != "< Sniff Raw Packets >" {
		t.Fatalf("expected raw variant, got %q", got)
	}
	f.h.Press("enter")
	f.expectSent(t, "capture -wps\n", "capture -raw\n")
	caps = f.tr.Captures()
	if caps[len(caps)-1].Prefix != "raw_capture" {
		t.Fatalf("expected raw capture sink, got %+v", caps[len(caps)-1])
	}
	if f.model().terminal.Header() != "< Sniff Raw Packets >" {
		t.Fatalf("expected variant label as header, got %q", f.model().terminal.Header())
	}
}

func TestCaptureOpenFailureSendsNothing(t *testing.T) {
	f := defaultFixture(t)
	f.tr.FailCapture(true)
	f.open(1, 1, 0)
	f.expectView(t, menu.ViewBLECapture)
	f.expectSent(t)
	if len(f.tr.Captures()) != 1 {
		t.Fatalf("expected one capture attempt, got %d", len(f.tr.Captures()))
	}
}

func TestConfirmedCaptureOpenFailureSendsNothing(t *testing.T) {
	f := defaultFixture(t)
	f.tr.FailCapture(true)
	f.open(0, 1)
	f.expectView(t, menu.ViewWiFiCapture)

	d := menu.Descriptor{
		Label:             "Capture Everything",
		Command:           "capture -all\n",
		NeedsConfirmation: true,
		ConfirmHeader:     "Capture All",
		ConfirmBody:       "Start a full capture?",
		Capture:           &menu.Capture{Prefix: "all_capture", Extension: "pcap", Folder: "pcaps"},
	}
	f.model().showConfirm(d)
	f.expectView(t, menu.ViewModal)
	f.h.Press("enter")

	f.expectView(t, menu.ViewWiFiCapture)
	f.expectSent(t)
	if got := f.tr.Captures(); len(got) != 1 || got[0].Prefix != "all_capture" {
		t.Fatalf("expected one all_capture attempt, got %+v", got)
	}
	if f.model().modal != nil {
		t.Fatalf("expected modal consumed")
	}
	if cmd := f.model().confirmOK(&pendingConfirm{descriptor: d}); cmd != nil {
		t.Fatalf("expected no send command after a failed capture open")
	}
	f.expectSent(t)
}

func TestPlainCommandSendsImmediately(t *testing.T) {
	f := defaultFixture(t)
	f.open(0, 0, 0)
	f.expectView(t, menu.ViewTerminal)
	f.expectSent(t, "scanap\n")
	if f.model().PreviousView() != menu.ViewWiFiScanning {
		t.Fatalf("expected previous view wifi:scanning, got %s", f.model().PreviousView())
	}
	if len(f.tr.Captures()) != 0 {
		t.Fatalf("expected no capture for plain command")
	}
}

func TestStopRowSendsStop(t *testing.T) {
	f := defaultFixture(t)
	f.open(1, 4)
	f.expectView(t, menu.ViewTerminal)
	f.expectSent(t, "stop\n")
}

func TestSendErrorShowsStatus(t *testing.T) {
	f := defaultFixture(t)
	f.tr.FailSend(errors.New("write failed"))
	f.open(0, 0, 0)
	if f.model().errMsg == "" || !strings.Contains(f.h.View(), "write failed") {
		t.Fatalf("expected send error in status line, got:\n%s", f.h.View())
	}
}

func TestConfirmOKSendsOnce(t *testing.T) {
	f := defaultFixture(t)
	f.open(0, 3, 3)
	f.expectView(t, menu.ViewModal)
	if f.model().modal.header != "Cast Video" {
		t.Fatalf("expected confirm header, got %q", f.model().modal.header)
	}
	f.expectSent(t)

	f.h.Press("down", "up")
	f.expectSent(t)

	f.h.Press("enter")
	f.expectView(t, menu.ViewTerminal)
	f.expectSent(t, "dialconnect\n")
	if f.model().terminal.Header() != "" {
		t.Fatalf("expected empty terminal header, got %q", f.model().terminal.Header())
	}
	if f.model().PreviousView() != menu.ViewWiFiNetwork {
		t.Fatalf("expected previous view wifi:network, got %s", f.model().PreviousView())
	}

	f.h.Press("esc")
	f.expectView(t, menu.ViewWiFiNetwork)
	f.expectSent(t, "dialconnect\n")
}

func TestConfirmCancelNeverSends(t *testing.T) {
	f := defaultFixture(t)
	f.open(0, 3, 3)
	f.expectView(t, menu.ViewModal)
	f.h.Press("esc")
	f.expectView(t, menu.ViewWiFi)
	f.expectSent(t)
	if f.model().modal != nil {
		t.Fatalf("expected modal cleared")
	}
}

func TestStaleModalResultIgnored(t *testing.T) {
	f := defaultFixture(t)
	f.open(0, 3, 3)
	stale := f.model().modal.token

	f.h.Press("esc")
	f.expectView(t, menu.ViewWiFi)
	f.h.Send(modalResultMsg{token: stale, ok: true})
	f.expectView(t, menu.ViewWiFi)
	f.expectSent(t)

	f.open(3, 3)
	f.expectView(t, menu.ViewModal)
	f.h.Send(modalResultMsg{token: stale, ok: true})
	f.expectView(t, menu.ViewModal)
	f.expectSent(t)
}

func TestDisconnectedShowsConnectionError(t *testing.T) {
	f := defaultFixture(t)
	f.tr.SetConnected(false)
	f.open(0, 0, 0)
	f.expectView(t, menu.ViewModal)
	if f.model().modal.header != menu.ConnectionErrorHeader {
		t.Fatalf("expected connection error, got %q", f.model().modal.header)
	}
	if f.model().PreviousView() != menu.ViewWiFiScanning {
		t.Fatalf("expected previous view wifi:scanning, got %s", f.model().PreviousView())
	}
	f.expectSent(t)

	f.h.Press("enter")
	f.expectView(t, menu.ViewWiFiScanning)

	f.h.Press("enter")
	f.expectView(t, menu.ViewModal)
	f.h.Press("esc")
	f.expectView(t, menu.ViewWiFiScanning)
	f.expectSent(t)
}

func TestDisconnectedGatesInputAndConfirm(t *testing.T) {
	f := defaultFixture(t)
	f.tr.SetConnected(false)
	f.open(0, 0, 5)
	f.expectView(t, menu.ViewModal)
	f.h.Press("enter")
	f.expectView(t, menu.ViewWiFiScanning)
	if f.model().Navigation().PendingCommand != "" {
		t.Fatalf("expected no pending verb behind the gate")
	}

	f.h.Press("esc")
	f.expectView(t, menu.ViewWiFi)
	f.open(3, 3)
	f.expectView(t, menu.ViewModal)
	if f.model().modal.kind != modalConnectionError {
		t.Fatalf("expected connection error before confirmation")
	}
	f.h.Press("enter")
	f.expectView(t, menu.ViewWiFiNetwork)
	f.expectSent(t)
}

func TestConnectionCheckOffBypassesGate(t *testing.T) {
	prefs := settings.Defaults()
	prefs.CheckConnection = false
	f := newFixture(t, prefs)
	f.tr.SetConnected(false)
	f.open(0, 0, 0)
	f.expectView(t, menu.ViewTerminal)
	f.expectSent(t, "scanap\n")
}

func TestConnectFlow(t *testing.T) {
	f := defaultFixture(t)
	f.open(0, 3, 2)
	f.expectView(t, menu.ViewTextInput)
	if f.model().prompt != menu.ConnectSSIDPrompt {
		t.Fatalf("expected SSID prompt, got %q", f.model().prompt)
	}

	f.h.Type("MyNet")
	f.h.Press("enter")
	f.expectView(t, menu.ViewTextInput)
	if f.model().prompt != menu.ConnectPasswordPrompt {
		t.Fatalf("expected password prompt, got %q", f.model().prompt)
	}
	if f.model().input.Value() != "" {
		t.Fatalf("expected input cleared between stages, got %q", f.model().input.Value())
	}
	f.expectSent(t)

	f.h.Type("secret")
	f.h.Press("enter")
	f.expectView(t, menu.ViewTerminal)
	f.expectSent(t, `connect "MyNet" "secret"`+"\n")
	if f.model().Navigation().Connect.Stage() != state.ConnectIdle {
		t.Fatalf("expected connect flow idle, got %s", f.model().Navigation().Connect.Stage())
	}

	f.h.Press("esc")
	f.expectView(t, menu.ViewWiFiNetwork)
	if got := f.cursor(t); got != 2 {
		t.Fatalf("expected cursor back on connect row, got %d", got)
	}
}

func TestConnectCancelledAtPassword(t *testing.T) {
	f := defaultFixture(t)
	f.open(0, 3, 2)
	f.h.Type("MyNet")
	f.h.Press("enter", "esc")
	f.expectView(t, menu.ViewWiFiNetwork)
	f.expectSent(t)
	if f.model().Navigation().Connect.Active() {
		t.Fatalf("expected connect flow reset")
	}
}

func TestFreeTextInput(t *testing.T) {
	f := defaultFixture(t)
	f.open(0, 0, 5)
	f.expectView(t, menu.ViewTextInput)
	if f.model().Navigation().PendingCommand != "select -a" {
		t.Fatalf("expected pending verb, got %q", f.model().Navigation().PendingCommand)
	}
	f.h.Type("0,2")
	f.h.Press("enter")
	f.expectView(t, menu.ViewTerminal)
	f.expectSent(t, "select -a 0,2\n")
	if f.model().Navigation().PendingCommand != "" {
		t.Fatalf("expected pending verb cleared")
	}
}

func TestInputBackRestoresCursor(t *testing.T) {
	f := defaultFixture(t)
	f.open(0, 0, 5)
	f.h.Type("abc")
	f.h.Press("esc")
	f.expectView(t, menu.ViewWiFiScanning)
	if got := f.cursor(t); got != 5 {
		t.Fatalf("expected cursor on row 5, got %d", got)
	}
	f.expectSent(t)

	f.h.Press("enter")
	if f.model().input.Value() != "" {
		t.Fatalf("expected empty buffer on re-entry, got %q", f.model().input.Value())
	}
}

func TestBackspaceEditsInputInsteadOfLeaving(t *testing.T) {
	f := defaultFixture(t)
	f.open(0, 0, 5)
	f.h.Type("ab")
	f.h.Press("backspace")
	f.expectView(t, menu.ViewTextInput)
	if f.model().input.Value() != "a" {
		t.Fatalf("expected backspace to edit, got %q", f.model().input.Value())
	}
}

func TestBeaconCustomVariant(t *testing.T) {
	f := defaultFixture(t)
	f.open(0, 2)
	f.h.Press("left")
	if got := f.rowLabel(t, 0); got != "< Beacon Spam (Custom) >" {
		t.Fatalf("expected custom variant, got %q", got)
	}
	f.h.Press("enter")
	f.expectView(t, menu.ViewTextInput)
	if f.model().prompt != "SSID Name" {
		t.Fatalf("expected custom prompt, got %q", f.model().prompt)
	}
	f.h.Type("Free WiFi")
	f.h.Press("enter")
	f.expectSent(t, "beaconspam Free WiFi\n")

	f.h.Press("esc")
	f.expectView(t, menu.ViewWiFiAttack)
	if got := f.rowLabel(t, 0); got != "< Beacon Spam (Custom) >" {
		t.Fatalf("expected custom variant kept, got %q", got)
	}
}

func TestBeaconListVariantSendsDirectly(t *testing.T) {
	f := defaultFixture(t)
	f.open(0, 2, 0)
	f.expectSent(t, "beaconspam -l\n")
}

func TestStopOnBack(t *testing.T) {
	prefs := settings.Defaults()
	prefs.StopOnBack = true
	f := newFixture(t, prefs)
	f.open(0, 0, 0)
	f.h.Press("esc")
	f.expectView(t, menu.ViewWiFiScanning)
	f.expectSent(t, "scanap\n", menu.StopCommand)

	f.tr.Reset()
	f.open(5)
	f.h.Press("esc")
	f.expectSent(t, menu.StopCommand)
}

func TestLateStopReplyNotShownInNextTerminal(t *testing.T) {
	prefs := settings.Defaults()
	prefs.StopOnBack = true
	f := newFixture(t, prefs)
	f.open(0, 0, 0)
	f.h.Press("esc")
	f.expectView(t, menu.ViewWiFiScanning)

	f.h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindOutput, Data: "scan stopped\n"}})
	f.open(1)
	f.expectView(t, menu.ViewTerminal)
	if text := f.model().terminal.Text(); strings.Contains(text, "scan stopped") {
		t.Fatalf("expected a fresh terminal, got %q", text)
	}
	if f.model().terminal.Header() != "Scan WiFi Stations" {
		t.Fatalf("expected header kept after reset, got %q", f.model().terminal.Header())
	}
}

func TestStopOnBackOffSendsNothing(t *testing.T) {
	f := defaultFixture(t)
	f.open(0, 0, 0)
	f.tr.Reset()
	f.h.Press("esc")
	f.expectSent(t)
}

func TestESPHelpReturnsToSettings(t *testing.T) {
	f := defaultFixture(t)
	f.open(3, 2)
	f.expectView(t, menu.ViewTerminal)
	f.expectSent(t, "help\n")
	f.h.Press("esc")
	f.expectView(t, menu.ViewSettings)
	if got := f.cursor(t); got != 2 {
		t.Fatalf("expected settings cursor on help row, got %d", got)
	}
}

func TestConfigurationStopTasks(t *testing.T) {
	f := defaultFixture(t)
	f.open(3, 0, 2)
	f.expectSent(t, menu.StopCommand)
	f.h.Press("esc")
	f.expectView(t, menu.ViewConfiguration)
}

func TestHardwareVariantFromSettings(t *testing.T) {
	f := defaultFixture(t)
	f.open(3, 1)
	f.h.Press("right", "enter")
	f.expectSent(t, "rgbmode police\n")
	f.h.Press("esc")
	f.expectView(t, menu.ViewWiFiSettings)
	f.h.Press("esc")
	f.expectView(t, menu.ViewSettings)
}

func TestFakeTransportSatisfiesTransport(t *testing.T) {
	var _ Transport = testutil.NewFakeTransport()
}
