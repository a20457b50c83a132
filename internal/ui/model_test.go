package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/ghost-esp-control/internal/backend"
	"github.com/atomicstack/ghost-esp-control/internal/menu"
	"github.com/atomicstack/ghost-esp-control/internal/settings"
	"github.com/atomicstack/ghost-esp-control/internal/testutil"
)

type fixture struct {
	h     *Harness
	tr    *testutil.FakeTransport
	store settings.Store
}

func newFixture(t *testing.T, prefs settings.Settings) fixture {
	t.Helper()
	tr := testutil.NewFakeTransport()
	store := settings.Memory(prefs)
	model := NewModel(Options{Transport: tr, Settings: store, Version: "test"})
	return fixture{h: NewHarness(model), tr: tr, store: store}
}

func defaultFixture(t *testing.T) fixture {
	t.Helper()
	return newFixture(t, settings.Defaults())
}

func (f fixture) model() *Model {
	return f.h.Model()
}

func (f fixture) expectView(t *testing.T, want menu.View) {
	t.Helper()
	if got := f.model().CurrentView(); got != want {
		t.Fatalf("expected view %s, got %s", want, got)
	}
}

func (f fixture) expectSent(t *testing.T, want ...string) {
	t.Helper()
	got := f.tr.Sent()
	if len(got) != len(want) {
		t.Fatalf("expected sends %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected sends %q, got %q", want, got)
		}
	}
}

func (f fixture) cursor(t *testing.T) int {
	t.Helper()
	lvl := f.model().currentLevel()
	if lvl == nil {
		t.Fatalf("expected a list view, got %s", f.model().CurrentView())
	}
	return lvl.Cursor
}

func (f fixture) rowLabel(t *testing.T, row int) string {
	t.Helper()
	lvl := f.model().currentLevel()
	if lvl == nil || row >= len(lvl.Items) {
		t.Fatalf("no row %d on %s", row, f.model().CurrentView())
	}
	return lvl.Items[row].Label
}

// open walks from the main menu through the given rows, pressing OK on each.
func (f fixture) open(rows ...int) {
	for _, row := range rows {
		lvl := f.model().currentLevel()
		for lvl != nil && lvl.Cursor != row {
			f.h.Press("down")
		}
		f.h.Press("enter")
	}
}

func TestNewModelStartsOnMainMenu(t *testing.T) {
	f := defaultFixture(t)
	f.expectView(t, menu.ViewMain)
	if f.model().PreviousView() != menu.ViewMain {
		t.Fatalf("expected previous view main, got %s", f.model().PreviousView())
	}
	view := f.h.View()
	for _, label := range []string{"WiFi", "BLE", "GPS", "SET"} {
		if !strings.Contains(view, label) {
			t.Fatalf("expected %q in main menu, got:\n%s", label, view)
		}
	}
}

func TestNewModelWithoutTransportIsOffline(t *testing.T) {
	model := NewModel(Options{})
	h := NewHarness(model)
	if !strings.Contains(h.View(), "offline") {
		t.Fatalf("expected offline marker, got:\n%s", h.View())
	}
	h.Press("enter", "enter", "enter")
	if model.CurrentView() != menu.ViewModal {
		t.Fatalf("expected connection error without transport, got %s", model.CurrentView())
	}
}

func TestBackendOutputReachesTerminal(t *testing.T) {
	f := defaultFixture(t)
	f.open(0, 0, 0)
	f.expectView(t, menu.ViewTerminal)

	f.h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindOutput, Data: "\x1b[1mAP: home\x1b[0m\n"}})
	view := f.h.View()
	if !strings.Contains(view, "AP: home") {
		t.Fatalf("expected device output in terminal, got:\n%s", view)
	}
	if !strings.Contains(view, "Scan WiFi APs") {
		t.Fatalf("expected command label in terminal header, got:\n%s", view)
	}

	f.h.Press("esc")
	if f.model().terminal.Len() != 0 {
		t.Fatalf("expected terminal buffer reset on back")
	}
}

func TestBackendLinkLossShowsError(t *testing.T) {
	f := defaultFixture(t)
	f.h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindLink, Data: true}})
	f.h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindLink, Data: false}})
	if !strings.Contains(f.h.View(), "link lost") {
		t.Fatalf("expected link lost status, got:\n%s", f.h.View())
	}
	f.h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindLink, Data: true}})
	if strings.Contains(f.h.View(), "link lost") {
		t.Fatalf("expected status cleared on reconnect")
	}
}

func TestBackendDoneDetachesWatcher(t *testing.T) {
	f := defaultFixture(t)
	f.h.Send(backendDoneMsg{})
	if f.model().backend != nil {
		t.Fatalf("expected watcher detached")
	}
}

func TestCtrlCQuitsFromAnyView(t *testing.T) {
	f := defaultFixture(t)
	f.open(0, 0, 5)
	f.expectView(t, menu.ViewTextInput)
	f.h.Press("ctrl+c")
	if !f.h.Quit() {
		t.Fatalf("expected quit from text input")
	}
}
