package ui

import (
	"fmt"

	"github.com/atomicstack/ghost-esp-control/internal/logging"
	"github.com/atomicstack/ghost-esp-control/internal/menu"
)

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

// applyConfigurationLabels writes the current toggle values into the
// configuration rows.
func (m *Model) applyConfigurationLabels(l *level) {
	prefs := m.settings.Load()
	for i, item := range l.Items {
		switch item.ID {
		case menu.EntryConfigStopOnBack:
			l.Relabel(i, fmt.Sprintf("Stop On Back: %s", onOff(prefs.StopOnBack)))
		case menu.EntryConfigConnectionCheck:
			l.Relabel(i, fmt.Sprintf("Connection Check: %s", onOff(prefs.CheckConnection)))
		}
	}
}

// toggleSetting flips the option behind id and persists it.
func (m *Model) toggleSetting(id string) {
	prefs := m.settings.Load()
	switch id {
	case menu.EntryConfigStopOnBack:
		prefs.StopOnBack = !prefs.StopOnBack
	case menu.EntryConfigConnectionCheck:
		prefs.CheckConnection = !prefs.CheckConnection
	default:
		return
	}
	if err := m.settings.Save(prefs); err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return
	}
	if lvl := m.levels[menu.ViewConfiguration]; lvl != nil {
		m.applyConfigurationLabels(lvl)
	}
}
