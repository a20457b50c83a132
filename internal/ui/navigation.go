package ui

import (
	"github.com/atomicstack/ghost-esp-control/internal/logging/events"
	"github.com/atomicstack/ghost-esp-control/internal/menu"
	uistate "github.com/atomicstack/ghost-esp-control/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// currentLevel returns the list widget of the active view, or nil when the
// active view is not a list.
func (m *Model) currentLevel() *level {
	return m.levels[m.nav.Current]
}

// switchView moves to v and traces the transition.
func (m *Model) switchView(v menu.View) {
	from := m.nav.Switch(v)
	events.UI.ViewSwitch(from.String(), v.String(), m.nav.Previous.String())
}

// showPage rebuilds the list for v and makes it both the current and the
// previous view. Remembered rows are restored; cyclable rows show the
// selected variant. Showing a top-level list ends any settings shortcut.
func (m *Model) showPage(v menu.View) {
	page, ok := m.registry.Page(v)
	if !ok {
		page, _ = m.registry.Page(menu.ViewMain)
		v = menu.ViewMain
	}
	old := m.levels[v]
	lvl := uistate.NewLevel(v, page.Title, uistate.ItemsFromPage(page))
	if page.Variants.Len() > 0 && len(lvl.Items) > 0 {
		lvl.Relabel(0, m.nav.Variants.Current(page.Variants).Label)
	}
	if v == menu.ViewConfiguration {
		m.applyConfigurationLabels(lvl)
	}
	if idx, ok := m.nav.Memory.Recall(v); ok {
		lvl.SetCursor(idx)
	} else if old != nil {
		lvl.SetCursor(old.Cursor)
	}
	m.levels[v] = lvl
	switch v {
	case menu.ViewMain, menu.ViewWiFi, menu.ViewBLE, menu.ViewGPS:
		m.nav.CameFromSettings = false
	}
	m.nav.Previous = v
	m.switchView(v)
	m.syncViewport(lvl)
}

// resume returns to v without rebuilding it. Views that were never shown
// fall back to showPage.
func (m *Model) resume(v menu.View) {
	if _, ok := m.levels[v]; !ok {
		m.showPage(v)
		return
	}
	m.nav.Previous = v
	m.switchView(v)
}

// restorePrevious leaves the terminal or text input for the view recorded in
// Previous. The settings lists resume as they were; other lists are rebuilt
// with their remembered row.
func (m *Model) restorePrevious() {
	prev := m.nav.Previous
	switch {
	case prev == menu.ViewSettings || prev == menu.ViewConfiguration:
		m.resume(prev)
	case m.isListView(prev):
		m.showPage(prev)
	default:
		m.showPage(menu.ViewMain)
	}
}

func (m *Model) isListView(v menu.View) bool {
	_, ok := m.registry.Page(v)
	return ok
}

// handleListEvent applies one button press to the active list view and
// reports whether it was consumed.
func (m *Model) handleListEvent(ev inputEvent) (bool, tea.Cmd) {
	current := m.currentLevel()
	page, ok := m.registry.Page(m.nav.Current)
	if current == nil || !ok {
		return false, nil
	}
	switch ev {
	case eventUp:
		current.MoveCursorUp()
		m.syncViewport(current)
		events.UI.MenuCursor(current.View.String(), current.Cursor)
		return true, nil
	case eventDown:
		current.MoveCursorDown()
		m.syncViewport(current)
		events.UI.MenuCursor(current.View.String(), current.Cursor)
		return true, nil
	case eventHome, eventEnd:
		if ev == eventHome {
			current.MoveCursorHome()
		} else {
			current.MoveCursorEnd()
		}
		m.syncViewport(current)
		events.UI.MenuCursor(current.View.String(), current.Cursor)
		return true, nil
	case eventLeft:
		return m.handleHorizontal(page, current, uistate.Left)
	case eventRight:
		return m.handleHorizontal(page, current, uistate.Right)
	case eventOK:
		return m.selectRow(page, current.Cursor)
	case eventLongOK:
		return m.showDetails(page, current.Cursor)
	case eventBack:
		return true, m.handleBack()
	default:
		return false, nil
	}
}

// selectRow activates row idx of page. Selection memory is written before
// anything else happens.
func (m *Model) selectRow(page *menu.Page, idx int) (bool, tea.Cmd) {
	if idx < 0 || idx >= len(page.Entries) {
		return false, nil
	}
	entry := page.Entries[idx]
	m.nav.CurrentIndex = idx
	m.nav.Memory.Remember(page.View, idx)
	label := entry.Label
	if lvl := m.levels[page.View]; lvl != nil && idx < len(lvl.Items) {
		label = lvl.Items[idx].Label
	}
	events.UI.MenuEnter(page.View.String(), entry.ID, label)
	m.errMsg = ""

	switch entry.ID {
	case menu.EntrySettingsAbout:
		m.showInfo(menu.AppInfoHeader, menu.AppInfoBody(m.version))
		return true, nil
	case menu.EntryConfigStopOnBack, menu.EntryConfigConnectionCheck:
		m.toggleSetting(entry.ID)
		return true, nil
	}
	if entry.Navigates() {
		m.showPage(entry.Target)
		if entry.ID == menu.EntrySettingsHardware {
			m.nav.CameFromSettings = true
		}
		return true, nil
	}
	if entry.Descriptor != nil {
		return true, m.execute(page, idx, *entry.Descriptor)
	}
	return false, nil
}

// handleHorizontal cycles the variant hosted at row 0 or flips a
// configuration toggle.
func (m *Model) handleHorizontal(page *menu.Page, current *level, dir uistate.Direction) (bool, tea.Cmd) {
	if page.View == menu.ViewConfiguration {
		item, ok := current.Current()
		if !ok {
			return false, nil
		}
		if item.ID == menu.EntryConfigStopOnBack || item.ID == menu.EntryConfigConnectionCheck {
			m.toggleSetting(item.ID)
			return true, nil
		}
		return false, nil
	}
	if page.Variants.Len() == 0 || current.Cursor != 0 {
		return false, nil
	}
	m.cycleVariant(page, current, dir)
	return true, nil
}

// cycleVariant steps the page's variant cursor and relabels row 0 in place.
// The highlighted row and CurrentIndex are left alone.
func (m *Model) cycleVariant(page *menu.Page, current *level, dir uistate.Direction) {
	idx, variant := m.nav.Variants.Step(page.Variants, dir)
	current.Relabel(0, variant.Label)
	m.nav.Memory.Remember(page.View, current.Cursor)
	events.UI.Cycle(page.Variants.ID, idx, variant.Label)
}

// showDetails opens the long-press help of row idx. Rows without details
// are ignored; the main menu shows the quick help instead.
func (m *Model) showDetails(page *menu.Page, idx int) (bool, tea.Cmd) {
	if page.View == menu.ViewMain {
		m.showInfo(menu.QuickHelpHeader, menu.QuickHelpBody)
		return true, nil
	}
	d, ok := page.Descriptor(idx)
	if !ok {
		return false, nil
	}
	resolved := *d
	if idx == 0 && page.Variants.Len() > 0 {
		resolved = menu.ResolveVariant(*d, page.Variants, m.nav.Variants.Index(page.Variants))
	}
	if !resolved.HasDetails() {
		return false, nil
	}
	events.UI.Details(page.View.String(), resolved.DetailsHeader)
	m.showInfo(resolved.DetailsHeader, resolved.DetailsBody)
	return true, nil
}

// handleBack applies the Back rules of the list views.
func (m *Model) handleBack() tea.Cmd {
	from := m.nav.Current
	var target menu.View
	switch {
	case from == menu.ViewMain:
		events.UI.Back(from.String(), "quit")
		return tea.Quit
	case from == menu.ViewSettings:
		target = menu.ViewMain
	case from == menu.ViewConfiguration:
		target = menu.ViewSettings
	case from == menu.ViewWiFi || from == menu.ViewBLE || from == menu.ViewGPS:
		target = menu.ViewMain
	case from.IsWiFiPage():
		target = menu.ViewWiFi
		if m.nav.CameFromSettings {
			target = menu.ViewSettings
		}
	case from.IsBLEPage():
		target = menu.ViewBLE
	default:
		target = menu.ViewMain
	}
	events.UI.Back(from.String(), target.String())
	m.errMsg = ""
	m.forceClearInfo()
	if target == menu.ViewSettings {
		m.resume(target)
		return nil
	}
	m.showPage(target)
	return nil
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}
