package state

import "github.com/atomicstack/ghost-esp-control/internal/menu"

// SelectionMemory keeps the last activated row of every remembered list
// view. Views without a slot are neither written nor restored.
type SelectionMemory struct {
	slots map[menu.View]int
}

// NewSelectionMemory allocates one slot per view, each starting at row 0.
func NewSelectionMemory(views []menu.View) *SelectionMemory {
	m := &SelectionMemory{slots: make(map[menu.View]int, len(views))}
	for _, v := range views {
		m.slots[v] = 0
	}
	return m
}

// Remember stores idx for view. It reports false when view has no slot.
func (m *SelectionMemory) Remember(view menu.View, idx int) bool {
	if m == nil || idx < 0 {
		return false
	}
	if _, ok := m.slots[view]; !ok {
		return false
	}
	m.slots[view] = idx
	return true
}

// Recall returns the remembered row for view.
func (m *SelectionMemory) Recall(view menu.View) (int, bool) {
	if m == nil {
		return 0, false
	}
	idx, ok := m.slots[view]
	return idx, ok
}
