package state

import "github.com/atomicstack/ghost-esp-control/internal/menu"

// Item is one rendered row of a list level.
type Item struct {
	ID    string
	Label string
}

// Level holds the live widget state of one list view: its rows, cursor and
// viewport.
type Level struct {
	View           menu.View
	Title          string
	Items          []Item
	Cursor         int
	ViewportOffset int
}

// NewLevel constructs a Level for view with the cursor on the first row.
func NewLevel(view menu.View, title string, items []Item) *Level {
	return &Level{
		View:  view,
		Title: title,
		Items: CloneItems(items),
	}
}

// Current returns the highlighted row.
func (l *Level) Current() (Item, bool) {
	if l == nil || l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// SetCursor highlights row i. Out-of-range indices are ignored.
func (l *Level) SetCursor(i int) bool {
	if i < 0 || i >= len(l.Items) {
		return false
	}
	l.Cursor = i
	return true
}

// Relabel replaces the label at row i in place without moving the cursor.
func (l *Level) Relabel(i int, label string) bool {
	if i < 0 || i >= len(l.Items) {
		return false
	}
	if l.Items[i].Label == label {
		return false
	}
	l.Items[i].Label = label
	return true
}
