package state

import "github.com/atomicstack/ghost-esp-control/internal/menu"

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// ItemsFromPage converts catalog entries into rows.
func ItemsFromPage(page *menu.Page) []Item {
	if page == nil {
		return nil
	}
	items := make([]Item, len(page.Entries))
	for i, entry := range page.Entries {
		items[i] = Item{ID: entry.ID, Label: entry.Label}
	}
	return items
}
