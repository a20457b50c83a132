package state

import "github.com/atomicstack/ghost-esp-control/internal/menu"

// Direction of a cycle step.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Cycle rotates index by dir within a table of length n.
func Cycle(n, index int, dir Direction) int {
	if n <= 0 {
		return 0
	}
	return ((index+int(dir))%n + n) % n
}

// VariantCursors holds one persistent cycle index per variant table. The
// indices survive leaving and re-entering the hosting page.
type VariantCursors struct {
	index map[string]int
}

// NewVariantCursors starts every table at its first variant.
func NewVariantCursors() *VariantCursors {
	return &VariantCursors{index: make(map[string]int)}
}

// Index returns the current cycle index of table.
func (c *VariantCursors) Index(table *menu.VariantTable) int {
	if c == nil || table == nil {
		return 0
	}
	return c.index[table.ID]
}

// Current returns the selected variant of table.
func (c *VariantCursors) Current(table *menu.VariantTable) menu.Variant {
	return table.At(c.Index(table))
}

// Step moves table's cursor by dir and returns the newly selected variant.
func (c *VariantCursors) Step(table *menu.VariantTable, dir Direction) (int, menu.Variant) {
	next := Cycle(table.Len(), c.Index(table), dir)
	c.index[table.ID] = next
	return next, table.At(next)
}
