package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ruminaider/selectv2/internal/item"
	"github.com/ruminaider/selectv2/internal/store"
)

const (
	// MaxChipTitle is the widest title a chip shows before truncating.
	MaxChipTitle = 20
	// chipGap separates adjacent chips.
	chipGap = 1
	// badgeReserve keeps room for the "+N" badge at the right edge.
	badgeReserve = 5
)

// ChipBar renders the selected items as chips above the search box. Every
// chip registers a checker with the store; a check measures the chip's
// right edge against the store's bound and reports overflow back.
type ChipBar struct {
	store      *store.Store
	registered []item.Value
	dirty      bool
}

// NewChipBar creates a ChipBar over s and resyncs it whenever the store
// changes.
func NewChipBar(s *store.Store) *ChipBar {
	c := &ChipBar{store: s, dirty: true}
	s.Subscribe(func() { c.dirty = true })
	return c
}

// Dirty reports whether the selection may have changed since the last Sync.
func (c *ChipBar) Dirty() bool { return c.dirty }

// Sync registers chips for newly selected items and unregisters chips whose
// item was deselected. Either change schedules a recheck; an unchanged
// selection returns nil.
func (c *ChipBar) Sync() tea.Cmd {
	c.dirty = false
	selected := c.store.Selected()

	keep := make(map[item.Value]bool, len(selected))
	for _, it := range selected {
		keep[it.Value] = true
	}

	var cmds []tea.Cmd
	var still []item.Value
	for _, id := range c.registered {
		if keep[id] {
			still = append(still, id)
			continue
		}
		cmds = append(cmds, c.store.UnregisterChip(id))
	}

	known := make(map[item.Value]bool, len(still))
	for _, id := range still {
		known[id] = true
	}
	added := false
	for _, it := range selected {
		if known[it.Value] {
			continue
		}
		c.store.RegisterChip(it.Value, c.checker(it.Value))
		still = append(still, it.Value)
		added = true
	}
	c.registered = still

	if added {
		cmds = append(cmds, c.store.Recheck())
	}
	return tea.Batch(cmds...)
}

// checker measures the chip for id at its current position in the
// selection order.
func (c *ChipBar) checker(id item.Value) store.ChipChecker {
	return store.ChipFunc(func() {
		bound := c.store.Bound()
		if bound <= 0 {
			c.store.SetOverflowingChip(id, false)
			return
		}
		x := 0
		for _, it := range c.store.Selected() {
			right := x + lipgloss.Width(renderChip(it))
			if it.Value == id {
				c.store.SetOverflowingChip(id, right > bound-badgeReserve)
				return
			}
			x = right + chipGap
		}
		// deselected since registration
		c.store.SetOverflowingChip(id, false)
	})
}

// View renders the chips that fit and a "+N" badge for the rest.
func (c *ChipBar) View() string {
	selected := c.store.Selected()
	if len(selected) == 0 {
		return ""
	}
	var chips []string
	for _, it := range selected {
		if c.store.IsOverflowing(it.Value) {
			continue
		}
		chips = append(chips, renderChip(it))
	}
	if n := c.store.OverflowingCount(); n > 0 {
		chips = append(chips, OverflowBadgeStyle.Render(fmt.Sprintf("+%d", n)))
	}
	return strings.Join(chips, strings.Repeat(" ", chipGap))
}

func renderChip(it item.Item) string {
	label := ansi.Truncate(it.Title, MaxChipTitle, "…") + " ×"
	if it.IsCustom {
		return CustomChipStyle.Render(label)
	}
	return ChipStyle.Render(label)
}
