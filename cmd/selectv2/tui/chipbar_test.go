package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruminaider/selectv2/internal/item"
	"github.com/ruminaider/selectv2/internal/store"
)

func TestChipBar_SyncRegistersAndUnregisters(t *testing.T) {
	s := newTestStore(t, store.Options{Multiple: true})
	c := NewChipBar(s)
	assert.True(t, c.Dirty())

	s.Toggle(0)
	s.Toggle(2)
	require.True(t, c.Dirty())
	c.Sync()
	assert.False(t, c.Dirty())
	assert.Equal(t, 2, s.RegisteredChips())

	assert.Nil(t, c.Sync(), "unchanged selection")

	s.RemoveSelected(1)
	c.Sync()
	assert.Equal(t, 1, s.RegisteredChips())
}

func TestChipBar_ViewEmpty(t *testing.T) {
	s := newTestStore(t, store.Options{Multiple: true})
	assert.Empty(t, NewChipBar(s).View())
}

func TestChipBar_CheckerReportsOverflow(t *testing.T) {
	s := newTestStore(t, store.Options{Multiple: true})
	c := NewChipBar(s)
	s.Toggle(0)
	s.Toggle(1)
	c.Sync()

	// Without a known bound nothing overflows.
	c.checker(1).Check()
	assert.False(t, s.IsOverflowing(1))

	s.SetDimensions(12, 12)
	c.checker(1).Check()
	c.checker(2).Check()
	assert.True(t, s.IsOverflowing(1), "Apple chip is 9 wide, 7 columns fit")
	assert.True(t, s.IsOverflowing(2))
	assert.Equal(t, "+2", strings.TrimSpace(c.View()))

	s.SetDimensions(60, 60)
	c.checker(1).Check()
	c.checker(2).Check()
	assert.Zero(t, s.OverflowingCount())
}

func TestChipBar_CustomAndLongTitles(t *testing.T) {
	assert.Equal(t, " Kiwi × ", renderChip(item.Item{Value: "k", Title: "Kiwi", IsCustom: true}))

	chip := renderChip(item.Item{Value: "l", Title: strings.Repeat("y", 50)})
	assert.Contains(t, chip, "…")
	assert.NotContains(t, chip, strings.Repeat("y", MaxChipTitle+1))
}
