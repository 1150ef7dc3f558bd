package store

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ruminaider/selectv2/internal/item"
)

// FrameInterval is the delay before a scheduled chip check runs. Checks
// requested within one frame share a single pass.
const FrameInterval = time.Second / 60

// ChipChecker is implemented by rendered chips. Check measures the chip and
// reports back through Store.SetOverflowingChip.
type ChipChecker interface {
	Check()
}

// ChipFunc adapts a function to ChipChecker.
type ChipFunc func()

// Check calls f.
func (f ChipFunc) Check() { f() }

// RegisterChip adds or replaces the checker for chip id.
func (s *Store) RegisterChip(id item.Value, c ChipChecker) {
	s.chips.Set(id, c)
}

// UnregisterChip removes chip id and schedules a recheck of the rest.
func (s *Store) UnregisterChip(id item.Value) tea.Cmd {
	s.chips.Delete(id)
	delete(s.overflowing, id)
	return s.Recheck()
}

// RegisteredChips returns the number of registered chips.
func (s *Store) RegisteredChips() int { return s.chips.Len() }

// Recheck schedules one pass over every registered chip on the next frame.
// It returns nil when a pass is already pending.
func (s *Store) Recheck() tea.Cmd {
	if s.recheckPending {
		return nil
	}
	s.recheckPending = true
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return chipFrameMsg{store: s}
	})
}

func (s *Store) runChipChecks() {
	s.recheckPending = false

	checkers := make([]ChipChecker, 0, s.chips.Len())
	for pair := s.chips.Oldest(); pair != nil; pair = pair.Next() {
		checkers = append(checkers, pair.Value)
	}
	for _, c := range checkers {
		c.Check()
	}
	s.notify()
}

// SetOverflowingChip records whether chip id overflows the widget width.
func (s *Store) SetOverflowingChip(id item.Value, overflowing bool) {
	if overflowing {
		s.overflowing[id] = struct{}{}
	} else {
		delete(s.overflowing, id)
	}
}

// IsOverflowing reports whether chip id was last reported as overflowing.
func (s *Store) IsOverflowing(id item.Value) bool {
	_, ok := s.overflowing[id]
	return ok
}

// OverflowingCount returns the number of overflowing chips.
func (s *Store) OverflowingCount() int { return len(s.overflowing) }

// OverflowingIDs returns the overflowing chip ids in registration order.
func (s *Store) OverflowingIDs() []item.Value {
	var ids []item.Value
	for pair := s.chips.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := s.overflowing[pair.Key]; ok {
			ids = append(ids, pair.Key)
		}
	}
	return ids
}

// SetDimensions records the widget's width and right edge and schedules a
// chip recheck when either changed.
func (s *Store) SetDimensions(width, bound int) tea.Cmd {
	if width == s.width && bound == s.bound {
		return nil
	}
	s.width = width
	s.bound = bound
	return s.Recheck()
}

// Width returns the widget width last passed to SetDimensions.
func (s *Store) Width() int { return s.width }

// Bound returns the widget's right edge last passed to SetDimensions.
func (s *Store) Bound() int { return s.bound }
