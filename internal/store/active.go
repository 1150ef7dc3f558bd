package store

import tea "github.com/charmbracelet/bubbletea"

const (
	// CreateRowIndex is the active index of the synthetic create row. It
	// sits above the first real row.
	CreateRowIndex = -1
	// FirstRowIndex is the index of the first real row.
	FirstRowIndex = 0
)

// Active returns the highlighted row index.
func (s *Store) Active() int { return s.active }

// IsActive reports whether index is highlighted.
func (s *Store) IsActive(index int) bool { return s.active == index }

func (s *Store) minIndex() int {
	if s.IsCreateItemVisible() {
		return CreateRowIndex
	}
	return FirstRowIndex
}

// ActiveDown moves to the next selectable row, clamped at the last row.
// When nothing selectable follows, the highlight rests on the last row
// whatever its kind.
func (s *Store) ActiveDown() {
	s.syncCreateRow()
	rows := s.Rows()
	last := len(rows) - 1

	next := s.active + 1
	for next >= 0 && next < last && !rows[next].Selectable() {
		next++
	}
	if next > last {
		next = last
	}
	if floor := s.minIndex(); next < floor {
		next = floor
	}
	s.active = next
	s.notify()
}

// ActiveUp moves to the previous selectable row, floored at the create row
// when it is visible and at the first row otherwise.
func (s *Store) ActiveUp() {
	s.syncCreateRow()
	rows := s.Rows()
	floor := s.minIndex()

	next := s.active - 1
	for next > floor && (next >= len(rows) || !rows[next].Selectable()) {
		next--
	}
	if next < floor {
		next = floor
	}
	s.active = next
	s.notify()
}

// ActiveCycle moves to the next row, wrapping at the end. Unlike
// ActiveDown it stops on category and not-found rows.
func (s *Store) ActiveCycle() {
	n := len(s.Rows())
	if n == 0 {
		return
	}
	s.active = (s.active + 1) % n
	s.notify()
}

// ActiveConfirm creates an item when the create row is highlighted and
// toggles the highlighted row otherwise.
func (s *Store) ActiveConfirm() tea.Cmd {
	s.syncCreateRow()
	if s.IsCreateItemVisible() && s.active == CreateRowIndex {
		return s.Create()
	}
	return s.Toggle(s.active)
}

// syncCreateRow resets the highlight when the create row appeared or
// vanished since the last reset. Sources that change without passing
// through Update are caught here.
func (s *Store) syncCreateRow() {
	if s.IsCreateItemVisible() != s.createVisible {
		s.ActiveReset()
	}
}

// ActiveReset moves the highlight to the top: the create row when visible,
// the first row otherwise.
func (s *Store) ActiveReset() {
	s.createVisible = s.IsCreateItemVisible()
	if s.createVisible {
		s.active = CreateRowIndex
	} else {
		s.active = FirstRowIndex
	}
}
