package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/ruminaider/selectv2/internal/store"
)

// StatusBar renders the bottom row with the selection count, the source
// state and keyboard shortcuts.
type StatusBar struct {
	store *store.Store
	width int
}

// NewStatusBar creates a status bar for s.
func NewStatusBar(s *store.Store) StatusBar {
	return StatusBar{store: s}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// View renders the status bar.
func (s StatusBar) View() string {
	// Left side: selection info.
	left := fmt.Sprintf("%d selected · %s source", len(s.store.Selected()), s.store.Source().Kind())
	if s.store.IsLoading() {
		left += " · loading..."
	}
	if err := s.store.LastError(); err != nil {
		left = StatusBarErrorStyle.Render(err.Error())
	}

	// Right side: keyboard shortcuts.
	var shortcuts []string
	if s.store.IsOpen() {
		shortcuts = []string{
			StatusBarKeyStyle.Render("Enter") + ": toggle",
			StatusBarKeyStyle.Render("Tab") + ": cycle",
			StatusBarKeyStyle.Render("Esc") + ": close",
		}
	} else {
		shortcuts = []string{
			StatusBarKeyStyle.Render("Enter") + ": done",
			StatusBarKeyStyle.Render("↓") + ": open",
			StatusBarKeyStyle.Render("Esc") + ": cancel",
		}
	}
	right := strings.Join(shortcuts, " · ")

	// Calculate padding between left and right.
	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	availableWidth := s.width - 2 // account for StatusBarStyle padding
	gap := availableWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	content := left + strings.Repeat(" ", gap) + right

	return StatusBarStyle.Width(s.width).Render(content)
}
