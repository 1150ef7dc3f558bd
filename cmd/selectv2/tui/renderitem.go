package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderCheckbox returns a styled [x] / [ ] box for multi-select and a
// (•) / ( ) marker for single-select.
func RenderCheckbox(multiple, selected bool) string {
	box := "( )"
	if multiple {
		box = "[ ]"
	}
	if selected {
		if multiple {
			return SelectedStyle.Render("[x]")
		}
		return SelectedStyle.Render("(•)")
	}
	return UnselectedStyle.Render(box)
}

// RenderItemText returns styled display text for a list item.
// Bold+colorText when active, plain otherwise.
func RenderItemText(text string, isActive bool) string {
	if isActive {
		return lipgloss.NewStyle().Bold(true).Foreground(colorText).Render(text)
	}
	return text
}

// RenderCustomTag returns the marker shown after created items.
func RenderCustomTag(isCustom bool) string {
	if !isCustom {
		return ""
	}
	return "  " + CustomTagStyle.Render("custom")
}

// RenderHeader returns a styled category line.
func RenderHeader(title string) string {
	return HeaderStyle.Render(fmt.Sprintf("── %s ──", title))
}

// RenderCreateAction returns styled text for the create row.
// Shows "Creating..." while the create handler runs and a hint while the
// search is blank.
func RenderCreateAction(search string, isActive, creating bool) string {
	if creating {
		text := "Creating..."
		if isActive {
			return lipgloss.NewStyle().Bold(true).Foreground(colorOverlay0).Render(text)
		}
		return DimStyle.Render(text)
	}
	if strings.TrimSpace(search) == "" {
		return DimStyle.Render("[+ Type to create]")
	}
	text := fmt.Sprintf("[+ Create %q]", search)
	if isActive {
		return lipgloss.NewStyle().Bold(true).Foreground(colorBlue).Render(text)
	}
	return lipgloss.NewStyle().Foreground(colorBlue).Render(text)
}

// RenderNotFound returns the terminal "no results" line.
func RenderNotFound(isActive bool) string {
	if isActive {
		return lipgloss.NewStyle().Bold(true).Foreground(colorOverlay0).Render("No results")
	}
	return DimStyle.Render("No results")
}
