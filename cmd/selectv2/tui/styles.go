package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// DefaultListHeight is the number of row lines shown when the terminal
// height is unknown.
const DefaultListHeight = 10

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

// Color constants extracted from the Mocha palette for convenience.
var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorPeach    = lipgloss.Color(flavor.Peach().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Row list styles.
var (
	// HeaderStyle is used for the Custom and Original category rows.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// SelectedStyle is used for checked items.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// UnselectedStyle is used for unchecked items.
	UnselectedStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// DimStyle is used for hints and unfocused content.
	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// CustomTagStyle marks items created in this session.
	CustomTagStyle = lipgloss.NewStyle().
			Foreground(colorPeach).
			Italic(true)

	// ListPaneStyle wraps the row list.
	ListPaneStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1)
)

// Search box styles.
var (
	// PromptStyle is the search prompt.
	PromptStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// PlaceholderStyle is the empty search hint.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0)
)

// Chip styles.
var (
	// ChipStyle renders one selected item above the search box.
	ChipStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue).
			Padding(0, 1)

	// CustomChipStyle renders a selected item created in this session.
	CustomChipStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorPeach).
			Padding(0, 1)

	// OverflowBadgeStyle renders the "+N" count of chips that did not fit.
	OverflowBadgeStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface1).
				Padding(0, 1)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)

	// StatusBarErrorStyle shows the last creation error.
	StatusBarErrorStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Background(colorSurface0)
)
