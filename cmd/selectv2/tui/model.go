// Package tui renders a store-backed searchable select in the terminal.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ruminaider/selectv2/internal/filter"
	"github.com/ruminaider/selectv2/internal/item"
	"github.com/ruminaider/selectv2/internal/store"
)

// chromeLines is the number of lines around the row list: title, chips,
// search box and status bar.
const chromeLines = 4

// Model is the root bubbletea model. It translates keys into store
// operations and routes every other message to the store.
type Model struct {
	store *store.Store

	// Layout components.
	input  textinput.Model
	rows   *RowList
	chips  *ChipBar
	status StatusBar

	title  string
	width  int
	height int

	done      bool
	cancelled bool
}

// NewModel creates a Model over s and opens the list.
func NewModel(s *store.Store, title string) Model {
	ti := textinput.New()
	ti.Prompt = PromptStyle.Render("› ")
	ti.Placeholder = "Search..."
	ti.PlaceholderStyle = PlaceholderStyle
	ti.Focus()

	s.Open()

	return Model{
		store:  s,
		input:  ti,
		rows:   NewRowList(s),
		chips:  NewChipBar(s),
		status: NewStatusBar(s),
		title:  title,
	}
}

// Init starts the cursor blink and the first load of a fetched source.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if q := m.store.Source().SingleFetch(); q != nil {
		cmds = append(cmds, q.Refetch())
	}
	cmds = append(cmds, m.store.LoadMore())
	return tea.Batch(cmds...)
}

// Update handles keys, resizes and the store's own messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 1)
		m.rows.SetWidth(msg.Width)
		m.rows.SetHeight(listHeight(msg.Height))
		m.status.SetWidth(msg.Width)
		cmds = append(cmds, m.store.SetDimensions(msg.Width, msg.Width))

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	default:
		cmds = append(cmds, m.store.Update(msg))
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Creation and close clear the search inside the store.
	if m.input.Value() != m.store.Search() {
		m.input.SetValue(m.store.Search())
	}
	if m.chips.Dirty() {
		cmds = append(cmds, m.chips.Sync())
	}
	if m.done {
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		m.cancelled = true
		m.done = true
		return nil
	case "esc":
		if m.store.IsOpen() {
			m.store.Close()
			return nil
		}
		m.cancelled = true
		m.done = true
		return nil
	case "enter":
		if !m.store.IsOpen() {
			m.done = true
			return nil
		}
		return m.store.ActiveConfirm()
	case "down", "ctrl+n":
		if !m.store.IsOpen() {
			m.store.Open()
			return nil
		}
		m.store.ActiveDown()
		if m.rows.AtEnd() {
			return m.store.LoadMore()
		}
		return nil
	case "up", "ctrl+p":
		m.store.ActiveUp()
		return nil
	case "tab":
		m.store.ActiveCycle()
		return nil
	case "ctrl+x":
		// Drops a created item under the cursor.
		if it, ok := filter.ItemAt(m.store.Rows(), m.store.Active()); ok && it.IsCustom {
			return m.store.RemoveCreated(it)
		}
		return nil
	case "backspace":
		if m.input.Value() == "" {
			selected := m.store.Selected()
			if len(selected) == 0 {
				return nil
			}
			return m.store.RemoveSelected(selected[len(selected)-1].Value)
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return cmd
	}
	if !m.store.IsOpen() {
		m.store.Open()
	}
	return tea.Batch(cmd, m.store.SetSearch(m.input.Value()))
}

// View renders the title, chips, search box, rows and status bar.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(HeaderStyle.Render(m.title) + "\n")
	}
	if chips := m.chips.View(); chips != "" {
		b.WriteString(chips + "\n")
	}
	b.WriteString(m.input.View() + "\n")
	if m.store.IsOpen() {
		b.WriteString(m.rows.View() + "\n")
	}
	b.WriteString(m.status.View())
	return b.String()
}

// Done reports whether the user finished or cancelled.
func (m Model) Done() bool { return m.done }

// Cancelled reports whether the user left without confirming.
func (m Model) Cancelled() bool { return m.cancelled }

// Selected returns the confirmed selection, or nil when cancelled.
func (m Model) Selected() []item.Item {
	if m.cancelled {
		return nil
	}
	return m.store.Selected()
}

// Store returns the underlying store.
func (m Model) Store() *store.Store { return m.store }

func listHeight(termHeight int) int {
	if termHeight <= 0 {
		return DefaultListHeight
	}
	return max(termHeight-chromeLines, 3)
}
