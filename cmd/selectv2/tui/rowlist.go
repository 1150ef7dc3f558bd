package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ruminaider/selectv2/internal/filter"
	"github.com/ruminaider/selectv2/internal/store"
)

// RowList renders the store's filtered rows with scrolling support. It owns
// no selection state; the cursor is the store's active index.
type RowList struct {
	store  *store.Store
	height int // viewport height (number of visible lines)
	width  int
	offset int // scroll offset in display lines
}

// NewRowList creates a RowList over s.
func NewRowList(s *store.Store) *RowList {
	return &RowList{
		store:  s,
		height: DefaultListHeight,
	}
}

// SetHeight sets the viewport height.
func (l *RowList) SetHeight(h int) {
	l.height = h
	l.clampScroll()
}

// SetWidth sets the available width.
func (l *RowList) SetWidth(w int) {
	l.width = w
}

// createOffset is 1 when the create row occupies the first display line.
func (l *RowList) createOffset() int {
	if l.store.IsCreateItemVisible() {
		return 1
	}
	return 0
}

// cursorLine maps the store's active index to a display line.
func (l *RowList) cursorLine() int {
	return l.store.Active() + l.createOffset()
}

func (l *RowList) totalLines() int {
	return len(l.store.Rows()) + l.createOffset()
}

// AtEnd reports whether the cursor rests on the last row.
func (l *RowList) AtEnd() bool {
	return l.cursorLine() >= l.totalLines()-1
}

// View renders the visible rows.
func (l *RowList) View() string {
	l.clampScroll()

	rows := l.store.Rows()
	shift := l.createOffset()
	totalLines := len(rows) + shift

	visible := l.height
	hasAbove := l.offset > 0
	hasBelow := l.offset+l.height < totalLines
	if hasAbove {
		visible--
	}
	if hasBelow {
		visible--
	}
	if visible < 1 {
		visible = 1
	}

	var b strings.Builder

	if hasAbove {
		b.WriteString(DimStyle.Render("  ↑ more") + "\n")
	}

	end := l.offset + visible
	if end > totalLines {
		end = totalLines
	}

	for line := l.offset; line < end; line++ {
		b.WriteString(l.renderLine(rows, line-shift))
		b.WriteString("\n")
	}

	if end < totalLines {
		b.WriteString(DimStyle.Render("  ↓ more") + "\n")
	} else if l.store.IsLoading() {
		b.WriteString(DimStyle.Render("  loading...") + "\n")
	}

	return ListPaneStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderLine renders the row at index, where store.CreateRowIndex is the
// create row.
func (l *RowList) renderLine(rows []filter.Row, index int) string {
	active := l.store.IsActive(index)
	cursor := "  "
	if active {
		cursor = "> "
	}

	if index == store.CreateRowIndex {
		return cursor + RenderCreateAction(l.store.Search(), active, l.store.IsCreating())
	}

	row := rows[index]
	switch row.Kind {
	case filter.KindCategory:
		return RenderHeader(row.Title)
	case filter.KindNotFound:
		return cursor + RenderNotFound(active)
	}

	title := row.Item.Title
	if l.width > 0 {
		// cursor, checkbox and padding take 8 columns
		title = ansi.Truncate(title, max(l.width-8, 1), "…")
	}
	checkbox := RenderCheckbox(l.store.Multiple(), l.store.IsSelected(row.Item.Value))
	line := cursor + checkbox + " " + RenderItemText(title, active) + RenderCustomTag(row.Item.IsCustom)
	if l.width > 0 && lipgloss.Width(line) > l.width {
		line = ansi.Truncate(line, l.width, "")
	}
	return line
}

// clampScroll ensures the cursor is within the visible window by adjusting
// the scroll offset.
func (l *RowList) clampScroll() {
	if l.height <= 0 {
		return
	}
	totalLines := l.totalLines()
	cursor := l.cursorLine()

	// When rows overflow, scroll indicators take up to 2 lines.
	effectiveHeight := l.height
	if totalLines > l.height {
		effectiveHeight -= 2
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}
	if cursor < l.offset {
		l.offset = cursor
	}
	if cursor >= l.offset+effectiveHeight {
		l.offset = cursor - effectiveHeight + 1
	}
	maxOffset := totalLines - effectiveHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
}
