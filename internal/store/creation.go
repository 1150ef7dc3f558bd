package store

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ruminaider/selectv2/internal/filter"
	"github.com/ruminaider/selectv2/internal/item"
)

// IsLocked reports whether a create or a single-select toggle is holding
// the mutation lock.
func (s *Store) IsLocked() bool { return s.locked }

// Create turns the trimmed search text into a new item through OnCreate.
// It returns nil without doing anything while another mutation holds the
// lock, when the search is blank or when no handler is configured. The
// handler runs in the returned command; its result is applied by Update.
func (s *Store) Create() tea.Cmd {
	if s.locked {
		return nil
	}
	title := strings.TrimSpace(s.search)
	handler := s.opts.OnCreate
	if title == "" || handler == nil {
		return nil
	}

	s.locked = true
	s.creating = true
	s.notify()

	return func() tea.Msg {
		it, err := handler(title)
		return createdMsg{store: s, title: title, item: it, err: err}
	}
}

func (s *Store) finishCreate(msg createdMsg) tea.Cmd {
	defer func() {
		s.locked = false
		s.creating = false
		s.notify()
	}()

	if msg.err != nil {
		s.report("create handler failed", fmt.Errorf("creating %q: %w", msg.title, msg.err))
		return nil
	}
	if err := item.Validate(msg.item); err != nil {
		s.report("create handler returned an invalid item", err)
		return nil
	}

	it := msg.item
	it.IsCustom = true
	s.created.Add(it)
	s.selected.Add(it)
	s.lastErr = nil
	s.search = ""
	s.ActiveReset()
	s.logger.Debug("created item", "value", item.Key(it.Value), "title", it.Title)
	return tea.Batch(s.Recheck(), s.debounce(""))
}

// Toggle flips the selection of the item at row index. Non-item rows and
// calls made while the lock is held are ignored. In single-select mode the
// lock stays held until the widget closes after CloseDelay.
func (s *Store) Toggle(index int) tea.Cmd {
	if s.locked {
		return nil
	}
	it, ok := filter.ItemAt(s.Rows(), index)
	if !ok {
		return nil
	}

	s.selected.Toggle(it)
	s.active = index
	s.notify()

	recheck := s.Recheck()
	if s.opts.Multiple {
		return recheck
	}

	s.locked = true
	gen := s.openGen
	closeLater := tea.Tick(s.opts.CloseDelay, func(time.Time) tea.Msg {
		return closeMsg{store: s, gen: gen}
	})
	return tea.Batch(recheck, closeLater)
}

// finishToggle releases the lock taken by a single-select toggle and closes
// the widget, unless it was reopened in the meantime.
func (s *Store) finishToggle(msg closeMsg) {
	s.locked = false
	if s.isOpen && msg.gen == s.openGen {
		s.Close()
		return
	}
	s.notify()
}

// RemoveCreated deletes a locally created item from the created items and
// the selection.
func (s *Store) RemoveCreated(it item.Item) tea.Cmd {
	if s.locked {
		return nil
	}
	s.created.Remove(it.Value)
	s.selected.Remove(it.Value)
	s.refresh()
	return s.Recheck()
}

// RemoveSelected drops v from the selection, as a chip's close button does.
func (s *Store) RemoveSelected(v item.Value) tea.Cmd {
	if !s.selected.Remove(v) {
		return nil
	}
	s.notify()
	return s.Recheck()
}
