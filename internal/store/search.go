package store

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ruminaider/selectv2/internal/source"
)

// Search returns the current search text.
func (s *Store) Search() string { return s.search }

// SetSearch updates the search text and resets the highlight right away.
// The returned command reports the text to OnSearchChange after
// DebounceWindow; a later SetSearch supersedes it, so a burst of keystrokes
// produces one notification carrying the last value.
func (s *Store) SetSearch(v string) tea.Cmd {
	s.search = v
	s.ActiveReset()
	s.notify()
	return s.debounce(v)
}

// debounce supersedes any pending notification and arms one for v.
func (s *Store) debounce(v string) tea.Cmd {
	s.searchSeq++
	seq := s.searchSeq
	return tea.Tick(s.opts.DebounceWindow, func(time.Time) tea.Msg {
		return searchDebounceMsg{store: s, seq: seq, value: v}
	})
}

// flushSearch delivers a debounced search if no newer SetSearch happened.
func (s *Store) flushSearch(msg searchDebounceMsg) tea.Cmd {
	if msg.seq != s.searchSeq {
		return nil
	}
	if s.opts.OnSearchChange != nil {
		return s.opts.OnSearchChange(msg.value)
	}
	if searcher, ok := s.opts.Source.Origin().(source.Searcher); ok {
		cmd := searcher.SetSearch(msg.value)
		s.refresh()
		return cmd
	}
	return nil
}
