// Package store is the state engine behind a searchable select widget. A
// Store owns the search text, the selection, locally created items, the
// keyboard-highlighted row and the chip overflow registry of one widget
// instance.
//
// A Store is driven from a Bubble Tea update loop and is not safe for
// concurrent use. Every deferred effect (search debounce, deferred close,
// frame-aligned chip checks, asynchronous creation) is returned as a tea.Cmd
// whose message must be passed back to Update.
package store

import (
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ruminaider/selectv2/internal/filter"
	"github.com/ruminaider/selectv2/internal/item"
	"github.com/ruminaider/selectv2/internal/selection"
	"github.com/ruminaider/selectv2/internal/source"
)

const (
	// DefaultDebounceWindow is the quiet period before a search change is
	// reported to OnSearchChange.
	DefaultDebounceWindow = 250 * time.Millisecond
	// DefaultCloseDelay is how long a single-select widget stays open after
	// a pick, so the selection registers before the list collapses.
	DefaultCloseDelay = 150 * time.Millisecond
)

var (
	// ErrNoCreateHandler is returned by New when creation is enabled without
	// an OnCreate handler.
	ErrNoCreateHandler = errors.New("creation enabled without a create handler")
	// ErrInvalidOptions is returned by New for out-of-range options.
	ErrInvalidOptions = errors.New("invalid store options")
)

// CreateFunc turns the trimmed search text into a new item. It runs inside a
// tea.Cmd, off the update loop.
type CreateFunc func(title string) (item.Item, error)

// SearchFunc receives the debounced search text. The returned command, if
// any, is passed on by Update.
type SearchFunc func(search string) tea.Cmd

// Options configures a Store.
type Options struct {
	Multiple        bool
	CreationEnabled bool
	Source          source.Source
	OnCreate        CreateFunc
	// OnSearchChange is notified once per quiet period. When nil and the
	// source implements source.Searcher, the source is told instead.
	OnSearchChange SearchFunc
	DebounceWindow time.Duration // zero means DefaultDebounceWindow
	CloseDelay     time.Duration // zero means DefaultCloseDelay
	Logger         *log.Logger   // nil discards log output
}

// Store is the per-widget state. Create one with New for every widget
// instance and hand it to the elements that render rows and chips.
type Store struct {
	opts   Options
	logger *log.Logger

	selected *selection.Set
	created  *selection.Set

	isOpen  bool
	openGen int

	search    string
	searchSeq int

	active        int
	createVisible bool

	locked   bool
	creating bool

	chips          *orderedmap.OrderedMap[item.Value, ChipChecker]
	overflowing    map[item.Value]struct{}
	recheckPending bool
	width          int
	bound          int

	lastErr   error
	listeners []func()
}

// New validates opts and returns a closed Store.
func New(opts Options) (*Store, error) {
	if opts.CreationEnabled && opts.OnCreate == nil {
		return nil, ErrNoCreateHandler
	}
	if opts.DebounceWindow < 0 {
		return nil, fmt.Errorf("%w: negative debounce window %s", ErrInvalidOptions, opts.DebounceWindow)
	}
	if opts.CloseDelay < 0 {
		return nil, fmt.Errorf("%w: negative close delay %s", ErrInvalidOptions, opts.CloseDelay)
	}
	if opts.DebounceWindow == 0 {
		opts.DebounceWindow = DefaultDebounceWindow
	}
	if opts.CloseDelay == 0 {
		opts.CloseDelay = DefaultCloseDelay
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{Prefix: "selectv2"})
	}

	s := &Store{
		opts:        opts,
		logger:      logger,
		selected:    selection.New(opts.Multiple),
		created:     selection.New(true),
		chips:       orderedmap.New[item.Value, ChipChecker](),
		overflowing: make(map[item.Value]struct{}),
	}
	s.ActiveReset()
	return s, nil
}

// Multiple reports whether the store allows several selected items.
func (s *Store) Multiple() bool { return s.opts.Multiple }

// Source returns the item source.
func (s *Store) Source() source.Source { return s.opts.Source }

// --- Open state ---

// IsOpen reports whether the list is expanded.
func (s *Store) IsOpen() bool { return s.isOpen }

// Open expands the list with an empty search.
func (s *Store) Open() {
	s.isOpen = true
	s.openGen++
	s.reset()
}

// Close collapses the list and clears the search.
func (s *Store) Close() {
	s.isOpen = false
	s.reset()
}

// SetOpen calls Open or Close.
func (s *Store) SetOpen(open bool) {
	if open {
		s.Open()
	} else {
		s.Close()
	}
}

func (s *Store) reset() {
	s.search = ""
	s.searchSeq++
	s.ActiveReset()
	s.notify()
}

// --- Derived state ---

// Rows recomputes the filtered rows from the current search, source and
// created items.
func (s *Store) Rows() []filter.Row {
	return filter.Compute(s.search, s.opts.Source, s.created)
}

// IsExactMatch reports whether exactly one item is listed and its title
// equals the search text.
func (s *Store) IsExactMatch() bool {
	items := filter.Items(s.Rows())
	return len(items) == 1 && items[0].Title == s.search
}

// IsCreateItemVisible reports whether the synthetic create row is shown.
func (s *Store) IsCreateItemVisible() bool {
	return s.opts.CreationEnabled && !s.IsExactMatch()
}

// IsCreating reports whether a create handler is in flight.
func (s *Store) IsCreating() bool { return s.creating }

// IsLoading reports whether the source is fetching or an item is being
// created.
func (s *Store) IsLoading() bool {
	return s.opts.Source.IsFetching() || s.creating
}

// Selected returns the selected items in selection order.
func (s *Store) Selected() []item.Item { return s.selected.Snapshot() }

// IsSelected reports whether v is selected.
func (s *Store) IsSelected(v item.Value) bool { return s.selected.Has(v) }

// Created returns the locally created items in creation order.
func (s *Store) Created() []item.Item { return s.created.Snapshot() }

// LastError returns the most recent creation error, or nil after a
// successful creation.
func (s *Store) LastError() error { return s.lastErr }

// --- Subscription ---

// Subscribe registers fn to run after every state change and returns a
// function that removes it.
func (s *Store) Subscribe(fn func()) func() {
	s.listeners = append(s.listeners, fn)
	idx := len(s.listeners) - 1
	return func() {
		s.listeners[idx] = nil
	}
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		if fn != nil {
			fn()
		}
	}
}

// refresh resets the active row when the create row appeared or vanished,
// then notifies listeners.
func (s *Store) refresh() {
	s.syncCreateRow()
	s.notify()
}

// --- Message routing ---

// Update applies messages produced by the commands this store returned.
// Messages addressed to other stores are ignored; anything else is offered
// to the source.
func (s *Store) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case searchDebounceMsg:
		if msg.store != s {
			return nil
		}
		return s.flushSearch(msg)
	case closeMsg:
		if msg.store != s {
			return nil
		}
		s.finishToggle(msg)
		return nil
	case createdMsg:
		if msg.store != s {
			return nil
		}
		return s.finishCreate(msg)
	case chipFrameMsg:
		if msg.store != s {
			return nil
		}
		s.runChipChecks()
		return nil
	}

	if u, ok := s.opts.Source.Origin().(source.Updater); ok && u.Update(msg) {
		s.refresh()
	}
	return nil
}

// LoadMore asks a paginated source for its next page.
func (s *Store) LoadMore() tea.Cmd {
	if q := s.opts.Source.Paginated(); q != nil {
		return q.FetchNextPage()
	}
	return nil
}

// report records a recoverable error.
func (s *Store) report(msg string, err error) {
	s.lastErr = err
	s.logger.Warn(msg, "err", err)
}
