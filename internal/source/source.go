// Package source describes where a select widget gets its items from: a
// static list, a single fetch driven by the search text, or a paginated
// fetch.
package source

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ruminaider/selectv2/internal/item"
)

// Kind is the capability shape of an item source.
type Kind int

const (
	KindStatic      Kind = iota // plain ordered list, filtered client-side
	KindSingleFetch             // one fetched list, filtered server-side
	KindPaginated               // loaded pages, flattened and filtered client-side
)

// String returns the name used in config files and flags.
func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindSingleFetch:
		return "fetch"
	case KindPaginated:
		return "paged"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for _, k := range []Kind{KindStatic, KindSingleFetch, KindPaginated} {
		if k.String() == s {
			return k, true
		}
	}
	return KindStatic, false
}

// Page is one loaded page of a paginated source.
type Page struct {
	Number  int
	Items   []item.Item
	HasMore bool
}

// SingleFetch is a source whose data is fetched as one list. Its data is not
// filtered client-side; callers refetch per search token.
type SingleFetch interface {
	Data() []item.Item
	Refetch() tea.Cmd
	IsFetching() bool
}

// Paginated is a source that loads pages on demand.
type Paginated interface {
	Pages() []Page
	FetchNextPage() tea.Cmd
	IsFetching() bool
}

// Updater is implemented by sources that consume their own result messages.
// Update returns true when msg belonged to the source.
type Updater interface {
	Update(msg tea.Msg) bool
}

// Searcher is implemented by sources that refetch when the search changes.
type Searcher interface {
	SetSearch(search string) tea.Cmd
}

type (
	dataProbe    interface{ Data() []item.Item }
	refetchProbe interface{ Refetch() tea.Cmd }
	pagesProbe   interface{ Pages() []Page }
	pagerProbe   interface{ FetchNextPage() tea.Cmd }
)

// Classify inspects src for capabilities: pages plus FetchNextPage is
// paginated, data plus Refetch without FetchNextPage is a single fetch, and
// anything else is treated as a static list. A flat Data list next to
// FetchNextPage has no pages to flatten, so it stays static.
func Classify(src any) Kind {
	_, hasPager := src.(pagerProbe)
	if _, ok := src.(pagesProbe); ok && hasPager {
		return KindPaginated
	}
	_, hasData := src.(dataProbe)
	_, hasRefetch := src.(refetchProbe)
	if hasData && hasRefetch && !hasPager {
		return KindSingleFetch
	}
	return KindStatic
}

// Source is a tagged item source. Build one with Static, FromQuery or
// FromInfinite when the shape is known, or Detect for an opaque value.
type Source struct {
	kind   Kind
	items  []item.Item
	single SingleFetch
	paged  Paginated
	probe  any // set by Detect; the kind is re-derived on every access
}

// Static returns a source over a fixed list.
func Static(items []item.Item) Source {
	return Source{kind: KindStatic, items: items}
}

// FromQuery returns a single-fetch source.
func FromQuery(q SingleFetch) Source {
	return Source{kind: KindSingleFetch, single: q}
}

// FromInfinite returns a paginated source.
func FromInfinite(q Paginated) Source {
	return Source{kind: KindPaginated, paged: q}
}

// Detect wraps an opaque value. A []item.Item is a static list; other values
// are classified by capability each time the source is read.
func Detect(src any) Source {
	if items, ok := src.([]item.Item); ok {
		return Static(items)
	}
	if s, ok := src.(Source); ok {
		return s
	}
	return Source{probe: src}
}

// Kind returns the source shape.
func (s Source) Kind() Kind {
	if s.probe != nil {
		return Classify(s.probe)
	}
	return s.kind
}

// Items returns the static list. Nil for fetched sources.
func (s Source) Items() []item.Item {
	if s.Kind() != KindStatic {
		return nil
	}
	return s.items
}

// SingleFetch returns the single-fetch collaborator, or nil.
func (s Source) SingleFetch() SingleFetch {
	if s.Kind() != KindSingleFetch {
		return nil
	}
	if s.probe != nil {
		return asSingleFetch(s.probe)
	}
	return s.single
}

// Paginated returns the paginated collaborator, or nil.
func (s Source) Paginated() Paginated {
	if s.Kind() != KindPaginated {
		return nil
	}
	if s.probe != nil {
		return asPaginated(s.probe)
	}
	return s.paged
}

// IsFetching reports whether a fetched source has a request in flight.
func (s Source) IsFetching() bool {
	if q := s.SingleFetch(); q != nil {
		return q.IsFetching()
	}
	if q := s.Paginated(); q != nil {
		return q.IsFetching()
	}
	return false
}

// Origin returns the collaborator behind the source, if any.
func (s Source) Origin() any {
	switch {
	case s.probe != nil:
		return s.probe
	case s.single != nil:
		return s.single
	case s.paged != nil:
		return s.paged
	default:
		return nil
	}
}

// probedSingle adapts a value that exposes data and refetch but no fetching
// flag.
type probedSingle struct {
	dataProbe
	refetchProbe
}

func (probedSingle) IsFetching() bool { return false }

type probedPaginated struct {
	pagesProbe
	pagerProbe
}

func (probedPaginated) IsFetching() bool { return false }

func asSingleFetch(v any) SingleFetch {
	if q, ok := v.(SingleFetch); ok {
		return q
	}
	return probedSingle{dataProbe: v.(dataProbe), refetchProbe: v.(refetchProbe)}
}

func asPaginated(v any) Paginated {
	if q, ok := v.(Paginated); ok {
		return q
	}
	return probedPaginated{pagesProbe: v.(pagesProbe), pagerProbe: v.(pagerProbe)}
}
