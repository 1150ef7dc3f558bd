package source

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ruminaider/selectv2/internal/item"
)

// FetchFunc loads the items matching search.
type FetchFunc func(ctx context.Context, search string) ([]item.Item, error)

// PageFunc loads one page of the items matching search. Pages are numbered
// from zero.
type PageFunc func(ctx context.Context, search string, page int) (Page, error)

// queryResultMsg delivers a finished fetch back to the Query that issued it.
type queryResultMsg struct {
	query *Query
	seq   int
	items []item.Item
	err   error
}

// Query is a single-fetch source. Every fetch is tagged with a sequence
// number so only the newest response is applied.
type Query struct {
	ctx      context.Context
	fetch    FetchFunc
	search   string
	data     []item.Item
	fetching bool
	err      error
	seq      int
}

// NewQuery creates a Query with initial data. Nothing is fetched until
// Refetch or SetSearch is called.
func NewQuery(fetch FetchFunc, initial []item.Item) *Query {
	return &Query{
		ctx:   context.Background(),
		fetch: fetch,
		data:  initial,
	}
}

// WithContext sets the context passed to the fetch function.
func (q *Query) WithContext(ctx context.Context) *Query {
	q.ctx = ctx
	return q
}

// Data returns the most recently fetched items.
func (q *Query) Data() []item.Item { return q.data }

// IsFetching reports whether a fetch is in flight.
func (q *Query) IsFetching() bool { return q.fetching }

// Err returns the error of the last completed fetch.
func (q *Query) Err() error { return q.err }

// Search returns the search token used by the next fetch.
func (q *Query) Search() string { return q.search }

// SetSearch records a new search token and refetches.
func (q *Query) SetSearch(search string) tea.Cmd {
	q.search = search
	return q.Refetch()
}

// Refetch loads data for the current search token. A response to an older
// request is dropped when it arrives.
func (q *Query) Refetch() tea.Cmd {
	q.seq++
	q.fetching = true
	seq, search, ctx, fetch := q.seq, q.search, q.ctx, q.fetch
	return func() tea.Msg {
		items, err := fetch(ctx, search)
		return queryResultMsg{query: q, seq: seq, items: items, err: err}
	}
}

// Update applies a fetch result issued by this Query.
func (q *Query) Update(msg tea.Msg) bool {
	res, ok := msg.(queryResultMsg)
	if !ok || res.query != q {
		return false
	}
	if res.seq != q.seq {
		return true
	}
	q.fetching = false
	if res.err != nil {
		q.err = fmt.Errorf("fetching items for %q: %w", q.search, res.err)
		return true
	}
	q.err = nil
	q.data = res.items
	return true
}

// pageResultMsg delivers a finished page load back to its InfiniteQuery.
type pageResultMsg struct {
	query *InfiniteQuery
	seq   int
	index int
	page  Page
	err   error
}

// InfiniteQuery is a paginated source. Pages are appended in load order.
type InfiniteQuery struct {
	ctx      context.Context
	fetch    PageFunc
	search   string
	pages    []Page
	fetching bool
	err      error
	seq      int
}

// NewInfiniteQuery creates an empty InfiniteQuery. The first FetchNextPage
// loads page zero.
func NewInfiniteQuery(fetch PageFunc) *InfiniteQuery {
	return &InfiniteQuery{
		ctx:   context.Background(),
		fetch: fetch,
	}
}

// WithContext sets the context passed to the page function.
func (q *InfiniteQuery) WithContext(ctx context.Context) *InfiniteQuery {
	q.ctx = ctx
	return q
}

// Pages returns the loaded pages.
func (q *InfiniteQuery) Pages() []Page { return q.pages }

// IsFetching reports whether a page load is in flight.
func (q *InfiniteQuery) IsFetching() bool { return q.fetching }

// Err returns the error of the last completed page load.
func (q *InfiniteQuery) Err() error { return q.err }

// HasNextPage reports whether another page can be loaded.
func (q *InfiniteQuery) HasNextPage() bool {
	if len(q.pages) == 0 {
		return true
	}
	return q.pages[len(q.pages)-1].HasMore
}

// FetchNextPage loads the page after the last loaded one. It does nothing
// while a load is in flight or when the last page reported no more items.
func (q *InfiniteQuery) FetchNextPage() tea.Cmd {
	if q.fetching || !q.HasNextPage() {
		return nil
	}
	return q.load(len(q.pages))
}

// SetSearch drops every loaded page and reloads page zero for search.
func (q *InfiniteQuery) SetSearch(search string) tea.Cmd {
	q.search = search
	q.pages = nil
	return q.load(0)
}

func (q *InfiniteQuery) load(index int) tea.Cmd {
	q.seq++
	q.fetching = true
	seq, search, ctx, fetch := q.seq, q.search, q.ctx, q.fetch
	return func() tea.Msg {
		page, err := fetch(ctx, search, index)
		return pageResultMsg{query: q, seq: seq, index: index, page: page, err: err}
	}
}

// Update applies a page result issued by this InfiniteQuery.
func (q *InfiniteQuery) Update(msg tea.Msg) bool {
	res, ok := msg.(pageResultMsg)
	if !ok || res.query != q {
		return false
	}
	if res.seq != q.seq {
		return true
	}
	q.fetching = false
	if res.err != nil {
		q.err = fmt.Errorf("fetching page %d for %q: %w", res.index, q.search, res.err)
		return true
	}
	q.err = nil
	res.page.Number = res.index
	q.pages = append(q.pages, res.page)
	return true
}
