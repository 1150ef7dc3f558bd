package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/google/uuid"

	"github.com/ruminaider/selectv2/internal/config"
	"github.com/ruminaider/selectv2/internal/item"
	"github.com/ruminaider/selectv2/internal/paths"
	"github.com/ruminaider/selectv2/internal/source"
	"github.com/ruminaider/selectv2/internal/store"
)

// builtinItems is used when no items file is given.
var builtinItems = []item.Item{
	{Value: 1, Title: "Apple"},
	{Value: 2, Title: "Apricot"},
	{Value: 3, Title: "Banana"},
	{Value: 4, Title: "Blackberry"},
	{Value: 5, Title: "Blueberry"},
	{Value: 6, Title: "Cherry"},
	{Value: 7, Title: "Coconut"},
	{Value: 8, Title: "Date"},
	{Value: 9, Title: "Fig"},
	{Value: 10, Title: "Grape"},
	{Value: 11, Title: "Grapefruit"},
	{Value: 12, Title: "Guava"},
	{Value: 13, Title: "Kiwi"},
	{Value: 14, Title: "Lemon"},
	{Value: 15, Title: "Lime"},
	{Value: 16, Title: "Lychee"},
	{Value: 17, Title: "Mango"},
	{Value: 18, Title: "Nectarine"},
	{Value: 19, Title: "Orange"},
	{Value: 20, Title: "Papaya"},
	{Value: 21, Title: "Peach"},
	{Value: 22, Title: "Pear"},
	{Value: 23, Title: "Pineapple"},
	{Value: 24, Title: "Plum"},
	{Value: 25, Title: "Pomegranate"},
	{Value: 26, Title: "Raspberry"},
	{Value: 27, Title: "Strawberry"},
	{Value: 28, Title: "Tangerine"},
	{Value: 29, Title: "Watermelon"},
}

// loadItems reads the items file at path. Without a path it reads
// ~/.selectv2/items.yaml and falls back to the built-in list when that file
// does not exist.
func loadItems(path string) ([]item.Item, error) {
	if path != "" {
		return config.LoadItems(path)
	}
	items, err := config.LoadItems(paths.ItemsFile())
	if errors.Is(err, fs.ErrNotExist) {
		return builtinItems, nil
	}
	return items, err
}

// demoSource pairs a store source with the concrete query behind it.
type demoSource struct {
	src   source.Source
	query *source.Query
	pages *source.InfiniteQuery
}

// newDemoSource builds a source of the given kind over items. Fetched kinds
// wait latency before answering, like a remote backend.
func newDemoSource(kind source.Kind, items []item.Item, pageSize int, latency time.Duration) (demoSource, error) {
	switch kind {
	case source.KindStatic:
		return demoSource{src: source.Static(items)}, nil
	case source.KindSingleFetch:
		q := source.NewQuery(delayFetch(source.ListFetcher(items), latency), nil)
		return demoSource{src: source.FromQuery(q), query: q}, nil
	case source.KindPaginated:
		if pageSize <= 0 {
			pageSize = config.DefaultPageSize
		}
		q := source.NewInfiniteQuery(delayPage(source.ListPager(items, pageSize), latency))
		return demoSource{src: source.FromInfinite(q), pages: q}, nil
	default:
		return demoSource{}, fmt.Errorf("unknown source kind %d", kind)
	}
}

// preload fetches synchronously so the rows for search are ready without an
// update loop.
func (d demoSource) preload(s *store.Store, search string) error {
	if d.query != nil {
		s.Update(d.query.SetSearch(search)())
		return d.query.Err()
	}
	if d.pages != nil {
		for cmd := s.LoadMore(); cmd != nil; cmd = s.LoadMore() {
			s.Update(cmd())
			if err := d.pages.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

func delayFetch(fetch source.FetchFunc, latency time.Duration) source.FetchFunc {
	if latency <= 0 {
		return fetch
	}
	return func(ctx context.Context, search string) ([]item.Item, error) {
		if err := wait(ctx, latency); err != nil {
			return nil, err
		}
		return fetch(ctx, search)
	}
}

func delayPage(fetch source.PageFunc, latency time.Duration) source.PageFunc {
	if latency <= 0 {
		return fetch
	}
	return func(ctx context.Context, search string, page int) (source.Page, error) {
		if err := wait(ctx, latency); err != nil {
			return source.Page{}, err
		}
		return fetch(ctx, search, page)
	}
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// createItem is the demo's create handler. New items get a random UUID
// value.
func createItem(latency time.Duration) store.CreateFunc {
	return func(title string) (item.Item, error) {
		if latency > 0 {
			time.Sleep(latency)
		}
		return item.Item{Value: uuid.NewString(), Title: title}, nil
	}
}
