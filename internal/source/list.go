package source

import (
	"context"

	"github.com/ruminaider/selectv2/internal/item"
)

// ListFetcher returns a FetchFunc that serves items from a fixed list,
// filtering by title the way a search endpoint would.
func ListFetcher(items []item.Item) FetchFunc {
	return func(ctx context.Context, search string) ([]item.Item, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var out []item.Item
		for _, it := range items {
			if item.Matches(it, search) {
				out = append(out, it)
			}
		}
		return out, nil
	}
}

// ListPager returns a PageFunc that serves a fixed list in pages of size
// items. The search token is ignored; paginated sources are filtered
// client-side.
func ListPager(items []item.Item, size int) PageFunc {
	if size < 1 {
		size = 1
	}
	return func(ctx context.Context, _ string, page int) (Page, error) {
		if err := ctx.Err(); err != nil {
			return Page{}, err
		}
		start := page * size
		if start >= len(items) {
			return Page{Number: page}, nil
		}
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		return Page{
			Number:  page,
			Items:   items[start:end],
			HasMore: end < len(items),
		}, nil
	}
}
