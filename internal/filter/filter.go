// Package filter derives the categorized row list a select widget displays
// from the search text, the item source and locally created items.
package filter

import (
	"strings"

	"github.com/ruminaider/selectv2/internal/item"
	"github.com/ruminaider/selectv2/internal/selection"
	"github.com/ruminaider/selectv2/internal/source"
)

// Category titles.
const (
	CategoryCustom   = "Custom"
	CategoryOriginal = "Original"
)

// Kind tags a Row.
type Kind int

const (
	KindCategory Kind = iota // divider, not selectable
	KindItem                 // selectable item
	KindNotFound             // terminal "nothing found" marker
)

// Row is one entry of the filtered list.
type Row struct {
	Kind  Kind
	Title string    // category title
	Item  item.Item // set for KindItem
}

// Category returns a divider row.
func Category(title string) Row { return Row{Kind: KindCategory, Title: title} }

// ItemRow returns a selectable row.
func ItemRow(it item.Item) Row { return Row{Kind: KindItem, Item: it} }

// NotFound returns the terminal marker row.
func NotFound() Row { return Row{Kind: KindNotFound} }

// Selectable reports whether the row can be toggled.
func (r Row) Selectable() bool { return r.Kind == KindItem }

// Matches reports whether title contains search, ignoring case.
func Matches(title, search string) bool {
	return item.Matches(item.Item{Title: title}, search)
}

// Compute builds the rows for search. Output order is: the Custom category
// and matching created items, the Original divider when any custom item
// matched, the source items, and a NotFound marker when neither the source
// nor the created items matched anything.
//
// Static and paginated sources are filtered here; single-fetch data is used
// as is because its search happens server-side.
func Compute(search string, src source.Source, created *selection.Set) []Row {
	search = strings.ToLower(search)
	var rows []Row

	customMatches := 0
	if created != nil && created.Len() > 0 {
		for _, it := range created.Snapshot() {
			if !Matches(it.Title, search) {
				continue
			}
			if customMatches == 0 {
				rows = append(rows, Category(CategoryCustom))
			}
			rows = append(rows, ItemRow(it))
			customMatches++
		}
	}
	if len(rows) > 0 {
		rows = append(rows, Category(CategoryOriginal))
	}

	sourceMatches := 0
	switch src.Kind() {
	case source.KindStatic:
		for _, it := range src.Items() {
			if Matches(it.Title, search) {
				rows = append(rows, ItemRow(it))
				sourceMatches++
			}
		}
	case source.KindSingleFetch:
		if q := src.SingleFetch(); q != nil {
			for _, it := range q.Data() {
				rows = append(rows, ItemRow(it))
				sourceMatches++
			}
		}
	case source.KindPaginated:
		if q := src.Paginated(); q != nil {
			for _, page := range q.Pages() {
				for _, it := range page.Items {
					if Matches(it.Title, search) {
						rows = append(rows, ItemRow(it))
						sourceMatches++
					}
				}
			}
		}
	}

	if sourceMatches == 0 && customMatches == 0 {
		rows = append(rows, NotFound())
	}
	return rows
}

// ItemAt returns the item at index i, or false when i is out of range or the
// row is not selectable.
func ItemAt(rows []Row, i int) (item.Item, bool) {
	if i < 0 || i >= len(rows) || !rows[i].Selectable() {
		return item.Item{}, false
	}
	return rows[i].Item, true
}

// Items returns the items of every selectable row in order.
func Items(rows []Row) []item.Item {
	var out []item.Item
	for _, r := range rows {
		if r.Selectable() {
			out = append(out, r.Item)
		}
	}
	return out
}
