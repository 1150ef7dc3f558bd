// Package selection holds the ordered set of chosen items behind a select
// widget.
package selection

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ruminaider/selectv2/internal/item"
)

// Set is an insertion-ordered map of items keyed by value. In single mode it
// never holds more than one item.
type Set struct {
	multiple bool
	items    *orderedmap.OrderedMap[item.Value, item.Item]
}

// New creates an empty Set. multiple selects multi-select semantics.
func New(multiple bool) *Set {
	return &Set{
		multiple: multiple,
		items:    orderedmap.New[item.Value, item.Item](),
	}
}

// Multiple reports whether the set allows more than one item.
func (s *Set) Multiple() bool {
	return s.multiple
}

// Toggle flips membership of it. In single mode the set is cleared first,
// so toggling the current item re-selects it. Returns true when it is
// selected afterwards.
func (s *Set) Toggle(it item.Item) bool {
	if !s.multiple {
		s.Clear()
	}
	if _, ok := s.items.Get(it.Value); ok {
		s.items.Delete(it.Value)
		return false
	}
	s.items.Set(it.Value, it)
	return true
}

// Add inserts it, clearing first in single mode. Re-adding an existing value
// replaces the stored item but keeps its position.
func (s *Set) Add(it item.Item) {
	if !s.multiple {
		s.Clear()
	}
	s.items.Set(it.Value, it)
}

// Remove deletes the item with the given value. Returns false if it was not
// present.
func (s *Set) Remove(v item.Value) bool {
	_, ok := s.items.Delete(v)
	return ok
}

// Has reports whether v is in the set.
func (s *Set) Has(v item.Value) bool {
	_, ok := s.items.Get(v)
	return ok
}

// Get returns the stored item for v.
func (s *Set) Get(v item.Value) (item.Item, bool) {
	return s.items.Get(v)
}

// Len returns the number of items.
func (s *Set) Len() int {
	return s.items.Len()
}

// Clear removes every item.
func (s *Set) Clear() {
	if s.items.Len() == 0 {
		return
	}
	s.items = orderedmap.New[item.Value, item.Item]()
}

// Snapshot returns the items in insertion order. The slice is a copy.
func (s *Set) Snapshot() []item.Item {
	out := make([]item.Item, 0, s.items.Len())
	for pair := s.items.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Values returns the keys in insertion order.
func (s *Set) Values() []item.Value {
	out := make([]item.Value, 0, s.items.Len())
	for pair := s.items.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}
