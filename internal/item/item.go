package item

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidItem is the sentinel wrapped by ValidationError.
var ErrInvalidItem = errors.New("invalid select item")

// Value identifies an item. It holds a number or a string and must be
// comparable; two items with equal values are the same logical item.
type Value = any

// Item is a single selectable entry.
type Item struct {
	Value    Value  `yaml:"value"`
	Title    string `yaml:"title"`
	Data     any    `yaml:"data,omitempty"`
	IsCustom bool   `yaml:"custom,omitempty"` // created locally, not provided by the source
}

// ValidationError reports an item that cannot enter the selection.
type ValidationError struct {
	Item   Item
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid select item %v: %s", e.Item.Value, e.Reason)
}

// Unwrap returns ErrInvalidItem for errors.Is() compatibility.
func (e *ValidationError) Unwrap() error { return ErrInvalidItem }

// IsEmptyValue reports whether v carries no identity: nil or the empty
// string. Zero numbers are valid identities.
func IsEmptyValue(v Value) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}

// Validate checks that it has a non-empty value, a non-empty title and a
// comparable value type.
func Validate(it Item) error {
	if IsEmptyValue(it.Value) {
		return &ValidationError{Item: it, Reason: "missing value"}
	}
	if strings.TrimSpace(it.Title) == "" {
		return &ValidationError{Item: it, Reason: "missing title"}
	}
	if !isComparable(it.Value) {
		return &ValidationError{Item: it, Reason: fmt.Sprintf("value of type %T is not comparable", it.Value)}
	}
	return nil
}

// isComparable reports whether v can be used as a map key without panicking.
func isComparable(v Value) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_ = map[Value]struct{}{v: {}}
	return true
}

// Key renders a value for display and logs.
func Key(v Value) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Matches reports whether the item's title contains search, ignoring case.
func Matches(it Item, search string) bool {
	return strings.Contains(strings.ToLower(it.Title), strings.ToLower(search))
}
