package store

import "github.com/ruminaider/selectv2/internal/item"

// Internal messages. Each carries the store that issued it so several
// widgets can share one program.

type searchDebounceMsg struct {
	store *Store
	seq   int
	value string
}

type closeMsg struct {
	store *Store
	gen   int // open generation at the time of the toggle
}

type createdMsg struct {
	store *Store
	title string
	item  item.Item
	err   error
}

type chipFrameMsg struct {
	store *Store
}
