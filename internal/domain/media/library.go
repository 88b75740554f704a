package media

import (
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// Library holds items that exist on their own. Removing an item from the
// shelf leaves the item untouched, and one item may sit in several
// libraries at once.
type Library struct {
	name  string
	items []Item
}

// NewLibrary creates an empty library.
func NewLibrary(name string) *Library {
	return &Library{name: strings.TrimSpace(name)}
}

func (l *Library) Name() string { return l.name }
func (l *Library) Len() int     { return len(l.items) }

// Add puts item on the shelf. Adding the same item twice is a no-op.
func (l *Library) Add(item Item) error {
	if item == nil {
		return shared.ErrNilMediaItem
	}
	if l.index(item) >= 0 {
		return nil
	}
	l.items = append(l.items, item)
	return nil
}

// Remove takes item off the shelf.
func (l *Library) Remove(item Item) error {
	i := l.index(item)
	if i < 0 {
		return shared.ErrItemNotShelved
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Items returns the shelf in insertion order.
func (l *Library) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Catalog returns one "Title by Author" line per item.
func (l *Library) Catalog() []string {
	lines := make([]string, 0, len(l.items))
	for _, item := range l.items {
		info := item.Info()
		lines = append(lines, info.Title()+" by "+info.Author())
	}
	return lines
}

func (l *Library) index(item Item) int {
	for i, it := range l.items {
		if it == item {
			return i
		}
	}
	return -1
}
