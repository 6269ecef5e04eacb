package gallery

import (
	"encoding/json"
	"fmt"

	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Page is a single batch of results plus pagination continuation state.
// Invariant: HasMore and the next cursor imply each other exactly;
// neither can appear without the other. Immutable once constructed.
type Page[T any] struct {
	items      []T
	nextCursor mo.Option[string]
	hasMore    bool
}

// NewPage validates the cursor/more-flag equivalence and assembles a page.
func NewPage[T any](items []T, nextCursor mo.Option[string], hasMore bool) (Page[T], error) {
	if hasMore && nextCursor.IsAbsent() {
		return Page[T]{}, ErrPageMissingNextCursor
	}
	if !hasMore && nextCursor.IsPresent() {
		return Page[T]{}, ErrPageUnexpectedNextCursor
	}

	return Page[T]{
		items:      slices.Clone(items),
		nextCursor: nextCursor,
		hasMore:    hasMore,
	}, nil
}

// Items returns the page contents in order. May be empty.
func (p Page[T]) Items() []T {
	return slices.Clone(p.items)
}

// Len returns the number of items on the page.
func (p Page[T]) Len() int {
	return len(p.items)
}

// NextCursor returns the opaque continuation cursor, present exactly
// when more results exist.
func (p Page[T]) NextCursor() mo.Option[string] {
	return p.nextCursor
}

// HasMore reports whether further results can be fetched.
func (p Page[T]) HasMore() bool {
	return p.hasMore
}

func (p Page[T]) String() string {
	cursor := p.nextCursor.OrElse("<none>")
	return fmt.Sprintf("Page(items=%d, next_cursor=%s, has_more=%t)", len(p.items), cursor, p.hasMore)
}

// pageDocument is the wire shape of a page.
type pageDocument[T any] struct {
	Items      []T               `json:"items"`
	NextCursor mo.Option[string] `json:"next_cursor"`
	HasMore    bool              `json:"has_more"`
}

// MarshalJSON encodes the page using its external wire contract.
func (p Page[T]) MarshalJSON() ([]byte, error) {
	items := p.items
	if items == nil {
		items = []T{}
	}

	return json.Marshal(pageDocument[T]{
		Items:      items,
		NextCursor: p.nextCursor,
		HasMore:    p.hasMore,
	})
}

// UnmarshalJSON decodes and re-validates the wire representation.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	var doc pageDocument[T]
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	page, err := NewPage(doc.Items, doc.NextCursor, doc.HasMore)
	if err != nil {
		return err
	}

	*p = page
	return nil
}
