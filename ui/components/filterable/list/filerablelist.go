package filterlist

import (
	"github.com/charmbracelet/bubbles/viewport"
)

type FilterableList[T any] struct {
	Viewport viewport.Model

	Items    []T
	Filtered []T
	Cursor   int
	Query    string
	Mode     ModeType

	// Function to render a single item
	RenderItem func(item T, selected bool) string

	// Match function for filtering
	Match func(item T, query string) bool
}

type ModeType int

const (
	ModeNormal ModeType = iota
	ModeSearching
)

// New creates a list showing items in a viewport of the given size.
func New[T any](items []T, width, height int, render func(T, bool) string, match func(T, string) bool) *FilterableList[T] {
	l := &FilterableList[T]{
		Viewport:   viewport.New(width, height),
		Items:      items,
		Filtered:   items,
		RenderItem: render,
		Match:      match,
	}
	return l
}

// Selected returns the item under the cursor.
func (f *FilterableList[T]) Selected() (T, bool) {
	if f.Cursor < 0 || f.Cursor >= len(f.Filtered) {
		var zero T
		return zero, false
	}
	return f.Filtered[f.Cursor], true
}

// SetItems replaces the items and re-applies the current filter.
func (f *FilterableList[T]) SetItems(items []T) {
	f.Items = items
	f.ApplyFilter()
}

// SetSize resizes the viewport.
func (f *FilterableList[T]) SetSize(width, height int) {
	f.Viewport.Width = width
	f.Viewport.Height = max(height, 1)
	f.ensureCursorVisible()
}
