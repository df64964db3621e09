package filterlist

import (
	"strings"
)

func (f *FilterableList[T]) View() string {
	lines := make([]string, 0, len(f.Filtered))
	for i, item := range f.Filtered {
		lines = append(lines, f.RenderItem(item, i == f.Cursor))
	}

	f.Viewport.SetContent(strings.Join(lines, "\n"))
	return f.Viewport.View()
}

func (f *FilterableList[T]) ensureCursorVisible() {
	h := max(f.Viewport.Height, 1)

	if f.Cursor < f.Viewport.YOffset {
		f.Viewport.YOffset = f.Cursor
	} else if f.Cursor >= f.Viewport.YOffset+h {
		f.Viewport.YOffset = f.Cursor - h + 1
	}
}
