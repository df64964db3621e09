package ui

import "strings"

const (
	defaultFrameWidth  = 80
	defaultFrameHeight = 20
)

// FrameSpec captures the calculated dimensions for a framed view.
type FrameSpec struct {
	FrameWidth   int
	FrameHeight  int
	ContentLines int
	// ContentWidth is the room inside the borders and padding.
	ContentWidth int
}

// ComputeFrameDimensions derives the frame for a screen of the given size.
// Zero sizes (before the first WindowSizeMsg) fall back to 80x20. Content
// lines are the frame height minus borders, header and footer, never
// negative.
func ComputeFrameDimensions(width, height int, header, footer string) FrameSpec {
	if width <= 0 {
		width = defaultFrameWidth
	}
	if height <= 0 {
		height = defaultFrameHeight
	}

	return FrameSpec{
		FrameWidth:   width,
		FrameHeight:  height,
		ContentLines: max(height-2-countLines(header)-countLines(footer), 0),
		ContentWidth: max(width-4, 1),
	}
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
