package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles (you can override these per-view if desired)
var (
	FrameTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	FrameHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("75")).
				Bold(true)

	FrameBorderColor = lipgloss.Color("117")
)

// RenderFramedBox draws a bordered frame with title, optional header, and content.
// If width <= 0, defaults to content width + padding. If height > 0 the
// content is padded or cut so the frame is exactly height lines tall.
// ANSI sequences in content are preserved.
func RenderFramedBox(title, header, content, footer string, width, height int) string {
	lines := strings.Split(content, "\n")
	var footerLines []string
	if footer != "" {
		footerLines = strings.Split(footer, "\n")
	}

	if width <= 0 {
		contentWidth := lipgloss.Width(header)
		for _, l := range append(lines, footerLines...) {
			contentWidth = max(contentWidth, lipgloss.Width(l))
		}
		width = contentWidth + 4 // padding left/right
	}
	borderWidth := width - 2

	if height > 0 {
		fixed := 2 + len(footerLines)
		if header != "" {
			fixed++
		}
		want := max(height-fixed, 0)
		for len(lines) < want {
			lines = append(lines, "")
		}
		lines = lines[:want]
	}

	border := lipgloss.NewStyle().Foreground(FrameBorderColor)
	side := border.Render("│")

	titleStyled := FrameTitleStyle.Render(" " + title + " ")
	leftPad := max((borderWidth-lipgloss.Width(titleStyled))/2, 0)
	rightPad := max(borderWidth-leftPad-lipgloss.Width(titleStyled), 0)

	box := []string{
		border.Render("╭"+strings.Repeat("─", leftPad)) + titleStyled + border.Render(strings.Repeat("─", rightPad)+"╮"),
	}
	if header != "" {
		box = append(box, side+padLine(FrameHeaderStyle.Render(header), borderWidth)+side)
	}
	for _, l := range append(lines, footerLines...) {
		box = append(box, side+padLine(l, borderWidth)+side)
	}
	box = append(box, border.Render("╰"+strings.Repeat("─", borderWidth)+"╯"))

	return strings.Join(box, "\n")
}

// padLine fits a line to width, preserving ANSI sequences
func padLine(line string, width int) string {
	l := lipgloss.Width(line)
	if l >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line + strings.Repeat(" ", width-l)
}

// OverlayCentered draws overlay over the middle rows of base. The rows it
// covers are replaced entirely, with the overlay centered horizontally.
func OverlayCentered(base, overlay string, width int) string {
	canvas := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	if width <= 0 {
		for _, l := range canvas {
			width = max(width, lipgloss.Width(l))
		}
	}

	start := max((len(canvas)-len(overlayLines))/2, 0)
	for i, line := range overlayLines {
		row := start + i
		if row >= len(canvas) {
			canvas = append(canvas, "")
		}
		canvas[row] = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
	}
	return strings.Join(canvas, "\n")
}
