package errordialog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxWidth = 60

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("196")).
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196"))

	itemStyle = lipgloss.NewStyle().Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Bold(true)
)

// Render renders a dialog titled title around msg.
func Render(title, msg string) string {
	if title == "" {
		title = "Error"
	}

	lines := []string{titleStyle.Render(" " + title + " "), ""}
	for _, line := range wrapText(msg, maxWidth) {
		lines = append(lines, itemStyle.Render(line))
	}
	lines = append(lines, "", fmt.Sprintf("%s %s %s",
		helpStyle.Render("Press"),
		keyStyle.Render("<Enter>"),
		helpStyle.Render("to close")))

	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func wrapText(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		current := ""
		for _, word := range strings.Fields(paragraph) {
			switch {
			case current == "":
				current = word
			case lipgloss.Width(current)+1+lipgloss.Width(word) <= width:
				current += " " + word
			default:
				lines = append(lines, current)
				current = word
			}
		}
		lines = append(lines, current)
	}
	return lines
}
