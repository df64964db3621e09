package ui

import (
	"time"

	charsets "github.com/briandowns/spinner"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// DefaultSpinnerCharsetIndex is the charset index used across views.
const DefaultSpinnerCharsetIndex = 14

// SpinnerInterval is how often the pending indicator advances.
const SpinnerInterval = 120 * time.Millisecond

var pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

// NewPendingSpinner returns a spinner drawing the shared charset. Falls
// back to the bubbles dots if the charset is not available.
func NewPendingSpinner() spinner.Model {
	s := spinner.Dot
	if frames := charsets.CharSets[DefaultSpinnerCharsetIndex]; len(frames) > 0 {
		s = spinner.Spinner{Frames: frames, FPS: SpinnerInterval}
	}
	return spinner.New(spinner.WithSpinner(s), spinner.WithStyle(pendingStyle))
}

// PendingIndicator renders the spinner next to label.
func PendingIndicator(s spinner.Model, label string) string {
	return s.View() + pendingStyle.Render(" "+label)
}
