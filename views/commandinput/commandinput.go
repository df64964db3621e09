package commandinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxSuggestions = 5

// Model represents the command input bar (like in k9s).
type Model struct {
	input    textinput.Model
	visible  bool
	history  []string
	histPos  int
	errorMsg string

	suggest     func(prefix string) []string
	suggestions []string
	selected    int
}

// New creates a new command input model. suggest completes the text typed
// so far and may be nil.
func New(suggest func(prefix string) []string) *Model {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.CharLimit = 256

	return &Model{
		input:   ti,
		suggest: suggest,
	}
}

// Visible returns true if the command bar is visible.
func (m *Model) Visible() bool { return m.visible }

// Value is the text typed so far.
func (m *Model) Value() string { return m.input.Value() }

// Suggestions currently offered for tab completion.
func (m *Model) Suggestions() []string { return m.suggestions }

// Show makes the command bar visible and focuses the input.
func (m *Model) Show() tea.Cmd {
	m.visible = true
	m.errorMsg = ""
	m.histPos = len(m.history)
	m.refreshSuggestions()
	return m.input.Focus()
}

// Hide hides the command bar and clears its state.
func (m *Model) Hide() {
	m.visible = false
	m.input.Blur()
	m.input.Reset()
	m.suggestions = nil
	m.selected = 0
}

// ShowError displays an error message (without losing focus).
func (m *Model) ShowError(msg string) tea.Cmd {
	var cmd tea.Cmd
	if !m.visible {
		cmd = m.Show()
	}
	m.errorMsg = msg
	return cmd
}

func (m *Model) refreshSuggestions() {
	m.selected = 0
	if m.suggest == nil {
		m.suggestions = nil
		return
	}
	value := strings.TrimLeft(m.input.Value(), " ")
	m.suggestions = m.suggest(value)
	if len(m.suggestions) > maxSuggestions {
		m.suggestions = m.suggestions[:maxSuggestions]
	}
}
