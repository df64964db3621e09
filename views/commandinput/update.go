// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles key events and manages input, history and suggestions.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.visible {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	switch keyMsg.String() {
	case "enter":
		return m.submit()
	case "esc":
		m.errorMsg = ""
		m.Hide()
		return nil
	case "up":
		m.recall(-1)
		return nil
	case "down":
		m.recall(1)
		return nil
	case "ctrl+n":
		m.cycle(1)
		return nil
	case "ctrl+p":
		m.cycle(-1)
		return nil
	case "tab":
		m.complete()
		return nil
	}

	if m.errorMsg != "" && (keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeyBackspace) {
		m.errorMsg = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshSuggestions()
	return cmd
}

func (m *Model) submit() tea.Cmd {
	line := strings.TrimSpace(m.input.Value())
	m.Hide()
	if line == "" {
		return nil
	}

	// Repeating the last command does not grow the history.
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
	}
	m.histPos = len(m.history)
	m.errorMsg = ""
	return func() tea.Msg { return SubmitMsg{Command: line} }
}

// recall walks the history; stepping past the newest entry clears the input.
func (m *Model) recall(step int) {
	if len(m.history) == 0 {
		return
	}

	m.histPos = max(m.histPos+step, 0)
	if m.histPos >= len(m.history) {
		m.histPos = len(m.history)
		m.input.Reset()
	} else {
		m.input.SetValue(m.history[m.histPos])
	}
	m.input.CursorEnd()
}

func (m *Model) cycle(step int) {
	n := len(m.suggestions)
	if n == 0 {
		return
	}
	m.selected = (m.selected + step + n) % n
}

func (m *Model) complete() {
	if len(m.suggestions) == 0 {
		return
	}
	m.input.SetValue(m.suggestions[m.selected] + " ")
	m.input.CursorEnd()
	m.refreshSuggestions()
}
