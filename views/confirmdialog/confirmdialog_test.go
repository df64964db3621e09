// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package confirmdialog

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestAnswers(t *testing.T) {
	for answer, want := range map[string]bool{"y": true, "N": false} {
		m := New()
		m.Ask("cancel", "Discard navigation?")
		assert.Contains(t, m.View(), "Discard navigation?")

		assert.Nil(t, m.Update(key("x")), "other keys are ignored")
		cmd := m.Update(key(answer))
		require.NotNil(t, cmd)
		assert.Equal(t, ResultMsg{Tag: "cancel", Confirmed: want}, cmd())
		assert.False(t, m.Visible())
		assert.Empty(t, m.View())
	}
}

func TestHiddenIgnoresKeys(t *testing.T) {
	m := New()
	assert.Nil(t, m.Update(key("y")))
	assert.Nil(t, m.Update(tea.KeyMsg{Type: tea.KeyEsc}))
}
