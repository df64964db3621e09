// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package helpview_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "goway/commands/command"
	helpview "goway/views/help"
)

func TestCommands_AliasesLast(t *testing.T) {
	cmds := helpview.Commands()
	require.NotEmpty(t, cmds)

	seenAlias := false
	for _, c := range cmds {
		isAlias := len(c.Description) > 9 && c.Description[:9] == "alias of "
		if isAlias {
			seenAlias = true
		} else {
			assert.False(t, seenAlias, "%s listed after an alias", c.Usage)
		}
	}
	assert.True(t, seenAlias)
}

func TestView(t *testing.T) {
	m := helpview.New(100, 30)
	out := m.View()
	assert.Contains(t, out, ":building <id|name>")
	assert.Contains(t, out, "alias of building")

	msg := m.Update(tea.KeyMsg{Type: tea.KeyEsc})()
	assert.Equal(t, helpview.CloseMsg{}, msg)
}
