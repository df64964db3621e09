// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"goway/coordinator"
	"goway/ui"
	"goway/ui/components/errordialog"
	"goway/views/helpbar"
	"goway/views/view"
)

func (m *Model) View() string {
	globalHelp := []helpbar.HelpEntry{
		{Key: "q", Desc: "quit"},
		{Key: ":", Desc: "command"},
		{Key: "esc", Desc: "back"},
		{Key: "?", Desc: "help"},
	}
	viewHelp := m.currentView.ShortHelpItems()
	if m.help != nil {
		globalHelp = globalHelp[:1]
		viewHelp = m.help.ShortHelpItems()
	}

	header := helpbar.New(m.width).
		WithGlobalHelp(globalHelp).
		WithViewHelp(viewHelp).
		View(m.statusBlock(), helpbar.BadgeStyle.Render("goway "+version))

	body := m.currentView.View()
	switch {
	case m.confirm.Visible():
		body = ui.OverlayCentered(body, m.confirm.View(), m.width)
	case m.errMsg != "":
		body = ui.OverlayCentered(body, errordialog.Render("", m.errMsg), m.width)
	case m.help != nil:
		body = ui.OverlayCentered(body, m.help.View(), m.width)
	}

	parts := []string{header}
	if m.commandInput.Visible() {
		parts = append(parts, ui.RenderFramedBox("", "", m.commandInput.View(), "", m.width, paletteHeight))
	}
	parts = append(parts, body, m.renderStackBar())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) statusBlock() string {
	title := view.NameHome
	if top, ok := m.stack.Peek(); ok {
		title = top.Label()
	}

	state := ui.StatusStyle.Render("ready")
	if m.coord.State() == coordinator.Pending {
		state = ui.PendingIndicator(m.spinner, "opening "+m.coord.Pending().String())
	}

	lines := []string{
		ui.StatusStyle.Bold(true).Render(title),
		state,
		fmt.Sprintf("depth %d", m.stack.Depth()),
	}
	if m.status != "" {
		lines = append(lines, ui.HelpStyle.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
