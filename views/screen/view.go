// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"goway/ui"
	filterlist "goway/ui/components/filterable/list"
	"goway/ui/components/sorting"
)

var (
	detailStyle = lipgloss.NewStyle().Faint(true)
	bodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func (m *Model) View() string {
	var content []string
	for _, line := range m.body {
		content = append(content, bodyStyle.Render(line))
	}
	if len(m.body) > 0 && len(m.list.Items) > 0 {
		content = append(content, "")
	}
	if len(m.list.Items) > 0 {
		content = append(content, m.list.View())
	}

	spec := ui.ComputeFrameDimensions(m.width, m.height, m.header, m.footer())
	return ui.RenderFramedBox(m.title, m.header, strings.Join(content, "\n"), m.footer(), spec.FrameWidth, spec.FrameHeight)
}

func (m *Model) footer() string {
	var parts []string
	if m.list.Mode != filterlist.ModeNormal {
		parts = append(parts, "filter: "+m.list.Query+"█")
	} else if m.list.Query != "" {
		parts = append(parts, "filter: "+m.list.Query)
	}
	if m.sorted {
		parts = append(parts, "rating "+sorting.SortArrow(m.sortOrder))
	}
	if len(parts) == 0 {
		return ""
	}
	return ui.HelpStyle.Render(strings.Join(parts, "  "))
}

// listHeight is what is left for the list once the frame, header, body
// and footer are drawn.
func (m *Model) listHeight() int {
	spec := ui.ComputeFrameDimensions(m.width, m.height, m.header, "x")
	h := spec.ContentLines - len(m.body)
	if len(m.body) > 0 {
		h--
	}
	return max(h, 1)
}

func (m *Model) renderEntry(e Entry, selected bool) string {
	spec := ui.ComputeFrameDimensions(m.width, m.height, "", "")
	widths := ui.DistributeColumns(spec.ContentWidth, 2, 2, []int{28, 24, 6}, []int{0, 1})

	rating := ""
	if e.Rating > 0 {
		rating = fmt.Sprintf("%.1f", e.Rating)
	}
	text := e.Label
	if !selected && m.list.Query != "" {
		text = ui.Highlight(text, m.list.Query)
	}
	label := lipgloss.NewStyle().Width(widths[0]).MaxWidth(widths[0]).Render(text)
	detail := lipgloss.NewStyle().Width(widths[1]).MaxWidth(widths[1]).Render(e.Detail)
	score := lipgloss.NewStyle().Width(widths[2]).Align(lipgloss.Right).Render(rating)

	if selected {
		return ui.SelectedStyle.Render(label + "  " + detail + "  " + score)
	}
	if strings.HasPrefix(e.Label, "★") {
		label = ui.RecommendedStyle.Render(label)
	}
	return label + "  " + detailStyle.Render(detail) + "  " + score
}
