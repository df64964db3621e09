// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package screen

import (
	tea "github.com/charmbracelet/bubbletea"

	filterlist "goway/ui/components/filterable/list"
	"goway/ui/components/sorting"
	"goway/views/view"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return nil

	case tea.KeyMsg:
		if m.list.Mode == filterlist.ModeNormal {
			switch msg.String() {
			case "enter":
				e, ok := m.list.Selected()
				if !ok {
					return nil
				}
				return func() tea.Msg {
					return view.NavigateToMsg{Destination: e.Dest, Replace: e.Replace}
				}
			case "s":
				if m.sortable() {
					m.sortByRating()
				}
				return nil
			}
		}
		m.list.HandleKey(msg)
		return nil
	}
	return nil
}

// Searching reports whether the filter prompt has the keyboard.
func (m *Model) Searching() bool {
	return m.list.Mode != filterlist.ModeNormal
}

func (m *Model) sortByRating() {
	if m.sorted {
		m.sortOrder = m.sortOrder.Toggle()
	}
	m.sorted = true
	sorting.SortBy(m.list.Items, m.sortOrder, func(e Entry) float64 { return e.Rating })
	m.list.ApplyFilter()
}
