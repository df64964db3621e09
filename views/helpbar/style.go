// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package helpbar

import "github.com/charmbracelet/lipgloss"

var Style = lipgloss.NewStyle().
	Padding(0, 0).
	Faint(true)

// BadgeStyle renders the app name in the top right corner.
var BadgeStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("214")).
	Bold(true).
	Padding(0, 1)
