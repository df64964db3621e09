// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var highlightStyle = lipgloss.NewStyle().Background(lipgloss.Color("205")).Foreground(lipgloss.Color("0"))

// Highlight marks every case-insensitive occurrence of term in text.
func Highlight(text, term string) string {
	matches := findAllMatches(text, term)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, idx := range matches {
		b.WriteString(text[last:idx])
		b.WriteString(highlightStyle.Render(text[idx : idx+len(term)]))
		last = idx + len(term)
	}
	b.WriteString(text[last:])
	return b.String()
}

// findAllMatches returns the byte offsets of non-overlapping matches. Text
// whose lower case form changes length is left unmatched.
func findAllMatches(text, term string) []int {
	lower, lowerTerm := strings.ToLower(text), strings.ToLower(term)
	if term == "" || len(lower) != len(text) || len(lowerTerm) != len(term) {
		return nil
	}

	var matches []int
	for idx := 0; ; {
		i := strings.Index(lower[idx:], lowerTerm)
		if i == -1 {
			return matches
		}
		matches = append(matches, idx+i)
		idx += i + len(term)
	}
}
