// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package screen renders the destination on top of the navigation stack.
package screen

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"goway/destination"
	filterlist "goway/ui/components/filterable/list"
	"goway/ui/components/sorting"
	"goway/venue"
	"goway/views/helpbar"
)

var printer = message.NewPrinter(language.English)

// Entry is one selectable row. Selecting it pushes Dest, or swaps the
// current screen for it when Replace is set.
type Entry struct {
	Label   string
	Detail  string
	Rating  float64
	Dest    destination.Destination
	Replace bool
}

func matchEntry(e Entry, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Label), q) ||
		strings.Contains(strings.ToLower(e.Detail), q)
}

// Model is the screen for a single destination (or the home screen).
type Model struct {
	dest  destination.Destination
	title string
	// header is a one-line summary, body the static text above the list.
	header string
	body   []string

	list      *filterlist.FilterableList[Entry]
	sortOrder sorting.SortOrder
	sorted    bool

	width  int
	height int
}

// New builds the screen for d. query is only used by the search screen.
func New(catalog *venue.Static, d destination.Destination, query string, width, height int) *Model {
	m := &Model{dest: d, width: width, height: height, sortOrder: sorting.Descending}
	c := content(catalog, d, query)
	m.title, m.header, m.body = c.title, c.header, c.body
	m.list = filterlist.New(c.entries, width, 1, m.renderEntry, matchEntry)
	m.resize()
	return m
}

// NewHome builds the root screen.
func NewHome(catalog *venue.Static, width, height int) *Model {
	m := &Model{width: width, height: height, sortOrder: sorting.Descending}
	c := homeContent(catalog)
	m.title, m.header, m.body = c.title, c.header, c.body
	m.list = filterlist.New(c.entries, width, 1, m.renderEntry, matchEntry)
	m.resize()
	return m
}

// Destination shown by m; the zero value for the home screen.
func (m *Model) Destination() destination.Destination { return m.dest }

// Entries currently listed, after filtering.
func (m *Model) Entries() []Entry { return m.list.Filtered }

// Header is the summary line under the title.
func (m *Model) Header() string { return m.header }

func (m *Model) Name() string {
	return m.title
}

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	items := []helpbar.HelpEntry{
		{Key: "↑/↓", Desc: "move"},
		{Key: "enter", Desc: "open"},
		{Key: "/", Desc: "filter"},
	}
	if m.sortable() {
		items = append(items, helpbar.HelpEntry{Key: "s", Desc: "sort by rating"})
	}
	if m.dest.Kind != "" {
		items = append(items, helpbar.HelpEntry{Key: "esc", Desc: "back"})
	}
	return items
}

func (m *Model) sortable() bool {
	switch m.dest.Kind {
	case destination.KindSearch, destination.KindVendorDetail, destination.KindARNavigation,
		destination.KindAROnboarding, destination.KindStepNavigation:
		return false
	}
	return m.dest.Kind != ""
}

func (m *Model) resize() {
	m.list.SetSize(m.width, m.listHeight())
}
