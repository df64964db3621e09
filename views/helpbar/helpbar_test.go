// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package helpbar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestView(t *testing.T) {
	out := New(120).
		WithViewHelp([]HelpEntry{{Key: "s", Desc: "sort"}, {Key: "/", Desc: "filter"}, {Key: "enter", Desc: "open"}}).
		View("Food", "goway")

	for _, want := range []string{"Food", "goway", "<q>", "quit", "<s>", "sort", "<enter>", "open"} {
		assert.Contains(t, out, want)
	}
	assert.LessOrEqual(t, len(strings.Split(out, "\n")), rowsPerColumn)
}

func TestView_TooNarrowDropsHelp(t *testing.T) {
	out := New(20).View("status", "badge")
	assert.NotContains(t, out, "quit")
	assert.Contains(t, out, "status")
}

func TestRenderColumn_AlignsDescriptions(t *testing.T) {
	lines := strings.Split(renderColumn([]HelpEntry{{Key: "q", Desc: "quit"}, {Key: "enter", Desc: "open"}}), "\n")
	assert.Equal(t, strings.Index(lines[0], "quit")-strings.Index(lines[0], "<q>"),
		strings.Index(lines[1], "open")-strings.Index(lines[1], "<enter>"))
}
