// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package coordinator

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RequestMsg carries a request from another goroutine into the UI loop,
// e.g. via tea.Program.Send. The loop hands it to RequestNavigation.
type RequestMsg struct {
	Request Request
}

// Msg is implemented by the continuations the coordinator schedules for
// itself. The UI loop routes them back to Update.
type Msg interface {
	coordinatorMsg()
}

// Every continuation carries the generation it was scheduled in; a newer
// generation (new request or clearNavigationState) invalidates it.
type (
	publishMsg struct {
		gen uint64
		req Request
	}
	pushMsg struct {
		gen uint64
	}
	settledMsg struct {
		gen uint64
	}
)

func (publishMsg) coordinatorMsg() {}
func (pushMsg) coordinatorMsg()    {}
func (settledMsg) coordinatorMsg() {}

// schedule turns msg into a command, delayed by d when positive.
func schedule(msg Msg, d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
