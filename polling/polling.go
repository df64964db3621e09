// Package polling re-reads a data source on an interval and reports only
// changes.
package polling

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"goway/core/primitives/hash"
	gowaylog "goway/utils/log"
)

func l() *gowaylog.Logger {
	return gowaylog.Component("polling")
}

// TickMsg represents a polling tick event
type TickMsg struct {
	At time.Time
}

// PollInterval is the default polling interval
const PollInterval = 2 * time.Second

// Poller provides generic polling functionality. Only one CheckCmd may be
// in flight at a time; the UI loop chains them through TickMsg.
type Poller[T any] struct {
	lastSnapshot uint64
	seeded       bool
	interval     time.Duration
	loadFunc     func() ([]T, error)
	msgBuilder   func([]T) tea.Msg
}

// NewWithInterval creates a Poller for type T. loadFunc fetches the latest
// data and msgBuilder wraps changed data in a message.
func NewWithInterval[T any](interval time.Duration, loadFunc func() ([]T, error), msgBuilder func([]T) tea.Msg) *Poller[T] {
	return &Poller[T]{
		interval:   interval,
		loadFunc:   loadFunc,
		msgBuilder: msgBuilder,
	}
}

// TickCmd returns a command that will trigger a tick after the interval
func (p *Poller[T]) TickCmd() tea.Cmd {
	return tea.Tick(p.interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t}
	})
}

// CheckCmd loads the data and returns the built message if it changed
// since the last check (the first check always reports). Otherwise, or on
// error, it waits for the next tick.
func (p *Poller[T]) CheckCmd() tea.Cmd {
	return func() tea.Msg {
		data, err := p.loadFunc()
		if err != nil {
			l().Warnf("load failed: %v", err)
			return p.TickCmd()()
		}

		h, err := hash.Compute(data)
		if err != nil {
			l().Errorf("hashing %d entries: %v", len(data), err)
			return p.TickCmd()()
		}

		if p.seeded && h == p.lastSnapshot {
			return p.TickCmd()()
		}

		l().Debugf("change detected: %s -> %s, %d entries", hash.Fmt(p.lastSnapshot), hash.Fmt(h), len(data))
		p.lastSnapshot = h
		p.seeded = true
		return p.msgBuilder(data)
	}
}
