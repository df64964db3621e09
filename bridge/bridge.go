// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package bridge connects the coordinator's published requests to the live
// navigation stack.
package bridge

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"goway/coordinator"
	"goway/destination"
	"goway/navstack"
	gowaylog "goway/utils/log"
)

func l() *gowaylog.Logger {
	return gowaylog.Component("bridge")
}

// externalPushMsg is the second half of NavigateFromExternalSource.
type externalPushMsg struct {
	dest    destination.Destination
	version uint64
}

// Bridge observes the coordinator on behalf of one stack.
type Bridge struct {
	coord       *coordinator.Coordinator
	stack       *navstack.Stack
	settleDelay time.Duration
	cancels     []func()
}

// Attach registers stack as the coordinator's consumer and subscribes to
// all three request kinds. The returned command retries a request that was
// published before the stack existed.
func Attach(c *coordinator.Coordinator, stack *navstack.Stack, settleDelay time.Duration) (*Bridge, tea.Cmd) {
	b := &Bridge{coord: c, stack: stack, settleDelay: settleDelay}
	for _, k := range []coordinator.Kind{coordinator.KindBuilding, coordinator.KindVendor, coordinator.KindVendorType} {
		b.cancels = append(b.cancels, c.Subscribe(k, b.onPublished))
	}
	return b, c.AttachConsumer(stack)
}

// Detach drops the subscriptions and the consumer. Safe to call twice.
func (b *Bridge) Detach() {
	for _, cancel := range b.cancels {
		cancel()
	}
	b.cancels = nil
	b.coord.DetachConsumer()
}

func (b *Bridge) onPublished(r coordinator.Request) tea.Cmd {
	l().Debugf("received %s", r)
	cmd, err := b.coord.ExecuteNavigation()
	if err != nil {
		l().Warnf("cannot execute %s yet: %v", r, err)
		return nil
	}
	return cmd
}

// NavigateFromExternalSource resets the stack and pushes d once the reset
// has gone through the loop. It bypasses the coordinator and its guard,
// so it is meant for links that are already on the UI loop.
func (b *Bridge) NavigateFromExternalSource(d destination.Destination) tea.Cmd {
	b.stack.GoToRoot()
	msg := externalPushMsg{dest: d, version: b.stack.Version()}
	if b.settleDelay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(b.settleDelay, func(time.Time) tea.Msg { return msg })
}

// Update handles the bridge's own messages and reports whether msg was one.
func (b *Bridge) Update(msg tea.Msg) (bool, tea.Cmd) {
	m, ok := msg.(externalPushMsg)
	if !ok {
		return false, nil
	}
	if b.stack.Version() != m.version {
		l().Infof("stack changed after reset, dropping push of %s", m.dest)
		return true, nil
	}
	b.stack.Navigate(m.dest)
	return true, nil
}
