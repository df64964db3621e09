// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package coordinator funnels every intent to navigate (voice shortcuts,
// deferred launches, the command palette) into a single in-flight request
// and delivers it to the navigation stack once the UI is mounted.
//
// All methods must be called from the UI loop. Work that has to happen
// later is returned as a tea.Cmd whose message comes back through Update.
package coordinator

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"goway/destination"
	"goway/kvstore"
	"goway/metrics"
	gowaylog "goway/utils/log"
	"goway/venue"
)

// GuardWindow is how long an accepted request blocks new ones.
const GuardWindow = 5 * time.Second

// ErrNoConsumerAttached is returned by ExecuteNavigation when no stack is
// attached. The request stays pending and is retried on the next attach.
var ErrNoConsumerAttached = errors.New("no navigation consumer attached")

func l() *gowaylog.Logger {
	return gowaylog.Component("coordinator")
}

// State of the coordinator.
type State int

const (
	Idle State = iota
	Pending
)

func (s State) String() string {
	if s == Pending {
		return "pending"
	}
	return "idle"
}

// Consumer is the navigation stack the coordinator drives.
type Consumer interface {
	GoToRoot()
	Navigate(d destination.Destination)
	Peek() (destination.Destination, bool)
}

// Subscriber is notified when a request is published on its kind's field.
// The returned command is run by the UI loop.
type Subscriber func(Request) tea.Cmd

type subscription struct {
	id int
	fn Subscriber
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// WithSettleDelay sets the pause between resetting the stack and pushing
// the destination.
func WithSettleDelay(d time.Duration) Option {
	return func(c *Coordinator) { c.settleDelay = d }
}

// WithMetrics records counters into m.
func WithMetrics(m *metrics.Navigation) Option {
	return func(c *Coordinator) { c.metrics = m }
}

// Coordinator is the single navigation-intent funnel of the process.
type Coordinator struct {
	store       kvstore.Store
	catalog     venue.Catalog
	metrics     *metrics.Navigation
	now         func() time.Time
	settleDelay time.Duration

	state      State
	pending    Request
	guardUntil time.Time
	gen        uint64

	// published is the observable field; at most one kind is set.
	published   Request
	subscribers map[Kind][]subscription
	nextSubID   int

	consumer  Consumer
	executing bool
	pushed    destination.Destination
}

// New creates a coordinator over the persisted store and the venue catalog.
func New(store kvstore.Store, catalog venue.Catalog, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:       store,
		catalog:     catalog,
		now:         time.Now,
		subscribers: make(map[Kind][]subscription),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics == nil {
		c.metrics = metrics.New(nil)
	}
	return c
}

func (c *Coordinator) State() State          { return c.state }
func (c *Coordinator) Pending() Request      { return c.pending }
func (c *Coordinator) GuardUntil() time.Time { return c.guardUntil }
func (c *Coordinator) Published() Request    { return c.published }
func (c *Coordinator) HasConsumer() bool     { return c.consumer != nil }

// Subscribe registers fn for publications of kind k and returns a function
// that removes it.
func (c *Coordinator) Subscribe(k Kind, fn Subscriber) func() {
	c.nextSubID++
	id := c.nextSubID
	c.subscribers[k] = append(c.subscribers[k], subscription{id: id, fn: fn})
	return func() {
		subs := c.subscribers[k]
		for i, s := range subs {
			if s.id == id {
				c.subscribers[k] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// RequestNavigation accepts r unless a navigation is pending and its
// debounce guard is still running. An
// accepted request replaces whatever was persisted or published before and
// is published to subscribers by the returned command. Dropped requests
// return false and a nil command.
func (c *Coordinator) RequestNavigation(r Request) (bool, tea.Cmd) {
	if r.IsZero() || r.Identifier() == "" {
		l().Errorf("ignoring malformed navigation request %s", r)
		return false, nil
	}

	now := c.now()
	if c.state == Pending && now.Before(c.guardUntil) {
		l().Debugw("navigation request debounced",
			"request", r.String(), "state", c.state.String(), "guardUntil", c.guardUntil)
		c.metrics.Requests.WithLabelValues(r.Kind.String(), metrics.Debounced).Inc()
		return false, nil
	}

	l().Infof("preparing navigation to %s", r)

	for _, k := range requestKinds {
		if k != r.Kind {
			c.removeKey(k)
		}
	}
	if err := c.store.Set(r.Kind.Key(), r.Identifier()); err != nil {
		// The in-memory path still delivers; only cold-launch recovery is lost.
		l().Warnf("persisting %s: %v", r, err)
	}

	c.gen++
	c.state = Pending
	c.pending = r
	c.guardUntil = now.Add(GuardWindow)
	c.executing = false
	if c.published.Kind != r.Kind {
		c.published = Request{}
	}
	c.metrics.Requests.WithLabelValues(r.Kind.String(), metrics.Accepted).Inc()

	return true, schedule(publishMsg{gen: c.gen, req: r}, 0)
}

// ClearNavigationState cancels the guard and any scheduled continuation,
// forgets persisted requests and returns to Idle. It is idempotent.
func (c *Coordinator) ClearNavigationState() {
	l().Debug("clearing navigation state")
	c.gen++
	c.guardUntil = time.Time{}
	for _, k := range requestKinds {
		c.removeKey(k)
	}
	c.state = Idle
	c.pending = Request{}
	c.published = Request{}
	c.executing = false
	c.pushed = destination.Destination{}
}

// CheckPendingNavigationRequests looks for a request persisted by an
// earlier process (or before the app went to the background) and re-enters
// RequestNavigation with it. Each key found is cleared before it is
// resolved, so a bad value is never processed twice.
func (c *Coordinator) CheckPendingNavigationRequests() tea.Cmd {
	if c.state == Pending {
		// A request that could not be executed earlier is retried here,
		// but nothing new is consumed while one is in flight.
		if c.HasConsumer() && !c.executing && !c.published.IsZero() {
			l().Debugf("retrying execution of %s", c.pending)
			cmd, _ := c.ExecuteNavigation()
			return cmd
		}
		l().Debugf("navigation %s in flight, skipping pending check", c.pending)
		return nil
	}

	for _, k := range requestKinds {
		raw, ok, err := c.store.Get(k.Key())
		if err != nil {
			l().Warnf("reading %s: %v", k.Key(), err)
			continue
		}
		if !ok {
			continue
		}
		c.removeKey(k)

		req, err := c.resolve(k, raw)
		if err != nil {
			outcome := metrics.Corrupted
			if errors.Is(err, destination.ErrEntityNotFound) {
				outcome = metrics.NotFound
			}
			c.metrics.Pending.WithLabelValues(k.String(), outcome).Inc()
			l().Warnf("dropping pending %s navigation: %v", k, err)
			continue
		}

		c.metrics.Pending.WithLabelValues(k.String(), metrics.Resumed).Inc()
		_, cmd := c.RequestNavigation(req)
		return cmd
	}
	return nil
}

// PersistedRequest reports the first persisted request without clearing it.
func (c *Coordinator) PersistedRequest() (Kind, string, bool) {
	keys, err := ReadPersisted(c.store)
	if err != nil {
		l().Warnf("reading persisted requests: %v", err)
	}
	if len(keys) == 0 {
		return KindNone, "", false
	}
	return keys[0].Kind, keys[0].Value, true
}

// PersistedKey is the raw value found under one request key.
type PersistedKey struct {
	Kind  Kind
	Value string
}

// ReadPersisted lists the request keys set in store, in priority order.
// It touches no coordinator state, so it may run off the UI loop.
func ReadPersisted(store kvstore.Store) ([]PersistedKey, error) {
	var out []PersistedKey
	var errs []error
	for _, k := range requestKinds {
		raw, ok, err := store.Get(k.Key())
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", k.Key(), err))
			continue
		}
		if ok {
			out = append(out, PersistedKey{Kind: k, Value: raw})
		}
	}
	return out, errors.Join(errs...)
}

func (c *Coordinator) resolve(k Kind, raw string) (Request, error) {
	id := strings.TrimSpace(raw)
	if id == "" || strings.IndexFunc(id, unicode.IsSpace) >= 0 || strings.IndexFunc(id, unicode.IsControl) >= 0 {
		return Request{}, fmt.Errorf("%w: %s value %q", destination.ErrDataCorrupted, k, raw)
	}

	switch k {
	case KindBuilding:
		b, ok := c.catalog.FindBuilding(id)
		if !ok {
			return Request{}, &destination.EntityNotFoundError{Entity: "building", ID: id}
		}
		return ToBuilding(b), nil
	case KindVendor:
		v, ok := c.catalog.FindVendor(id)
		if !ok {
			return Request{}, &destination.EntityNotFoundError{Entity: "vendor", ID: id}
		}
		return ToVendor(v), nil
	case KindVendorType:
		t, err := venue.ParseVendorType(id)
		if err != nil {
			return Request{}, fmt.Errorf("%w: %v", destination.ErrDataCorrupted, err)
		}
		return ToVendorType(t), nil
	default:
		return Request{}, fmt.Errorf("%w: unknown kind %d", destination.ErrDataCorrupted, k)
	}
}

// AttachConsumer makes s the stack navigation is executed on. A request
// that could not be executed earlier is retried.
func (c *Coordinator) AttachConsumer(s Consumer) tea.Cmd {
	c.consumer = s
	l().Debug("navigation consumer attached")
	if c.state != Pending || c.published.IsZero() {
		return nil
	}
	cmd, err := c.ExecuteNavigation()
	if err != nil {
		l().Warnf("retrying navigation on attach: %v", err)
	}
	return cmd
}

// DetachConsumer forgets the current stack. In-flight continuations become
// no-ops; the request stays pending.
func (c *Coordinator) DetachConsumer() {
	c.consumer = nil
	c.executing = false
	l().Debug("navigation consumer detached")
}

// ExecuteNavigation resets the consumer to root and schedules the push of
// the pending destination. It is a no-op when nothing is pending or an
// execution is already in flight.
func (c *Coordinator) ExecuteNavigation() (tea.Cmd, error) {
	if c.state != Pending {
		l().Debug("no navigation to execute")
		return nil, nil
	}
	if c.consumer == nil {
		c.metrics.Execution.WithLabelValues(c.pending.Kind.String(), metrics.NoConsumer).Inc()
		return nil, ErrNoConsumerAttached
	}
	if c.executing {
		return nil, nil
	}

	l().Infof("executing navigation to %s", c.pending)
	// A new generation orphans the push of an execution that was cut short
	// by a detach, so a re-execution never pushes twice.
	c.gen++
	c.executing = true
	c.consumer.GoToRoot()
	return schedule(pushMsg{gen: c.gen}, c.settleDelay), nil
}

// Update handles the coordinator's own continuations; other messages are
// ignored.
func (c *Coordinator) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case RequestMsg:
		_, cmd := c.RequestNavigation(msg.Request)
		return cmd

	case publishMsg:
		if msg.gen != c.gen {
			return nil
		}
		return c.publish(msg.req)

	case pushMsg:
		if msg.gen != c.gen || !c.executing {
			return nil
		}
		if c.consumer == nil {
			c.executing = false
			l().Warn("consumer detached before push; navigation stays pending")
			return nil
		}
		d, err := c.pending.Destination()
		if err != nil {
			// Requests are validated on entry, so this is a broken invariant.
			panic(fmt.Sprintf("coordinator: pending %s has no destination: %v", c.pending, err))
		}
		c.consumer.Navigate(d)
		c.pushed = d
		return schedule(settledMsg{gen: msg.gen}, 0)

	case settledMsg:
		if msg.gen != c.gen || !c.executing {
			return nil
		}
		c.complete()
		// Another process may have queued a request while this one was in
		// flight; it was skipped by the pending check and is picked up now.
		return c.CheckPendingNavigationRequests()
	}
	return nil
}

// publish sets the observable field for r and notifies its subscribers.
func (c *Coordinator) publish(r Request) tea.Cmd {
	c.published = r

	var cmds []tea.Cmd
	for _, s := range c.subscribers[r.Kind] {
		cmds = append(cmds, s.fn(r))
	}
	return tea.Batch(cmds...)
}

func (c *Coordinator) complete() {
	kind := c.pending.Kind

	if c.consumer != nil {
		if top, ok := c.consumer.Peek(); !ok || !top.Equal(c.pushed) {
			l().Warnf("stack top changed before navigation to %s settled", c.pushed)
		}
	}
	l().Infof("navigation to %s complete", c.pending)

	c.removeKey(kind)
	c.state = Idle
	c.pending = Request{}
	c.published = Request{}
	c.executing = false
	c.pushed = destination.Destination{}

	if _, _, more := c.PersistedRequest(); !more {
		c.guardUntil = time.Time{}
	}
	c.metrics.Execution.WithLabelValues(kind.String(), metrics.Completed).Inc()
}

func (c *Coordinator) removeKey(k Kind) {
	if err := c.store.Remove(k.Key()); err != nil {
		l().Warnf("removing %s: %v", k.Key(), err)
	}
}
