// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package coordinator

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goway/destination"
	"goway/kvstore"
	"goway/metrics"
	"goway/navstack"
	"goway/venue"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time           { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

// recordingStore counts writes on top of an in-memory store.
type recordingStore struct {
	*kvstore.Memory
	sets []string
}

func (r *recordingStore) Set(key, value string) error {
	r.sets = append(r.sets, key+"="+value)
	return r.Memory.Set(key, value)
}

func (r *recordingStore) setKeys(t *testing.T) int {
	t.Helper()
	n := 0
	for _, k := range requestKinds {
		_, ok, err := r.Get(k.Key())
		require.NoError(t, err)
		if ok {
			n++
		}
	}
	return n
}

var (
	cafe  = venue.Vendor{ID: "v1", Name: "Cafe", Type: venue.Food}
	tower = venue.Building{ID: "b1", Name: "Tower", Vendors: []venue.Vendor{cafe}}
)

type fixture struct {
	clock   *fakeClock
	store   *recordingStore
	catalog *venue.Static
	metrics *metrics.Navigation
	c       *Coordinator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		clock:   &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)},
		store:   &recordingStore{Memory: kvstore.NewMemory()},
		catalog: venue.NewStatic([]venue.Building{tower}),
		metrics: metrics.New(nil),
	}
	f.c = f.reopen()
	return f
}

// reopen builds a fresh coordinator over the same store, as after a restart.
func (f *fixture) reopen() *Coordinator {
	return New(f.store, f.catalog, WithClock(f.clock.Now), WithMetrics(f.metrics))
}

// drain runs cmd and feeds every resulting message back into c until no
// work is left.
func drain(t *testing.T, c *Coordinator, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 100, "continuations did not settle")
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case nil:
		default:
			queue = append(queue, c.Update(msg))
		}
	}
}

func TestRequestNavigation_PersistsAndPublishes(t *testing.T) {
	f := newFixture(t)
	var got []Request
	f.c.Subscribe(KindVendor, func(r Request) tea.Cmd {
		got = append(got, r)
		return nil
	})

	ok, cmd := f.c.RequestNavigation(ToVendor(cafe))
	require.True(t, ok)
	assert.Equal(t, Pending, f.c.State())
	assert.Equal(t, f.clock.Now().Add(GuardWindow), f.c.GuardUntil())

	v, present, _ := f.store.Get(KeyPendingVendor)
	require.True(t, present)
	assert.Equal(t, "v1", v)

	// Publication is asynchronous.
	assert.True(t, f.c.Published().IsZero())
	assert.Empty(t, got)

	drain(t, f.c, cmd)
	require.Len(t, got, 1)
	assert.Equal(t, "v1", got[0].Vendor.ID)
	assert.Equal(t, KindVendor, f.c.Published().Kind)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Requests.WithLabelValues("vendor", metrics.Accepted)))
}

func TestRequestNavigation_DebounceAcrossKinds(t *testing.T) {
	f := newFixture(t)

	ok, cmd := f.c.RequestNavigation(ToBuilding(tower))
	require.True(t, ok)
	drain(t, f.c, cmd)
	writes := len(f.store.sets)

	f.clock.Advance(time.Second)
	ok, cmd = f.c.RequestNavigation(ToVendor(cafe))
	assert.False(t, ok)
	assert.Nil(t, cmd)

	assert.Len(t, f.store.sets, writes, "dropped request must not write")
	assert.Equal(t, KindBuilding, f.c.Published().Kind)
	assert.Equal(t, KindBuilding, f.c.Pending().Kind)
	_, present, _ := f.store.Get(KeyPendingVendor)
	assert.False(t, present)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Requests.WithLabelValues("vendor", metrics.Debounced)))
}

func TestRequestNavigation_SameTypeTwiceWritesOnce(t *testing.T) {
	f := newFixture(t)

	ok, _ := f.c.RequestNavigation(ToVendorType(venue.Food))
	require.True(t, ok)
	f.clock.Advance(500 * time.Millisecond)
	ok, _ = f.c.RequestNavigation(ToVendorType(venue.Food))
	assert.False(t, ok)

	assert.Equal(t, []string{KeyPendingVendorType + "=food"}, f.store.sets)
}

func TestRequestNavigation_GuardExpiryReopensGate(t *testing.T) {
	f := newFixture(t)

	ok, _ := f.c.RequestNavigation(ToVendor(cafe))
	require.True(t, ok)

	f.clock.Advance(GuardWindow)
	ok, cmd := f.c.RequestNavigation(ToBuilding(tower))
	require.True(t, ok)
	drain(t, f.c, cmd)

	assert.Equal(t, KindBuilding, f.c.Pending().Kind)
	assert.Equal(t, 1, f.store.setKeys(t))
	_, present, _ := f.store.Get(KeyPendingBuilding)
	assert.True(t, present)
}

func TestRequestNavigation_AtMostOnePersistedKey(t *testing.T) {
	f := newFixture(t)
	reqs := []Request{ToVendor(cafe), ToBuilding(tower), ToVendorType(venue.Worship), ToVendor(cafe), ToVendorType(venue.Busway)}

	for i, r := range reqs {
		_, cmd := f.c.RequestNavigation(r)
		assert.LessOrEqual(t, f.store.setKeys(t), 1, "after request %d", i)
		drain(t, f.c, cmd)
		f.clock.Advance(time.Duration(i+2) * time.Second)
		assert.LessOrEqual(t, f.store.setKeys(t), 1, "after request %d", i)
	}
}

func TestRequestNavigation_RejectsEmpty(t *testing.T) {
	f := newFixture(t)
	ok, cmd := f.c.RequestNavigation(Request{})
	assert.False(t, ok)
	assert.Nil(t, cmd)
	ok, _ = f.c.RequestNavigation(Request{Kind: KindVendor})
	assert.False(t, ok)
	assert.Equal(t, Idle, f.c.State())
}

func TestClearNavigationState(t *testing.T) {
	f := newFixture(t)
	published := 0
	f.c.Subscribe(KindBuilding, func(Request) tea.Cmd { published++; return nil })

	_, cmd := f.c.RequestNavigation(ToBuilding(tower))
	f.c.ClearNavigationState()
	f.c.ClearNavigationState()

	// The scheduled publication was cancelled.
	drain(t, f.c, cmd)
	assert.Zero(t, published)

	assert.Equal(t, Idle, f.c.State())
	assert.True(t, f.c.GuardUntil().IsZero())
	assert.True(t, f.c.Published().IsZero())
	assert.Zero(t, f.store.setKeys(t))

	ok, _ := f.c.RequestNavigation(ToVendor(cafe))
	assert.True(t, ok, "clear ends the guard")
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	f := newFixture(t)
	calls := 0
	cancel := f.c.Subscribe(KindVendor, func(Request) tea.Cmd { calls++; return nil })
	cancel()

	_, cmd := f.c.RequestNavigation(ToVendor(cafe))
	drain(t, f.c, cmd)
	assert.Zero(t, calls)
}

func TestCheckPending_ResumesAfterRestart(t *testing.T) {
	f := newFixture(t)
	ok, _ := f.c.RequestNavigation(ToVendor(cafe))
	require.True(t, ok)

	c := f.reopen()
	stack := &navstack.Stack{}
	c.AttachConsumer(stack)
	c.Subscribe(KindVendor, func(Request) tea.Cmd {
		cmd, err := c.ExecuteNavigation()
		require.NoError(t, err)
		return cmd
	})

	drain(t, c, c.CheckPendingNavigationRequests())

	got := stack.Destinations()
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(destination.Destination{Kind: destination.KindVendorDetail, VendorID: "v1"}))
	assert.Nil(t, got[0].IsRecommended)
	assert.Equal(t, Idle, c.State())
	assert.True(t, c.GuardUntil().IsZero(), "guard ends early once delivered")
	assert.Zero(t, f.store.setKeys(t))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Pending.WithLabelValues("vendor", metrics.Resumed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Execution.WithLabelValues("vendor", metrics.Completed)))
}

func TestCheckPending_UnknownIdIsCleared(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Set(KeyPendingBuilding, "unknown-id"))
	stack := &navstack.Stack{}
	f.c.AttachConsumer(stack)

	cmd := f.c.CheckPendingNavigationRequests()
	assert.Nil(t, cmd)
	drain(t, f.c, cmd)

	_, present, _ := f.store.Get(KeyPendingBuilding)
	assert.False(t, present)
	assert.Equal(t, Idle, f.c.State())
	assert.Zero(t, stack.Depth())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Pending.WithLabelValues("building", metrics.NotFound)))
}

func TestCheckPending_CorruptedValueMovesOn(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Set(KeyPendingVendor, "v 1\n"))
	require.NoError(t, f.store.Set(KeyPendingVendorType, "parkingLot"))

	drain(t, f.c, f.c.CheckPendingNavigationRequests())

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Pending.WithLabelValues("vendor", metrics.Corrupted)))
	assert.Equal(t, Pending, f.c.State())
	assert.Equal(t, venue.ParkingLot, f.c.Pending().VendorType)
}

func TestCheckPending_PriorityOrder(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Set(KeyPendingVendorType, "food"))
	require.NoError(t, f.store.Set(KeyPendingBuilding, "b1"))

	f.c.CheckPendingNavigationRequests()
	assert.Equal(t, KindBuilding, f.c.Pending().Kind)
}

func TestCheckPending_SkipsWhilePending(t *testing.T) {
	f := newFixture(t)
	ok, _ := f.c.RequestNavigation(ToVendor(cafe))
	require.True(t, ok)
	require.NoError(t, f.store.Set(KeyPendingVendorType, "food"))

	assert.Nil(t, f.c.CheckPendingNavigationRequests())
	_, present, _ := f.store.Get(KeyPendingVendorType)
	assert.True(t, present, "nothing is consumed while a navigation is in flight")
}

// executeOnPublish wires c the way the bridge does: every publication runs
// the execution on stack.
func executeOnPublish(t *testing.T, c *Coordinator, stack *navstack.Stack) {
	t.Helper()
	c.AttachConsumer(stack)
	for _, k := range requestKinds {
		c.Subscribe(k, func(Request) tea.Cmd {
			cmd, err := c.ExecuteNavigation()
			require.NoError(t, err)
			return cmd
		})
	}
}

func TestRequestNavigation_IdleIgnoresLeftoverGuard(t *testing.T) {
	f := newFixture(t)
	f.c.guardUntil = f.clock.Now().Add(GuardWindow)

	ok, _ := f.c.RequestNavigation(ToVendor(cafe))
	assert.True(t, ok, "the guard only holds while a navigation is pending")
	assert.Zero(t, testutil.ToFloat64(f.metrics.Requests.WithLabelValues("vendor", metrics.Debounced)))
}

func TestCheckPending_RequestFromOtherProcessDuringDelivery(t *testing.T) {
	f := newFixture(t)
	stack := &navstack.Stack{}
	executeOnPublish(t, f.c, stack)

	ok, cmd := f.c.RequestNavigation(ToVendor(cafe))
	require.True(t, ok)

	// A CLI invocation shares the store but not the in-memory state.
	f.clock.Advance(2 * time.Second)
	ok, _ = f.reopen().RequestNavigation(ToBuilding(tower))
	require.True(t, ok)

	drain(t, f.c, cmd)

	got := stack.Destinations()
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(destination.BuildingDetail(tower)))
	assert.Equal(t, Idle, f.c.State())
	assert.Zero(t, f.store.setKeys(t))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Pending.WithLabelValues("building", metrics.Resumed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Execution.WithLabelValues("vendor", metrics.Completed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Execution.WithLabelValues("building", metrics.Completed)))
}

func TestCheckPending_RetriesUnexecutedRequest(t *testing.T) {
	f := newFixture(t)
	stack := &navstack.Stack{}
	f.c.AttachConsumer(stack)

	// Nobody executes the publication.
	_, cmd := f.c.RequestNavigation(ToBuilding(tower))
	drain(t, f.c, cmd)
	require.Equal(t, Pending, f.c.State())
	require.Zero(t, stack.Depth())

	drain(t, f.c, f.c.CheckPendingNavigationRequests())

	got := stack.Destinations()
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(destination.BuildingDetail(tower)))
	assert.Equal(t, Idle, f.c.State())
}

func TestExecuteNavigation_ReattachPushesOnce(t *testing.T) {
	f := newFixture(t)
	stack := &navstack.Stack{}
	f.c.AttachConsumer(stack)

	_, cmd := f.c.RequestNavigation(ToBuilding(tower))
	drain(t, f.c, cmd)
	push, err := f.c.ExecuteNavigation()
	require.NoError(t, err)

	f.c.DetachConsumer()
	retry := f.c.AttachConsumer(stack)
	drain(t, f.c, push)
	drain(t, f.c, retry)

	assert.Equal(t, 1, stack.Depth())
	assert.Equal(t, Idle, f.c.State())
}

func TestExecuteNavigation_NoConsumerRetriesOnAttach(t *testing.T) {
	f := newFixture(t)
	var execErr error
	f.c.Subscribe(KindVendorType, func(Request) tea.Cmd {
		var cmd tea.Cmd
		cmd, execErr = f.c.ExecuteNavigation()
		return cmd
	})

	_, cmd := f.c.RequestNavigation(ToVendorType(venue.Worship))
	drain(t, f.c, cmd)
	require.ErrorIs(t, execErr, ErrNoConsumerAttached)
	assert.Equal(t, Pending, f.c.State())

	stack := &navstack.Stack{}
	stack.Navigate(destination.Category(destination.KindFood))
	drain(t, f.c, f.c.AttachConsumer(stack))

	got := stack.Destinations()
	require.Len(t, got, 1, "stack is reset before the push")
	assert.Equal(t, destination.KindPraying, got[0].Kind)
	assert.Equal(t, Idle, f.c.State())
}

func TestExecuteNavigation_IdleIsNoop(t *testing.T) {
	f := newFixture(t)
	f.c.AttachConsumer(&navstack.Stack{})
	cmd, err := f.c.ExecuteNavigation()
	assert.NoError(t, err)
	assert.Nil(t, cmd)
}

func TestExecuteNavigation_DetachBeforePush(t *testing.T) {
	f := newFixture(t)
	stack := &navstack.Stack{}
	f.c.AttachConsumer(stack)

	_, cmd := f.c.RequestNavigation(ToBuilding(tower))
	drain(t, f.c, cmd)

	push, err := f.c.ExecuteNavigation()
	require.NoError(t, err)
	f.c.DetachConsumer()
	drain(t, f.c, push)

	assert.Zero(t, stack.Depth())
	assert.Equal(t, Pending, f.c.State())
}

func TestExecuteNavigation_ClearCancelsPush(t *testing.T) {
	f := newFixture(t)
	stack := &navstack.Stack{}
	f.c.AttachConsumer(stack)

	_, cmd := f.c.RequestNavigation(ToBuilding(tower))
	drain(t, f.c, cmd)
	push, err := f.c.ExecuteNavigation()
	require.NoError(t, err)

	f.c.ClearNavigationState()
	drain(t, f.c, push)
	assert.Zero(t, stack.Depth())
}

func TestRequestDestination(t *testing.T) {
	cases := []struct {
		req  Request
		want destination.Kind
	}{
		{ToVendorType(venue.Food), destination.KindFood},
		{ToVendorType(venue.ParkingLot), destination.KindParking},
		{ToVendorType(venue.Worship), destination.KindPraying},
		{ToVendorType(venue.Entertainment), destination.KindEntertainment},
		{ToVendorType(venue.Lifestyle), destination.KindLifestyle},
		{ToVendorType(venue.Other), destination.KindOther},
		{ToBuilding(tower), destination.KindBuildingDetail},
		{ToVendor(cafe), destination.KindVendorDetail},
	}
	for _, tc := range cases {
		d, err := tc.req.Destination()
		require.NoError(t, err)
		assert.Equal(t, tc.want, d.Kind, tc.req.String())
	}

	_, err := Request{}.Destination()
	assert.Error(t, err)
}
