package uistate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/cart"
	"storefront/internal/storefront"
)

func TestCartReady_IdleAtMountIsReadyImmediately(t *testing.T) {
	s, sched, _ := newTestStore(t, cart.StatusIdle)
	s.Mount()
	assert.True(t, s.State().IsCartReady)
	assert.Zero(t, sched.Pending())
}

func TestCartReady_FallbackFiresAtOneSecond(t *testing.T) {
	s, sched, _ := newTestStore(t, cart.StatusUninitialized)
	s.Mount()
	require.False(t, s.State().IsCartReady)
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(999 * time.Millisecond)
	assert.False(t, s.State().IsCartReady)

	sched.Advance(time.Millisecond)
	assert.True(t, s.State().IsCartReady)
	assert.Zero(t, sched.Pending())
}

func TestCartReady_IdleBeforeFallbackCancelsTimer(t *testing.T) {
	s, sched, _ := newTestStore(t, cart.StatusUninitialized)
	s.Mount()

	sched.Advance(300 * time.Millisecond)
	s.SetCartStatus(cart.StatusIdle)
	assert.True(t, s.State().IsCartReady)
	assert.Zero(t, sched.Pending())

	var readies int
	s.Subscribe(func(_, _ State, a Action) {
		if a.Kind() == KindSetIsCartReady {
			readies++
		}
	})
	sched.Advance(2 * time.Second)
	assert.Zero(t, readies)
}

func TestCartReady_RapidStatusChangesKeepOneTimer(t *testing.T) {
	s, sched, _ := newTestStore(t, cart.StatusUninitialized)
	s.Mount()

	var readies int
	s.Subscribe(func(_, _ State, a Action) {
		if a.Kind() == KindSetIsCartReady {
			readies++
		}
	})

	for _, st := range []cart.Status{cart.StatusCreating, cart.StatusFetching, cart.StatusUpdating} {
		sched.Advance(200 * time.Millisecond)
		s.SetCartStatus(st)
		assert.Equal(t, 1, sched.Pending())
	}

	// The first deadline holds: ready at 1000ms after mount.
	sched.Advance(400 * time.Millisecond)
	assert.Equal(t, time.Second, sched.Now())
	assert.True(t, s.State().IsCartReady)
	assert.Equal(t, 1, readies)
}

func TestCartReady_ProviderDrivesStatus(t *testing.T) {
	hook := cart.NewHook(cart.StatusUninitialized)
	sched := NewManualScheduler()
	s := New(Options{
		Root:      storefront.RootData{SiteSettings: storefront.DefaultSettings},
		Cart:      hook,
		Scheduler: sched,
	})
	s.Mount()
	assert.False(t, s.State().IsCartReady)

	hook.SetStatus(cart.StatusIdle)
	assert.True(t, s.State().IsCartReady)
	assert.Equal(t, cart.StatusIdle, s.CartStatus())

	s.Unmount()
	hook.SetStatus(cart.StatusUpdating)
	assert.Equal(t, cart.StatusIdle, s.CartStatus(), "unmounted store stops listening")
}

func TestCartReady_UnmountCancelsFallback(t *testing.T) {
	s, sched, _ := newTestStore(t, cart.StatusFetching)
	s.Mount()
	require.Equal(t, 1, sched.Pending())

	s.Unmount()
	assert.Zero(t, sched.Pending())
	sched.Advance(5 * time.Second)
	assert.False(t, s.State().IsCartReady)
}

func TestCartReady_StatusChangeBeforeMountIsDeferred(t *testing.T) {
	s, sched, _ := newTestStore(t, cart.StatusFetching)
	s.SetCartStatus(cart.StatusUpdating)
	assert.Zero(t, sched.Pending())

	s.SetCartStatus(cart.StatusIdle)
	assert.False(t, s.State().IsCartReady)

	s.Mount()
	assert.True(t, s.State().IsCartReady)
}

func TestCartReady_CustomFallback(t *testing.T) {
	sched := NewManualScheduler()
	s := New(Options{
		Root:              storefront.RootData{SiteSettings: storefront.DefaultSettings},
		CartStatus:        cart.StatusFetching,
		Scheduler:         sched,
		CartReadyFallback: 250 * time.Millisecond,
	})
	s.Mount()
	sched.Advance(250 * time.Millisecond)
	assert.True(t, s.State().IsCartReady)
}

func TestFrames_HiddenOnlyAfterHydration(t *testing.T) {
	s, _, doc := newTestStore(t, cart.StatusIdle)

	s.OpenSearch()
	for _, f := range doc.frames {
		assert.Zero(t, f.calls, "no frame writes before hydration")
	}

	s.Mount()
	for _, f := range doc.frames {
		assert.True(t, f.markers[HiddenMarker])
	}
}

func TestFrames_TrackDerivedFlag(t *testing.T) {
	s, _, doc := newTestStore(t, cart.StatusIdle)
	s.Mount()
	frame := doc.frames[0]
	assert.False(t, frame.markers[HiddenMarker])
	calls := frame.calls

	s.OpenMobileMenu()
	assert.True(t, frame.markers[HiddenMarker])

	s.OpenSearch()
	assert.Equal(t, calls+1, frame.calls, "flag unchanged, no rewrite")

	s.OpenCart()
	assert.False(t, frame.markers[HiddenMarker])

	s.ToggleIframesHidden(true)
	assert.True(t, frame.markers[HiddenMarker])

	s.CloseAll()
	assert.True(t, frame.markers[HiddenMarker], "explicit hide survives close-all")

	s.ToggleIframesHidden(false)
	assert.False(t, frame.markers[HiddenMarker])
	for _, f := range doc.frames {
		assert.Equal(t, frame.markers, f.markers)
	}
}

func TestManualScheduler_OrderAndCancel(t *testing.T) {
	sched := NewManualScheduler()
	var order []string
	sched.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	cancel := sched.AfterFunc(10*time.Millisecond, func() { order = append(order, "x") })
	sched.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	sched.AfterFunc(20*time.Millisecond, func() {
		order = append(order, "b")
		sched.AfterFunc(5*time.Millisecond, func() { order = append(order, "b2") })
	})
	cancel()

	sched.Advance(100 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "b2", "c"}, order)
	assert.Zero(t, sched.Pending())
	assert.Equal(t, 100*time.Millisecond, sched.Now())
}
