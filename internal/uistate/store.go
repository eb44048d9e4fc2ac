package uistate

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"storefront/internal/cart"
	"storefront/internal/storefront"
)

// Listener is called after every dispatch with the previous and next state.
type Listener func(prev, next State, a Action)

// Options configures a Store.
type Options struct {
	Root storefront.RootData

	// Cart supplies the cart status. When nil, CartStatus is used and updates
	// arrive through SetCartStatus.
	Cart       cart.Provider
	CartStatus cart.Status

	// Scheduler runs the cart-ready fallback. Without one the fallback never fires.
	Scheduler Scheduler
	// Document exposes rendered frames to the iframe visibility effect.
	Document Document

	// CartReadyFallback overrides the default fallback delay.
	CartReadyFallback time.Duration

	Logger *slog.Logger
}

// Store owns the UI state. It is not safe for concurrent use.
type Store struct {
	id        string
	state     State
	listeners []*listenerEntry
	logger    *slog.Logger

	cart       cart.Provider
	cartStatus cart.Status
	unsubCart  func()

	scheduler      Scheduler
	document       Document
	fallback       time.Duration
	cancelFallback func()

	mounted     bool
	dispatching bool
	queue       []Action
}

type listenerEntry struct {
	fn Listener
}

// New builds a store from the root data and the cart's current status.
func New(opts Options) *Store {
	status := opts.CartStatus
	if opts.Cart != nil {
		status = opts.Cart.Status()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	fallback := opts.CartReadyFallback
	if fallback <= 0 {
		fallback = CartReadyFallback
	}
	s := &Store{
		id:         uuid.NewString(),
		state:      InitialState(opts.Root, status),
		logger:     logger,
		cart:       opts.Cart,
		cartStatus: status,
		scheduler:  opts.Scheduler,
		document:   opts.Document,
		fallback:   fallback,
	}
	s.logger = logger.With("store", s.id)
	s.watchFrames()
	return s
}

// ID identifies the store instance in logs and traces.
func (s *Store) ID() string {
	return s.id
}

// State returns the current snapshot.
func (s *Store) State() State {
	return s.state
}

// CartStatus returns the last cart status the store has seen.
func (s *Store) CartStatus() cart.Status {
	return s.cartStatus
}

// Dispatch reduces a into a new state and notifies listeners. Dispatches made
// from a listener are queued and run after the current one completes. An
// unknown action panics before anything changes.
func (s *Store) Dispatch(a Action) {
	a = normalize(a)
	validate(a)
	if s.dispatching {
		s.queue = append(s.queue, a)
		return
	}
	s.dispatching = true
	// A panicking listener must not leave queued actions behind for the next
	// dispatch.
	defer func() {
		s.dispatching = false
		s.queue = nil
	}()

	s.apply(a)
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.apply(next)
	}
}

func (s *Store) apply(a Action) {
	prev := s.state
	next := Reduce(prev, a)
	s.state = next
	s.logger.Debug("dispatch", "action", a.Kind(), "panel", next.OpenPanel())

	listeners := append([]*listenerEntry(nil), s.listeners...)
	for _, l := range listeners {
		l.fn(prev, next, a)
	}
}

// Subscribe registers fn to run after every dispatch. The returned func
// removes it.
func (s *Store) Subscribe(fn Listener) func() {
	e := &listenerEntry{fn: fn}
	s.listeners = append(s.listeners, e)
	return func() {
		for i, l := range s.listeners {
			if l == e {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Watch runs effect whenever selector's result changes between dispatches.
// The baseline is taken at registration; effect does not run for it.
func Watch[K comparable](s *Store, selector func(State) K, effect func(K, State)) func() {
	last := selector(s.state)
	return s.Subscribe(func(_, next State, _ Action) {
		cur := selector(next)
		if cur == last {
			return
		}
		last = cur
		effect(cur, next)
	})
}

// Mount attaches the store to a rendered tree: it subscribes to the cart,
// runs the hydration effect and settles cart readiness. Mounting twice is a
// no-op.
func (s *Store) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	if s.cart != nil {
		s.cartStatus = s.cart.Status()
		s.unsubCart = s.cart.Subscribe(s.SetCartStatus)
	}
	s.logger.Debug("mounted", "cart_status", s.cartStatus)
	s.runHydrationEffect()
	s.runCartReadyEffect()
}

// Unmount detaches from the cart and cancels any pending fallback timer.
func (s *Store) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	if s.unsubCart != nil {
		s.unsubCart()
		s.unsubCart = nil
	}
	s.stopCartFallback()
	s.logger.Debug("unmounted")
}

// Mounted reports whether the store is attached to a tree.
func (s *Store) Mounted() bool {
	return s.mounted
}

// SetCartStatus records a cart status change and re-runs the cart-ready effect.
func (s *Store) SetCartStatus(status cart.Status) {
	if status == s.cartStatus {
		return
	}
	s.cartStatus = status
	if s.mounted {
		s.runCartReadyEffect()
	}
}
