// Package uistate is the storefront's global UI state: which overlay panel is
// open (cart drawer, desktop menu, mobile menu, search, modal), promo bar and
// iframe visibility, cart readiness, the preview-mode customer and hydration.
//
// Core pieces:
//   - State: an immutable snapshot, replaced on every dispatch
//   - Action: a closed set of action variants reduced by Reduce
//   - Store: owns the current State, dispatches actions, runs observers
//   - Effects: hydration, cart-ready fallback timer, iframe visibility
//
// A Store is single-threaded. It must be driven from one event loop; timers
// are delivered back to that loop through a Scheduler.
package uistate
