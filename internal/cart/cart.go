// Package cart exposes the cart subsystem's status to the UI. The cart itself
// (lines, checkout, storefront API) lives elsewhere; the UI only needs to know
// when the cart has settled into its idle state.
package cart

// Status is the cart lifecycle state as reported by the cart subsystem.
type Status int

const (
	StatusUninitialized Status = iota
	StatusCreating
	StatusFetching
	StatusUpdating
	StatusIdle
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusCreating:
		return "creating"
	case StatusFetching:
		return "fetching"
	case StatusUpdating:
		return "updating"
	case StatusIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// ParseStatus converts a status name back to a Status.
func ParseStatus(name string) (Status, bool) {
	for s := StatusUninitialized; s <= StatusIdle; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return StatusUninitialized, false
}

// Provider is what the UI store consumes: the current status plus change
// notifications.
type Provider interface {
	Status() Status
	Subscribe(fn func(Status)) (unsubscribe func())
}

// Hook is an in-process Provider. It is not safe for concurrent use; callers
// drive it from the UI event loop.
type Hook struct {
	status Status
	lines  int
	subs   map[int]func(Status)
	nextID int
}

// Ensure Hook implements Provider.
var _ Provider = (*Hook)(nil)

// NewHook creates a hook in the given initial status.
func NewHook(initial Status) *Hook {
	return &Hook{status: initial, subs: make(map[int]func(Status))}
}

// Status returns the current status.
func (h *Hook) Status() Status {
	return h.status
}

// SetStatus records a new status and notifies subscribers if it changed.
func (h *Hook) SetStatus(s Status) {
	if s == h.status {
		return
	}
	h.status = s
	for id := 0; id < h.nextID; id++ {
		if fn, ok := h.subs[id]; ok {
			fn(s)
		}
	}
}

// Subscribe registers fn for status changes. The returned func removes it.
func (h *Hook) Subscribe(fn func(Status)) func() {
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	return func() { delete(h.subs, id) }
}

// Lines returns the number of line items in the cart.
func (h *Hook) Lines() int {
	return h.lines
}

// AddLine adds a line item. The cart passes through updating back to idle.
func (h *Hook) AddLine() {
	h.SetStatus(StatusUpdating)
	h.lines++
	h.SetStatus(StatusIdle)
}
