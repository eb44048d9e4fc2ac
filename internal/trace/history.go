package trace

import (
	"time"

	"storefront/internal/uistate"
)

// Event is one dispatched action as seen by the history.
type Event struct {
	Kind      uistate.Kind
	Panel     uistate.Panel
	Timestamp time.Time
}

// History keeps the most recent dispatch events in a ring buffer.
// It is owned by the UI event loop, like the store it observes.
type History struct {
	events    []Event
	next      int
	full      bool
	maxEvents int
}

// NewHistory creates a history holding up to maxEvents (default 10).
func NewHistory(maxEvents int) *History {
	if maxEvents <= 0 {
		maxEvents = 10
	}
	return &History{
		events:    make([]Event, maxEvents),
		maxEvents: maxEvents,
	}
}

// Add records e, evicting the oldest event when full.
func (h *History) Add(e Event) {
	h.events[h.next] = e
	h.next = (h.next + 1) % h.maxEvents
	if h.next == 0 {
		h.full = true
	}
}

// Len returns the number of stored events.
func (h *History) Len() int {
	if h.full {
		return h.maxEvents
	}
	return h.next
}

// Recent returns stored events, oldest first.
func (h *History) Recent() []Event {
	out := make([]Event, 0, h.Len())
	if h.full {
		out = append(out, h.events[h.next:]...)
	}
	return append(out, h.events[:h.next]...)
}

// Last returns the newest event.
func (h *History) Last() (Event, bool) {
	if h.Len() == 0 {
		return Event{}, false
	}
	idx := (h.next - 1 + h.maxEvents) % h.maxEvents
	return h.events[idx], true
}
