package uistate

import (
	"sort"
	"time"
)

// Scheduler runs fn on the store's event loop once d has elapsed. The returned
// cancel func stops fn from running if it has not run yet.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// ManualScheduler is a Scheduler driven by explicit Advance calls. Callbacks
// run synchronously on the goroutine calling Advance.
type ManualScheduler struct {
	now     time.Duration
	pending []*manualTimer
	seq     int
}

type manualTimer struct {
	at       time.Duration
	seq      int
	fn       func()
	canceled bool
}

// Ensure ManualScheduler implements Scheduler.
var _ Scheduler = (*ManualScheduler)(nil)

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements Scheduler.
func (m *ManualScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := &manualTimer{at: m.now + d, seq: m.seq, fn: fn}
	m.seq++
	m.pending = append(m.pending, t)
	return func() { t.canceled = true }
}

// Now returns the elapsed virtual time.
func (m *ManualScheduler) Now() time.Duration {
	return m.now
}

// Pending returns the number of timers that have neither fired nor been canceled.
func (m *ManualScheduler) Pending() int {
	n := 0
	for _, t := range m.pending {
		if !t.canceled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing due timers in deadline order.
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now + d
	for {
		due := m.nextDue(target)
		if due == nil {
			break
		}
		m.now = due.at
		due.canceled = true
		due.fn()
	}
	m.now = target
	m.compact()
}

func (m *ManualScheduler) nextDue(limit time.Duration) *manualTimer {
	live := make([]*manualTimer, 0, len(m.pending))
	for _, t := range m.pending {
		if !t.canceled && t.at <= limit {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].at != live[j].at {
			return live[i].at < live[j].at
		}
		return live[i].seq < live[j].seq
	})
	return live[0]
}

func (m *ManualScheduler) compact() {
	kept := m.pending[:0]
	for _, t := range m.pending {
		if !t.canceled {
			kept = append(kept, t)
		}
	}
	m.pending = kept
}
