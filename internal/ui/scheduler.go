package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"storefront/internal/uistate"
)

// EventLoopScheduler implements uistate.Scheduler on top of tea.Tick. Timers
// armed during an Update are collected and returned by Drain; when they fire
// the callback runs inside Update like any other message.
type EventLoopScheduler struct {
	timers  map[int]func()
	nextID  int
	pending []tea.Cmd
}

// Ensure EventLoopScheduler implements uistate.Scheduler.
var _ uistate.Scheduler = (*EventLoopScheduler)(nil)

// NewEventLoopScheduler creates an empty scheduler.
func NewEventLoopScheduler() *EventLoopScheduler {
	return &EventLoopScheduler{timers: make(map[int]func())}
}

// AfterFunc implements uistate.Scheduler.
func (e *EventLoopScheduler) AfterFunc(d time.Duration, fn func()) func() {
	id := e.nextID
	e.nextID++
	e.timers[id] = fn
	e.pending = append(e.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return func() { delete(e.timers, id) }
}

// Drain returns the tick commands armed since the last call.
func (e *EventLoopScheduler) Drain() tea.Cmd {
	cmds := e.pending
	e.pending = nil
	return tea.Batch(cmds...)
}

// Fire runs the callback for id. Canceled or already fired timers are ignored.
func (e *EventLoopScheduler) Fire(id int) bool {
	fn, ok := e.timers[id]
	if !ok {
		return false
	}
	delete(e.timers, id)
	fn()
	return true
}

// Armed returns the number of timers waiting to fire.
func (e *EventLoopScheduler) Armed() int {
	return len(e.timers)
}
