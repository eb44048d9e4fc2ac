package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_StringRoundTrip(t *testing.T) {
	for s := StatusUninitialized; s <= StatusIdle; s++ {
		got, ok := ParseStatus(s.String())
		require.True(t, ok, s.String())
		assert.Equal(t, s, got)
	}
	_, ok := ParseStatus("bogus")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Status(99).String())
}

func TestHook_NotifiesOnlyOnChange(t *testing.T) {
	h := NewHook(StatusUninitialized)
	var seen []Status
	unsub := h.Subscribe(func(s Status) { seen = append(seen, s) })

	h.SetStatus(StatusUninitialized)
	h.SetStatus(StatusFetching)
	h.SetStatus(StatusFetching)
	h.SetStatus(StatusIdle)
	assert.Equal(t, []Status{StatusFetching, StatusIdle}, seen)

	unsub()
	h.SetStatus(StatusUpdating)
	assert.Len(t, seen, 2)
	assert.Equal(t, StatusUpdating, h.Status())
}

func TestHook_SubscribersInOrder(t *testing.T) {
	h := NewHook(StatusIdle)
	var order []string
	h.Subscribe(func(Status) { order = append(order, "first") })
	h.Subscribe(func(Status) { order = append(order, "second") })
	h.SetStatus(StatusUpdating)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestHook_AddLine(t *testing.T) {
	h := NewHook(StatusIdle)
	var seen []Status
	h.Subscribe(func(s Status) { seen = append(seen, s) })
	h.AddLine()
	assert.Equal(t, 1, h.Lines())
	assert.Equal(t, []Status{StatusUpdating, StatusIdle}, seen)
	assert.Equal(t, StatusIdle, h.Status())
}
