package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/storefront"
	"storefront/internal/uistate"
)

func TestFrameDocument_Markers(t *testing.T) {
	doc := NewFrameDocument([]storefront.FrameSettings{
		{ID: "reviews", Title: "Reviews widget"},
		{ID: "chat", Title: "Support chat"},
	})
	frames := doc.Frames()
	require.Len(t, frames, 2)

	frames[1].SetMarker(uistate.HiddenMarker, true)
	assert.False(t, doc.Embedded()[0].Hidden())
	assert.True(t, doc.Embedded()[1].Hidden())

	view := doc.View(40)
	assert.Contains(t, view, "Reviews widget")
	assert.NotContains(t, view, "Support chat")
	assert.Equal(t, 2*3, strings.Count(view, "\n")+1, "hidden frame keeps its slot")

	frames[1].SetMarker(uistate.HiddenMarker, false)
	assert.False(t, doc.Embedded()[1].Hidden())
	assert.Contains(t, doc.View(40), "Support chat")
}
