package ui

import (
	"strings"

	"storefront/internal/storefront"
	"storefront/internal/uistate"
	"storefront/internal/ui/textutil"
)

// EmbeddedFrame is a third-party frame rendered in the page body.
type EmbeddedFrame struct {
	ID      string
	Title   string
	markers map[string]bool
}

// SetMarker implements uistate.Frame.
func (f *EmbeddedFrame) SetMarker(name string, on bool) {
	if on {
		f.markers[name] = true
		return
	}
	delete(f.markers, name)
}

// Hidden reports whether the frame carries the hidden marker.
func (f *EmbeddedFrame) Hidden() bool {
	return f.markers[uistate.HiddenMarker]
}

// View renders the frame box. A hidden frame keeps its slot but shows nothing.
func (f *EmbeddedFrame) View(width int) string {
	body := textutil.Truncate(f.Title, max(width-4, 1))
	if f.Hidden() {
		body = textutil.Blank(body)
	}
	return Styles.Frame.Render(body)
}

// FrameDocument holds the frames currently rendered in the page.
type FrameDocument struct {
	frames []*EmbeddedFrame
}

// Ensure FrameDocument implements uistate.Document.
var _ uistate.Document = (*FrameDocument)(nil)

// NewFrameDocument creates frames from the site settings.
func NewFrameDocument(settings []storefront.FrameSettings) *FrameDocument {
	d := &FrameDocument{}
	for _, s := range settings {
		d.frames = append(d.frames, &EmbeddedFrame{
			ID:      s.ID,
			Title:   s.Title,
			markers: make(map[string]bool),
		})
	}
	return d
}

// Frames implements uistate.Document.
func (d *FrameDocument) Frames() []uistate.Frame {
	out := make([]uistate.Frame, len(d.frames))
	for i, f := range d.frames {
		out[i] = f
	}
	return out
}

// Embedded returns the concrete frames.
func (d *FrameDocument) Embedded() []*EmbeddedFrame {
	return d.frames
}

// View renders all frames stacked vertically.
func (d *FrameDocument) View(width int) string {
	parts := make([]string, 0, len(d.frames))
	for _, f := range d.frames {
		parts = append(parts, f.View(width))
	}
	return strings.Join(parts, "\n")
}
