package trace

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"storefront/internal/uistate"
)

// DispatchTracer observes a store and emits one span per dispatched action.
// Either the tracer or the history may be nil.
type DispatchTracer struct {
	tracer  oteltrace.Tracer
	history *History
	storeID string
	now     func() time.Time
}

// NewDispatchTracer creates a tracer for the store identified by storeID.
func NewDispatchTracer(tracer oteltrace.Tracer, history *History, storeID string) *DispatchTracer {
	return &DispatchTracer{
		tracer:  tracer,
		history: history,
		storeID: storeID,
		now:     time.Now,
	}
}

// Attach subscribes the tracer to s and returns the unsubscribe func.
func (d *DispatchTracer) Attach(s *uistate.Store) func() {
	return s.Subscribe(d.Observe)
}

// Observe implements uistate.Listener.
func (d *DispatchTracer) Observe(prev, next uistate.State, a uistate.Action) {
	ts := d.now()
	if d.history != nil {
		d.history.Add(Event{Kind: a.Kind(), Panel: next.OpenPanel(), Timestamp: ts})
	}
	if d.tracer == nil {
		return
	}

	_, span := d.tracer.Start(context.Background(), "uistate."+a.Kind().String(),
		oteltrace.WithTimestamp(ts),
		oteltrace.WithSpanKind(oteltrace.SpanKindInternal),
	)
	span.SetAttributes(
		attribute.String("storefront.store.id", d.storeID),
		attribute.String("storefront.action", a.Kind().String()),
		attribute.String("storefront.panel.before", prev.OpenPanel().String()),
		attribute.String("storefront.panel", next.OpenPanel().String()),
		attribute.Bool("storefront.cart_ready", next.IsCartReady),
		attribute.Bool("storefront.hydrated", next.IsHydrated),
		attribute.Bool("storefront.frames_hidden", next.FramesHidden()),
	)
	span.End(oteltrace.WithTimestamp(ts))
}
