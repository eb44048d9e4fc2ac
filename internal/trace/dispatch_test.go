package trace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"storefront/internal/cart"
	"storefront/internal/storefront"
	"storefront/internal/uistate"
)

func newStore() *uistate.Store {
	return uistate.New(uistate.Options{
		Root:       storefront.RootData{SiteSettings: storefront.DefaultSettings},
		CartStatus: cart.StatusIdle,
	})
}

func attrMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	out := make(map[string]attribute.Value, len(attrs))
	for _, kv := range attrs {
		out[string(kv.Key)] = kv.Value
	}
	return out
}

func TestDispatchTracer_SpanPerDispatch(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	p := NewProviderWithProcessor(rec)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	s := newStore()
	d := NewDispatchTracer(p.Tracer(), nil, s.ID())
	unsub := d.Attach(s)

	s.OpenCart()
	s.OpenSearch()
	unsub()
	s.CloseAll()

	spans := rec.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "uistate.open-cart", spans[0].Name())
	assert.Equal(t, "uistate.open-search", spans[1].Name())

	attrs := attrMap(spans[1].Attributes())
	assert.Equal(t, s.ID(), attrs["storefront.store.id"].AsString())
	assert.Equal(t, "cart", attrs["storefront.panel.before"].AsString())
	assert.Equal(t, "search", attrs["storefront.panel"].AsString())
	assert.True(t, attrs["storefront.frames_hidden"].AsBool())
	assert.True(t, attrs["storefront.cart_ready"].AsBool())
	assert.False(t, attrs["storefront.hydrated"].AsBool())
}

func TestDispatchTracer_HistoryWithoutTracer(t *testing.T) {
	s := newStore()
	h := NewHistory(3)
	d := NewDispatchTracer(nil, h, s.ID())
	fixed := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return fixed }
	d.Attach(s)

	s.OpenMobileMenu()
	s.TogglePromobar(false)

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, uistate.KindTogglePromobar, last.Kind)
	assert.Equal(t, uistate.PanelMobileMenu, last.Panel)
	assert.Equal(t, fixed, last.Timestamp)
	assert.Equal(t, 2, h.Len())
}

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	p, err := NewProvider(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Nil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))
}
