package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"storefront/internal/cart"
	"storefront/internal/storefront"
	"storefront/internal/uistate"
)

func TestParseStep(t *testing.T) {
	tests := []struct {
		in   string
		want step
	}{
		{"open-cart", step{op: opDispatch, action: uistate.OpenCart{}}},
		{"close-all", step{op: opDispatch, action: uistate.CloseAll{}}},
		{"toggle-promobar:false", step{op: opDispatch, action: uistate.TogglePromobar{Open: false}}},
		{"toggle-iframes-hidden", step{op: opDispatch, action: uistate.ToggleIframesHidden{Hidden: true}}},
		{"set-is-cart-ready:1", step{op: opDispatch, action: uistate.SetIsCartReady{Ready: true}}},
		{"set-preview-mode-customer", step{op: opDispatch,
			action: uistate.SetPreviewModeCustomer{Customer: uistate.AnonymousCustomer()}}},
		{"set-preview-mode-customer:unresolved", step{op: opDispatch,
			action: uistate.SetPreviewModeCustomer{Customer: uistate.UnresolvedCustomer()}}},
		{"mount", step{op: opMount}},
		{" unmount ", step{op: opUnmount}},
		{"wait:1.5s", step{op: opWait, wait: 1500 * time.Millisecond}},
		{"cart:idle", step{op: opCart, status: cart.StatusIdle}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseStep(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStep_Modal(t *testing.T) {
	got, err := parseStep("open-modal:Sign up for news")
	require.NoError(t, err)
	m, ok := got.action.(uistate.OpenModal)
	require.True(t, ok)
	assert.Equal(t, uistate.Text("Sign up for news"), m.Children)
}

func TestParseStep_ModalProps(t *testing.T) {
	got, err := parseStep("open-modal:Size chart; title=Size guide ;size=lg")
	require.NoError(t, err)
	m := got.action.(uistate.OpenModal)
	assert.Equal(t, uistate.Text("Size chart"), m.Children)
	assert.Equal(t, map[string]any{"title": "Size guide", "size": "lg"}, m.Props)
}

func TestParseStep_ModalErrors(t *testing.T) {
	for _, in := range []string{"open-modal", "open-modal:", "open-modal:  ;title=x", "open-modal:Hi;oops", "open-modal:Hi;=x"} {
		_, err := parseStep(in)
		assert.Error(t, err, in)
	}
}

func TestParseStep_PreviewCustomer(t *testing.T) {
	got, err := parseStep("set-preview-mode-customer:jo@example.com")
	require.NoError(t, err)
	a := got.action.(uistate.SetPreviewModeCustomer)
	require.NotNil(t, a.Customer.Customer)
	assert.Equal(t, "jo@example.com", a.Customer.Customer.Email)
	assert.NotEmpty(t, a.Customer.Customer.ID)
}

func TestParseSteps_Errors(t *testing.T) {
	for _, in := range []string{"open-everything", "wait:soon", "wait:-1s", "cart:lost", "toggle-promobar:maybe"} {
		_, err := parseSteps([]string{"mount", in})
		assert.ErrorContains(t, err, "step 2", in)
	}
}

func TestReadScript(t *testing.T) {
	lines, err := readScript(strings.NewReader("# warm up\nmount\n\n  open-search  \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"mount", "open-search"}, lines)
}

func newTestReplayer() *replayer {
	root := storefront.RootData{SiteSettings: storefront.DefaultSettings}
	return newReplayer(root, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestReplayer_FallbackOnVirtualClock(t *testing.T) {
	r := newTestReplayer()
	steps, err := parseSteps([]string{"mount", "cart:fetching", "wait:999ms"})
	require.NoError(t, err)
	require.NoError(t, r.run(steps))
	assert.False(t, r.store.State().IsCartReady)
	assert.Equal(t, 1, r.clock.Pending())

	require.NoError(t, r.run([]step{{op: opWait, wait: time.Millisecond}}))
	rep := r.report()
	assert.True(t, rep.IsCartReady)
	assert.Zero(t, rep.PendingTimers)
	assert.Equal(t, "1s", rep.Elapsed)
	assert.Equal(t, []string{"set-is-hydrated", "set-is-cart-ready"}, rep.Actions)
}

func TestReplayer_Report(t *testing.T) {
	r := newTestReplayer()
	steps, err := parseSteps([]string{"mount", "cart:idle", "open-search", "open-modal:Hi;title=Hello"})
	require.NoError(t, err)
	require.NoError(t, r.run(steps))

	rep := r.report()
	assert.Equal(t, "modal", rep.OpenPanel)
	assert.False(t, rep.SearchOpen)
	require.NotNil(t, rep.Modal)
	assert.Equal(t, "Hi", rep.Modal.Content)
	assert.Equal(t, map[string]any{"title": "Hello"}, rep.Modal.Props)
	assert.Equal(t, "anonymous", rep.PreviewCustomer)
	assert.Equal(t, "idle", rep.CartStatus)
	assert.Empty(t, rep.HiddenFrames)

	require.NoError(t, r.run([]step{{op: opDispatch, action: uistate.OpenSearch{}}}))
	assert.Equal(t, []string{"reviews", "chat"}, r.report().HiddenFrames)
}

func TestReplayCmd_PrintsYAML(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "steps.txt")
	require.NoError(t, os.WriteFile(script, []byte("mount\ncart:idle\n"), 0o644))

	opts := &rootOptions{preview: true, logLevel: "error"}
	cmd := replayCmd(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"-f", script, "open-cart"})
	require.NoError(t, cmd.Execute())

	var rep stateReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, "cart", rep.OpenPanel)
	assert.True(t, rep.CartOpen)
	assert.True(t, rep.IsHydrated)
	assert.True(t, rep.IsCartReady)
	assert.Equal(t, "unresolved", rep.PreviewCustomer)
	assert.Equal(t, []string{"set-is-hydrated", "set-is-cart-ready", "open-cart"}, rep.Actions)
}

func TestReplayCmd_BadLogLevel(t *testing.T) {
	cmd := replayCmd(&rootOptions{logLevel: "loud"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"mount"})
	assert.ErrorContains(t, cmd.Execute(), "log level")
}
