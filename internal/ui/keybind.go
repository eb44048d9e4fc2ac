package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"storefront/internal/uistate"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC m d" for SPC, m, d.
// Single keys: "c", "/", "?", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	panelFilter  map[string][]uistate.Panel // nil/empty = applies with any panel open
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		panelFilter:  make(map[string][]uistate.Panel),
	}
}

// Bind registers a key sequence to a command, overwriting any existing binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help view.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindForPanels(seq, cmd, desc, nil)
}

// BindForPanels registers a key sequence whose hint is only shown while one of
// panels is open. The binding itself stays active.
func (r *KeybindRegistry) BindForPanels(seq string, cmd tea.Cmd, desc string, panels []uistate.Panel) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(panels) > 0 {
		r.panelFilter[n] = panels
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// submenuLabel maps first-level leader keys that open a submenu to a display label.
var submenuLabel = map[string]string{
	"m": "Menu",
}

// LeaderHints returns hints for the next key after currentSeq, filtered by the
// open panel. An empty currentSeq means right after SPC.
func (r *KeybindRegistry) LeaderHints(currentSeq string, panel uistate.Panel) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.appliesToPanel(seq, panel) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		k := rest
		if parts := strings.Fields(rest); len(parts) > 0 {
			k = parts[0]
		}
		switch {
		case r.HasPrefix(prefix + k):
			if label, ok := submenuLabel[k]; ok {
				out[k] = label
			} else {
				out[k] = k + "…"
			}
		case r.descriptions[seq] != "":
			out[k] = r.descriptions[seq]
		default:
			out[k] = seq
		}
	}
	return out
}

// SingleKeyHints returns hints for bindings that are not leader sequences.
func (r *KeybindRegistry) SingleKeyHints(panel uistate.Panel) map[string]string {
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd == nil || strings.HasPrefix(seq, "SPC") || !r.appliesToPanel(seq, panel) {
			continue
		}
		if d := r.descriptions[seq]; d != "" {
			out[seq] = d
		}
	}
	return out
}

func (r *KeybindRegistry) appliesToPanel(seq string, panel uistate.Panel) bool {
	panels, ok := r.panelFilter[seq]
	if !ok || len(panels) == 0 {
		return true
	}
	for _, p := range panels {
		if p == panel {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "c" -> "c".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // tea.KeyMsg.String() for space is " "
	LeaderSeq     string   // "SPC"
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true the key must not be passed on to panels.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	// Esc cancels leader mode
	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq); c != nil {
			h.reset()
			return true, c
		}
		// Stay in leader mode while a longer binding exists
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.reset()
		return true, nil
	}

	if c := h.Registry.Lookup(s); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// CurrentSeq returns the buffered leader sequence, e.g. "SPC m".
func (h *KeyHandler) CurrentSeq() string {
	return strings.Join(h.Buffer, " ")
}

// KeyMap implements help.KeyMap over the registry, using leader hints while a
// leader sequence is pending and single-key hints otherwise.
type KeyMap struct {
	handler *KeyHandler
	panel   uistate.Panel
}

// NewKeyMap creates a KeyMap for handler with panel open.
func NewKeyMap(handler *KeyHandler, panel uistate.Panel) help.KeyMap {
	return &KeyMap{handler: handler, panel: panel}
}

// ShortHelp implements help.KeyMap.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.handler == nil || km.handler.Registry == nil {
		return nil
	}
	var hints map[string]string
	if km.handler.LeaderWaiting {
		seq := km.handler.CurrentSeq()
		if seq == km.handler.LeaderSeq {
			seq = ""
		}
		hints = km.handler.Registry.LeaderHints(seq, km.panel)
	} else {
		hints = km.handler.Registry.SingleKeyHints(km.panel)
		hints["SPC"] = "more"
	}
	return hintBindings(hints)
}

// FullHelp implements help.KeyMap with a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

func hintBindings(hints map[string]string) []key.Binding {
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")))
}
