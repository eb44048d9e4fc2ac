package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"storefront/internal/uistate"
)

// renderModal wraps the modal slot's content in a panel, titled by the
// "title" prop when present.
func renderModal(m uistate.Modal) string {
	if !m.IsOpen() {
		return ""
	}
	content := ""
	if title, ok := m.Props["title"].(string); ok && title != "" {
		content = Styles.PanelTitle.Render(title) + "\n\n"
	}
	content += m.Children.View()
	return Styles.Panel.Render(content)
}

// HelpModal lists every bound key.
type HelpModal struct {
	registry *KeybindRegistry
}

// Ensure HelpModal implements View.
var _ View = (*HelpModal)(nil)

// NewHelpModal creates the shortcuts modal for reg.
func NewHelpModal(reg *KeybindRegistry) *HelpModal {
	return &HelpModal{registry: reg}
}

// Init implements View.
func (m *HelpModal) Init() tea.Cmd { return nil }

// Update implements View.
func (m *HelpModal) Update(tea.Msg) (View, tea.Cmd) { return m, nil }

// View implements View.
func (m *HelpModal) View() string {
	var lines []string
	for _, b := range hintBindings(m.allHints()) {
		h := b.Help()
		lines = append(lines, Styles.Selected.Render(h.Key)+"  "+Styles.Normal.Render(h.Desc))
	}
	return strings.Join(lines, "\n")
}

func (m *HelpModal) allHints() map[string]string {
	out := make(map[string]string)
	for seq, desc := range m.registry.descriptions {
		if m.registry.bindings[seq] != nil {
			out[seq] = desc
		}
	}
	return out
}

// PreviewLoginModal asks which customer to preview the storefront as.
type PreviewLoginModal struct {
	input textinput.Model
}

// Ensure PreviewLoginModal implements View.
var _ View = (*PreviewLoginModal)(nil)

// NewPreviewLoginModal creates the preview-mode customer prompt.
func NewPreviewLoginModal() *PreviewLoginModal {
	ti := textinput.New()
	ti.Placeholder = "customer@example.com"
	ti.Width = 40
	ti.Focus()
	return &PreviewLoginModal{input: ti}
}

// Init implements View.
func (m *PreviewLoginModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *PreviewLoginModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		email := strings.TrimSpace(m.input.Value())
		return m, func() tea.Msg { return PreviewCustomerMsg{Email: email} }
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *PreviewLoginModal) View() string {
	content := m.input.View() + "\n\n"
	content += Styles.Hint.Render("enter: preview (blank = anonymous)  esc: cancel")
	return content
}
