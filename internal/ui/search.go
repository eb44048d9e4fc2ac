package ui

import (
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchOverlay is the full-width search input.
type SearchOverlay struct {
	input textinput.Model
}

// Ensure SearchOverlay implements View.
var _ View = (*SearchOverlay)(nil)

// NewSearchOverlay creates the overlay with the configured placeholder.
func NewSearchOverlay(placeholder string) *SearchOverlay {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = 40
	return &SearchOverlay{input: ti}
}

// Init implements View. The input is focused each time search opens.
func (s *SearchOverlay) Init() tea.Cmd {
	s.input.Reset()
	return s.input.Focus()
}

// Update implements View.
func (s *SearchOverlay) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		q := strings.TrimSpace(s.input.Value())
		if q == "" {
			return s, nil
		}
		return s, func() tea.Msg { return NavigateMsg{URL: "/search?q=" + url.QueryEscape(q)} }
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View implements View.
func (s *SearchOverlay) View() string {
	content := Styles.PanelTitle.Render("Search") + "\n\n"
	content += s.input.View() + "\n\n"
	content += Styles.Hint.Render("enter: search  esc: close")
	return Styles.Panel.Render(content)
}
