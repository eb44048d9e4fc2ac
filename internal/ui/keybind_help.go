package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"storefront/internal/uistate"
)

// RenderKeybindHelp renders the one-line key hint bar. While a leader
// sequence is pending it shows the next-level hints prefixed by the sequence.
func RenderKeybindHelp(h *KeyHandler, panel uistate.Panel) string {
	if h == nil {
		return ""
	}
	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Hint
	helpModel.Styles.ShortSeparator = Styles.Hint

	content := helpModel.View(NewKeyMap(h, panel))
	if content == "" {
		return ""
	}
	if h.LeaderWaiting {
		content = Styles.Muted.Render(h.CurrentSeq()) + " " + content
	}
	return content
}
