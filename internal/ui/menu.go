package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"storefront/internal/storefront"
	"storefront/internal/ui/textutil"
)

type menuItem storefront.MenuItem

func (m menuItem) FilterValue() string { return m.Label }
func (m menuItem) Title() string       { return m.Label }
func (m menuItem) Description() string { return m.URL }

// MobileMenu is the full-height navigation list.
type MobileMenu struct {
	list list.Model
}

// Ensure MobileMenu implements View.
var _ View = (*MobileMenu)(nil)

// NewMobileMenu creates the mobile menu from the header menu settings.
func NewMobileMenu(items []storefront.MenuItem) *MobileMenu {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = menuItem(it)
	}
	l := list.New(listItems, NewCompactListDelegate(), 32, max(len(items)+4, 6))
	l.Title = "Menu"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.PanelTitle
	return &MobileMenu{list: l}
}

// Init implements View.
func (m *MobileMenu) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *MobileMenu) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		if sel, ok := m.list.SelectedItem().(menuItem); ok {
			return m, func() tea.Msg { return NavigateMsg{URL: sel.URL} }
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *MobileMenu) View() string {
	return Styles.Panel.Render(m.list.View())
}

// Selected returns the highlighted menu item.
func (m *MobileMenu) Selected() (storefront.MenuItem, bool) {
	sel, ok := m.list.SelectedItem().(menuItem)
	return storefront.MenuItem(sel), ok
}

// DesktopMenu is the horizontal mega-menu under the header.
type DesktopMenu struct {
	items    []storefront.MenuItem
	selected int
}

// Ensure DesktopMenu implements View.
var _ View = (*DesktopMenu)(nil)

// NewDesktopMenu creates the desktop menu from the header menu settings.
func NewDesktopMenu(items []storefront.MenuItem) *DesktopMenu {
	return &DesktopMenu{items: items}
}

// Init implements View.
func (m *DesktopMenu) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *DesktopMenu) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return m, nil
	}
	switch key.String() {
	case "left", "h":
		m.selected = (m.selected - 1 + len(m.items)) % len(m.items)
	case "right", "l", "tab":
		m.selected = (m.selected + 1) % len(m.items)
	case "enter":
		url := m.items[m.selected].URL
		return m, func() tea.Msg { return NavigateMsg{URL: url} }
	}
	return m, nil
}

// View implements View.
func (m *DesktopMenu) View() string {
	labels := make([]string, len(m.items))
	for i, it := range m.items {
		label := textutil.Truncate(it.Label, 20)
		if i == m.selected {
			labels[i] = Styles.Selected.Render(label)
		} else {
			labels[i] = Styles.Normal.Render(label)
		}
	}
	content := strings.Join(labels, Styles.Muted.Render("  |  "))
	content += "\n\n" + Styles.Hint.Render("←/→: move  enter: go  esc: close")
	return Styles.Panel.Render(content)
}
