package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"storefront/internal/cart"
	"storefront/internal/uistate"
)

// CartDrawer shows the cart's line count once the cart is ready. It reaches
// the UI state through the store attached to ctx.
type CartDrawer struct {
	ctx  context.Context
	cart *cart.Hook
}

// Ensure CartDrawer implements View.
var _ View = (*CartDrawer)(nil)

// NewCartDrawer creates the drawer for hook. ctx must carry a store
// (see uistate.WithStore).
func NewCartDrawer(ctx context.Context, hook *cart.Hook) *CartDrawer {
	return &CartDrawer{ctx: ctx, cart: hook}
}

// Init implements View.
func (d *CartDrawer) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *CartDrawer) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch key.String() {
	case "a":
		return d, func() tea.Msg { return AddToCartMsg{} }
	case "x":
		uistate.MustFromContext(d.ctx).Actions.CloseCart()
	}
	return d, nil
}

// View implements View.
func (d *CartDrawer) View() string {
	st := uistate.MustFromContext(d.ctx).State
	content := Styles.PanelTitle.Render("Cart") + "\n\n"
	switch {
	case !st.IsCartReady:
		content += Styles.Empty.Render("Loading cart…")
	case d.cart.Lines() == 0:
		content += Styles.Empty.Render(st.Settings.Cart.EmptyMessage)
	default:
		content += Styles.Normal.Render(fmt.Sprintf("%d item(s)", d.cart.Lines()))
	}
	content += "\n\n" + Styles.Hint.Render("a: add item  x: close")
	return Styles.Panel.Render(content)
}
