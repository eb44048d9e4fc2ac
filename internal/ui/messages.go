package ui

import (
	"storefront/internal/cart"
	"storefront/internal/uistate"
)

// mountedMsg is sent once after the first render; the shell mounts the store
// on it.
type mountedMsg struct{}

// timerFiredMsg delivers a scheduled store callback back to the event loop.
type timerFiredMsg struct {
	id int
}

// CartStatusMsg reports a new status from the cart subsystem.
type CartStatusMsg struct {
	Status cart.Status
}

// DispatchMsg asks the shell to dispatch Action on the store.
type DispatchMsg struct {
	Action uistate.Action
}

// ToggleCartMsg opens the cart drawer, or closes it when already open.
type ToggleCartMsg struct{}

// TogglePromobarMsg flips promo bar visibility.
type TogglePromobarMsg struct{}

// ToggleIframesMsg flips the explicit iframe-hidden flag.
type ToggleIframesMsg struct{}

// ShowHelpMsg opens the keyboard shortcuts modal.
type ShowHelpMsg struct{}

// ShowPreviewLoginMsg opens the preview-mode customer modal.
type ShowPreviewLoginMsg struct{}

// PreviewCustomerMsg is sent when the preview modal resolves an identity.
type PreviewCustomerMsg struct {
	Email string // empty = browse anonymously
}

// AddToCartMsg adds a line item to the cart.
type AddToCartMsg struct{}

// NavigateMsg is sent when a menu item or search result is chosen.
type NavigateMsg struct {
	URL string
}
