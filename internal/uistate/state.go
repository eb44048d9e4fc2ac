package uistate

import (
	"storefront/internal/cart"
	"storefront/internal/storefront"
)

// Content is renderable modal content.
type Content interface {
	View() string
}

// Text is Content that renders a fixed string.
type Text string

func (t Text) View() string { return string(t) }

// Modal is the modal slot. A nil Children means the modal is closed.
type Modal struct {
	Children Content
	Props    map[string]any
}

// IsOpen reports whether the modal has content.
func (m Modal) IsOpen() bool {
	return m.Children != nil
}

func closedModal() Modal {
	return Modal{Props: map[string]any{}}
}

// PreviewCustomer is the preview-mode identity. Known=false means the identity
// has not been resolved yet; Known=true with a nil Customer means anonymous.
type PreviewCustomer struct {
	Customer *storefront.Customer
	Known    bool
}

// UnresolvedCustomer is the identity before preview mode has resolved it.
func UnresolvedCustomer() PreviewCustomer { return PreviewCustomer{} }

// AnonymousCustomer is a resolved identity with no customer.
func AnonymousCustomer() PreviewCustomer { return PreviewCustomer{Known: true} }

// KnownCustomer wraps c as a resolved identity.
func KnownCustomer(c *storefront.Customer) PreviewCustomer {
	return PreviewCustomer{Customer: c, Known: true}
}

// Panel names one of the mutually exclusive overlay regions.
type Panel int

const (
	PanelNone Panel = iota
	PanelCart
	PanelDesktopMenu
	PanelMobileMenu
	PanelSearch
	PanelModal
)

func (p Panel) String() string {
	switch p {
	case PanelNone:
		return "none"
	case PanelCart:
		return "cart"
	case PanelDesktopMenu:
		return "desktop-menu"
	case PanelMobileMenu:
		return "mobile-menu"
	case PanelSearch:
		return "search"
	case PanelModal:
		return "modal"
	default:
		return "unknown"
	}
}

// State is a snapshot of the UI state. Stores replace it on every dispatch;
// it is never mutated in place.
type State struct {
	CartOpen        bool
	DesktopMenuOpen bool
	MobileMenuOpen  bool
	SearchOpen      bool
	Modal           Modal

	PromobarOpen  bool
	IframesHidden bool

	PreviewModeCustomer PreviewCustomer
	IsCartReady         bool
	IsHydrated          bool

	Settings storefront.SiteSettings
}

// DefaultState is the state with every panel closed and nothing settled.
func DefaultState() State {
	return State{Modal: closedModal()}
}

// InitialState merges DefaultState with what the root loader and the cart
// report at mount time.
func InitialState(root storefront.RootData, status cart.Status) State {
	s := DefaultState()
	s.Settings = root.SiteSettings
	s.PromobarOpen = root.SiteSettings.PromobarVisible()
	s.IsCartReady = status == cart.StatusIdle
	if !root.IsPreviewModeEnabled {
		s.PreviewModeCustomer = AnonymousCustomer()
	}
	return s
}

// OpenPanels lists the panels that are currently open, in declaration order.
func (s State) OpenPanels() []Panel {
	var open []Panel
	if s.CartOpen {
		open = append(open, PanelCart)
	}
	if s.DesktopMenuOpen {
		open = append(open, PanelDesktopMenu)
	}
	if s.MobileMenuOpen {
		open = append(open, PanelMobileMenu)
	}
	if s.SearchOpen {
		open = append(open, PanelSearch)
	}
	if s.Modal.IsOpen() {
		open = append(open, PanelModal)
	}
	return open
}

// OpenPanel returns the open panel, or PanelNone.
func (s State) OpenPanel() Panel {
	if open := s.OpenPanels(); len(open) > 0 {
		return open[0]
	}
	return PanelNone
}

// FramesHidden is the derived flag driving iframe visibility: frames are
// hidden when asked to be, and whenever a full-screen overlay covers them.
func (s State) FramesHidden() bool {
	return s.IframesHidden || s.MobileMenuOpen || s.SearchOpen
}
