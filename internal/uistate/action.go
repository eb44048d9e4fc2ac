package uistate

import (
	"fmt"
	"reflect"
)

// Kind identifies an action variant.
type Kind int

const (
	KindOpenCart Kind = iota
	KindCloseCart
	KindOpenDesktopMenu
	KindCloseDesktopMenu
	KindOpenMobileMenu
	KindCloseMobileMenu
	KindOpenModal
	KindCloseModal
	KindOpenSearch
	KindCloseSearch
	KindCloseAll
	KindTogglePromobar
	KindToggleIframesHidden
	KindSetPreviewModeCustomer
	KindSetIsCartReady
	KindSetIsHydrated
)

var kindNames = [...]string{
	KindOpenCart:               "open-cart",
	KindCloseCart:              "close-cart",
	KindOpenDesktopMenu:        "open-desktop-menu",
	KindCloseDesktopMenu:       "close-desktop-menu",
	KindOpenMobileMenu:         "open-mobile-menu",
	KindCloseMobileMenu:        "close-mobile-menu",
	KindOpenModal:              "open-modal",
	KindCloseModal:             "close-modal",
	KindOpenSearch:             "open-search",
	KindCloseSearch:            "close-search",
	KindCloseAll:               "close-all",
	KindTogglePromobar:         "toggle-promobar",
	KindToggleIframesHidden:    "toggle-iframes-hidden",
	KindSetPreviewModeCustomer: "set-preview-mode-customer",
	KindSetIsCartReady:         "set-is-cart-ready",
	KindSetIsHydrated:          "set-is-hydrated",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind looks up a kind by its String form.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Action is one of the variants declared in this file. The unexported marker
// keeps the set closed to this package.
type Action interface {
	Kind() Kind
	action()
}

type (
	OpenCart         struct{}
	CloseCart        struct{}
	OpenDesktopMenu  struct{}
	CloseDesktopMenu struct{}
	OpenMobileMenu   struct{}
	CloseMobileMenu  struct{}
	OpenSearch       struct{}
	CloseSearch      struct{}
	CloseModal       struct{}
	CloseAll         struct{}

	// OpenModal shows Children in the modal slot. Nil Props means no props.
	OpenModal struct {
		Children Content
		Props    map[string]any
	}

	TogglePromobar struct {
		Open bool
	}

	ToggleIframesHidden struct {
		Hidden bool
	}

	SetPreviewModeCustomer struct {
		Customer PreviewCustomer
	}

	SetIsCartReady struct {
		Ready bool
	}

	SetIsHydrated struct {
		Hydrated bool
	}
)

func (OpenCart) Kind() Kind               { return KindOpenCart }
func (CloseCart) Kind() Kind              { return KindCloseCart }
func (OpenDesktopMenu) Kind() Kind        { return KindOpenDesktopMenu }
func (CloseDesktopMenu) Kind() Kind       { return KindCloseDesktopMenu }
func (OpenMobileMenu) Kind() Kind         { return KindOpenMobileMenu }
func (CloseMobileMenu) Kind() Kind        { return KindCloseMobileMenu }
func (OpenModal) Kind() Kind              { return KindOpenModal }
func (CloseModal) Kind() Kind             { return KindCloseModal }
func (OpenSearch) Kind() Kind             { return KindOpenSearch }
func (CloseSearch) Kind() Kind            { return KindCloseSearch }
func (CloseAll) Kind() Kind               { return KindCloseAll }
func (TogglePromobar) Kind() Kind         { return KindTogglePromobar }
func (ToggleIframesHidden) Kind() Kind    { return KindToggleIframesHidden }
func (SetPreviewModeCustomer) Kind() Kind { return KindSetPreviewModeCustomer }
func (SetIsCartReady) Kind() Kind         { return KindSetIsCartReady }
func (SetIsHydrated) Kind() Kind          { return KindSetIsHydrated }

func (OpenCart) action()               {}
func (CloseCart) action()              {}
func (OpenDesktopMenu) action()        {}
func (CloseDesktopMenu) action()       {}
func (OpenMobileMenu) action()         {}
func (CloseMobileMenu) action()        {}
func (OpenModal) action()              {}
func (CloseModal) action()             {}
func (OpenSearch) action()             {}
func (CloseSearch) action()            {}
func (CloseAll) action()               {}
func (TogglePromobar) action()         {}
func (ToggleIframesHidden) action()    {}
func (SetPreviewModeCustomer) action() {}
func (SetIsCartReady) action()         {}
func (SetIsHydrated) action()          {}

// UnknownActionError is the panic value raised when an action outside the
// closed set reaches the reducer.
type UnknownActionError struct {
	Action Action
}

func (e *UnknownActionError) Error() string {
	if e.Action == nil {
		return "uistate: unhandled action <nil>"
	}
	if v := reflect.ValueOf(e.Action); v.Kind() == reflect.Pointer && v.IsNil() {
		return fmt.Sprintf("uistate: unhandled action %T (nil)", e.Action)
	}
	return fmt.Sprintf("uistate: unhandled action %T (%s)", e.Action, e.Action.Kind())
}
