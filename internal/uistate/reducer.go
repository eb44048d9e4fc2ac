package uistate

import "maps"

// closePanels clears every panel flag and the modal slot.
func closePanels(s State) State {
	s.CartOpen = false
	s.DesktopMenuOpen = false
	s.MobileMenuOpen = false
	s.SearchOpen = false
	s.Modal = closedModal()
	return s
}

// Reduce returns the state after applying a. Opening a panel closes the others
// in the same step. Pointer forms of the variants are reduced like their
// values. An action outside the closed set panics with *UnknownActionError.
func Reduce(s State, a Action) State {
	switch a := normalize(a).(type) {
	case OpenCart:
		s = closePanels(s)
		s.CartOpen = true
	case CloseCart:
		s.CartOpen = false
	case OpenDesktopMenu:
		s = closePanels(s)
		s.DesktopMenuOpen = true
	case CloseDesktopMenu:
		s.DesktopMenuOpen = false
	case OpenMobileMenu:
		s = closePanels(s)
		s.MobileMenuOpen = true
	case CloseMobileMenu:
		s.MobileMenuOpen = false
	case OpenModal:
		s = closePanels(s)
		props := map[string]any{}
		if a.Props != nil {
			props = maps.Clone(a.Props)
		}
		s.Modal = Modal{Children: a.Children, Props: props}
	case CloseModal:
		s.Modal = closedModal()
	case OpenSearch:
		s = closePanels(s)
		s.SearchOpen = true
	case CloseSearch:
		s.SearchOpen = false
	case CloseAll:
		s = closePanels(s)
	case TogglePromobar:
		s.PromobarOpen = a.Open
	case ToggleIframesHidden:
		s.IframesHidden = a.Hidden
	case SetPreviewModeCustomer:
		s.PreviewModeCustomer = a.Customer
	case SetIsCartReady:
		s.IsCartReady = a.Ready
	case SetIsHydrated:
		s.IsHydrated = a.Hydrated
	default:
		panic(&UnknownActionError{Action: a})
	}
	return s
}

// normalize unwraps pointer forms of the variants, which satisfy Action through
// their value-receiver methods. Nil pointers are returned unchanged.
func normalize(a Action) Action {
	switch p := a.(type) {
	case *OpenCart:
		return deref(a, p)
	case *CloseCart:
		return deref(a, p)
	case *OpenDesktopMenu:
		return deref(a, p)
	case *CloseDesktopMenu:
		return deref(a, p)
	case *OpenMobileMenu:
		return deref(a, p)
	case *CloseMobileMenu:
		return deref(a, p)
	case *OpenModal:
		return deref(a, p)
	case *CloseModal:
		return deref(a, p)
	case *OpenSearch:
		return deref(a, p)
	case *CloseSearch:
		return deref(a, p)
	case *CloseAll:
		return deref(a, p)
	case *TogglePromobar:
		return deref(a, p)
	case *ToggleIframesHidden:
		return deref(a, p)
	case *SetPreviewModeCustomer:
		return deref(a, p)
	case *SetIsCartReady:
		return deref(a, p)
	case *SetIsHydrated:
		return deref(a, p)
	}
	return a
}

func deref[T Action](a Action, p *T) Action {
	if p == nil {
		return a
	}
	return *p
}

// validate panics for actions Reduce would reject, without reducing.
func validate(a Action) {
	switch a.(type) {
	case OpenCart, CloseCart, OpenDesktopMenu, CloseDesktopMenu,
		OpenMobileMenu, CloseMobileMenu, OpenModal, CloseModal,
		OpenSearch, CloseSearch, CloseAll, TogglePromobar,
		ToggleIframesHidden, SetPreviewModeCustomer, SetIsCartReady, SetIsHydrated:
		return
	}
	panic(&UnknownActionError{Action: a})
}
