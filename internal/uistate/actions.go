package uistate

// Actions is the operation table exposed to the rendering tree.
type Actions interface {
	OpenCart()
	CloseCart()
	OpenDesktopMenu()
	CloseDesktopMenu()
	OpenMobileMenu()
	CloseMobileMenu()
	OpenModal(children Content, props map[string]any)
	CloseModal()
	OpenSearch()
	CloseSearch()
	CloseAll()
	TogglePromobar(open bool)
	ToggleIframesHidden(hidden bool)
	SetPreviewModeCustomer(c PreviewCustomer)
	SetIsCartReady(ready bool)
	SetIsHydrated(hydrated bool)
}

// Ensure Store implements Actions.
var _ Actions = (*Store)(nil)

func (s *Store) OpenCart()         { s.Dispatch(OpenCart{}) }
func (s *Store) CloseCart()        { s.Dispatch(CloseCart{}) }
func (s *Store) OpenDesktopMenu()  { s.Dispatch(OpenDesktopMenu{}) }
func (s *Store) CloseDesktopMenu() { s.Dispatch(CloseDesktopMenu{}) }
func (s *Store) OpenMobileMenu()   { s.Dispatch(OpenMobileMenu{}) }
func (s *Store) CloseMobileMenu()  { s.Dispatch(CloseMobileMenu{}) }
func (s *Store) CloseModal()       { s.Dispatch(CloseModal{}) }
func (s *Store) OpenSearch()       { s.Dispatch(OpenSearch{}) }
func (s *Store) CloseSearch()      { s.Dispatch(CloseSearch{}) }
func (s *Store) CloseAll()         { s.Dispatch(CloseAll{}) }

// OpenModal shows children in the modal slot, closing every other panel.
func (s *Store) OpenModal(children Content, props map[string]any) {
	s.Dispatch(OpenModal{Children: children, Props: props})
}

func (s *Store) TogglePromobar(open bool) {
	s.Dispatch(TogglePromobar{Open: open})
}

func (s *Store) ToggleIframesHidden(hidden bool) {
	s.Dispatch(ToggleIframesHidden{Hidden: hidden})
}

func (s *Store) SetPreviewModeCustomer(c PreviewCustomer) {
	s.Dispatch(SetPreviewModeCustomer{Customer: c})
}

func (s *Store) SetIsCartReady(ready bool) {
	s.Dispatch(SetIsCartReady{Ready: ready})
}

func (s *Store) SetIsHydrated(hydrated bool) {
	s.Dispatch(SetIsHydrated{Hydrated: hydrated})
}
