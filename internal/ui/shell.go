package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	oteltrace "go.opentelemetry.io/otel/trace"

	"storefront/internal/cart"
	"storefront/internal/storefront"
	"storefront/internal/trace"
	"storefront/internal/uistate"
	"storefront/internal/ui/textutil"
)

// DefaultCartDelay is how long the simulated cart takes to settle into idle.
const DefaultCartDelay = 400 * time.Millisecond

// ShellConfig configures NewShell.
type ShellConfig struct {
	Root storefront.RootData

	// CartDelay is how long the simulated cart stays in fetching after mount.
	// Zero means the cart is idle on mount; negative means it never reports idle.
	CartDelay time.Duration

	Tracer oteltrace.Tracer
	Logger *slog.Logger
}

// ShellModel is the root model: header, promo bar, page body with frames,
// the open panel, and a footer with key hints.
type ShellModel struct {
	Store      *uistate.Store
	Cart       *cart.Hook
	Frames     *FrameDocument
	Scheduler  *EventLoopScheduler
	History    *trace.History
	KeyHandler *KeyHandler

	CartDrawer  *CartDrawer
	DesktopMenu *DesktopMenu
	MobileMenu  *MobileMenu
	Search      *SearchOverlay

	Location string
	Width    int

	// ctx carries Store for the views; see uistate.WithStore.
	ctx       context.Context
	cartDelay time.Duration
	logger    *slog.Logger
}

// NewShell wires the store, cart hook, frames, scheduler and key bindings.
func NewShell(cfg ShellConfig) *ShellModel {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	settings := cfg.Root.SiteSettings
	hook := cart.NewHook(cart.StatusUninitialized)
	frames := NewFrameDocument(settings.Frames)
	sched := NewEventLoopScheduler()

	store := uistate.New(uistate.Options{
		Root:      cfg.Root,
		Cart:      hook,
		Scheduler: sched,
		Document:  frames,
		Logger:    logger,
	})
	ctx := uistate.WithStore(context.Background(), store)
	history := trace.NewHistory(0)
	trace.NewDispatchTracer(cfg.Tracer, history, store.ID()).Attach(store)

	m := &ShellModel{
		Store:       store,
		Cart:        hook,
		Frames:      frames,
		Scheduler:   sched,
		History:     history,
		CartDrawer:  NewCartDrawer(ctx, hook),
		DesktopMenu: NewDesktopMenu(settings.Header.Menu),
		MobileMenu:  NewMobileMenu(settings.Header.Menu),
		Search:      NewSearchOverlay(settings.Search.Placeholder),
		Location:    "/",
		Width:       80,
		ctx:         ctx,
		cartDelay:   cfg.CartDelay,
		logger:      logger,
	}
	m.KeyHandler = NewKeyHandler(m.newRegistry(cfg.Root.IsPreviewModeEnabled))
	return m
}

func (m *ShellModel) newRegistry(preview bool) *KeybindRegistry {
	reg := NewKeybindRegistry()
	dispatch := func(a uistate.Action) tea.Cmd {
		return func() tea.Msg { return DispatchMsg{Action: a} }
	}
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("c", func() tea.Msg { return ToggleCartMsg{} }, "Cart")
	reg.BindWithDesc("/", dispatch(uistate.OpenSearch{}), "Search")
	reg.BindWithDesc("?", func() tea.Msg { return ShowHelpMsg{} }, "Help")
	reg.BindWithDesc("SPC m d", dispatch(uistate.OpenDesktopMenu{}), "Desktop menu")
	reg.BindWithDesc("SPC m m", dispatch(uistate.OpenMobileMenu{}), "Mobile menu")
	reg.BindWithDesc("SPC p", func() tea.Msg { return TogglePromobarMsg{} }, "Promo bar")
	reg.BindWithDesc("SPC i", func() tea.Msg { return ToggleIframesMsg{} }, "Frames")
	reg.BindForPanels("SPC a", func() tea.Msg { return AddToCartMsg{} }, "Add to cart",
		[]uistate.Panel{uistate.PanelCart})
	if preview {
		reg.BindWithDesc("SPC v", func() tea.Msg { return ShowPreviewLoginMsg{} }, "Preview as")
	}
	return reg
}

// Init implements tea.Model. The store mounts after the first render.
func (m *ShellModel) Init() tea.Cmd {
	return func() tea.Msg { return mountedMsg{} }
}

// Update implements tea.Model.
func (m *ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, tea.Batch(cmd, m.Scheduler.Drain())
}

func (m *ShellModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case mountedMsg:
		return m.mount()
	case timerFiredMsg:
		m.Scheduler.Fire(msg.id)
		return nil
	case CartStatusMsg:
		m.Cart.SetStatus(msg.Status)
		return nil
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		return nil
	case DispatchMsg:
		return m.dispatch(msg.Action)
	case ToggleCartMsg:
		if m.ui().State.CartOpen {
			m.ui().Actions.CloseCart()
			return nil
		}
		return m.dispatch(uistate.OpenCart{})
	case TogglePromobarMsg:
		m.ui().Actions.TogglePromobar(!m.ui().State.PromobarOpen)
		return nil
	case ToggleIframesMsg:
		m.ui().Actions.ToggleIframesHidden(!m.ui().State.IframesHidden)
		return nil
	case ShowHelpMsg:
		m.ui().Actions.OpenModal(NewHelpModal(m.KeyHandler.Registry), map[string]any{"title": "Keyboard shortcuts"})
		return nil
	case ShowPreviewLoginMsg:
		modal := NewPreviewLoginModal()
		m.ui().Actions.OpenModal(modal, map[string]any{"title": "Preview as customer"})
		return modal.Init()
	case PreviewCustomerMsg:
		if msg.Email == "" {
			m.ui().Actions.SetPreviewModeCustomer(uistate.AnonymousCustomer())
		} else {
			m.ui().Actions.SetPreviewModeCustomer(uistate.KnownCustomer(storefront.NewPreviewCustomer(msg.Email)))
		}
		m.ui().Actions.CloseModal()
		return nil
	case AddToCartMsg:
		m.Cart.AddLine()
		return nil
	case NavigateMsg:
		m.Location = msg.URL
		m.ui().Actions.CloseAll()
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

// mount attaches the store and starts the simulated cart.
func (m *ShellModel) mount() tea.Cmd {
	m.Store.Mount()
	switch {
	case m.cartDelay == 0:
		m.Cart.SetStatus(cart.StatusIdle)
		return nil
	case m.cartDelay < 0:
		m.Cart.SetStatus(cart.StatusFetching)
		return nil
	}
	m.Cart.SetStatus(cart.StatusFetching)
	return tea.Tick(m.cartDelay, func(time.Time) tea.Msg {
		return CartStatusMsg{Status: cart.StatusIdle}
	})
}

// dispatch applies a and initializes the panel it opened, if any.
func (m *ShellModel) dispatch(a uistate.Action) tea.Cmd {
	before := m.ui().State.OpenPanel()
	m.Store.Dispatch(a)
	after := m.ui().State.OpenPanel()
	if after == before {
		return nil
	}
	if v := m.panelView(after); v != nil {
		return v.Init()
	}
	return nil
}

func (m *ShellModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	st := m.ui().State
	panel := st.OpenPanel()

	// Text inputs own every key except esc.
	if panel == uistate.PanelSearch || m.modalHasInput(st) {
		if msg.String() == "esc" {
			m.ui().Actions.CloseAll()
			return nil
		}
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		return m.updatePanel(panel, msg)
	}

	if consumed, cmd := m.KeyHandler.Handle(msg); consumed {
		return cmd
	}
	if msg.String() == "esc" {
		m.ui().Actions.CloseAll()
		return nil
	}
	return m.updatePanel(panel, msg)
}

func (m *ShellModel) modalHasInput(st uistate.State) bool {
	_, ok := st.Modal.Children.(*PreviewLoginModal)
	return ok
}

func (m *ShellModel) updatePanel(panel uistate.Panel, msg tea.Msg) tea.Cmd {
	v := m.panelView(panel)
	if v == nil {
		return nil
	}
	_, cmd := v.Update(msg)
	return cmd
}

// panelView returns the interactive view for panel, or nil.
func (m *ShellModel) panelView(panel uistate.Panel) View {
	switch panel {
	case uistate.PanelCart:
		return m.CartDrawer
	case uistate.PanelDesktopMenu:
		return m.DesktopMenu
	case uistate.PanelMobileMenu:
		return m.MobileMenu
	case uistate.PanelSearch:
		return m.Search
	case uistate.PanelModal:
		if v, ok := m.ui().State.Modal.Children.(View); ok {
			return v
		}
	}
	return nil
}

// View implements tea.Model.
func (m *ShellModel) View() string {
	st := m.ui().State
	var sections []string

	if st.PromobarOpen && len(st.Settings.Header.Promobar.Messages) > 0 {
		msg := textutil.Truncate(st.Settings.Header.Promobar.Messages[0], max(m.Width-2, 1))
		sections = append(sections, Styles.Promobar.Width(m.Width).Render(msg))
	}
	sections = append(sections, m.headerView(st))

	switch st.OpenPanel() {
	case uistate.PanelModal:
		sections = append(sections, renderModal(st.Modal))
	case uistate.PanelNone:
	default:
		sections = append(sections, m.panelView(st.OpenPanel()).View())
	}

	sections = append(sections,
		Styles.Muted.Render("page: ")+Styles.Normal.Render(m.Location),
		m.Frames.View(min(m.Width, 48)),
		m.footerView(st),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *ShellModel) headerView(st uistate.State) string {
	left := Styles.Title.Render(st.Settings.StoreName)
	cartLabel := fmt.Sprintf("cart (%d)", m.Cart.Lines())
	if !st.IsCartReady {
		cartLabel = "cart (…)"
	}
	right := Styles.Normal.Render(cartLabel)
	if c := st.PreviewModeCustomer; c.Known && c.Customer != nil {
		right = Styles.Badge.Render("preview: "+c.Customer.DisplayName()) + "  " + right
	} else if !c.Known {
		right = Styles.Badge.Render("preview") + "  " + right
	}
	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return Styles.Header.Render(left + strings.Repeat(" ", gap) + right)
}

func (m *ShellModel) footerView(st uistate.State) string {
	var status []string
	if !st.IsHydrated {
		status = append(status, "loading")
	}
	if last, ok := m.History.Last(); ok {
		status = append(status, "last: "+last.Kind.String())
	}
	line := Styles.Muted.Render(strings.Join(status, "  "))
	return line + "\n" + RenderKeybindHelp(m.KeyHandler, st.OpenPanel())
}

// ui returns the state and actions the views see.
func (m *ShellModel) ui() uistate.Context {
	return uistate.MustFromContext(m.ctx)
}

// Close unmounts the store.
func (m *ShellModel) Close() {
	m.Store.Unmount()
}
