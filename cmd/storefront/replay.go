package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"storefront/internal/cart"
	"storefront/internal/storefront"
	"storefront/internal/uistate"
	"storefront/internal/ui"
)

func replayCmd(opts *rootOptions) *cobra.Command {
	var script string
	cmd := &cobra.Command{
		Use:   "replay [step...]",
		Short: "Apply actions to a fresh store and print the resulting state",
		Long: `Replay builds a store, applies each step in order and prints the final
state as YAML. Steps are action names, optionally with an argument:

  open-cart, close-all, toggle-promobar:false,
  open-modal:Hello;title=Welcome, set-preview-mode-customer:jo@example.com

open-modal takes its content text followed by optional ;key=value props.

plus the driver steps mount, unmount, wait:<duration> (advances the
virtual clock) and cart:<status> (uninitialized, creating, fetching,
updating, idle).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.rootData()
			if err != nil {
				return err
			}
			logger, err := opts.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			lines := args
			if script != "" {
				f, err := os.Open(script)
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				fromFile, err := readScript(f)
				if err != nil {
					return fmt.Errorf("read script %q: %w", script, err)
				}
				lines = append(fromFile, lines...)
			}
			steps, err := parseSteps(lines)
			if err != nil {
				return err
			}

			r := newReplayer(root, logger)
			defer r.store.Unmount()
			if err := r.run(steps); err != nil {
				return err
			}
			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(r.report())
		},
	}
	cmd.Flags().StringVarP(&script, "file", "f", "", "read steps from a file, one per line")
	return cmd
}

type stepOp int

const (
	opDispatch stepOp = iota
	opMount
	opUnmount
	opWait
	opCart
)

type step struct {
	op     stepOp
	action uistate.Action
	wait   time.Duration
	status cart.Status
}

// readScript returns the non-empty lines of r, skipping # comments.
func readScript(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

func parseSteps(lines []string) ([]step, error) {
	steps := make([]step, 0, len(lines))
	for i, line := range lines {
		s, err := parseStep(line)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func parseStep(s string) (step, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), ":")
	switch name {
	case "mount":
		return step{op: opMount}, nil
	case "unmount":
		return step{op: opUnmount}, nil
	case "wait":
		d, err := time.ParseDuration(arg)
		if err != nil || d < 0 {
			return step{}, fmt.Errorf("invalid wait %q", arg)
		}
		return step{op: opWait, wait: d}, nil
	case "cart":
		status, ok := cart.ParseStatus(arg)
		if !ok {
			return step{}, fmt.Errorf("unknown cart status %q", arg)
		}
		return step{op: opCart, status: status}, nil
	}

	kind, ok := uistate.ParseKind(name)
	if !ok {
		return step{}, fmt.Errorf("unknown action %q", name)
	}
	a, err := actionFor(kind, arg, hasArg)
	if err != nil {
		return step{}, fmt.Errorf("%s: %w", name, err)
	}
	return step{op: opDispatch, action: a}, nil
}

// actionFor builds the action for kind. Boolean actions default to true.
func actionFor(kind uistate.Kind, arg string, hasArg bool) (uistate.Action, error) {
	flag := func() (bool, error) {
		if !hasArg {
			return true, nil
		}
		return strconv.ParseBool(arg)
	}
	switch kind {
	case uistate.KindOpenCart:
		return uistate.OpenCart{}, nil
	case uistate.KindCloseCart:
		return uistate.CloseCart{}, nil
	case uistate.KindOpenDesktopMenu:
		return uistate.OpenDesktopMenu{}, nil
	case uistate.KindCloseDesktopMenu:
		return uistate.CloseDesktopMenu{}, nil
	case uistate.KindOpenMobileMenu:
		return uistate.OpenMobileMenu{}, nil
	case uistate.KindCloseMobileMenu:
		return uistate.CloseMobileMenu{}, nil
	case uistate.KindOpenModal:
		return parseModal(arg)
	case uistate.KindCloseModal:
		return uistate.CloseModal{}, nil
	case uistate.KindOpenSearch:
		return uistate.OpenSearch{}, nil
	case uistate.KindCloseSearch:
		return uistate.CloseSearch{}, nil
	case uistate.KindCloseAll:
		return uistate.CloseAll{}, nil
	case uistate.KindTogglePromobar:
		v, err := flag()
		return uistate.TogglePromobar{Open: v}, err
	case uistate.KindToggleIframesHidden:
		v, err := flag()
		return uistate.ToggleIframesHidden{Hidden: v}, err
	case uistate.KindSetIsCartReady:
		v, err := flag()
		return uistate.SetIsCartReady{Ready: v}, err
	case uistate.KindSetIsHydrated:
		v, err := flag()
		return uistate.SetIsHydrated{Hydrated: v}, err
	case uistate.KindSetPreviewModeCustomer:
		switch arg {
		case "", "anonymous":
			return uistate.SetPreviewModeCustomer{Customer: uistate.AnonymousCustomer()}, nil
		case "unresolved":
			return uistate.SetPreviewModeCustomer{Customer: uistate.UnresolvedCustomer()}, nil
		}
		c := uistate.KnownCustomer(storefront.NewPreviewCustomer(arg))
		return uistate.SetPreviewModeCustomer{Customer: c}, nil
	}
	return nil, fmt.Errorf("unsupported action kind %s", kind)
}

// parseModal parses "<text>[;key=value...]" into an OpenModal with string props.
func parseModal(arg string) (uistate.Action, error) {
	parts := strings.Split(arg, ";")
	text := strings.TrimSpace(parts[0])
	if text == "" {
		return nil, fmt.Errorf("modal content is required (open-modal:<text>[;key=value...])")
	}
	var props map[string]any
	for _, p := range parts[1:] {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid modal prop %q, want key=value", p)
		}
		if props == nil {
			props = make(map[string]any)
		}
		props[k] = strings.TrimSpace(v)
	}
	return uistate.OpenModal{Children: uistate.Text(text), Props: props}, nil
}

// replayer drives a store on a virtual clock.
type replayer struct {
	store  *uistate.Store
	clock  *uistate.ManualScheduler
	frames *ui.FrameDocument
	kinds  []string
}

func newReplayer(root storefront.RootData, logger *slog.Logger) *replayer {
	r := &replayer{
		clock:  uistate.NewManualScheduler(),
		frames: ui.NewFrameDocument(root.SiteSettings.Frames),
	}
	r.store = uistate.New(uistate.Options{
		Root:       root,
		CartStatus: cart.StatusUninitialized,
		Scheduler:  r.clock,
		Document:   r.frames,
		Logger:     logger,
	})
	r.store.Subscribe(func(_, _ uistate.State, a uistate.Action) {
		r.kinds = append(r.kinds, a.Kind().String())
	})
	return r
}

func (r *replayer) run(steps []step) error {
	for _, s := range steps {
		switch s.op {
		case opDispatch:
			r.store.Dispatch(s.action)
		case opMount:
			r.store.Mount()
		case opUnmount:
			r.store.Unmount()
		case opWait:
			r.clock.Advance(s.wait)
		case opCart:
			r.store.SetCartStatus(s.status)
		default:
			return fmt.Errorf("unknown step op %d", s.op)
		}
	}
	return nil
}

type modalReport struct {
	Content string         `yaml:"content"`
	Props   map[string]any `yaml:"props,omitempty"`
}

type stateReport struct {
	OpenPanel       string       `yaml:"open_panel"`
	CartOpen        bool         `yaml:"cart_open"`
	DesktopMenuOpen bool         `yaml:"desktop_menu_open"`
	MobileMenuOpen  bool         `yaml:"mobile_menu_open"`
	SearchOpen      bool         `yaml:"search_open"`
	Modal           *modalReport `yaml:"modal,omitempty"`
	PromobarOpen    bool         `yaml:"promobar_open"`
	IframesHidden   bool         `yaml:"iframes_hidden"`
	PreviewCustomer string       `yaml:"preview_customer"`
	IsCartReady     bool         `yaml:"is_cart_ready"`
	IsHydrated      bool         `yaml:"is_hydrated"`
	CartStatus      string       `yaml:"cart_status"`
	Elapsed         string       `yaml:"elapsed"`
	PendingTimers   int          `yaml:"pending_timers"`
	HiddenFrames    []string     `yaml:"hidden_frames,omitempty"`
	Actions         []string     `yaml:"actions"`
}

func (r *replayer) report() stateReport {
	st := r.store.State()
	rep := stateReport{
		OpenPanel:       st.OpenPanel().String(),
		CartOpen:        st.CartOpen,
		DesktopMenuOpen: st.DesktopMenuOpen,
		MobileMenuOpen:  st.MobileMenuOpen,
		SearchOpen:      st.SearchOpen,
		PromobarOpen:    st.PromobarOpen,
		IframesHidden:   st.IframesHidden,
		PreviewCustomer: previewLabel(st.PreviewModeCustomer),
		IsCartReady:     st.IsCartReady,
		IsHydrated:      st.IsHydrated,
		CartStatus:      r.store.CartStatus().String(),
		Elapsed:         r.clock.Now().String(),
		PendingTimers:   r.clock.Pending(),
		Actions:         r.kinds,
	}
	if st.Modal.IsOpen() {
		rep.Modal = &modalReport{Content: st.Modal.Children.View(), Props: st.Modal.Props}
	}
	for _, f := range r.frames.Embedded() {
		if f.Hidden() {
			rep.HiddenFrames = append(rep.HiddenFrames, f.ID)
		}
	}
	return rep
}

func previewLabel(p uistate.PreviewCustomer) string {
	switch {
	case !p.Known:
		return "unresolved"
	case p.Customer == nil:
		return "anonymous"
	default:
		return p.Customer.Email
	}
}
