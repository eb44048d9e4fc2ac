package uistate

import (
	"time"

	"storefront/internal/cart"
)

// CartReadyFallback is how long the store waits for the cart to report idle
// before marking it ready anyway.
const CartReadyFallback = 1000 * time.Millisecond

// HiddenMarker is the style marker toggled on frames to hide them.
const HiddenMarker = "invisible"

// Frame is an embedded frame in the rendered document.
type Frame interface {
	SetMarker(name string, on bool)
}

// Document gives the store access to the frames currently rendered.
type Document interface {
	Frames() []Frame
}

// runHydrationEffect marks the store hydrated the first time it mounts.
func (s *Store) runHydrationEffect() {
	if !s.state.IsHydrated {
		s.Dispatch(SetIsHydrated{Hydrated: true})
	}
}

// runCartReadyEffect settles IsCartReady for the current cart status. A cart
// that never reaches idle is marked ready once the fallback elapses. At most
// one fallback timer is pending; later status changes keep the earliest
// deadline instead of re-arming.
func (s *Store) runCartReadyEffect() {
	if s.state.IsCartReady {
		s.stopCartFallback()
		return
	}
	if s.cartStatus == cart.StatusIdle {
		s.stopCartFallback()
		s.Dispatch(SetIsCartReady{Ready: true})
		return
	}
	if s.cancelFallback != nil || s.scheduler == nil {
		return
	}
	s.logger.Debug("cart ready fallback armed", "status", s.cartStatus, "after", s.fallback)
	s.cancelFallback = s.scheduler.AfterFunc(s.fallback, func() {
		s.cancelFallback = nil
		s.logger.Debug("cart ready fallback fired", "status", s.cartStatus)
		s.Dispatch(SetIsCartReady{Ready: true})
	})
}

func (s *Store) stopCartFallback() {
	if s.cancelFallback != nil {
		s.cancelFallback()
		s.cancelFallback = nil
	}
}

type frameVisibility struct {
	hidden   bool
	hydrated bool
}

// watchFrames keeps frame markers in sync with State.FramesHidden once hydrated.
func (s *Store) watchFrames() {
	Watch(s, func(st State) frameVisibility {
		return frameVisibility{hidden: st.FramesHidden(), hydrated: st.IsHydrated}
	}, func(v frameVisibility, _ State) {
		if !v.hydrated || s.document == nil {
			return
		}
		frames := s.document.Frames()
		for _, f := range frames {
			f.SetMarker(HiddenMarker, v.hidden)
		}
		s.logger.Debug("frames updated", "hidden", v.hidden, "count", len(frames))
	})
}
