package uistate

import "context"

// Context is the value handed to the rendering tree: a read-only snapshot and
// the action table.
type Context struct {
	State   State
	Actions Actions
}

// Value returns the current Context for s.
func (s *Store) Value() Context {
	return Context{State: s.state, Actions: s}
}

type storeKey struct{}

// WithStore attaches s to ctx so descendants can reach it.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// FromContext returns the store attached to ctx, if any.
func FromContext(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(storeKey{}).(*Store)
	return s, ok && s != nil
}

// MustFromContext returns the store's Context value, panicking when ctx carries
// no store.
func MustFromContext(ctx context.Context) Context {
	s, ok := FromContext(ctx)
	if !ok {
		panic("uistate: no store in context")
	}
	return s.Value()
}
