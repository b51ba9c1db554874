package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/on-the-ground/reduct_ive_go/actions"
	"github.com/on-the-ground/reduct_ive_go/deps"
	"github.com/on-the-ground/reduct_ive_go/eventloop"
)

// Context bundles a dispatcher, the shared event loop handle and the
// ambient capability set. It is the single object effects receive.
// Immutable after construction; copies are cheap handles.
//
// A Context is contravariant in its action domain: one built for a
// broader domain narrows, via Narrow, into one for a more restrictive
// domain, because every narrower action converts into some broader
// member.
//
// The zero Context is only valid as the empty-domain, empty-deps context;
// its Dispatch always fails and it carries no loop handle.
//
// IMPORTANT:
// A Context and its loop handle are valid only while the owning store is
// alive. Use after the store is gone is a documented precondition
// violation, not a checked error.
type Context struct {
	dispatcher Dispatcher
	loop       *eventloop.Handle
	deps       deps.Deps
}

// NewContext binds a dispatcher, a live host loop and a capability set.
// This is the only path that creates a new loop handle; a store does it
// once at setup and every derived context shares the result.
func NewContext(d Dispatcher, loop eventloop.EventLoop, ds deps.Deps) Context {
	return Context{
		dispatcher: d,
		loop:       eventloop.NewHandle(loop),
		deps:       ds,
	}
}

// Narrow derives a context over target as a forwarding view of parent,
// re-deriving the dispatcher and sharing the loop handle and deps. Fails
// when some member of target has no convertible candidate in parent's
// domain.
func Narrow(parent Context, target actions.Domain, convs ...actions.Converter) (Context, error) {
	d, err := DeriveDispatcher(target, parent.dispatcher, convs...)
	if err != nil {
		return Context{}, fmt.Errorf("failed to narrow context: %w", err)
	}
	if parent.loop != nil {
		logger, _ := zap.NewProduction()
		logger.Sugar().Debugf("narrowed context: handleId: %v, domain: %v", parent.loop.ID(), target.Members())
	}
	return Context{
		dispatcher: d,
		loop:       parent.loop,
		deps:       parent.deps,
	}, nil
}

// MustNarrow is the panic-on-failure variant of Narrow.
func MustNarrow(parent Context, target actions.Domain, convs ...actions.Converter) Context {
	ctx, err := Narrow(parent, target, convs...)
	if err != nil {
		panic(err)
	}
	return ctx
}

// Dispatch forwards the action to the internal dispatcher. If the
// underlying handler enqueues into the store's pipeline this may trigger
// a model update and, transitively, further effects.
func (c Context) Dispatch(action any) error {
	return c.dispatcher.Dispatch(action)
}

// Loop returns the shared event loop handle.
func (c Context) Loop() *eventloop.Handle { return c.loop }

// Deps returns the ambient capability set.
func (c Context) Deps() deps.Deps { return c.deps }

// Domain returns the context's action domain.
func (c Context) Domain() actions.Domain { return c.dispatcher.Domain() }
