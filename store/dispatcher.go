package store

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/reduct_ive_go/actions"
)

// Handler is one typed routing entry of a dispatcher.
type Handler struct {
	typ reflect.Type
	fn  func(any)
}

// Handle registers fn as the handler for actions of type A.
func Handle[A any](fn func(A)) Handler {
	return Handler{
		typ: actions.TypeOf[A](),
		fn: func(v any) {
			fn(v.(A))
		},
	}
}

// Dispatcher routes an action to the handler registered for the member of
// its domain that the action's type matches. Value semantics; immutable
// after construction.
type Dispatcher struct {
	domain   actions.Domain
	handlers map[reflect.Type]func(any)
}

// NewDispatcher builds a dispatcher from typed handler entries. The
// domain is exactly the entry types, in order; two entries for the same
// type are rejected.
func NewDispatcher(entries ...Handler) (Dispatcher, error) {
	handlers := make(map[reflect.Type]func(any), len(entries))
	types := make([]reflect.Type, 0, len(entries))
	for _, e := range entries {
		if _, dup := handlers[e.typ]; dup {
			return Dispatcher{}, fmt.Errorf("%w: %s", ErrDuplicateHandler, e.typ)
		}
		handlers[e.typ] = e.fn
		types = append(types, e.typ)
	}
	return Dispatcher{
		domain:   actions.FromTypes(types...),
		handlers: handlers,
	}, nil
}

// MustNewDispatcher is the panic-on-failure variant of NewDispatcher.
func MustNewDispatcher(entries ...Handler) Dispatcher {
	d, err := NewDispatcher(entries...)
	if err != nil {
		panic(err)
	}
	return d
}

// NewUniformDispatcher applies one callable to every member of the
// domain, optionally through converters. This is how a store feeds every
// accepted action into a single processing queue.
func NewUniformDispatcher(domain actions.Domain, fn func(any), convs ...actions.Converter) Dispatcher {
	handlers := make(map[reflect.Type]func(any), domain.Size())
	for _, m := range domain.Members() {
		apply := applyFor(m, convs)
		handlers[m] = func(v any) {
			fn(apply(v))
		}
	}
	return Dispatcher{domain: domain, handlers: handlers}
}

func applyFor(t reflect.Type, convs []actions.Converter) func(any) any {
	for _, c := range convs {
		if t == c.From() || t.AssignableTo(c.From()) {
			return func(v any) any { return c.Apply(v) }
		}
	}
	return func(v any) any { return v }
}

// Domain returns the dispatcher's action domain.
func (d Dispatcher) Domain() actions.Domain { return d.domain }

// Dispatch routes action to its handler: exact type match first, then the
// first domain member the action's type converts into. Returns
// ErrOutOfDomain when nothing matches.
func (d Dispatcher) Dispatch(action any) error {
	if action == nil {
		return fmt.Errorf("%w: nil action", ErrOutOfDomain)
	}
	t := reflect.TypeOf(action)
	if h, ok := d.handlers[t]; ok {
		h(action)
		return nil
	}
	for _, m := range d.domain.Members() {
		if t.AssignableTo(m) {
			d.handlers[m](action)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrOutOfDomain, t)
}

// DeriveDispatcher builds a dispatcher over target as a forwarding view
// of from: each member of target is routed, optionally through the first
// matching converter, to the handler of its first convertible candidate
// in from's domain. A member with no candidate fails the derivation.
//
// This is how a context for a restrictive action set is synthesized over
// a broader one, and how actions of a nested subsystem are lifted into a
// parent's unified action type.
func DeriveDispatcher(target actions.Domain, from Dispatcher, convs ...actions.Converter) (Dispatcher, error) {
	handlers := make(map[reflect.Type]func(any), target.Size())
	for _, m := range target.Members() {
		cand, ok := from.domain.CandidateFor(m, convs...)
		if !ok {
			return Dispatcher{}, fmt.Errorf("%w: %s has none in %v", ErrNoCandidate, m, from.domain.Members())
		}
		forward := from.handlers[cand.Target]
		apply := cand.Apply
		handlers[m] = func(v any) {
			forward(apply(v))
		}
	}
	return Dispatcher{domain: target, handlers: handlers}, nil
}

// MustDeriveDispatcher is the panic-on-failure variant of
// DeriveDispatcher.
func MustDeriveDispatcher(target actions.Domain, from Dispatcher, convs ...actions.Converter) Dispatcher {
	d, err := DeriveDispatcher(target, from, convs...)
	if err != nil {
		panic(err)
	}
	return d
}
