package store

import (
	"github.com/on-the-ground/reduct_ive_go/actions"
	"github.com/on-the-ground/reduct_ive_go/deps"
	"github.com/on-the-ground/reduct_ive_go/internal/typeref"
)

// Effect is a deferred, possibly empty procedure over a Context. It
// carries the action domain it may dispatch into and the capabilities it
// requires, so result and context compatibility stay checkable. Created
// by reducers, consumed exactly once by the store's effect handler.
type Effect struct {
	fn     func(Context)
	domain actions.Domain
	needs  deps.Deps
}

func noopFn(Context) {}

// Noop is the designated empty effect: nothing to do. Recognized by
// identity, not by behavior.
var Noop = Effect{fn: noopFn}

var noopPtr = typeref.FuncPointer(noopFn)

// NewEffect builds an effect that may dispatch actions within domain.
func NewEffect(domain actions.Domain, fn func(Context)) Effect {
	return Effect{fn: fn, domain: domain}
}

// EffectOf builds an effect over the single-action domain of A.
func EffectOf[A any](fn func(Context)) Effect {
	return NewEffect(actions.Of[A](), fn)
}

// WithDeps returns a copy of the effect declaring that it requires the
// given capabilities from the context it runs against.
func (e Effect) WithDeps(needs deps.Deps) Effect {
	e.needs = needs
	return e
}

// Domain returns the action domain the effect may dispatch into.
func (e Effect) Domain() actions.Domain { return e.domain }

// Needs returns the capabilities the effect requires.
func (e Effect) Needs() deps.Deps { return e.needs }

// IsEmpty heuristically reports whether the effect is a no-op: it holds
// no procedure, or holds exactly the Noop sentinel. A distinct procedure
// that happens to do nothing is not recognized.
func (e Effect) IsEmpty() bool {
	return e.fn == nil || typeref.FuncPointer(e.fn) == noopPtr
}

// Run invokes the effect synchronously with ctx. Empty effects return
// immediately.
func (e Effect) Run(ctx Context) {
	if e.IsEmpty() {
		return
	}
	e.fn(ctx)
}

// Sequence composes effects into one that runs them left to right,
// synchronously, within the same call. The composite's domain is the
// merge of the operands' domains and its requirements the merge of their
// requirements. Empty operands are skipped: if all are empty the result
// is Noop, and a single surviving operand is returned unchanged rather
// than wrapped.
func Sequence(effs ...Effect) Effect {
	acc := Noop
	for _, e := range effs {
		acc = sequence2(acc, e)
	}
	return acc
}

func sequence2(a, b Effect) Effect {
	switch {
	case a.IsEmpty() && b.IsEmpty():
		return Noop
	case a.IsEmpty():
		return b
	case b.IsEmpty():
		return a
	}
	return Effect{
		fn: func(ctx Context) {
			a.fn(ctx)
			b.fn(ctx)
		},
		domain: actions.Merge(a.domain, b.domain),
		needs:  a.needs.Merge(b.needs),
	}
}
