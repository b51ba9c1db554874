package store

import (
	"fmt"

	"github.com/on-the-ground/reduct_ive_go/actions"
	"github.com/on-the-ground/reduct_ive_go/deps"
	"github.com/on-the-ground/reduct_ive_go/internal/typeref"
)

// Result pairs a reducer's updated model with an optional effect.
// Transient: produced by a reducer and immediately destructured by the
// invoker.
type Result[M any] struct {
	Model  M
	Effect Effect
}

// Done wraps a bare model in an effect-free result.
func Done[M any](m M) Result[M] {
	return Result[M]{Model: m, Effect: Noop}
}

// WithEffect pairs a model with an effect.
func WithEffect[M any](m M, e Effect) Result[M] {
	return Result[M]{Model: m, Effect: e}
}

// ConvertResult absorbs a child result into a parent's shape. It succeeds
// only if the child model converts to To, every action reachable through
// the child effect's domain converts into some member of the parent
// domain, and the parent's capabilities cover what the child effect
// requires. Violations are construction errors, never deferred to run
// time.
func ConvertResult[To, From any](r Result[From], domain actions.Domain, have deps.Deps) (Result[To], error) {
	model, ok := any(r.Model).(To)
	if !ok {
		return Result[To]{}, fmt.Errorf("%w: %T does not convert to %s",
			ErrModelMismatch, r.Model, typeref.Of[To]())
	}
	if !actions.Compatible(r.Effect.Domain(), domain) {
		return Result[To]{}, fmt.Errorf("%w: effect surface %v not absorbable by %v",
			ErrIncompatibleDomains, r.Effect.Domain().Members(), domain.Members())
	}
	if !have.Satisfies(r.Effect.Needs()) {
		return Result[To]{}, fmt.Errorf("%w: effect requires capabilities the parent lacks",
			ErrDepsUnsatisfied)
	}
	return Result[To]{Model: model, Effect: r.Effect}, nil
}

// MustConvertResult is the panic-on-failure variant of ConvertResult.
func MustConvertResult[To, From any](r Result[From], domain actions.Domain, have deps.Deps) Result[To] {
	out, err := ConvertResult[To](r, domain, have)
	if err != nil {
		panic(err)
	}
	return out
}
