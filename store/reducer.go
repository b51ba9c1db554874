package store

// Reducer is the closed pair of reducer shapes a store accepts: a pure
// function of model and action, or one that additionally yields an
// effect. Which shape a reducer has is part of its declared type, not
// inferred.
type Reducer[M, A any] interface {
	reduce(model M, action A) (M, Effect)
}

// Pure adapts an effect-free reducer function.
type Pure[M, A any] func(M, A) M

func (f Pure[M, A]) reduce(model M, action A) (M, Effect) {
	return f(model, action), Noop
}

// Effectful adapts a reducer function returning a model plus an effect.
type Effectful[M, A any] func(M, A) Result[M]

func (f Effectful[M, A]) reduce(model M, action A) (M, Effect) {
	r := f(model, action)
	return r.Model, r.Effect
}

// InvokeReducer invokes the reducer with the model and action and returns
// the resulting model. If the reducer produced a non-empty effect, the
// handler receives it; the model is already updated by that point, so a
// handler that runs effects eagerly observes post-update state, and one
// that queues them may run them later. Pure reducers never touch the
// handler. This lets a store treat both reducer shapes uniformly.
func InvokeReducer[M, A any](r Reducer[M, A], model M, action A, handler func(Effect)) M {
	next, eff := r.reduce(model, action)
	if !eff.IsEmpty() {
		handler(eff)
	}
	return next
}
