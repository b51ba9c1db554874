// Package store is the dispatch/effect core of a reactive store: reducers
// compute a new model plus an optional deferred effect, and effects later
// run against a capability Context that lets them re-dispatch actions and
// schedule work on the host event loop.
//
// # Actions and routing
//
// A Dispatcher routes an incoming action to the handler registered for
// its type, within a declared action domain. Dispatchers, contexts and
// effects built for one domain can stand in for another when every member
// of the narrower domain converts into some member of the broader one;
// DeriveDispatcher and Narrow perform that adaptation, optionally through
// explicit converters. Contexts are therefore contravariant in their
// action domain.
//
// # Effects
//
// An Effect is a deferred, possibly empty procedure over a Context.
// Reducers return effects inside a Result; the store's effect handler
// consumes each non-empty effect exactly once. Sequence composes effects
// left to right, merging their action domains and dependency
// requirements.
//
// Example:
//
//	type tick struct{}
//
//	reducer := store.Effectful[int, tick](func(m int, _ tick) store.Result[int] {
//	    return store.WithEffect(m+1, store.EffectOf[tick](func(ctx store.Context) {
//	        ctx.Loop().Async(func() { _ = ctx.Dispatch(tick{}) })
//	    }))
//	})
//
//	model = store.InvokeReducer(reducer, model, tick{}, handler)
//
// # Concurrency
//
// No locks or internal synchronization exist at this layer. Dispatch,
// effect invocation and Sequence are synchronous and run to completion in
// the caller's goroutine; any asynchrony happens only through the context
// explicitly handing work to the host loop. A Context is valid only for
// the lifetime of the owning store.
package store
