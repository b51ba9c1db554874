package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/reduct_ive_go/deps"
	"github.com/on-the-ground/reduct_ive_go/eventloop"
	"github.com/on-the-ground/reduct_ive_go/store"
)

func TestInvokeReducer_PureNeverTouchesHandler(t *testing.T) {
	reducer := store.Pure[int, saveDoc](func(m int, _ saveDoc) int { return m + 1 })

	handlerCalls := 0
	got := store.InvokeReducer(reducer, 41, saveDoc{}, func(store.Effect) { handlerCalls++ })

	assert.Equal(t, 42, got)
	assert.Equal(t, 0, handlerCalls)
}

func TestInvokeReducer_NoopEffectSkipsHandler(t *testing.T) {
	reducer := store.Effectful[int, saveDoc](func(m int, _ saveDoc) store.Result[int] {
		return store.Done(m + 1)
	})

	handlerCalls := 0
	got := store.InvokeReducer(reducer, 1, saveDoc{}, func(store.Effect) { handlerCalls++ })

	assert.Equal(t, 2, got)
	assert.Equal(t, 0, handlerCalls)
}

func TestInvokeReducer_EffectDispatchesExactlyOnce(t *testing.T) {
	reducer := store.Effectful[int, saveDoc](func(m int, a saveDoc) store.Result[int] {
		return store.WithEffect(m+1, store.EffectOf[loadDoc](func(ctx store.Context) {
			_ = ctx.Dispatch(loadDoc{path: a.path})
		}))
	})

	var pending []store.Effect
	got := store.InvokeReducer(reducer, 0, saveDoc{path: "p"}, func(e store.Effect) {
		pending = append(pending, e)
	})
	assert.Equal(t, 1, got)
	require.Len(t, pending, 1)

	var dispatched []docAction
	d := store.MustNewDispatcher(
		store.Handle(func(a docAction) { dispatched = append(dispatched, a) }),
	)
	ctx := store.NewContext(d, eventloop.Funcs{}, deps.Deps{})

	pending[0].Run(ctx)
	require.Len(t, dispatched, 1)
	assert.Equal(t, loadDoc{path: "p"}, dispatched[0])
}

func TestInvokeReducer_EffectObservesCommittedModel(t *testing.T) {
	// emulate a store: commit the returned model first, run queued
	// effects afterwards
	model := 0
	reducer := store.Effectful[int, saveDoc](func(m int, _ saveDoc) store.Result[int] {
		return store.WithEffect(m+1, store.EffectOf[saveDoc](func(store.Context) {}))
	})

	var queued []store.Effect
	model = store.InvokeReducer(reducer, model, saveDoc{}, func(e store.Effect) {
		queued = append(queued, e)
	})

	var seenByEffect []int
	for _, e := range queued {
		seenByEffect = append(seenByEffect, model)
		e.Run(store.Context{})
	}

	assert.Equal(t, 1, model)
	assert.Equal(t, []int{1}, seenByEffect)
}
