package eventloop

import (
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Handle is the shared view of a host loop that store contexts carry.
// Every context copy or narrowing derived from one origin points at the
// same Handle; its lifetime matches the longest-lived context from the
// same store.
//
// IMPORTANT:
// A Handle is only valid while the owning store (and its loop) is alive.
// Invoking it afterwards is a precondition violation, not a checked
// error. The Handle itself adds no synchronization; concurrent use is
// governed entirely by the wrapped loop's discipline.
type Handle struct {
	id       string
	loop     EventLoop
	adopted  time.Time
	finished time.Time
}

// NewHandle wraps a live host loop behind a fresh shared handle. Called
// once per store at setup; everything downstream shares the result.
func NewHandle(loop EventLoop) *Handle {
	logger, _ := zap.NewProduction()
	h := &Handle{
		id:      uuid.New().String(),
		loop:    loop,
		adopted: time.Now(),
	}
	logger.Sugar().Debugf("adopted event loop: handleId: %v", h.id)
	return h
}

// ID returns the handle's identity, stable across all sharing contexts.
func (h *Handle) ID() string { return h.id }

// Async hands fn to the host loop for later execution.
func (h *Handle) Async(fn func()) { h.loop.Async(fn) }

// Pause delegates to the host loop.
func (h *Handle) Pause() { h.loop.Pause() }

// Resume delegates to the host loop.
func (h *Handle) Resume() { h.loop.Resume() }

// Finish records the end of the handle's span and tells the host loop to
// finish.
func (h *Handle) Finish() {
	if h.finished.IsZero() {
		h.finished = time.Now()
	}
	h.loop.Finish()
}

// Span covers the handle's lifetime, from adoption until Finish, or until
// now while still live.
func (h *Handle) Span() timespan.TimeSpan {
	end := h.finished
	if end.IsZero() {
		end = time.Now()
	}
	return timespan.BetweenTimes(h.adopted, end)
}
