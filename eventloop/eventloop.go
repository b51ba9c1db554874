// Package eventloop defines the host event loop contract used by store
// contexts and ships two channel-based loops satisfying it.
//
// The core never assumes a thread model: Async merely hands a procedure
// to the host loop, which decides when and where it runs. Pause, Resume
// and Finish delegate to the host loop's own discipline.
package eventloop

// EventLoop is the structural contract a host loop must satisfy.
type EventLoop interface {
	Async(fn func())
	Finish()
	Pause()
	Resume()
}

// Funcs adapts four loose procedures into an EventLoop. Useful for hosts
// whose loop API does not line up method-for-method. Nil fields are
// treated as no-ops.
type Funcs struct {
	AsyncFn  func(fn func())
	FinishFn func()
	PauseFn  func()
	ResumeFn func()
}

var _ EventLoop = Funcs{}

func (f Funcs) Async(fn func()) {
	if f.AsyncFn != nil {
		f.AsyncFn(fn)
	}
}

func (f Funcs) Finish() {
	if f.FinishFn != nil {
		f.FinishFn()
	}
}

func (f Funcs) Pause() {
	if f.PauseFn != nil {
		f.PauseFn()
	}
}

func (f Funcs) Resume() {
	if f.ResumeFn != nil {
		f.ResumeFn()
	}
}
