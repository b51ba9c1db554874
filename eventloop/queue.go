package eventloop

import (
	"sync"

	"go.uber.org/zap"
)

type loopSignal int

const (
	sigPause loopSignal = iota
	sigResume
)

// QueueLoop is a single-goroutine event loop draining a buffered task
// channel. Tasks run strictly in submission order. Pause leaves submitted
// tasks buffered, Resume flushes them, Finish drains whatever is pending
// and stops the worker.
//
// Control signals are observed between tasks, never preemptively, so
// Pause, Resume and Finish are safe to call from inside a running task.
type QueueLoop struct {
	tasks   chan func()
	control chan loopSignal
	quit    chan struct{}
	done    chan struct{}
	finish  sync.Once
}

var _ EventLoop = (*QueueLoop)(nil)

// NewQueueLoop starts the worker goroutine and returns only once it is
// ready to accept tasks.
func NewQueueLoop(config Config) *QueueLoop {
	l := &QueueLoop{
		tasks:   make(chan func(), config.BufferSize),
		control: make(chan loopSignal, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	ready := make(chan struct{})
	go l.run(ready)
	<-ready
	return l
}

func (l *QueueLoop) run(ready chan struct{}) {
	defer close(l.done)
	close(ready)
	paused := false
	for {
		if paused {
			select {
			case sig := <-l.control:
				if sig == sigResume {
					paused = false
				}
			case <-l.quit:
				l.drain()
				return
			}
			continue
		}
		select {
		case <-l.quit:
			l.drain()
			return
		case sig := <-l.control:
			if sig == sigPause {
				paused = true
			}
		case fn := <-l.tasks:
			fn()
		}
	}
}

// drain runs whatever is still buffered, then returns.
func (l *QueueLoop) drain() {
	for {
		select {
		case fn := <-l.tasks:
			fn()
		default:
			return
		}
	}
}

// Async enqueues fn for the worker. Blocks while the buffer is full.
// After Finish the task is dropped with a warning.
func (l *QueueLoop) Async(fn func()) {
	select {
	case <-l.done:
		logger, _ := zap.NewProduction()
		logger.Sugar().Warnf("dropped task submitted to finished loop")
		return
	default:
	}
	select {
	case <-l.done:
		logger, _ := zap.NewProduction()
		logger.Sugar().Warnf("dropped task submitted to finished loop")
	case l.tasks <- fn:
	}
}

// Pause stops task processing until Resume. Tasks submitted meanwhile
// stay buffered.
func (l *QueueLoop) Pause() {
	select {
	case l.control <- sigPause:
	case <-l.done:
	}
}

// Resume restarts task processing after a Pause.
func (l *QueueLoop) Resume() {
	select {
	case l.control <- sigResume:
	case <-l.done:
	}
}

// Finish drains pending tasks and stops the worker. Idempotent and
// non-blocking; use Wait to join.
func (l *QueueLoop) Finish() {
	l.finish.Do(func() { close(l.quit) })
}

// Wait blocks until the worker goroutine has exited.
func (l *QueueLoop) Wait() {
	<-l.done
}
