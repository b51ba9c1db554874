package eventloop

import "github.com/cespare/xxhash/v2"

// PartitionedLoop fans tasks out over a fixed set of QueueLoop workers.
// AsyncKeyed routes by hash so tasks sharing a key run on the same worker
// in submission order; plain Async keeps the EventLoop contract by
// pinning unkeyed tasks to worker zero, preserving their mutual order.
type PartitionedLoop struct {
	workers []*QueueLoop
}

var _ EventLoop = (*PartitionedLoop)(nil)

// NewPartitionedLoop starts config.NumWorkers workers, each with its own
// buffer of config.BufferSize.
func NewPartitionedLoop(config Config) *PartitionedLoop {
	config = NewConfig(config.BufferSize, config.NumWorkers)
	workers := make([]*QueueLoop, config.NumWorkers)
	for i := range workers {
		workers[i] = NewQueueLoop(Config{BufferSize: config.BufferSize, NumWorkers: 1})
	}
	return &PartitionedLoop{workers: workers}
}

// Async enqueues fn on worker zero.
func (l *PartitionedLoop) Async(fn func()) {
	l.workers[0].Async(fn)
}

// AsyncKeyed enqueues fn on the worker owning key. Tasks with equal keys
// keep their submission order relative to each other.
func (l *PartitionedLoop) AsyncKeyed(key string, fn func()) {
	l.workers[indexByHash(key, len(l.workers))].Async(fn)
}

// Pause pauses every worker.
func (l *PartitionedLoop) Pause() {
	for _, w := range l.workers {
		w.Pause()
	}
}

// Resume resumes every worker.
func (l *PartitionedLoop) Resume() {
	for _, w := range l.workers {
		w.Resume()
	}
}

// Finish finishes every worker. Non-blocking; use Wait to join.
func (l *PartitionedLoop) Finish() {
	for _, w := range l.workers {
		w.Finish()
	}
}

// Wait blocks until every worker goroutine has exited.
func (l *PartitionedLoop) Wait() {
	for _, w := range l.workers {
		w.Wait()
	}
}

func indexByHash(key string, numWorkers int) int {
	switch numWorkers {
	case 0:
		panic("number of workers cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(key) % uint64(numWorkers))
	}
}
