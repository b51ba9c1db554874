package eventloop_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/reduct_ive_go/eventloop"
)

func TestQueueLoop_RunsTasksInOrder(t *testing.T) {
	l := eventloop.NewQueueLoop(eventloop.NewConfig(8, 1))

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		l.Async(func() { got = append(got, i) })
	}
	l.Finish()
	l.Wait()

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestQueueLoop_PauseBuffersResumeFlushes(t *testing.T) {
	l := eventloop.NewQueueLoop(eventloop.NewConfig(8, 1))
	defer func() {
		l.Finish()
		l.Wait()
	}()

	l.Pause()
	// give the worker a moment to observe the pause signal
	time.Sleep(20 * time.Millisecond)

	ran := make(chan struct{})
	l.Async(func() { close(ran) })

	select {
	case <-ran:
		t.Fatal("task ran while the loop was paused")
	case <-time.After(50 * time.Millisecond):
	}

	l.Resume()
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("task did not run after resume")
	}
}

func TestQueueLoop_FinishDrainsPending(t *testing.T) {
	l := eventloop.NewQueueLoop(eventloop.NewConfig(8, 1))

	l.Pause()
	time.Sleep(20 * time.Millisecond)

	var got []string
	l.Async(func() { got = append(got, "a") })
	l.Async(func() { got = append(got, "b") })

	l.Finish()
	l.Wait()

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestQueueLoop_AsyncAfterFinishIsDropped(t *testing.T) {
	l := eventloop.NewQueueLoop(eventloop.NewConfig(1, 1))
	l.Finish()
	l.Wait()

	ran := false
	l.Async(func() { ran = true })
	assert.False(t, ran)
}

func TestQueueLoop_FinishFromInsideTask(t *testing.T) {
	l := eventloop.NewQueueLoop(eventloop.NewConfig(1, 1))

	l.Async(func() { l.Finish() })

	done := make(chan struct{})
	go func() {
		l.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after Finish from inside a task")
	}
}

func TestQueueLoop_FinishIsIdempotent(t *testing.T) {
	l := eventloop.NewQueueLoop(eventloop.NewConfig(1, 1))
	l.Finish()
	l.Finish()
	l.Wait()
}

func TestQueueLoop_TaskCanScheduleMore(t *testing.T) {
	l := eventloop.NewQueueLoop(eventloop.NewConfig(8, 1))

	done := make(chan struct{})
	l.Async(func() {
		l.Async(func() { close(done) })
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("nested task did not run")
	}
	l.Finish()
	l.Wait()
}
