package server

import "sync"

// JobQueue runs webhook jobs one at a time in the order they were accepted. Jobs of one
// repository read and write the same issues and branches, so they must not overlap.
type JobQueue struct {
	jobs      chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// NewJobQueue starts the worker of the queue. Dispatch blocks while size jobs are waiting.
func NewJobQueue(size int) *JobQueue {
	if size < 1 {
		size = 1
	}
	q := &JobQueue{
		jobs: make(chan func(), size),
		done: make(chan struct{}),
	}
	go q.run()
	return q
}

func (x *JobQueue) run() {
	defer close(x.done)
	for fn := range x.jobs {
		fn()
	}
}

// Dispatch enqueues fn. It must not be called after Close.
func (x *JobQueue) Dispatch(fn func()) {
	x.jobs <- fn
}

// Close stops accepting jobs and waits until the queued ones have run
func (x *JobQueue) Close() {
	x.closeOnce.Do(func() { close(x.jobs) })
	<-x.done
}

// serialDispatch runs each job on its own goroutine but never two jobs at the same time
func serialDispatch() func(fn func()) {
	var mu sync.Mutex
	return func(fn func()) {
		go func() {
			mu.Lock()
			defer mu.Unlock()
			fn()
		}()
	}
}
