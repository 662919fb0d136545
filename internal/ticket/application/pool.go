package application

import (
	"fmt"
	"sync"
)

// WorkerPool is a bounded executor: a fixed set of goroutines draining a
// buffered task queue. Execute blocks once the queue is full, so admission
// control lives here and not in the dispatcher.
type WorkerPool struct {
	tasks chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

// NewWorkerPool starts workers goroutines over a queue of queueSize tasks.
func NewWorkerPool(workers, queueSize int) (*WorkerPool, error) {
	if workers < 1 {
		return nil, fmt.Errorf("worker pool: workers must be positive, got %d", workers)
	}
	if queueSize < 0 {
		return nil, fmt.Errorf("worker pool: negative queue size %d", queueSize)
	}
	p := &WorkerPool{tasks: make(chan func(), queueSize)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p, nil
}

// Execute enqueues a task, blocking while the queue is full.
func (p *WorkerPool) Execute(task func()) {
	p.tasks <- task
}

// Shutdown stops accepting tasks and waits for queued ones to finish.
func (p *WorkerPool) Shutdown() {
	p.once.Do(func() { close(p.tasks) })
	p.wg.Wait()
}
