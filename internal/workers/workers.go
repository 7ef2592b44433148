// Package workers contains the client's background jobs. Each job
// implements the Worker interface; the Workers aggregate runs them
// together and waits for all of them on shutdown.
package workers

import (
	"context"
	"sync"
)

// Worker is a long-running background job. Run blocks until ctx is
// cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Workers runs a set of workers concurrently.
type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers aggregates the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every worker has returned. Cancel the context passed
// to Run first.
func (w *Workers) Wait() {
	w.wg.Wait()
}
