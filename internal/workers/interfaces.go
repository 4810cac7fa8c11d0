// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs every
// registered worker under one context.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until the work is finished or ctx is cancelled. A cancelled
// worker returns promptly; the error it returns then is ignored by
// [Workers.Run].
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts an ordinary function to the [Worker] interface.
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
