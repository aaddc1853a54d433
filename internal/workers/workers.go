// Package workers tracks background goroutines so that servers and tests
// can wait for them before shutting down.
package workers

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// Global runs the post-commit event handlers and server listeners.
var Global = NewWorker()

type Worker struct {
	wg sync.WaitGroup
}

func NewWorker() *Worker {
	return &Worker{}
}

// Go runs fn in a tracked goroutine. A panic in fn is logged and does not
// take the process down.
func (w *Worker) Go(fn func()) {
	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("background task panicked",
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()))
			}
		}()

		fn()
	}()
}

// Wait blocks until every goroutine started with Go has returned.
func (w *Worker) Wait() {
	w.wg.Wait()
}
