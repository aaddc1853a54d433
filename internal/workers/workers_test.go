package workers

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerWait(t *testing.T) {
	w := NewWorker()

	var done atomic.Int32
	for range 10 {
		w.Go(func() {
			done.Add(1)
		})
	}
	w.Wait()

	assert.Equal(t, int32(10), done.Load())
}

func TestWorkerRecoversPanic(t *testing.T) {
	w := NewWorker()

	var after atomic.Bool
	w.Go(func() {
		panic("handler failed")
	})
	w.Go(func() {
		after.Store(true)
	})

	assert.NotPanics(t, w.Wait)
	assert.True(t, after.Load())
}
