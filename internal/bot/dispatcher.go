package bot

import (
	"runtime/debug"
	"sync"

	"github.com/gammazero/workerpool"

	"niseyomi/internal/log"
)

// Dispatcher runs submitted tasks one at a time, in submission order.
// Gateway handlers and reminder firings only submit; all bot state is
// touched from the single worker.
type Dispatcher struct {
	mu      sync.RWMutex
	stopped bool
	pool    *workerpool.WorkerPool
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{pool: workerpool.New(1)}
}

// Submit queues task. Tasks submitted after Stop are dropped.
func (d *Dispatcher) Submit(task func()) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		log.Debug("dispatcher stopped, dropping task")
		return
	}
	d.pool.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("recovered from panic in event handler", "panic", r, "stack", string(debug.Stack()))
			}
		}()
		task()
	})
}

// Stop waits for queued tasks to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
	d.pool.StopWait()
}
