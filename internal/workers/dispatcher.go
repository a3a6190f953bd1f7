package workers

import (
	"sync"

	"resume-engine/internal/logging"
)

// Dispatcher distributes queued tasks across workers round-robin
type Dispatcher struct {
	taskQueue chan AnalysisTask
	workers   []*Worker
	quit      chan bool
	logger    logging.Logger
	mu        sync.RWMutex
	running   bool
}

// NewDispatcher creates a dispatcher over the given queue and workers
func NewDispatcher(taskQueue chan AnalysisTask, workers []*Worker) *Dispatcher {
	return &Dispatcher{
		taskQueue: taskQueue,
		workers:   workers,
		quit:      make(chan bool),
		logger:    logging.GetGlobalLogger(),
	}
}

// Start starts the dispatch loop
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return
	}

	go d.dispatch()
	d.running = true
	d.logger.Info("Task dispatcher started", map[string]interface{}{
		"workers": len(d.workers),
	})
}

// Stop stops the dispatch loop
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		return
	}

	d.quit <- true
	d.running = false
}

// dispatch assigns each task to exactly one worker, skipping busy workers
func (d *Dispatcher) dispatch() {
	workerIndex := 0

	for {
		select {
		case task := <-d.taskQueue:
		assignLoop:
			for {
				worker := d.workers[workerIndex]
				workerIndex = (workerIndex + 1) % len(d.workers)
				select {
				case worker.TaskChan <- task:
					break assignLoop
				default:
					continue
				}
			}

		case <-d.quit:
			return
		}
	}
}

// IsRunning reports whether the dispatch loop is active
func (d *Dispatcher) IsRunning() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.running
}
