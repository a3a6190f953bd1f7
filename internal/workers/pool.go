// Package workers runs analysis tasks on a bounded goroutine pool so that a
// burst of requests degrades to queueing instead of unbounded concurrency.
package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"resume-engine/internal/config"
	"resume-engine/internal/logging"
	"resume-engine/pkg/utils"
)

// TaskFunc is one unit of analysis work. It must honor ctx cancellation.
type TaskFunc func(ctx context.Context) (interface{}, error)

// TaskResult carries the outcome of one task
type TaskResult struct {
	Value     interface{}
	Error     error
	RequestID string
	Duration  time.Duration
}

// AnalysisTask is a queued unit of work
type AnalysisTask struct {
	ID         string
	Kind       string // parse, extract, gap, ats, insights
	Run        TaskFunc
	ResultChan chan TaskResult
	Context    context.Context
	CreatedAt  time.Time
}

// Worker is a single pool goroutine
type Worker struct {
	ID       int
	TaskChan chan AnalysisTask
	QuitChan chan bool
	Pool     *Pool
	logger   logging.Logger
}

// Pool manages the worker goroutines and the task queue
type Pool struct {
	config     *config.Config
	workers    []*Worker
	taskQueue  chan AnalysisTask
	dispatcher *Dispatcher
	logger     logging.Logger
	mu         sync.RWMutex
	running    bool
	stats      *PoolStats
}

// PoolStats tracks pool counters
type PoolStats struct {
	mu                    sync.RWMutex
	TasksQueued           int64
	TasksProcessed        int64
	TasksSuccessful       int64
	TasksFailed           int64
	TotalProcessingTime   time.Duration
	AverageProcessingTime time.Duration
}

// StatsSnapshot is the exported view of pool counters
type StatsSnapshot struct {
	Running               bool          `json:"running"`
	PoolSize              int           `json:"pool_size"`
	QueueDepth            int           `json:"queue_depth"`
	TasksQueued           int64         `json:"tasks_queued"`
	TasksProcessed        int64         `json:"tasks_processed"`
	TasksSuccessful       int64         `json:"tasks_successful"`
	TasksFailed           int64         `json:"tasks_failed"`
	AverageProcessingTime time.Duration `json:"average_processing_time"`
}

// NewPool creates a worker pool sized from configuration
func NewPool(cfg *config.Config) *Pool {
	logger := logging.GetGlobalLogger()

	pool := &Pool{
		config:    cfg,
		taskQueue: make(chan AnalysisTask, cfg.Workers.QueueSize),
		logger:    logger,
		stats:     &PoolStats{},
	}

	pool.workers = make([]*Worker, cfg.Workers.PoolSize)
	for i := 0; i < cfg.Workers.PoolSize; i++ {
		pool.workers[i] = &Worker{
			ID:       i + 1,
			TaskChan: make(chan AnalysisTask),
			QuitChan: make(chan bool),
			Pool:     pool,
			logger:   logger,
		}
	}

	pool.dispatcher = NewDispatcher(pool.taskQueue, pool.workers)

	logger.Info("Worker pool initialized", map[string]interface{}{
		"pool_size":  cfg.Workers.PoolSize,
		"queue_size": cfg.Workers.QueueSize,
	})
	return pool
}

// Start starts the dispatcher and all workers
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return fmt.Errorf("worker pool is already running")
	}

	p.dispatcher.Start()
	for _, worker := range p.workers {
		go worker.Start()
	}

	p.running = true
	p.logger.Info("Worker pool started", map[string]interface{}{
		"workers": len(p.workers),
	})
	return nil
}

// Stop stops the pool gracefully
func (p *Pool) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return nil
	}

	p.dispatcher.Stop()
	for _, worker := range p.workers {
		worker.Stop()
	}
	close(p.taskQueue)

	p.running = false
	p.logger.Info("Worker pool stopped")
	return nil
}

// Submit queues a task and waits for its result. The wait is bounded by the
// configured task timeout, the request context, and a queue admission
// timeout.
func (p *Pool) Submit(ctx context.Context, kind string, run TaskFunc) (interface{}, error) {
	if !p.IsRunning() {
		return nil, utils.NewInternalServerError("worker pool is not running")
	}

	task := AnalysisTask{
		ID:         utils.GenerateRequestID(),
		Kind:       kind,
		Run:        run,
		ResultChan: make(chan TaskResult, 1),
		Context:    ctx,
		CreatedAt:  time.Now(),
	}

	p.stats.mu.Lock()
	p.stats.TasksQueued++
	p.stats.mu.Unlock()

	select {
	case p.taskQueue <- task:
	case <-time.After(5 * time.Second):
		return nil, utils.NewTimeoutError("task queue is full")
	case <-ctx.Done():
		return nil, utils.NewTimeoutError("request cancelled while queueing")
	}

	timeout := p.config.Workers.Timeout
	select {
	case result := <-task.ResultChan:
		return result.Value, result.Error
	case <-time.After(timeout):
		return nil, utils.NewTimeoutError(fmt.Sprintf("%s task timed out after %v", kind, timeout))
	case <-ctx.Done():
		return nil, utils.NewTimeoutError("request cancelled while processing")
	}
}

// IsRunning reports whether the pool accepts tasks
func (p *Pool) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.running
}

// Stats returns a snapshot of the pool counters
func (p *Pool) Stats() StatsSnapshot {
	p.stats.mu.RLock()
	defer p.stats.mu.RUnlock()

	snapshot := StatsSnapshot{
		Running:         p.IsRunning(),
		PoolSize:        len(p.workers),
		QueueDepth:      len(p.taskQueue),
		TasksQueued:     p.stats.TasksQueued,
		TasksProcessed:  p.stats.TasksProcessed,
		TasksSuccessful: p.stats.TasksSuccessful,
		TasksFailed:     p.stats.TasksFailed,
	}
	if p.stats.TasksProcessed > 0 {
		snapshot.AverageProcessingTime = p.stats.TotalProcessingTime / time.Duration(p.stats.TasksProcessed)
	}
	return snapshot
}

// Start runs the worker loop
func (w *Worker) Start() {
	for {
		select {
		case task := <-w.TaskChan:
			w.processTask(task)
		case <-w.QuitChan:
			return
		}
	}
}

// Stop signals the worker to exit after its current task
func (w *Worker) Stop() {
	w.QuitChan <- true
}

func (w *Worker) processTask(task AnalysisTask) {
	start := time.Now()

	w.Pool.stats.mu.Lock()
	w.Pool.stats.TasksProcessed++
	w.Pool.stats.mu.Unlock()

	result := TaskResult{RequestID: task.ID}
	if err := task.Context.Err(); err != nil {
		result.Error = utils.NewTimeoutError("request cancelled before processing")
	} else {
		result.Value, result.Error = task.Run(task.Context)
	}
	result.Duration = time.Since(start)

	w.Pool.stats.mu.Lock()
	w.Pool.stats.TotalProcessingTime += result.Duration
	if result.Error != nil {
		w.Pool.stats.TasksFailed++
	} else {
		w.Pool.stats.TasksSuccessful++
	}
	w.Pool.stats.mu.Unlock()

	select {
	case task.ResultChan <- result:
	case <-time.After(100 * time.Millisecond):
		w.logger.Debug("Result channel timeout, client may have disconnected", map[string]interface{}{
			"task_id":   task.ID,
			"task_kind": task.Kind,
			"worker_id": w.ID,
		})
	}
}
