package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Task is a unit of work executed by the pool. The context carries the
// per-task deadline; tasks must stop promptly once it is done.
type Task func(ctx context.Context) error

// Pool executes tasks over a fixed number of workers. Each task runs under
// its own deadline so one hung network call cannot stall the whole scan.
type Pool struct {
	maxWorkers  int
	taskTimeout time.Duration
	tasks       chan Task
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc

	completed int64
	failed    int64
}

// NewPool creates a pool with the given worker count and per-task timeout.
// Cancelling the parent context stops the pool; a non-positive timeout
// disables task deadlines.
func NewPool(parent context.Context, maxWorkers int, taskTimeout time.Duration) *Pool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Pool{
		maxWorkers:  maxWorkers,
		taskTimeout: taskTimeout,
		tasks:       make(chan Task, maxWorkers*2),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.maxWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// Stop signals the workers to exit and waits for them.
func (p *Pool) Stop() {
	p.cancel()
	p.wg.Wait()
}

// CompletedTasks returns the number of tasks that finished without error.
func (p *Pool) CompletedTasks() int64 {
	return atomic.LoadInt64(&p.completed)
}

// FailedTasks returns the number of tasks that returned an error.
func (p *Pool) FailedTasks() int64 {
	return atomic.LoadInt64(&p.failed)
}

func (p *Pool) runTask(task Task) {
	ctx := p.ctx
	if p.taskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(p.ctx, p.taskTimeout)
		defer cancel()
	}

	if err := task(ctx); err != nil {
		atomic.AddInt64(&p.failed, 1)
		return
	}
	atomic.AddInt64(&p.completed, 1)
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			p.runTask(task)
		case <-p.ctx.Done():
			// Drain whatever was already queued before exiting.
			for {
				select {
				case task, ok := <-p.tasks:
					if !ok {
						return
					}
					p.runTask(task)
				default:
					return
				}
			}
		}
	}
}

// ExecuteTasks submits the tasks and blocks until every one has finished.
func (p *Pool) ExecuteTasks(tasks []Task) {
	var wg sync.WaitGroup
	wg.Add(len(tasks))

	for _, t := range tasks {
		task := t
		wrapped := func(ctx context.Context) error {
			defer wg.Done()
			return task(ctx)
		}

		select {
		case p.tasks <- wrapped:
		case <-p.ctx.Done():
			wg.Done()
		}
	}

	wg.Wait()
}
