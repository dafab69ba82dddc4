package goroutinepool

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Task is one unit of background work, e.g. a snapshot refresh.
type Task struct {
	ID       string
	Function func() error
	Callback func(error)
	Timeout  time.Duration
}

type worker struct {
	id         int
	taskChan   chan *Task
	workerPool chan chan *Task
	ctx        context.Context
	pool       *Pool
}

// Pool is a bounded worker pool for background jobs that must not fan
// out unbounded goroutines (feed pushes, cache warms).
type Pool struct {
	workerPool chan chan *Task
	taskQueue  chan *Task
	workers    []*worker
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup

	totalTasks     int64
	completedTasks int64
	failedTasks    int64
	activeTasks    int64
}

var (
	globalPool *Pool
	poolOnce   sync.Once
)

// GetPool returns the lazily started global pool.
func GetPool() *Pool {
	poolOnce.Do(func() {
		globalPool = NewPool(runtime.NumCPU()*2, 2048)
		globalPool.Start()
	})
	return globalPool
}

func NewPool(maxWorkers, maxQueue int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())

	pool := &Pool{
		workerPool: make(chan chan *Task, maxWorkers),
		taskQueue:  make(chan *Task, maxQueue),
		workers:    make([]*worker, maxWorkers),
		ctx:        ctx,
		cancel:     cancel,
	}
	for i := range pool.workers {
		pool.workers[i] = &worker{
			id:         i + 1,
			taskChan:   make(chan *Task),
			workerPool: pool.workerPool,
			ctx:        ctx,
			pool:       pool,
		}
	}
	return pool
}

func (p *Pool) Start() {
	p.wg.Add(1)
	go p.dispatcher()

	for _, w := range p.workers {
		p.wg.Add(1)
		go w.start(&p.wg)
	}

	log.Printf("goroutine pool started with %d workers", len(p.workers))
}

// Stop drains the pool, waiting up to 30s.
func (p *Pool) Stop() {
	p.cancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Print("goroutine pool stopped")
	case <-time.After(30 * time.Second):
		log.Print("goroutine pool stop timed out")
	}
}

// Submit queues a task without blocking; a full queue is an error the
// caller decides how to handle.
func (p *Pool) Submit(task *Task) error {
	if task.Timeout == 0 {
		task.Timeout = 30 * time.Second
	}
	atomic.AddInt64(&p.totalTasks, 1)

	select {
	case p.taskQueue <- task:
		return nil
	case <-p.ctx.Done():
		return p.ctx.Err()
	default:
		atomic.AddInt64(&p.failedTasks, 1)
		return ErrPoolOverloaded
	}
}

func (p *Pool) SubmitFunc(fn func() error) error {
	return p.Submit(&Task{Function: fn})
}

func (p *Pool) dispatcher() {
	defer p.wg.Done()

	for {
		select {
		case task := <-p.taskQueue:
			select {
			case workerTaskChan := <-p.workerPool:
				workerTaskChan <- task
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

func (w *worker) start(wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case w.workerPool <- w.taskChan:
			select {
			case task := <-w.taskChan:
				w.executeTask(task)
			case <-w.ctx.Done():
				return
			}
		case <-w.ctx.Done():
			return
		}
	}
}

func (w *worker) executeTask(task *Task) {
	atomic.AddInt64(&w.pool.activeTasks, 1)
	defer atomic.AddInt64(&w.pool.activeTasks, -1)

	ctx, cancel := context.WithTimeout(w.ctx, task.Timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("task panic: %v", r)
			}
		}()
		done <- task.Function()
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err != nil {
		atomic.AddInt64(&w.pool.failedTasks, 1)
	} else {
		atomic.AddInt64(&w.pool.completedTasks, 1)
	}

	if task.Callback != nil {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("task callback panic: %v", r)
				}
			}()
			task.Callback(err)
		}()
	}
}

// GetStats feeds the health endpoint.
func (p *Pool) GetStats() map[string]int64 {
	return map[string]int64{
		"total_tasks":     atomic.LoadInt64(&p.totalTasks),
		"completed_tasks": atomic.LoadInt64(&p.completedTasks),
		"failed_tasks":    atomic.LoadInt64(&p.failedTasks),
		"active_tasks":    atomic.LoadInt64(&p.activeTasks),
		"worker_count":    int64(len(p.workers)),
	}
}

var ErrPoolOverloaded = fmt.Errorf("goroutine pool is overloaded")

// Package-level convenience wrappers over the global pool.
func Submit(fn func() error) error {
	return GetPool().SubmitFunc(fn)
}

func Stop() {
	GetPool().Stop()
}
