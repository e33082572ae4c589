package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Worker --dir=. --output=./mocks --filename=worker_mock.go --case=underscore
type Worker interface {
	StartWorkers(n int)
	// Enqueue schedules task without blocking. The task is dropped, with a
	// warning, when the queue is full or the worker is shut down.
	Enqueue(task func(ctx context.Context), key string) bool
	Shutdown()
}

type worker struct {
	logger   *logrus.Logger
	taskChan chan func(ctx context.Context)
	ctx      context.Context
	cancel   context.CancelFunc
	closed   atomic.Bool
	mu       sync.RWMutex
	wg       sync.WaitGroup
}

func NewWorker(logger *logrus.Logger, queueSize int) Worker {
	if queueSize <= 0 {
		queueSize = 1000
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &worker{
		logger:   logger,
		taskChan: make(chan func(ctx context.Context), queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (w *worker) StartWorkers(n int) {
	w.logger.WithField("workers", n).Info("starting export workers")
	for i := 0; i < n; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for task := range w.taskChan {
				w.run(task)
			}
		}()
	}
}

func (w *worker) run(task func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.WithField("panic", r).Error("export task panicked")
		}
	}()
	task(w.ctx)
}

func (w *worker) Enqueue(task func(ctx context.Context), key string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed.Load() {
		return false
	}
	select {
	case w.taskChan <- task:
		return true
	default:
		w.logger.WithField("key", key).Warn("task queue is full, dropping task")
		return false
	}
}

// Shutdown stops accepting tasks, lets the queued ones drain and then cancels
// the context handed to tasks.
func (w *worker) Shutdown() {
	w.mu.Lock()
	if w.closed.Swap(true) {
		w.mu.Unlock()
		return
	}
	close(w.taskChan)
	w.mu.Unlock()

	w.logger.Info("shutting down export workers")
	w.wg.Wait()
	w.cancel()
	w.logger.Info("export workers stopped")
}
