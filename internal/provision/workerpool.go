package provision

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, jobID int, task Task) error
	Close()
}

type Task func() error

// WorkerPool bounds how many provisioning jobs run at once. AddTask blocks
// when every worker is busy, which throttles the claim loop naturally.
type WorkerPool struct {
	tasks     chan poolTask
	wg        sync.WaitGroup
	closeOnce sync.Once
}

type poolTask struct {
	jobID int
	run   Task
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan poolTask, size)}
	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		if err := task.run(); err != nil {
			zap.L().Error("Provisioning task failed", zap.Int("jobID", task.jobID), zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, jobID int, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- poolTask{jobID: jobID, run: task}:
		return nil
	}
}

// Close stops accepting new tasks and waits for in-flight ones to finish.
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() { close(wp.tasks) })
	wp.wg.Wait()
}
