package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// BaseWorker - общая часть воркеров, читающих стрим через consumer group.
// Встраивается в конкретный воркер и дает ему Name и Stop.
type BaseWorker struct {
	name          string
	consumerGroup string
	logger        *zap.Logger

	done     chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
}

func NewBaseWorker(name, consumerGroup string, logger *zap.Logger) *BaseWorker {
	return &BaseWorker{
		name:          name,
		consumerGroup: consumerGroup,
		logger:        logger.With(zap.String("worker", name)),
		done:          make(chan struct{}),
	}
}

func (w *BaseWorker) Name() string {
	return w.name
}

func (w *BaseWorker) ConsumerGroup() string {
	return w.consumerGroup
}

// Logger - логгер с полем worker
func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}

// Stop закрывает канал остановки; повторные вызовы ничего не делают
func (w *BaseWorker) Stop() error {
	w.stopOnce.Do(func() {
		w.logger.Info("Stopping worker")
		w.stopped.Store(true)
		close(w.done)
	})
	return nil
}

func (w *BaseWorker) IsStopped() bool {
	return w.stopped.Load()
}

func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.done
}

// Pause ждет d; false означает, что воркер остановлен или ctx отменен раньше
func (w *BaseWorker) Pause(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-w.done:
		return false
	case <-ctx.Done():
		return false
	}
}
