package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

// blockingWorker runs until Stop or context cancellation
type blockingWorker struct {
	*BaseWorker
	started atomic.Int32
	failure error
}

func newBlockingWorker(name string, failure error) *blockingWorker {
	return &blockingWorker{
		BaseWorker: NewBaseWorker(name, "test-group", zap.NewNop()),
		failure:    failure,
	}
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Add(1)
	if w.failure != nil {
		return w.failure
	}
	select {
	case <-w.StopChan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestWorkerManager_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := NewWorkerManager(zap.NewNop())
	first := newBlockingWorker("first", nil)
	second := newBlockingWorker("second", nil)
	m.Register(first)
	m.Register(second)

	require.NoError(t, m.Start(context.Background()))

	require.Eventually(t, func() bool {
		return first.started.Load() == 1 && second.started.Load() == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.True(t, first.IsStopped())
	assert.True(t, second.IsStopped())
}

func TestWorkerManager_FailingWorkerDoesNotBlockStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := NewWorkerManager(zap.NewNop())
	m.Register(newBlockingWorker("broken", errors.New("no consumer group")))
	m.Register(newBlockingWorker("healthy", nil))

	require.NoError(t, m.Start(context.Background()))
	require.NoError(t, m.Stop())
}

// stubbornWorker ignores Stop and only exits on context cancellation
type stubbornWorker struct {
	*BaseWorker
}

func (w *stubbornWorker) Start(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestWorkerManager_StopTimeoutCancelsContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := NewWorkerManager(zap.NewNop())
	m.SetShutdownTimeout(50 * time.Millisecond)
	m.Register(&stubbornWorker{BaseWorker: NewBaseWorker("stubborn", "group", zap.NewNop())})

	require.NoError(t, m.Start(context.Background()))

	err := m.Stop()
	assert.ErrorContains(t, err, "timed out")
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())

	assert.Error(t, m.Start(context.Background()))
}

func TestBaseWorker(t *testing.T) {
	w := NewBaseWorker("listing-events", "group", zap.NewNop())

	assert.Equal(t, "listing-events", w.Name())
	assert.Equal(t, "group", w.ConsumerGroup())
	assert.False(t, w.IsStopped())

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())

	select {
	case <-w.StopChan():
	default:
		t.Fatal("stop channel should be closed")
	}
}

func TestBaseWorker_Pause(t *testing.T) {
	w := NewBaseWorker("pause", "group", zap.NewNop())
	assert.True(t, w.Pause(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, w.Pause(ctx, time.Minute))

	require.NoError(t, w.Stop())
	assert.False(t, w.Pause(context.Background(), time.Minute))
}
