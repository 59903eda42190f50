package events

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/anthony-garcia-santos/techstorage/internal/logger"
)

var (
	ErrQueueFull         = errors.New("event queue is full")
	ErrDispatcherStopped = errors.New("event dispatcher stopped")
)

// Dispatcher hands events to a pool of workers so that a slow broker never
// holds up the ledger. Events that do not fit in the queue are dropped.
// Once stopped, queued events are still delivered and new ones are refused.
type Dispatcher struct {
	next Publisher
	jobs chan OrderEvent

	mu      sync.RWMutex
	stopped bool

	wg sync.WaitGroup
}

func NewDispatcher(next Publisher, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		next: next,
		jobs: make(chan OrderEvent, queueSize),
	}
}

func (d *Dispatcher) PublishOrderEvent(_ context.Context, event OrderEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrDispatcherStopped
	}
	select {
	case d.jobs <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *Dispatcher) stop() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
}

// Start runs workerCount workers until ctx is cancelled. The workers only
// exit after the dispatcher has stopped accepting events and the queue is
// drained.
func (d *Dispatcher) Start(ctx context.Context, workerCount int) {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	go func() {
		<-ctx.Done()
		d.stop()
		cancel()
	}()

	for i := 1; i <= workerCount; i++ {
		d.wg.Add(1)
		go func(id int) {
			defer d.wg.Done()
			workerLoop(runCtx, id, d.next, d.jobs)
		}(i)
	}
	logger.Log.Info("event dispatcher started", zap.Int("workers", workerCount))
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func workerLoop(ctx context.Context, id int, next Publisher, jobs <-chan OrderEvent) {
	for {
		select {
		case <-ctx.Done():
			drain(context.WithoutCancel(ctx), id, next, jobs)
			logger.Log.Debug("event worker stopping", zap.Int("worker", id))
			return
		case ev, ok := <-jobs:
			if !ok {
				return
			}
			// the request context that produced ev is gone by now
			publish(ctx, id, next, ev)
		}
	}
}

func drain(ctx context.Context, id int, next Publisher, jobs <-chan OrderEvent) {
	for {
		select {
		case ev, ok := <-jobs:
			if !ok {
				return
			}
			publish(ctx, id, next, ev)
		default:
			return
		}
	}
}

func publish(ctx context.Context, id int, next Publisher, ev OrderEvent) {
	if err := next.PublishOrderEvent(ctx, ev); err != nil {
		logger.Log.Error("publish order event",
			zap.Int("worker", id),
			zap.String("order_id", ev.OrderID),
			zap.String("type", ev.Type),
			zap.Error(err))
		return
	}
	logger.Log.Debug("order event published",
		zap.Int("worker", id),
		zap.String("order_id", ev.OrderID),
		zap.String("type", ev.Type))
}
