package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

const queueSize = 1000

// ErrStopped is returned by Process once the delegator has been stopped.
var ErrStopped = errors.New("operator stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	storage    writerSource
	publisher  events.Publisher
	logger     *logrus.Logger
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
	stopMutex  sync.RWMutex
	stopped    bool
}

func NewOperatorDelegator(s writerSource, publisher events.Publisher, logger *logrus.Logger, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &OperatorDelegator{
		storage:    s,
		publisher:  publisher,
		logger:     logger,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.publisher, d.logger, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes the queue and waits for in-flight actions to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.stopMutex.Lock()
		d.stopped = true
		close(d.queue)
		d.stopMutex.Unlock()
		d.wg.Wait()
	})
}

// Process enqueues action and waits for its result or for ctx to end.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.stopMutex.RLock()
	defer d.stopMutex.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
