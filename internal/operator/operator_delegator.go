package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/shared-ledger/internal/operator/actions"
)

var ErrStopped = errors.New("operator delegator stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	store      WriteStore
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once

	mu      sync.RWMutex
	stopped bool
}

func NewOperatorDelegator(s WriteStore, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		store:      s,
		queue:      make(chan ActionItem, 1000),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.store, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes the queue and waits for in-flight items to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
		d.wg.Wait()
	})
}

// Process runs the action on a worker and waits for its result.
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
	d.mu.RLock()
	defer d.mu.RUnlock()
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
