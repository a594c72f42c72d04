package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/shared-ledger/internal/operator/actions"
	"github.com/carson-networks/shared-ledger/internal/storage"
)

// WriteStore opens the transaction each action runs in.
type WriteStore interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	store WriteStore
	queue chan ActionItem
}

func NewOperator(s WriteStore, queue chan ActionItem) *Operator {
	return &Operator{
		store: s,
		queue: queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

// processItem runs the action in its own transaction. Nothing the action
// wrote survives an error.
func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	writer, err := o.store.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		if rbErr := writer.Rollback(context.WithoutCancel(item.ctx)); rbErr != nil {
			logrus.WithError(rbErr).Error("rollback failed")
		}
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(item.ctx); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
