package operator

import (
	"context"

	"github.com/carson-networks/report-server/internal/operator/actions"
	"github.com/carson-networks/report-server/internal/storage"
)

// Operator is the worker that processes query items from the queue.
type Operator struct {
	storage *storage.Storage
	queue   chan QueryItem
}

func NewOperator(s *storage.Storage, queue chan QueryItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item QueryItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- QueryItemResponse{err: err}
		return
	}

	err := item.query.Run(item.ctx, o.storage)
	item.response <- QueryItemResponse{err: err}
}

type QueryItem struct {
	ctx      context.Context
	query    actions.IQuery
	response chan QueryItemResponse
}

type QueryItemResponse struct {
	err error
}
