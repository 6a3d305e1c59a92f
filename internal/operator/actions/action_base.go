package actions

import (
	"context"

	"github.com/carson-networks/report-server/internal/storage"
)

// IQuery is a unit of read work executed by an operator worker.
type IQuery interface {
	Run(ctx context.Context, store *storage.Storage) error
}

// QueryFunc adapts a plain function to IQuery.
type QueryFunc func(ctx context.Context, store *storage.Storage) error

func (f QueryFunc) Run(ctx context.Context, store *storage.Storage) error {
	return f(ctx, store)
}
