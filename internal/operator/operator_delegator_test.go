package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/report-server/internal/operator/actions"
	"github.com/carson-networks/report-server/internal/storage"
)

func TestProcess_RunsQuery(t *testing.T) {
	store := &storage.Storage{}
	delegator := NewOperatorDelegator(store, 2)
	delegator.Start()
	defer delegator.Stop()

	var got *storage.Storage
	err := delegator.Process(context.Background(), actions.QueryFunc(func(ctx context.Context, s *storage.Storage) error {
		got = s
		return nil
	}))

	assert.NoError(t, err)
	assert.Same(t, store, got)
}

func TestProcess_PropagatesQueryError(t *testing.T) {
	delegator := NewOperatorDelegator(&storage.Storage{}, 1)
	delegator.Start()
	defer delegator.Stop()

	queryErr := errors.New("query failed")
	err := delegator.Process(context.Background(), actions.QueryFunc(func(ctx context.Context, s *storage.Storage) error {
		return queryErr
	}))

	assert.ErrorIs(t, err, queryErr)
}

func TestProcess_CancelledContext(t *testing.T) {
	delegator := NewOperatorDelegator(&storage.Storage{}, 1)
	delegator.Start()
	defer delegator.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := delegator.Process(ctx, actions.QueryFunc(func(ctx context.Context, s *storage.Storage) error {
		return nil
	}))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_ConcurrentQueries(t *testing.T) {
	delegator := NewOperatorDelegator(&storage.Storage{}, 4)
	delegator.Start()
	defer delegator.Stop()

	var ran atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := delegator.Process(context.Background(), actions.QueryFunc(func(ctx context.Context, s *storage.Storage) error {
				ran.Add(1)
				return nil
			}))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), ran.Load())
}

func TestStop_Idempotent(t *testing.T) {
	delegator := NewOperatorDelegator(&storage.Storage{}, 1)
	delegator.Start()

	delegator.Stop()
	delegator.Stop()
}
