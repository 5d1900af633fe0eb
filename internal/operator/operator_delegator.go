package operator

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"

	"github.com/fintrackhq/fintrack-server/internal/operator/actions"
	"github.com/fintrackhq/fintrack-server/internal/storage"
)

// ErrStopped is returned by Process once Stop has been called.
var ErrStopped = errors.New("operator delegator stopped")

// OperatorDelegator manages the queues, starts/stops Operators (workers), and
// enqueues items. Each queue has exactly one worker and an item's queue is
// picked by hashing its key, so actions sharing a key (the owning user id)
// are processed in some serial order. This closes the read-modify-write race
// on the user balance.
type OperatorDelegator struct {
	storage  *storage.Storage
	queues   []chan ActionItem
	wg       sync.WaitGroup
	stopOnce sync.Once

	mu      sync.RWMutex
	stopped bool
}

func NewOperatorDelegator(s *storage.Storage, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	queues := make([]chan ActionItem, numWorkers)
	for i := range queues {
		queues[i] = make(chan ActionItem, 1000)
	}
	return &OperatorDelegator{
		storage: s,
		queues:  queues,
	}
}

func (d *OperatorDelegator) Start() {
	for _, queue := range d.queues {
		d.wg.Add(1)
		op := NewOperator(d.storage, queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes the queues and waits for the workers to drain them. Calls to
// Process after Stop return ErrStopped instead of panicking on the closed
// channel.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		for _, queue := range d.queues {
			close(queue)
		}
		d.mu.Unlock()
		d.wg.Wait()
	})
}

// Process enqueues the action on the queue selected by key and waits for the
// result. When the context ends first, the caller gets ctx.Err() but the
// action still runs to completion, including any compensating action.
func (d *OperatorDelegator) Process(ctx context.Context, key string, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	// The read lock spans the send so Stop cannot close the queue between the
	// stopped check and the enqueue.
	d.mu.RLock()
	if d.stopped {
		d.mu.RUnlock()
		return ErrStopped
	}
	d.queues[d.queueIndex(key)] <- item
	d.mu.RUnlock()

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) queueIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.queues)))
}
