package batcher

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/ringqueue/pkg/datastructs/queue"
)

// stripe collects items in a ring until size items are queued.
// It is NOT thread-safe and is intended to be used via sync.Pool.
type stripe[T any] struct {
	cons Consumer[T]
	ring *queue.Ring[T]
	log  *zap.Logger
}

// newStripe creates a stripe holding up to size items.
func newStripe[T any](cons Consumer[T], size int, log *zap.Logger) *stripe[T] {
	return &stripe[T]{
		cons: cons,
		// One extra slot: a ring of capacity n holds n-1 items.
		ring: queue.MustNew[T](size + 1),
		log:  log,
	}
}

// Push queues an item and flushes once the stripe is full.
func (s *stripe[T]) Push(item T) {
	s.ring.Push(item)
	if s.ring.IsFull() {
		s.flush()
	}
}

// flush drains the ring into a fresh batch owned by the consumer.
func (s *stripe[T]) flush() {
	batch := make([]T, s.ring.Len())
	for i := range batch {
		s.ring.PopInto(&batch[i])
	}

	if err := s.cons.Consume(batch); err != nil {
		s.log.Warn("batch consume failed", zap.Int("batch_size", len(batch)), zap.Error(err))
	}
}
