package batcher

import (
	"sync"

	"go.uber.org/zap"
)

// StripedBatcher groups pushed items into batches using per-P stripes.
//
// Each stripe is a fixed-size ring queue checked out of a sync.Pool, so a
// stripe is only ever touched by one goroutine at a time. A stripe that
// reaches StripeSize items is drained into a new batch and handed to the
// Consumer.
//
// Items still sitting in pooled stripes are not flushed on shutdown. Use
// this for metrics, logs or cache events where throughput matters more than
// delivering every item.
type StripedBatcher[T any] struct {
	pool *sync.Pool
}

// New creates a new StripedBatcher for type T.
func New[T any](cons Consumer[T], cfg Config) *StripedBatcher[T] {
	switch {
	case cfg.StripeSize <= 0:
		cfg.StripeSize = DefaultStripeSize
	case cfg.StripeSize > MaxStripeSize:
		cfg.StripeSize = MaxStripeSize
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.Int("stripe_size", cfg.StripeSize))

	return &StripedBatcher[T]{
		pool: &sync.Pool{
			New: func() any {
				return newStripe[T](cons, cfg.StripeSize, log)
			},
		},
	}
}

// Push adds an item to the batcher.
// It may trigger a flush to Consumer if the underlying stripe becomes full.
func (b *StripedBatcher[T]) Push(item T) {
	s := b.pool.Get().(*stripe[T])
	s.Push(item)
	b.pool.Put(s)
}
